package domain

// MachineRecord represents one row of the bakery machine catalog.
// Raw string fields preserve the catalog's original cell values for display;
// the parsed numeric fields are nil when the cell was blank or non-numeric.
type MachineRecord struct {
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Category     string `json:"category"`
	Products     string `json:"products"` // comma-separated, lowercase, raw
	DoughMinRaw  string `json:"doughMin"`
	DoughMaxRaw  string `json:"doughMax"`
	CapacityRaw  string `json:"capacity"`
	KeyFeatures  string `json:"keyFeatures"`

	DoughMin *float64 `json:"-"`
	DoughMax *float64 `json:"-"`
	Capacity *float64 `json:"-"` // per-unit production capacity, pcs/hr
}

// MachineMatch is a catalog record with the fit figures computed for one request.
type MachineMatch struct {
	Machine MachineRecord `json:"machine"`

	DoughFit    bool `json:"doughFit"`
	CapacityFit bool `json:"capacityFit"`

	// UnitsRequired is the minimum machine count to meet the throughput
	// target. Nil when no target was supplied or per-unit capacity is
	// unknown. Infeasible marks a known-zero capacity: no finite number of
	// units suffices, which is distinct from "unknown".
	UnitsRequired *int     `json:"unitsRequired,omitempty"`
	Infeasible    bool     `json:"infeasible"`
	TotalCapacity *float64 `json:"totalCapacity,omitempty"`
}

// StageResult holds the two ranked partitions for a single production stage.
// Both lists are sorted by manufacturer name ascending, ties broken by
// catalog order. Either list may be empty.
type StageResult struct {
	Stage             string         `json:"stage"`
	FullyMatching     []MachineMatch `json:"fullyMatching"`
	PartiallyRelevant []MachineMatch `json:"partiallyRelevant"`
}

// MatchRequest carries the resolved inputs for one matching invocation.
// Nil numeric fields mean the constraint was not supplied.
type MatchRequest struct {
	Product     string   `json:"product"` // canonical product name
	DoughWeight *float64 `json:"doughWeight,omitempty"`
	Throughput  *int     `json:"throughput,omitempty"`
}

// MatchResponse is the full result of one matching invocation. Stages and
// Results follow the production-line template order, never catalog or
// alphabetical order.
type MatchResponse struct {
	Product     string        `json:"product"`
	Group       string        `json:"group"`
	Stages      []string      `json:"stages"`
	Results     []StageResult `json:"results"`
	DoughWeight *float64      `json:"doughWeight,omitempty"`
	Throughput  *int          `json:"throughput,omitempty"`
}
