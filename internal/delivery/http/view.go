package http

import (
	"strconv"
	"strings"

	"github.com/autobake/backend/internal/domain"
)

// View models shape match results for display clients. Numeric "unknown"
// renders as a dash; an infeasible unit count renders distinctly from both
// "unknown" and a concrete number.

type matchView struct {
	Product        string      `json:"product"`
	Group          string      `json:"group"`
	ProductionLine string      `json:"productionLine"`
	Stages         []stageView `json:"stages"`
}

type stageView struct {
	Stage             string       `json:"stage"`
	FullyMatching     []machineRow `json:"fullyMatching"`
	PartiallyRelevant []machineRow `json:"partiallyRelevant"`
}

type machineRow struct {
	SerialNo      int    `json:"serialNo"`
	MachineName   string `json:"machineName"`
	Company       string `json:"company"`
	Capacity      string `json:"capacity"`
	UnitsRequired string `json:"unitsRequired,omitempty"`
	TotalCapacity string `json:"totalCapacity,omitempty"`
	DoughRange    string `json:"doughRange"`
	KeyFeatures   string `json:"keyFeatures"`
}

type catalogRow struct {
	SerialNo    int    `json:"serialNo"`
	MachineName string `json:"machineName"`
	Company     string `json:"company"`
	Category    string `json:"category"`
	Products    string `json:"products"`
	Capacity    string `json:"capacity"`
	DoughRange  string `json:"doughRange"`
	KeyFeatures string `json:"keyFeatures"`
}

func buildMatchView(result *domain.MatchResponse) matchView {
	view := matchView{
		Product:        result.Product,
		Group:          result.Group,
		ProductionLine: strings.Join(result.Stages, " → "),
		Stages:         make([]stageView, 0, len(result.Results)),
	}

	hasTarget := result.Throughput != nil
	for _, stage := range result.Results {
		view.Stages = append(view.Stages, stageView{
			Stage:             stage.Stage,
			FullyMatching:     buildMachineRows(stage.FullyMatching, hasTarget),
			PartiallyRelevant: buildMachineRows(stage.PartiallyRelevant, hasTarget),
		})
	}
	return view
}

func buildMachineRows(matches []domain.MachineMatch, hasTarget bool) []machineRow {
	rows := make([]machineRow, 0, len(matches))
	for i, m := range matches {
		row := machineRow{
			SerialNo:    i + 1,
			MachineName: displayValue(m.Machine.Name),
			Company:     displayValue(m.Machine.Manufacturer),
			Capacity:    displayValue(m.Machine.CapacityRaw),
			DoughRange:  doughRange(m.Machine.DoughMinRaw, m.Machine.DoughMaxRaw),
			KeyFeatures: displayValue(strings.ReplaceAll(m.Machine.KeyFeatures, "\n", " ")),
		}
		if hasTarget {
			row.UnitsRequired = unitsDisplay(m)
			row.TotalCapacity = totalCapacityDisplay(m)
		}
		rows = append(rows, row)
	}
	return rows
}

func buildCatalogRow(serial int, rec domain.MachineRecord) catalogRow {
	return catalogRow{
		SerialNo:    serial,
		MachineName: displayValue(rec.Name),
		Company:     displayValue(rec.Manufacturer),
		Category:    displayValue(rec.Category),
		Products:    displayValue(rec.Products),
		Capacity:    displayValue(rec.CapacityRaw),
		DoughRange:  doughRange(rec.DoughMinRaw, rec.DoughMaxRaw),
		KeyFeatures: displayValue(strings.ReplaceAll(rec.KeyFeatures, "\n", " ")),
	}
}

// displayValue renders a raw catalog cell, falling back to a dash for blank
// or placeholder values.
func displayValue(s string) string {
	v := strings.TrimSpace(s)
	switch strings.ToLower(v) {
	case "", "nan", "n/a":
		return "-"
	}
	return v
}

// doughRange renders the dough window from the raw min/max cells:
// "300-800g", "Min 300g", "Max 800g", or a dash when both are unknown.
func doughRange(minRaw, maxRaw string) string {
	minVal := displayValue(minRaw)
	maxVal := displayValue(maxRaw)
	switch {
	case minVal != "-" && maxVal != "-":
		return minVal + "-" + maxVal + "g"
	case minVal != "-":
		return "Min " + minVal + "g"
	case maxVal != "-":
		return "Max " + maxVal + "g"
	}
	return "-"
}

// unitsDisplay renders the unit count: a number, a dash for unknown
// capacity, or an explicit not-achievable marker for zero capacity.
func unitsDisplay(m domain.MachineMatch) string {
	switch {
	case m.Infeasible:
		return "not achievable (capacity 0)"
	case m.UnitsRequired != nil:
		return strconv.Itoa(*m.UnitsRequired)
	}
	return "-"
}

func totalCapacityDisplay(m domain.MachineMatch) string {
	if m.TotalCapacity == nil {
		return "-"
	}
	return strconv.FormatFloat(*m.TotalCapacity, 'f', -1, 64)
}
