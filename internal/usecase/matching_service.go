package usecase

import (
	"log"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/autobake/backend/internal/domain"
)

// MatchConfig holds configuration for the matching service
type MatchConfig struct {
	CategoryThreshold  int
	ProductThreshold   int
	EnableDebugLogging bool
}

// catalogSnapshot pairs the catalog records with the vocabulary derived from
// them. Matches operate on one snapshot for their whole lifetime, so a reload
// never leaves a request seeing records from one catalog and a vocabulary
// from another.
type catalogSnapshot struct {
	records []domain.MachineRecord
	vocab   *Vocabulary
}

// MatchingService matches production requirements against the machine
// catalog, stage by stage.
type MatchingService struct {
	provider           domain.CatalogProvider
	classifier         *Classifier
	parser             *RequirementParser
	categoryThreshold  int
	enableDebugLogging bool

	mu   sync.RWMutex
	snap *catalogSnapshot
}

// NewMatchingService creates a matching service over the given catalog
// provider and similarity scorer, and builds the initial snapshot.
func NewMatchingService(provider domain.CatalogProvider, scorer domain.SimilarityScorer, config MatchConfig) *MatchingService {
	categoryThreshold := config.CategoryThreshold
	if categoryThreshold <= 0 {
		categoryThreshold = CategoryMatchThreshold
	}

	classifier := NewClassifier(scorer)

	s := &MatchingService{
		provider:           provider,
		classifier:         classifier,
		parser:             NewRequirementParser(classifier, config.ProductThreshold, config.EnableDebugLogging),
		categoryThreshold:  categoryThreshold,
		enableDebugLogging: config.EnableDebugLogging,
	}
	s.Refresh()
	return s
}

// Refresh rebuilds the matcher's snapshot from the catalog provider and
// installs it atomically. In-flight matches keep the snapshot they started
// with.
func (s *MatchingService) Refresh() {
	records := s.provider.Snapshot()
	snap := &catalogSnapshot{
		records: records,
		vocab:   NewVocabulary(records),
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	log.Printf("[MATCH] snapshot refreshed: %d machines, %d products", len(records), len(snap.vocab.Products()))
}

func (s *MatchingService) snapshot() *catalogSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Products returns the canonical product vocabulary of the current snapshot.
func (s *MatchingService) Products() []string {
	return s.snapshot().vocab.Products()
}

// Catalog returns the machine records of the current snapshot.
func (s *MatchingService) Catalog() []domain.MachineRecord {
	return s.snapshot().records
}

// MatchFromInputs is the form-level entry point. The prompt is optional free
// text; an explicitly selected product takes precedence over anything parsed
// from the prompt. The numeric fields accept a number or the skip sentinels
// "" and "-"; anything else fails fast with a per-field error before any
// matching begins. Explicit numeric fields override prompt-parsed values.
func (s *MatchingService) MatchFromInputs(prompt, selectedProduct, doughWeightInput, capacityInput string) (*domain.MatchResponse, error) {
	snap := s.snapshot()

	doughWeight, err := parseOptionalFloat(doughWeightInput)
	if err != nil {
		return nil, domain.ErrInvalidDoughWeight
	}
	throughput, err := parseOptionalInt(capacityInput)
	if err != nil {
		return nil, domain.ErrInvalidCapacity
	}

	var parsed ParsedRequirement
	if strings.TrimSpace(prompt) != "" {
		parsed = s.parser.Parse(prompt, snap.vocab.Products())
	}

	req := domain.MatchRequest{}
	switch {
	case strings.TrimSpace(selectedProduct) != "":
		req.Product = NormalizeProduct(selectedProduct)
	case parsed.Product != "":
		req.Product = parsed.Product
	default:
		return nil, domain.ErrNoProductIdentified
	}

	req.DoughWeight = doughWeight
	if req.DoughWeight == nil {
		req.DoughWeight = parsed.DoughWeight
	}
	req.Throughput = throughput
	if req.Throughput == nil {
		req.Throughput = parsed.Throughput
	}

	return s.match(snap, req)
}

// Match runs a matching invocation for an already-resolved request against
// the current snapshot.
func (s *MatchingService) Match(req domain.MatchRequest) (*domain.MatchResponse, error) {
	return s.match(s.snapshot(), req)
}

func (s *MatchingService) match(snap *catalogSnapshot, req domain.MatchRequest) (*domain.MatchResponse, error) {
	if s.enableDebugLogging {
		log.Printf("[MATCH] product=%q dough=%v throughput=%v over %d machines",
			req.Product, req.DoughWeight, req.Throughput, len(snap.records))
	}

	// Step 1: keep records whose normalized products list contains the
	// target. Exact canonical equality per comma-separated entry, no fuzz.
	var eligible []domain.MachineRecord
	for _, rec := range snap.records {
		if recordHasProduct(rec, req.Product) {
			eligible = append(eligible, rec)
		}
	}
	if len(eligible) == 0 {
		return nil, domain.ErrNoMachinesForProduct
	}

	// Classify each eligible record's category once; the stage loop below
	// only compares.
	stageOf := make([]string, len(eligible))
	for i, rec := range eligible {
		if stage, ok := s.classifier.StageForCategory(rec.Category, s.categoryThreshold); ok {
			stageOf[i] = stage
		}
	}

	stages := snap.vocab.Route(req.Product)
	resp := &domain.MatchResponse{
		Product:     req.Product,
		Group:       snap.vocab.Group(req.Product),
		Stages:      stages,
		Results:     make([]domain.StageResult, 0, len(stages)),
		DoughWeight: req.DoughWeight,
		Throughput:  req.Throughput,
	}

	// Step 2-5: per stage in template order, partition the candidates and
	// emit both lists even when empty.
	for _, stage := range stages {
		result := domain.StageResult{
			Stage:             stage,
			FullyMatching:     []domain.MachineMatch{},
			PartiallyRelevant: []domain.MachineMatch{},
		}

		for i, rec := range eligible {
			if stageOf[i] != stage {
				continue
			}
			m := buildMatch(rec, req)
			if m.DoughFit && m.CapacityFit {
				result.FullyMatching = append(result.FullyMatching, m)
			} else {
				result.PartiallyRelevant = append(result.PartiallyRelevant, m)
			}
		}

		sortByManufacturer(result.FullyMatching)
		sortByManufacturer(result.PartiallyRelevant)

		if s.enableDebugLogging {
			log.Printf("[MATCH] stage %s: %d fully matching, %d partially relevant",
				stage, len(result.FullyMatching), len(result.PartiallyRelevant))
		}

		resp.Results = append(resp.Results, result)
	}

	return resp, nil
}

// buildMatch computes the fit figures for one record against the request.
// Missing per-record data never fails the computation; it degrades the record
// to "unknown" for the affected criterion.
func buildMatch(rec domain.MachineRecord, req domain.MatchRequest) domain.MachineMatch {
	m := domain.MachineMatch{Machine: rec, DoughFit: true, CapacityFit: true}

	if req.DoughWeight != nil {
		w := *req.DoughWeight
		m.DoughFit = (rec.DoughMin == nil || *rec.DoughMin <= w) &&
			(rec.DoughMax == nil || *rec.DoughMax >= w)
	}

	if req.Throughput != nil {
		target := *req.Throughput
		m.CapacityFit = false
		switch {
		case rec.Capacity == nil:
			// Unknown capacity: units stay unset.
		case *rec.Capacity <= 0:
			// No finite number of units meets the target.
			m.Infeasible = true
		default:
			units := int(math.Ceil(float64(target) / *rec.Capacity))
			total := float64(units) * *rec.Capacity
			m.UnitsRequired = &units
			m.TotalCapacity = &total
			m.CapacityFit = total >= float64(target)
		}
	}

	return m
}

// recordHasProduct reports whether the record's comma-separated products
// list contains the canonical product, normalizing each entry independently.
func recordHasProduct(rec domain.MachineRecord, product string) bool {
	for _, entry := range strings.Split(rec.Products, ",") {
		if NormalizeProduct(entry) == product {
			return true
		}
	}
	return false
}

// sortByManufacturer orders a partition by manufacturer name ascending,
// ties broken by catalog order.
func sortByManufacturer(matches []domain.MachineMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Machine.Manufacturer < matches[j].Machine.Manufacturer
	})
}

// parseOptionalFloat parses a form field that accepts a number or the skip
// sentinels "" and "-".
func parseOptionalFloat(input string) (*float64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" || trimmed == "-" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// parseOptionalInt parses a form field that accepts a whole number or the
// skip sentinels "" and "-".
func parseOptionalInt(input string) (*int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" || trimmed == "-" {
		return nil, nil
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
