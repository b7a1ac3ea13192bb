package domain

// CatalogLoader reads the full machine catalog from its source.
// Load failures at startup are fatal; failures during a reload are
// recoverable and must leave the previous snapshot in place.
type CatalogLoader interface {
	Load() ([]MachineRecord, error)
}

// CatalogProvider supplies the current immutable catalog snapshot.
// Implementations must swap snapshots atomically so concurrent readers
// always see a consistent view.
type CatalogProvider interface {
	Snapshot() []MachineRecord
}

// SimilarityScorer computes a token-order-insensitive similarity score
// between two strings in [0,100]. Any token-sort-ratio implementation
// satisfies the contract.
type SimilarityScorer interface {
	Score(a, b string) int
}
