package catalog

import (
	"log"
	"sync"

	"github.com/autobake/backend/internal/domain"
)

// Store holds the current catalog snapshot behind a read-write mutex.
// Reload swaps the snapshot atomically so concurrent readers always see a
// consistent view; a failed reload leaves the previous snapshot in place.
type Store struct {
	loader  domain.CatalogLoader
	mu      sync.RWMutex
	records []domain.MachineRecord
}

// NewStore creates an empty store over the given loader. Call Load before
// serving requests.
func NewStore(loader domain.CatalogLoader) *Store {
	return &Store{loader: loader}
}

// Load performs the initial catalog load. Callers treat an error here as
// startup-fatal.
func (s *Store) Load() error {
	return s.Reload()
}

// Reload re-reads the catalog source and installs the new snapshot. On error
// the previous snapshot stays installed.
func (s *Store) Reload() error {
	records, err := s.loader.Load()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	log.Printf("[CATALOG] snapshot installed: %d machines", len(records))
	return nil
}

// Snapshot returns the current records. Callers must treat the returned
// slice as immutable.
func (s *Store) Snapshot() []domain.MachineRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Size returns the number of machines in the current snapshot (for
// debugging/monitoring)
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
