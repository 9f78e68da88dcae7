// Package store provides demand-history storage: an in-memory snapshot
// used for serving, a CSV cache on disk, and a Postgres repository.
package store

import (
	"context"
	"sync"

	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
)

// DemandSource serves the demand history used by the API and CLI.
// Generation increments on every dataset replacement; consumers that
// cache derived results key them by generation so a regeneration
// invalidates prior entries.
type DemandSource interface {
	All(ctx context.Context) ([]contracts.DemandRecord, error)
	Part(ctx context.Context, partName string) ([]contracts.DemandRecord, error)
	Parts(ctx context.Context) ([]string, error)
	Generation() uint64
}

// MemorySource holds a demand snapshot in memory. Replace swaps in a
// full new dataset atomically; readers always see a complete snapshot.
type MemorySource struct {
	mu         sync.RWMutex
	records    []contracts.DemandRecord
	generation uint64
}

// NewMemorySource creates a source, optionally pre-loaded.
func NewMemorySource(records []contracts.DemandRecord) *MemorySource {
	return &MemorySource{records: records}
}

// Replace swaps the snapshot with a new dataset and bumps the
// generation.
func (s *MemorySource) Replace(records []contracts.DemandRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.generation++
}

// Generation returns the number of times the snapshot was replaced.
func (s *MemorySource) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// All returns a copy of the full snapshot.
func (s *MemorySource) All(_ context.Context) ([]contracts.DemandRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]contracts.DemandRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Part returns the history for one part.
func (s *MemorySource) Part(_ context.Context, partName string) ([]contracts.DemandRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return contracts.FilterPart(s.records, partName), nil
}

// Parts returns the distinct part names in first-seen order.
func (s *MemorySource) Parts(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return contracts.PartNames(s.records), nil
}
