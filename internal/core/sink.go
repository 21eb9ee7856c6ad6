package core

import (
	"context"
	"sync"

	"github.com/paleodesk/fossilimport/internal/specimen"
)

// Sink persists one coerced specimen record. The core never decides how
// records are stored; implementations live with the caller (a database
// store, a dry-run collector, a test double).
type Sink interface {
	Insert(ctx context.Context, ownerID string, sp *specimen.Specimen) error
}

// InsertedRecord is one specimen a MemorySink accepted.
type InsertedRecord struct {
	OwnerID  string
	Specimen *specimen.Specimen
}

// MemorySink collects inserted specimens in memory. Used for dry runs and
// tests. Set Err to make every insert fail.
type MemorySink struct {
	mu      sync.Mutex
	records []InsertedRecord

	Err error
}

// Insert records the specimen, or returns the configured error.
func (s *MemorySink) Insert(_ context.Context, ownerID string, sp *specimen.Specimen) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, InsertedRecord{OwnerID: ownerID, Specimen: sp})
	return nil
}

// Records returns a copy of everything inserted so far.
func (s *MemorySink) Records() []InsertedRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]InsertedRecord, len(s.records))
	copy(out, s.records)
	return out
}
