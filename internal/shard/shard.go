// Package shard provides the lock-striped per-intent record storage and the
// deterministic intent-to-shard router.
package shard

import (
	"sync"

	"github.com/danielpatrickdp/output-arbiter/internal/arbiter"
)

// #region router

// fnv1a64 is the stable FNV-1a hash used for routing. Stability across
// process restarts matters: restored records are re-routed by this
// function, never trusted from a stored shard index.
func fnv1a64(s string) uint64 {
	h := uint64(0xcbf29ce484222325)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 0x100000001b3
	}
	return h
}

// Route maps an intent id onto a shard index.
func Route(intentID string, shardCount int) int {
	if shardCount <= 1 {
		return 0
	}
	return int(fnv1a64(intentID) % uint64(shardCount))
}

// #endregion router

// #region shard

// Shard owns a slice of the intent space under one guard. A record is only
// ever touched while its shard's guard is held.
type Shard struct {
	mu      sync.Mutex
	records map[string]*arbiter.IntentRecord
}

// New creates an empty shard.
func New() *Shard {
	return &Shard{records: make(map[string]*arbiter.IntentRecord)}
}

// Lock takes the shard's guard.
func (s *Shard) Lock() { s.mu.Lock() }

// Unlock releases the shard's guard.
func (s *Shard) Unlock() { s.mu.Unlock() }

// Get returns the record for an intent id, creating a zero-initialized one
// on first sight. Caller must hold the guard.
func (s *Shard) Get(intentID string) *arbiter.IntentRecord {
	rec, ok := s.records[intentID]
	if !ok {
		rec = &arbiter.IntentRecord{}
		s.records[intentID] = rec
	}
	return rec
}

// Has reports whether a record exists without creating one. Caller must
// hold the guard.
func (s *Shard) Has(intentID string) bool {
	_, ok := s.records[intentID]
	return ok
}

// Put inserts or overwrites a record. Caller must hold the guard.
func (s *Shard) Put(intentID string, rec *arbiter.IntentRecord) {
	s.records[intentID] = rec
}

// Delete removes a record. Caller must hold the guard.
func (s *Shard) Delete(intentID string) {
	delete(s.records, intentID)
}

// Clear drops every record. Caller must hold the guard.
func (s *Shard) Clear() {
	clear(s.records)
}

// Len reports the record count. Caller must hold the guard.
func (s *Shard) Len() int { return len(s.records) }

// Range calls fn for every record. Caller must hold the guard.
func (s *Shard) Range(fn func(intentID string, rec *arbiter.IntentRecord)) {
	for id, rec := range s.records {
		fn(id, rec)
	}
}

// #endregion shard
