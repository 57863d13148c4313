// Package supervisor owns the sharded per-intent state and exposes batch
// ingest, snapshot and restore.
package supervisor

import (
	"errors"
	"fmt"
	"sync"

	"github.com/danielpatrickdp/output-arbiter/internal/arbiter"
	"github.com/danielpatrickdp/output-arbiter/internal/shard"
	"github.com/danielpatrickdp/output-arbiter/internal/snapshot"
)

// ErrInvalidArgument reports bad construction parameters.
var ErrInvalidArgument = errors.New("supervisor: invalid argument")

// #region restore-stats
// RestoreStats are the observability counters returned by restore.
type RestoreStats struct {
	Applied     uint32 // records applied from the snapshot
	Overwritten uint32 // existing records that were overwritten
}

// #endregion restore-stats

// #region supervisor-struct

// Supervisor routes events to shards and runs the decision engine under
// each shard's guard. Config is immutable after construction; achievable
// parallelism scales with the shard count.
type Supervisor struct {
	cfg    arbiter.ThresholdConfig
	shards []*shard.Shard

	// Per-intent config overrides, for harness/replay use.
	omu       sync.RWMutex
	overrides map[string]arbiter.ThresholdConfig
}

// New constructs a supervisor with a fixed shard count.
func New(shardCount int, cfg arbiter.ThresholdConfig) (*Supervisor, error) {
	if shardCount <= 0 {
		return nil, fmt.Errorf("%w: shard count must be positive, got %d", ErrInvalidArgument, shardCount)
	}
	shards := make([]*shard.Shard, shardCount)
	for i := range shards {
		shards[i] = shard.New()
	}
	return &Supervisor{
		cfg:       cfg,
		shards:    shards,
		overrides: make(map[string]arbiter.ThresholdConfig),
	}, nil
}

// Config returns the supervisor-wide threshold config.
func (s *Supervisor) Config() arbiter.ThresholdConfig { return s.cfg }

// ShardCount returns the fixed shard count.
func (s *Supervisor) ShardCount() int { return len(s.shards) }

// #endregion supervisor-struct

// #region overrides

// SetConfigOverride pins a per-intent threshold config. Subsequent events
// for that intent use it instead of the supervisor-wide config.
func (s *Supervisor) SetConfigOverride(intentID string, cfg arbiter.ThresholdConfig) {
	s.omu.Lock()
	s.overrides[intentID] = cfg
	s.omu.Unlock()
}

// ClearConfigOverride removes a per-intent override.
func (s *Supervisor) ClearConfigOverride(intentID string) {
	s.omu.Lock()
	delete(s.overrides, intentID)
	s.omu.Unlock()
}

func (s *Supervisor) configFor(intentID string) arbiter.ThresholdConfig {
	s.omu.RLock()
	cfg, ok := s.overrides[intentID]
	s.omu.RUnlock()
	if ok {
		return cfg
	}
	return s.cfg
}

// #endregion overrides

// #region ingest

// Ingest runs the decision engine for each event in input order and returns
// one action per event, in the same order. Events sharing an intent id
// share a shard, so their relative order is always preserved; concurrent
// Ingest calls from different goroutines serialize per shard only.
func (s *Supervisor) Ingest(events []arbiter.Event) []arbiter.Action {
	actions := make([]arbiter.Action, 0, len(events))
	for _, e := range events {
		cfg := s.configFor(e.IntentID)
		sh := s.shards[shard.Route(e.IntentID, len(s.shards))]

		sh.Lock()
		rec := sh.Get(e.IntentID)
		act := arbiter.Decide(rec, e, cfg)
		sh.Unlock()

		actions = append(actions, act)
	}
	return actions
}

// #endregion ingest

// #region clear-intent

// ClearIntent drops a single intent's record (ops/debugging aid).
func (s *Supervisor) ClearIntent(intentID string) {
	sh := s.shards[shard.Route(intentID, len(s.shards))]
	sh.Lock()
	sh.Delete(intentID)
	sh.Unlock()
}

// #endregion clear-intent

// #region snapshot

// Snapshot serializes every shard's records into an owned buffer. Shard
// guards are taken one at a time in ascending index order, so ingest on a
// shard only blocks for that shard's serialization, never for the whole
// snapshot. The result is an independent copy, unaffected by later
// mutation.
func (s *Supervisor) Snapshot() []byte {
	return snapshot.EncodeGroups(s.collect(nil))
}

// SnapshotIntents serializes only the named intents.
func (s *Supervisor) SnapshotIntents(intentIDs []string) []byte {
	want := make(map[string]struct{}, len(intentIDs))
	for _, id := range intentIDs {
		want[id] = struct{}{}
	}
	return snapshot.EncodeGroups(s.collect(func(id string) bool {
		_, ok := want[id]
		return ok
	}))
}

// collect copies records out of each shard, optionally filtered. nil keeps
// everything.
func (s *Supervisor) collect(keep func(intentID string) bool) [][]snapshot.Record {
	groups := make([][]snapshot.Record, len(s.shards))
	for i, sh := range s.shards {
		sh.Lock()
		group := make([]snapshot.Record, 0, sh.Len())
		sh.Range(func(id string, rec *arbiter.IntentRecord) {
			if keep != nil && !keep(id) {
				return
			}
			group = append(group, snapshot.Record{IntentID: id, State: *rec})
		})
		sh.Unlock()
		groups[i] = group
	}
	return groups
}

// #endregion snapshot

// #region restore

// Restore applies a snapshot buffer. Decode and validation complete fully
// before any shard is touched, so a malformed buffer leaves prior state
// intact. With merge=false all shards are cleared first; with merge=true
// snapshot records overwrite same-id records field-for-field and everything
// else survives. Placement is re-derived via the router, never read from
// the snapshot.
func (s *Supervisor) Restore(data []byte, merge bool) (RestoreStats, error) {
	_, records, err := snapshot.Decode(data)
	if err != nil {
		return RestoreStats{}, err
	}

	if !merge {
		for _, sh := range s.shards {
			sh.Lock()
			sh.Clear()
			sh.Unlock()
		}
	}

	var stats RestoreStats
	for _, rec := range records {
		st := rec.State
		sh := s.shards[shard.Route(rec.IntentID, len(s.shards))]
		sh.Lock()
		if merge && sh.Has(rec.IntentID) {
			stats.Overwritten++
		}
		sh.Put(rec.IntentID, &st)
		sh.Unlock()
		stats.Applied++
	}
	return stats, nil
}

// #endregion restore
