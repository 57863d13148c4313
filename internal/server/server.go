// Package server exposes the supervisor over gRPC. Each Construct call
// creates an independent supervisor behind an opaque handle; the service
// owns the handle registry and translates wire configs at the boundary.
package server

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/danielpatrickdp/output-arbiter/gen/arbiterpb"
	"github.com/danielpatrickdp/output-arbiter/internal/arbiter"
	"github.com/danielpatrickdp/output-arbiter/internal/archive"
	"github.com/danielpatrickdp/output-arbiter/internal/logging"
	"github.com/danielpatrickdp/output-arbiter/internal/snapshot"
	"github.com/danielpatrickdp/output-arbiter/internal/supervisor"
)

// #region service-struct

// Service implements the Arbiter gRPC service.
type Service struct {
	pb.UnimplementedArbiterServer

	mu          sync.RWMutex
	supervisors map[string]*supervisor.Supervisor

	// store is the optional snapshot archive. When nil, persist requests
	// return data without an archive id and escalations are not logged.
	store *archive.Store
}

// New creates a service. store may be nil to run without persistence.
func New(store *archive.Store) *Service {
	return &Service{
		supervisors: make(map[string]*supervisor.Supervisor),
		store:       store,
	}
}

func (s *Service) lookup(handle string) (*supervisor.Supervisor, error) {
	s.mu.RLock()
	sup, ok := s.supervisors[handle]
	s.mu.RUnlock()
	if !ok {
		return nil, status.Errorf(codes.NotFound, "unknown handle %q", handle)
	}
	return sup, nil
}

// #endregion service-struct

// #region version

// Version reports the snapshot wire-format version this server emits.
func (s *Service) Version(ctx context.Context, req *pb.VersionRequest) (*pb.VersionResponse, error) {
	return &pb.VersionResponse{FormatVersion: uint32(snapshot.FormatVersion)}, nil
}

// #endregion version

// #region default-config

// DefaultConfig returns the canonical thresholds.
func (s *Service) DefaultConfig(ctx context.Context, req *pb.DefaultConfigRequest) (*pb.DefaultConfigResponse, error) {
	return &pb.DefaultConfigResponse{Config: configToProto(arbiter.DefaultConfig())}, nil
}

// #endregion default-config

// #region construct

// Construct creates a supervisor and returns its handle. A nil config
// means defaults.
func (s *Service) Construct(ctx context.Context, req *pb.ConstructRequest) (*pb.ConstructResponse, error) {
	cfg := arbiter.DefaultConfig()
	if req.Config != nil {
		cfg = configFromProto(req.Config)
	}

	sup, err := supervisor.New(int(req.ShardCount), cfg)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	handle := uuid.New().String()
	s.mu.Lock()
	s.supervisors[handle] = sup
	s.mu.Unlock()

	log.Printf("[SERVER] constructed supervisor handle=%s shards=%d", handle, req.ShardCount)
	return &pb.ConstructResponse{Handle: handle}, nil
}

// #endregion construct

// #region destroy

// Destroy releases a handle. Destroying an unknown (or already destroyed)
// handle is NOT_FOUND.
func (s *Service) Destroy(ctx context.Context, req *pb.DestroyRequest) (*pb.DestroyResponse, error) {
	s.mu.Lock()
	_, ok := s.supervisors[req.Handle]
	if ok {
		delete(s.supervisors, req.Handle)
	}
	s.mu.Unlock()

	if !ok {
		return nil, status.Errorf(codes.NotFound, "unknown handle %q", req.Handle)
	}
	log.Printf("[SERVER] destroyed supervisor handle=%s", req.Handle)
	return &pb.DestroyResponse{}, nil
}

// #endregion destroy

// #region ingest

// Ingest runs the decision engine over a batch and returns one action per
// event in input order. Escalated actions are appended to the archive's
// escalation log when a store is configured; a logging failure does not
// fail the batch.
func (s *Service) Ingest(ctx context.Context, req *pb.IngestRequest) (*pb.IngestResponse, error) {
	sup, err := s.lookup(req.Handle)
	if err != nil {
		return nil, err
	}

	events := make([]arbiter.Event, len(req.Events))
	for i, ev := range req.Events {
		events[i] = arbiter.Event{
			IntentID: ev.IntentId,
			SourceID: ev.SourceId,
			Origin:   ev.Origin,
			Text:     ev.Text,
			Signals:  ev.Signals,
			RuleHits: ev.RuleHits,
		}
	}

	actions := sup.Ingest(events)

	if s.store != nil {
		if err := logging.LogActions(s.store.DB(), req.Handle, actions); err != nil {
			log.Printf("[SERVER] escalation log error: %v", err)
		}
	}

	resp := &pb.IngestResponse{Actions: make([]*pb.Action, len(actions))}
	for i, act := range actions {
		resp.Actions[i] = &pb.Action{
			IntentId:   act.IntentID,
			Escalation: pb.Escalation(act.Escalation),
			AvgEntropy: act.AvgEntropy,
			CosineSim:  act.CosineSim,
			GateShift:  act.GateShift,
			RuleHits:   act.RuleHits,
			Repeated:   act.Repeated,
			Stalled:    act.Stalled,
			Tell:       act.Tell,
		}
	}
	return resp, nil
}

// #endregion ingest

// #region snapshot

// Snapshot serializes the supervisor's state. With persist=true and an
// archive configured, the buffer is also stored and its id returned.
func (s *Service) Snapshot(ctx context.Context, req *pb.SnapshotRequest) (*pb.SnapshotResponse, error) {
	sup, err := s.lookup(req.Handle)
	if err != nil {
		return nil, err
	}

	data := sup.Snapshot()
	resp := &pb.SnapshotResponse{Data: data}

	if req.Persist && s.store != nil {
		id, err := s.store.Save(data, "handle "+req.Handle)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "persist snapshot: %v", err)
		}
		resp.SnapshotId = id
	}
	return resp, nil
}

// #endregion snapshot

// #region restore

// Restore applies a snapshot buffer to the supervisor. Version mismatches
// are FAILED_PRECONDITION; all other decode failures are INVALID_ARGUMENT.
// Either way a failed restore leaves prior state intact.
func (s *Service) Restore(ctx context.Context, req *pb.RestoreRequest) (*pb.RestoreResponse, error) {
	sup, err := s.lookup(req.Handle)
	if err != nil {
		return nil, err
	}

	stats, err := sup.Restore(req.Data, req.Merge)
	if err != nil {
		return nil, restoreStatus(err)
	}
	return &pb.RestoreResponse{
		Applied:     stats.Applied,
		Overwritten: stats.Overwritten,
	}, nil
}

// #endregion restore

// #region archive-all

// ArchiveAll persists a snapshot of every live supervisor. Driven by the
// daemon's periodic capture loop; a no-op without an archive. Returns how
// many supervisors were archived.
func (s *Service) ArchiveAll() (int, error) {
	if s.store == nil {
		return 0, nil
	}

	s.mu.RLock()
	handles := make([]string, 0, len(s.supervisors))
	sups := make([]*supervisor.Supervisor, 0, len(s.supervisors))
	for h, sup := range s.supervisors {
		handles = append(handles, h)
		sups = append(sups, sup)
	}
	s.mu.RUnlock()

	for i, sup := range sups {
		if _, err := s.store.Save(sup.Snapshot(), "handle "+handles[i]); err != nil {
			return i, err
		}
	}
	return len(sups), nil
}

// #endregion archive-all

// #region converters

// configFromProto normalizes the wire config. The wire keeps two legacy
// shapes: hyst_disable is inverted so an all-zero message means defaults-on,
// and forced_rule_hits uses a negative value as the "no override" sentinel.
func configFromProto(c *pb.ThresholdConfig) arbiter.ThresholdConfig {
	cfg := arbiter.ThresholdConfig{
		TauE:              c.TauE,
		TauS:              c.TauS,
		TauRep:            c.TauRep,
		TauStall:          c.TauStall,
		TauGate:           c.TauGate,
		HysteresisEnabled: !c.HystDisable,
	}
	if c.ForcedRuleHits >= 0 {
		forced := uint32(c.ForcedRuleHits)
		cfg.ForcedRuleHits = &forced
	}
	return cfg
}

func configToProto(cfg arbiter.ThresholdConfig) *pb.ThresholdConfig {
	c := &pb.ThresholdConfig{
		TauE:           cfg.TauE,
		TauS:           cfg.TauS,
		TauRep:         cfg.TauRep,
		TauStall:       cfg.TauStall,
		TauGate:        cfg.TauGate,
		HystDisable:    !cfg.HysteresisEnabled,
		ForcedRuleHits: -1,
	}
	if cfg.ForcedRuleHits != nil {
		c.ForcedRuleHits = int32(*cfg.ForcedRuleHits)
	}
	return c
}

func restoreStatus(err error) error {
	if errors.Is(err, snapshot.ErrVersion) {
		return status.Error(codes.FailedPrecondition, err.Error())
	}
	return status.Error(codes.InvalidArgument, err.Error())
}

// #endregion converters
