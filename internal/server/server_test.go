package server

import (
	"context"
	"path/filepath"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/danielpatrickdp/output-arbiter/gen/arbiterpb"
	"github.com/danielpatrickdp/output-arbiter/internal/archive"
	"github.com/danielpatrickdp/output-arbiter/internal/logging"
	"github.com/danielpatrickdp/output-arbiter/internal/snapshot"
)

func construct(t *testing.T, svc *Service, shards uint32) string {
	t.Helper()
	resp, err := svc.Construct(context.Background(), &pb.ConstructRequest{ShardCount: shards})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	return resp.Handle
}

func wantCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	if status.Code(err) != want {
		t.Fatalf("expected %s, got %v", want, err)
	}
}

func TestConstructRejectsZeroShards(t *testing.T) {
	svc := New(nil)
	_, err := svc.Construct(context.Background(), &pb.ConstructRequest{ShardCount: 0})
	wantCode(t, err, codes.InvalidArgument)
}

func TestUnknownHandleIsNotFound(t *testing.T) {
	svc := New(nil)
	_, err := svc.Ingest(context.Background(), &pb.IngestRequest{Handle: "nope"})
	wantCode(t, err, codes.NotFound)
}

func TestDestroyTwiceIsNotFound(t *testing.T) {
	svc := New(nil)
	ctx := context.Background()
	handle := construct(t, svc, 2)

	if _, err := svc.Destroy(ctx, &pb.DestroyRequest{Handle: handle}); err != nil {
		t.Fatalf("first destroy: %v", err)
	}
	_, err := svc.Destroy(ctx, &pb.DestroyRequest{Handle: handle})
	wantCode(t, err, codes.NotFound)
}

func TestVersionReportsWireFormat(t *testing.T) {
	svc := New(nil)
	resp, err := svc.Version(context.Background(), &pb.VersionRequest{})
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if resp.FormatVersion != uint32(snapshot.FormatVersion) {
		t.Fatalf("expected format version %d, got %d", snapshot.FormatVersion, resp.FormatVersion)
	}
}

func TestDefaultConfigRoundTrip(t *testing.T) {
	svc := New(nil)
	resp, err := svc.DefaultConfig(context.Background(), &pb.DefaultConfigRequest{})
	if err != nil {
		t.Fatalf("default config: %v", err)
	}
	cfg := resp.Config
	if cfg.TauE != 2.2 || cfg.TauS != 0.76 || cfg.TauGate != 2.0 {
		t.Fatalf("defaults drifted: %+v", cfg)
	}
	if cfg.HystDisable {
		t.Fatal("hysteresis must be on by default, wire flag is inverted")
	}
	if cfg.ForcedRuleHits != -1 {
		t.Fatalf("expected no-override sentinel -1, got %d", cfg.ForcedRuleHits)
	}
}

func TestIngestDecidesAndOrders(t *testing.T) {
	svc := New(nil)
	ctx := context.Background()
	handle := construct(t, svc, 4)

	resp, err := svc.Ingest(ctx, &pb.IngestRequest{
		Handle: handle,
		Events: []*pb.Event{
			{IntentId: "calm", Signals: map[string]float32{"entropy": 5.0, "cosine_sim": 0.9}},
			{IntentId: "bad", Signals: map[string]float32{"entropy": 0.1, "cosine_sim": 0.2}, RuleHits: 5},
		},
	})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if len(resp.Actions) != 2 {
		t.Fatalf("expected one action per event, got %d", len(resp.Actions))
	}
	if resp.Actions[0].IntentId != "calm" || resp.Actions[0].Escalation != pb.Escalation_ESCALATION_NONE {
		t.Fatalf("unexpected first action: %+v", resp.Actions[0])
	}
	if resp.Actions[1].Escalation != pb.Escalation_ESCALATION_SECOND_LLM {
		t.Fatalf("expected second_llm, got %s", resp.Actions[1].Escalation)
	}
	if resp.Actions[1].RuleHits != 5 {
		t.Fatalf("expected cumulative rule hits 5, got %d", resp.Actions[1].RuleHits)
	}
}

func TestSnapshotRestoreAcrossHandles(t *testing.T) {
	svc := New(nil)
	ctx := context.Background()
	src := construct(t, svc, 4)
	dst := construct(t, svc, 8)

	_, err := svc.Ingest(ctx, &pb.IngestRequest{
		Handle: src,
		Events: []*pb.Event{
			{IntentId: "a", Signals: map[string]float32{"entropy": 1.0, "cosine_sim": 0.5}},
			{IntentId: "b", Signals: map[string]float32{"entropy": 2.0, "cosine_sim": 0.6}},
		},
	})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}

	snap, err := svc.Snapshot(ctx, &pb.SnapshotRequest{Handle: src})
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.SnapshotId != "" {
		t.Fatalf("no archive configured, expected empty snapshot id, got %q", snap.SnapshotId)
	}

	rest, err := svc.Restore(ctx, &pb.RestoreRequest{Handle: dst, Data: snap.Data})
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if rest.Applied != 2 || rest.Overwritten != 0 {
		t.Fatalf("expected 2 applied, 0 overwritten, got %+v", rest)
	}

	// The restored supervisor must produce identical snapshots modulo
	// shard layout: spot-check by re-snapshotting and restoring back.
	snap2, err := svc.Snapshot(ctx, &pb.SnapshotRequest{Handle: dst})
	if err != nil {
		t.Fatalf("second snapshot: %v", err)
	}
	if len(snap2.Data) < len(snap.Data)-8 {
		t.Fatalf("restored snapshot suspiciously small: %d vs %d", len(snap2.Data), len(snap.Data))
	}
}

func TestRestoreErrorMapping(t *testing.T) {
	svc := New(nil)
	ctx := context.Background()
	handle := construct(t, svc, 2)

	snap, err := svc.Snapshot(ctx, &pb.SnapshotRequest{Handle: handle})
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	// Corrupted magic.
	bad := append([]byte(nil), snap.Data...)
	bad[0] ^= 0xFF
	_, err = svc.Restore(ctx, &pb.RestoreRequest{Handle: handle, Data: bad})
	wantCode(t, err, codes.InvalidArgument)

	// Unknown format version.
	future := append([]byte(nil), snap.Data...)
	future[4] = 9
	_, err = svc.Restore(ctx, &pb.RestoreRequest{Handle: handle, Data: future})
	wantCode(t, err, codes.FailedPrecondition)
}

func TestPersistedSnapshotAndEscalationLog(t *testing.T) {
	store, err := archive.NewStore(filepath.Join(t.TempDir(), "arbiter.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	svc := New(store)
	ctx := context.Background()
	handle := construct(t, svc, 2)

	_, err = svc.Ingest(ctx, &pb.IngestRequest{
		Handle: handle,
		Events: []*pb.Event{
			{IntentId: "hot", Signals: map[string]float32{"entropy": 0.1, "cosine_sim": 0.2}, RuleHits: 5},
		},
	})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}

	snap, err := svc.Snapshot(ctx, &pb.SnapshotRequest{Handle: handle, Persist: true})
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.SnapshotId == "" {
		t.Fatal("expected archive id for persisted snapshot")
	}

	stored, err := store.Load(snap.SnapshotId)
	if err != nil {
		t.Fatalf("load archived snapshot: %v", err)
	}
	if len(stored) != len(snap.Data) {
		t.Fatalf("archived payload length mismatch: %d vs %d", len(stored), len(snap.Data))
	}

	entries, err := logging.RecentEscalations(store.DB(), 10)
	if err != nil {
		t.Fatalf("recent escalations: %v", err)
	}
	if len(entries) != 1 || entries[0].IntentID != "hot" || entries[0].Escalation != "second_llm" {
		t.Fatalf("unexpected escalation log: %+v", entries)
	}
}
