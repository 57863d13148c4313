package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/danielpatrickdp/output-arbiter/internal/arbiter"
)

func sampleGroups() [][]Record {
	return [][]Record{
		{
			{IntentID: "t1", State: arbiter.IntentRecord{
				AvgEntropy: 1.5, CosineSim: 0.8, GateShift: 0.1,
				RuleHits: 7, RepStreak: 2, StallCount: 1,
				Escalation: arbiter.EscalationCritiquePass, Latch: true,
			}},
			{IntentID: "t9", State: arbiter.IntentRecord{AvgEntropy: 0.2}},
		},
		{},
		{
			{IntentID: "t2", State: arbiter.IntentRecord{
				CosineSim: 0.4, RuleHits: 3, Escalation: arbiter.EscalationSecondLLM,
			}},
		},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	data := EncodeGroups(sampleGroups())

	hdr, records, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if hdr.Version != FormatVersion {
		t.Fatalf("expected version %d, got %d", FormatVersion, hdr.Version)
	}
	if hdr.ShardCount != 3 {
		t.Fatalf("expected shard count 3, got %d", hdr.ShardCount)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	byID := map[string]Record{}
	for _, r := range records {
		byID[r.IntentID] = r
	}
	r1 := byID["t1"].State
	if r1.AvgEntropy != 1.5 || r1.CosineSim != 0.8 || r1.GateShift != 0.1 {
		t.Fatalf("t1 scalars did not round-trip: %+v", r1)
	}
	if r1.RuleHits != 7 || r1.RepStreak != 2 || r1.StallCount != 1 {
		t.Fatalf("t1 counters did not round-trip: %+v", r1)
	}
	if r1.Escalation != arbiter.EscalationCritiquePass || !r1.Latch {
		t.Fatalf("t1 escalation/latch did not round-trip: %+v", r1)
	}
	if byID["t2"].State.Escalation != arbiter.EscalationSecondLLM {
		t.Fatal("t2 escalation did not round-trip")
	}
}

func TestEncodeDeterministic(t *testing.T) {
	groups := sampleGroups()
	a := EncodeGroups(groups)
	// Same records, reversed within the group: output must not change.
	g := groups[0]
	g[0], g[1] = g[1], g[0]
	b := EncodeGroups(groups)
	if !bytes.Equal(a, b) {
		t.Fatal("encoding must be independent of record order within a shard")
	}
}

func TestRecordFlagsRoundTrip(t *testing.T) {
	seen := arbiter.IntentRecord{AvgEntropy: 3.0, Latch: true}
	seen.MarkEntropyObserved()
	unseen := arbiter.IntentRecord{CosineSim: 0.9}

	data := EncodeGroups([][]Record{{
		{IntentID: "seen", State: seen},
		{IntentID: "unseen", State: unseen},
	}})
	_, records, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	byID := map[string]Record{}
	for _, r := range records {
		byID[r.IntentID] = r
	}
	s := byID["seen"].State
	if !s.EntropyObserved() || !s.Latch {
		t.Fatalf("observed record lost its flags: %+v", s)
	}
	u := byID["unseen"].State
	if u.EntropyObserved() || u.Latch {
		t.Fatalf("unobserved record gained flags: %+v", u)
	}
}

func TestDecodeRejectsOutOfRangeEscalation(t *testing.T) {
	data := EncodeGroups([][]Record{{{IntentID: "x"}}})
	// The last two bytes of a trailing record are escalation and flags.
	data[len(data)-2] = 7
	if _, _, err := Decode(data); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat for escalation 7, got %v", err)
	}
}

func TestDecodeRejectsUnknownFlagBits(t *testing.T) {
	data := EncodeGroups([][]Record{{{IntentID: "x"}}})
	data[len(data)-1] = 0x80
	if _, _, err := Decode(data); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat for unknown flag bits, got %v", err)
	}
}

func TestDecodeBadMagic(t *testing.T) {
	data := EncodeGroups(sampleGroups())
	data[0] ^= 0xff
	if _, _, err := Decode(data); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}

func TestDecodeFutureVersion(t *testing.T) {
	data := EncodeGroups(sampleGroups())
	binary.LittleEndian.PutUint16(data[4:], FormatVersion+1)
	if _, _, err := Decode(data); !errors.Is(err, ErrVersion) {
		t.Fatalf("expected ErrVersion, got %v", err)
	}
}

func TestDecodeLegacyVersionRejected(t *testing.T) {
	data := EncodeGroups(sampleGroups())
	binary.LittleEndian.PutUint16(data[4:], 1)
	if _, _, err := Decode(data); !errors.Is(err, ErrVersion) {
		t.Fatalf("expected ErrVersion for v1 layout, got %v", err)
	}
}

func TestDecodeTruncated(t *testing.T) {
	data := EncodeGroups(sampleGroups())
	for _, cut := range []int{len(data) - 1, len(data) - 10, 12, 8} {
		if _, _, err := Decode(data[:cut]); err == nil {
			t.Fatalf("expected error for buffer cut to %d bytes", cut)
		}
	}
	if _, _, err := Decode(data[:len(data)-1]); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestDecodeOversizedCount(t *testing.T) {
	data := EncodeGroups([][]Record{{}})
	// Claim 1M records in an otherwise empty shard.
	binary.LittleEndian.PutUint32(data[10:], 1<<20)
	if _, _, err := Decode(data); !errors.Is(err, ErrAllocation) {
		t.Fatalf("expected ErrAllocation, got %v", err)
	}
}

func TestDecodeEmptySnapshot(t *testing.T) {
	hdr, records, err := Decode(EncodeGroups(nil))
	if err != nil {
		t.Fatalf("decode empty: %v", err)
	}
	if hdr.ShardCount != 0 || len(records) != 0 {
		t.Fatalf("expected empty snapshot, got %d shards %d records", hdr.ShardCount, len(records))
	}
}
