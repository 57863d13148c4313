// Package snapshot implements the versioned binary capture of all per-intent
// arbiter state. Pure bytes: locking and shard placement belong to the
// supervisor.
//
// Wire layout (little-endian, new fields append-only with a version bump):
//
//	[magic:4 "ARB1"][format_version:2][shard_count:4]
//	per shard:  [record_count:4]
//	per record: [id_len:4][id bytes]
//	            [avg_entropy:f32][cosine_sim:f32][gate_shift:f32]
//	            [rule_hits:u32][rep_streak:u32][stall_count:u32]
//	            [escalation:u8][flags:u8]
//
// The flags byte carries bit 0 = hysteresis latch, bit 1 = entropy observed.
package snapshot

import (
	"encoding/binary"
	"errors"
	"math"
	"sort"

	"github.com/danielpatrickdp/output-arbiter/internal/arbiter"
)

// #region format

const (
	// Magic is "ARB1" read as a little-endian u32.
	Magic uint32 = 0x31425241

	// FormatVersion is the current snapshot format. Version 1 carried only
	// the two hysteresis counters; version 2 serializes the full record.
	FormatVersion uint16 = 2

	headerSize = 4 + 2 + 4
	// Fixed bytes per record, including the id length prefix but not the
	// id bytes themselves.
	recordFixedSize = 4 + 3*4 + 3*4 + 2
)

// #endregion format

// #region errors

// Record flag bits.
const (
	flagLatch       = 1 << 0
	flagEntropySeen = 1 << 1
	flagsMask       = flagLatch | flagEntropySeen
)

var (
	// ErrFormat reports a buffer whose magic or field encoding is invalid.
	ErrFormat = errors.New("snapshot: malformed buffer")
	// ErrVersion reports a format version this build cannot read.
	ErrVersion = errors.New("snapshot: unsupported format version")
	// ErrTruncated reports a buffer shorter than its declared contents.
	ErrTruncated = errors.New("snapshot: truncated data")
	// ErrAllocation reports declared counts that exceed what the buffer
	// could possibly hold, guarding decode-time allocation.
	ErrAllocation = errors.New("snapshot: declared size exceeds buffer")
)

// #endregion errors

// #region record

// Record pairs an intent id with its serialized state.
type Record struct {
	IntentID string
	State    arbiter.IntentRecord
}

// #endregion record

// #region encode

// EncodeGroups serializes one record group per shard, in shard index order.
// Records within a group are written sorted by intent id so identical state
// always produces identical bytes.
func EncodeGroups(groups [][]Record) []byte {
	buf := make([]byte, 0, headerSize)
	buf = binary.LittleEndian.AppendUint32(buf, Magic)
	buf = binary.LittleEndian.AppendUint16(buf, FormatVersion)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(groups)))

	for _, group := range groups {
		sorted := make([]Record, len(group))
		copy(sorted, group)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].IntentID < sorted[j].IntentID })

		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(sorted)))
		for _, rec := range sorted {
			buf = appendRecord(buf, rec)
		}
	}
	return buf
}

func appendRecord(buf []byte, rec Record) []byte {
	r := rec.State
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(rec.IntentID)))
	buf = append(buf, rec.IntentID...)
	buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(r.AvgEntropy))
	buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(r.CosineSim))
	buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(r.GateShift))
	buf = binary.LittleEndian.AppendUint32(buf, r.RuleHits)
	buf = binary.LittleEndian.AppendUint32(buf, r.RepStreak)
	buf = binary.LittleEndian.AppendUint32(buf, r.StallCount)
	buf = append(buf, byte(r.Escalation), recordFlags(&r))
	return buf
}

func recordFlags(r *arbiter.IntentRecord) byte {
	var f byte
	if r.Latch {
		f |= flagLatch
	}
	if r.EntropyObserved() {
		f |= flagEntropySeen
	}
	return f
}

// #endregion encode

// #region decode

// Header is the decoded snapshot preamble. The stored shard count is
// informational only: restore re-derives placement via the router, so a
// snapshot stays valid when the shard count changes between runs.
type Header struct {
	Version    uint16
	ShardCount uint32
}

// Decode validates and parses a snapshot buffer. It performs no mutation of
// live state; callers apply the returned records afterwards, so a malformed
// buffer can never leave state partially overwritten.
func Decode(data []byte) (Header, []Record, error) {
	var hdr Header
	if len(data) < headerSize {
		if len(data) >= 4 && binary.LittleEndian.Uint32(data) != Magic {
			return hdr, nil, ErrFormat
		}
		return hdr, nil, ErrTruncated
	}
	if binary.LittleEndian.Uint32(data) != Magic {
		return hdr, nil, ErrFormat
	}
	hdr.Version = binary.LittleEndian.Uint16(data[4:])
	// Version 1 predates this record layout and is not readable here.
	if hdr.Version != FormatVersion {
		return hdr, nil, ErrVersion
	}
	hdr.ShardCount = binary.LittleEndian.Uint32(data[6:])

	body := data[headerSize:]
	off := 0
	var records []Record
	for si := uint32(0); si < hdr.ShardCount; si++ {
		if off+4 > len(body) {
			return hdr, nil, ErrTruncated
		}
		count := binary.LittleEndian.Uint32(body[off:])
		off += 4
		if int64(count)*recordFixedSize > int64(len(body)-off) {
			return hdr, nil, ErrAllocation
		}
		if records == nil {
			records = make([]Record, 0, count)
		}
		for ri := uint32(0); ri < count; ri++ {
			rec, n, err := decodeRecord(body[off:])
			if err != nil {
				return hdr, nil, err
			}
			off += n
			records = append(records, rec)
		}
	}
	return hdr, records, nil
}

func decodeRecord(b []byte) (Record, int, error) {
	if len(b) < 4 {
		return Record{}, 0, ErrTruncated
	}
	idLen := int(binary.LittleEndian.Uint32(b))
	if 4+idLen+recordFixedSize-4 > len(b) {
		return Record{}, 0, ErrTruncated
	}
	off := 4
	id := string(b[off : off+idLen])
	off += idLen

	var st arbiter.IntentRecord
	st.AvgEntropy = math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
	st.CosineSim = math.Float32frombits(binary.LittleEndian.Uint32(b[off+4:]))
	st.GateShift = math.Float32frombits(binary.LittleEndian.Uint32(b[off+8:]))
	st.RuleHits = binary.LittleEndian.Uint32(b[off+12:])
	st.RepStreak = binary.LittleEndian.Uint32(b[off+16:])
	st.StallCount = binary.LittleEndian.Uint32(b[off+20:])

	esc := b[off+24]
	if esc > byte(arbiter.EscalationSecondLLM) {
		return Record{}, 0, ErrFormat
	}
	st.Escalation = arbiter.Escalation(esc)

	flags := b[off+25]
	if flags&^flagsMask != 0 {
		return Record{}, 0, ErrFormat
	}
	st.Latch = flags&flagLatch != 0
	if flags&flagEntropySeen != 0 {
		st.MarkEntropyObserved()
	}

	return Record{IntentID: id, State: st}, off + recordFixedSize - 4, nil
}

// #endregion decode
