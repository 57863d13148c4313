package arbiter

// #region escalation
// Escalation is the decided intervention level for one generated output.
type Escalation uint8

const (
	EscalationNone Escalation = iota
	EscalationCritiquePass
	EscalationSecondLLM
)

// String returns the lowercase wire name of the escalation level.
func (e Escalation) String() string {
	switch e {
	case EscalationNone:
		return "none"
	case EscalationCritiquePass:
		return "critique_pass"
	case EscalationSecondLLM:
		return "second_llm"
	default:
		return "unknown"
	}
}

// #endregion escalation

// #region threshold-config
// ThresholdConfig holds the tunables the decision engine compares against.
// Immutable after construction; the supervisor copies it by value.
type ThresholdConfig struct {
	TauE     float32 // entropy threshold (below = suspicious)
	TauS     float32 // cosine similarity threshold (below = off-reference)
	TauRep   uint32  // cumulative rule-hit threshold
	TauStall uint32  // stall-count threshold
	TauGate  float32 // gate-shift threshold

	HysteresisEnabled bool

	// ForcedRuleHits overrides each event's rule_hits when non-nil.
	// Used by harnesses to replay decisions with pinned guardrail input.
	ForcedRuleHits *uint32
}

// DefaultConfig returns the canonical thresholds. These values are part of
// the boundary contract and must not drift.
func DefaultConfig() ThresholdConfig {
	return ThresholdConfig{
		TauE:              2.2,
		TauS:              0.76,
		TauRep:            1,
		TauStall:          1,
		TauGate:           2.0,
		HysteresisEnabled: true,
		ForcedRuleHits:    nil,
	}
}

// #endregion threshold-config

// #region event
// Event is one telemetry observation from an upstream producer. Transient:
// the engine folds it into the intent's record and does not retain it.
type Event struct {
	IntentID string
	SourceID string
	Origin   string

	// Text is the raw generated output, when the producer forwards it.
	// Optional; drives the duplicate-generation and AI-tell detectors.
	Text string

	// Signals carries named scalar telemetry. Keys are not fixed; the
	// engine reads "entropy", "cosine_sim" and "gate_shift" and ignores
	// the rest. A missing key leaves the record's prior value untouched.
	Signals map[string]float32

	// RuleHits is the guardrail trip count for this single event.
	RuleHits uint32
}

// Signal keys the engine tracks.
const (
	SignalEntropy   = "entropy"
	SignalCosineSim = "cosine_sim"
	SignalGateShift = "gate_shift"
)

// #endregion event

// #region intent-record
// IntentRecord is the persistent per-intent state. Created lazily on the
// first event for an intent id, mutated on every subsequent event, owned
// exclusively by one shard for its whole lifetime.
type IntentRecord struct {
	AvgEntropy float32 // exponential moving average, alpha = 0.5
	CosineSim  float32 // last observed value
	GateShift  float32 // last observed value

	RuleHits   uint32 // cumulative across events
	RepStreak  uint32 // consecutive events carrying a duplicate marker
	StallCount uint32 // consecutive gate_shift observations inside the stall band

	Escalation Escalation // last emitted level
	Latch      bool       // hysteresis latch

	// entropySeen distinguishes "never observed" from a genuine zero so
	// the first observation initializes the average directly instead of
	// being blended against the zero value.
	entropySeen bool
}

// EntropyObserved reports whether at least one entropy observation has been
// folded into the average. The bit travels with the record through the
// snapshot codec: a restored record that never saw entropy must keep
// initializing directly, exactly like the live record it was captured from.
func (r *IntentRecord) EntropyObserved() bool {
	return r.entropySeen
}

// MarkEntropyObserved restores the observation bit on snapshot decode.
func (r *IntentRecord) MarkEntropyObserved() {
	r.entropySeen = true
}

// #endregion intent-record

// #region action
// Action is the engine's verdict for one ingested event, in event order.
type Action struct {
	IntentID   string
	Escalation Escalation

	// Post-update record values, for logging and monitoring.
	AvgEntropy float32
	CosineSim  float32
	GateShift  float32
	RuleHits   uint32

	// Independent detector flags; not mutually exclusive.
	Repeated bool // repeated-output streak
	Stalled  bool // gate-shift stall
	Tell     bool // rule-based "AI-tell"
}

// #endregion action
