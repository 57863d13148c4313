package arbiter

import (
	"github.com/danielpatrickdp/output-arbiter/internal/telltale"
)

// #region constants

const (
	// entropyAlpha is the EMA smoothing constant:
	// avg' = avg*alpha + new*(1-alpha).
	entropyAlpha float32 = 0.5

	// stallBand is the near-zero band for gate_shift. Observations with
	// |gate_shift| <= stallBand advance the stall counter; anything
	// outside resets it. Events without a gate_shift signal leave the
	// counter untouched.
	stallBand float32 = 0.05

	// repStreakFlag is the streak length at which the repeated-output
	// detector fires.
	repStreakFlag uint32 = 3

	// tellRuleHits is the per-event rule-hit count treated as an
	// upstream "AI-tell". Opaque to us; chosen by the rule engine.
	tellRuleHits uint32 = 3
)

// #endregion constants

// #region decide

// Decide folds one event into the intent's record and returns the action.
// It never fails: sparse or empty signal maps leave the corresponding
// fields unchanged rather than raising an error.
//
// The caller must hold the record's shard guard.
func Decide(r *IntentRecord, e Event, cfg ThresholdConfig) Action {
	// 1. Signal updates. Absent keys keep the prior value.
	if v, ok := e.Signals[SignalEntropy]; ok {
		if r.entropySeen {
			r.AvgEntropy = r.AvgEntropy*entropyAlpha + v*(1-entropyAlpha)
		} else {
			r.AvgEntropy = v
			r.entropySeen = true
		}
	}
	if v, ok := e.Signals[SignalCosineSim]; ok {
		r.CosineSim = v
	}
	gateObserved := false
	if v, ok := e.Signals[SignalGateShift]; ok {
		r.GateShift = v
		gateObserved = true
	}

	// 2. Rule hits, with optional harness override.
	effectiveHits := e.RuleHits
	if cfg.ForcedRuleHits != nil {
		effectiveHits = *cfg.ForcedRuleHits
	}
	r.RuleHits += effectiveHits

	// 3. Streak and stall counters.
	flags := telltale.Scan(e.Text)
	if e.Text != "" && flags.Repeated {
		r.RepStreak++
	} else {
		r.RepStreak = 0
	}
	if gateObserved {
		if r.GateShift >= -stallBand && r.GateShift <= stallBand {
			r.StallCount++
		} else {
			r.StallCount = 0
		}
	}

	// 4. Detector flags.
	repeated := r.RepStreak >= repStreakFlag
	stalled := r.StallCount >= cfg.TauStall
	tell := effectiveHits >= tellRuleHits || flags.AITell

	// 5. Escalation ladder, first match wins.
	lowEntropy := r.AvgEntropy < cfg.TauE
	lowSim := r.CosineSim < cfg.TauS

	var decision Escalation
	switch {
	case (lowEntropy && lowSim && r.RuleHits >= cfg.TauRep) || r.StallCount >= cfg.TauStall:
		decision = EscalationSecondLLM
	case (lowEntropy != lowSim) || r.GateShift >= cfg.TauGate || repeated:
		decision = EscalationCritiquePass
	default:
		decision = EscalationNone
	}

	// 6. Hysteresis: one sticky intermediate decision after an escalation,
	// then the latch clears.
	if decision == EscalationNone {
		if cfg.HysteresisEnabled && r.Latch {
			decision = EscalationCritiquePass
			r.Latch = false
		}
	} else {
		r.Latch = true
	}
	r.Escalation = decision

	return Action{
		IntentID:   e.IntentID,
		Escalation: decision,
		AvgEntropy: r.AvgEntropy,
		CosineSim:  r.CosineSim,
		GateShift:  r.GateShift,
		RuleHits:   r.RuleHits,
		Repeated:   repeated,
		Stalled:    stalled,
		Tell:       tell,
	}
}

// #endregion decide
