package arbiter

import (
	"strings"
	"testing"
)

// tightConfig mirrors the serving preset used in integration checks:
// low thresholds so individual arms are easy to trip in isolation.
func tightConfig() ThresholdConfig {
	cfg := DefaultConfig()
	cfg.TauE = 0.3
	cfg.TauS = 0.3
	cfg.TauRep = 3
	return cfg
}

func TestDecideSecondLLMOnBothSignalsAndRuleHits(t *testing.T) {
	var r IntentRecord
	act := Decide(&r, Event{
		IntentID: "t1",
		Signals:  map[string]float32{"entropy": 0.1, "cosine_sim": 0.2},
		RuleHits: 5,
	}, tightConfig())

	if act.Escalation != EscalationSecondLLM {
		t.Fatalf("expected second_llm, got %s", act.Escalation)
	}
	if act.RuleHits != 5 {
		t.Fatalf("expected cumulative rule hits 5, got %d", act.RuleHits)
	}
}

func TestDecideCritiquePassOnSingleLowSignal(t *testing.T) {
	var r IntentRecord
	act := Decide(&r, Event{
		IntentID: "t2",
		Signals:  map[string]float32{"entropy": 0.1, "cosine_sim": 0.9},
	}, tightConfig())

	if act.Escalation != EscalationCritiquePass {
		t.Fatalf("expected critique_pass, got %s", act.Escalation)
	}
}

func TestDecideFirstEventEmptySignalsIsNone(t *testing.T) {
	var r IntentRecord
	act := Decide(&r, Event{IntentID: "fresh"}, DefaultConfig())
	if act.Escalation != EscalationNone {
		t.Fatalf("missing data must never escalate, got %s", act.Escalation)
	}
	if act.Repeated || act.Stalled || act.Tell {
		t.Fatalf("expected no detector flags, got %+v", act)
	}
}

func TestDecideEntropyMovingAverage(t *testing.T) {
	var r IntentRecord
	cfg := DefaultConfig()

	Decide(&r, Event{Signals: map[string]float32{"entropy": 1.0}}, cfg)
	if r.AvgEntropy != 1.0 {
		t.Fatalf("first observation must initialize directly, got %f", r.AvgEntropy)
	}
	Decide(&r, Event{Signals: map[string]float32{"entropy": 2.0}}, cfg)
	if r.AvgEntropy != 1.5 {
		t.Fatalf("expected avg 1.5 after second observation, got %f", r.AvgEntropy)
	}
}

func TestDecidePartialTelemetryKeepsPriorValues(t *testing.T) {
	var r IntentRecord
	cfg := DefaultConfig()

	Decide(&r, Event{Signals: map[string]float32{"cosine_sim": 0.9, "gate_shift": 1.2}}, cfg)
	Decide(&r, Event{Signals: map[string]float32{"entropy": 3.0}}, cfg)

	if r.CosineSim != 0.9 || r.GateShift != 1.2 {
		t.Fatalf("absent signals must keep prior values, got sim=%f gate=%f", r.CosineSim, r.GateShift)
	}
}

func TestDecideForcedRuleHitsOverride(t *testing.T) {
	var r IntentRecord
	forced := uint32(2)
	cfg := DefaultConfig()
	cfg.ForcedRuleHits = &forced

	Decide(&r, Event{RuleHits: 100}, cfg)
	Decide(&r, Event{RuleHits: 0}, cfg)
	if r.RuleHits != 4 {
		t.Fatalf("expected forced 2+2 hits, got %d", r.RuleHits)
	}
}

func TestDecideGateShiftTriggersCritique(t *testing.T) {
	var r IntentRecord
	act := Decide(&r, Event{
		Signals: map[string]float32{"entropy": 5.0, "cosine_sim": 0.9, "gate_shift": 2.5},
	}, DefaultConfig())
	if act.Escalation != EscalationCritiquePass {
		t.Fatalf("expected critique_pass on gate shift, got %s", act.Escalation)
	}
}

func TestDecideStallCounter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TauStall = 2
	var r IntentRecord

	clean := map[string]float32{"entropy": 5.0, "cosine_sim": 0.9, "gate_shift": 0.01}
	act := Decide(&r, Event{Signals: clean}, cfg)
	if act.Escalation != EscalationNone || r.StallCount != 1 {
		t.Fatalf("expected none with stall=1, got %s stall=%d", act.Escalation, r.StallCount)
	}

	act = Decide(&r, Event{Signals: clean}, cfg)
	if act.Escalation != EscalationSecondLLM {
		t.Fatalf("expected second_llm at stall threshold, got %s", act.Escalation)
	}
	if !act.Stalled {
		t.Fatal("expected stalled detector flag")
	}

	// Movement outside the band resets the counter.
	moving := map[string]float32{"entropy": 5.0, "cosine_sim": 0.9, "gate_shift": 1.0}
	Decide(&r, Event{Signals: moving}, cfg)
	if r.StallCount != 0 {
		t.Fatalf("expected stall reset, got %d", r.StallCount)
	}
}

func TestDecideStallIgnoresEventsWithoutGateSignal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TauStall = 2
	var r IntentRecord

	Decide(&r, Event{Signals: map[string]float32{"entropy": 5.0, "cosine_sim": 0.9, "gate_shift": 0.0}}, cfg)
	Decide(&r, Event{Signals: map[string]float32{"entropy": 5.0}}, cfg)
	if r.StallCount != 1 {
		t.Fatalf("events without gate_shift must not move the stall counter, got %d", r.StallCount)
	}
}

func TestDecideRepetitionStreak(t *testing.T) {
	cfg := DefaultConfig()
	var r IntentRecord

	looped := strings.Repeat("abc", 30)
	clean := map[string]float32{"entropy": 5.0, "cosine_sim": 0.9}

	for i := 0; i < 2; i++ {
		act := Decide(&r, Event{Text: looped, Signals: clean}, cfg)
		if act.Escalation != EscalationNone {
			t.Fatalf("streak %d should not yet escalate, got %s", i+1, act.Escalation)
		}
	}
	act := Decide(&r, Event{Text: looped, Signals: clean}, cfg)
	if act.Escalation != EscalationCritiquePass || !act.Repeated {
		t.Fatalf("expected critique_pass with repeated flag at streak 3, got %+v", act)
	}

	// Non-repetitive text resets the streak.
	Decide(&r, Event{Text: "a perfectly varied reply with no loops at all", Signals: clean}, cfg)
	if r.RepStreak != 0 {
		t.Fatalf("expected streak reset, got %d", r.RepStreak)
	}
}

func TestDecideTellFlag(t *testing.T) {
	cfg := DefaultConfig()

	var r IntentRecord
	act := Decide(&r, Event{RuleHits: 3, Signals: map[string]float32{"entropy": 5.0, "cosine_sim": 0.9}}, cfg)
	if !act.Tell {
		t.Fatal("expected tell flag at per-event rule-hit threshold")
	}

	var r2 IntentRecord
	act = Decide(&r2, Event{
		Text:    "As an AI, I would note the following considerations here.",
		Signals: map[string]float32{"entropy": 5.0, "cosine_sim": 0.9},
	}, cfg)
	if !act.Tell {
		t.Fatal("expected tell flag from boilerplate text")
	}
}

func TestHysteresisStickyDowngrade(t *testing.T) {
	cfg := tightConfig()
	cfg.TauRep = 1
	var r IntentRecord

	act := Decide(&r, Event{Signals: map[string]float32{"entropy": 0.1, "cosine_sim": 0.1}, RuleHits: 1}, cfg)
	if act.Escalation != EscalationSecondLLM {
		t.Fatalf("setup: expected second_llm, got %s", act.Escalation)
	}

	calm := map[string]float32{"entropy": 0.9, "cosine_sim": 0.9}
	act = Decide(&r, Event{Signals: calm}, cfg)
	if act.Escalation != EscalationCritiquePass {
		t.Fatalf("expected sticky critique_pass, got %s", act.Escalation)
	}
	act = Decide(&r, Event{Signals: calm}, cfg)
	if act.Escalation != EscalationNone {
		t.Fatalf("expected none after latch cleared, got %s", act.Escalation)
	}
}

func TestHysteresisDisabledEmitsRawDecision(t *testing.T) {
	cfg := tightConfig()
	cfg.TauRep = 1
	cfg.HysteresisEnabled = false
	var r IntentRecord

	Decide(&r, Event{Signals: map[string]float32{"entropy": 0.1, "cosine_sim": 0.1}, RuleHits: 1}, cfg)
	act := Decide(&r, Event{Signals: map[string]float32{"entropy": 0.9, "cosine_sim": 0.9}}, cfg)
	if act.Escalation != EscalationNone {
		t.Fatalf("disabled hysteresis must emit the raw decision, got %s", act.Escalation)
	}
}

func TestDefaultConfigCanonicalValues(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TauE != 2.2 || cfg.TauS != 0.76 || cfg.TauRep != 1 ||
		cfg.TauStall != 1 || cfg.TauGate != 2.0 {
		t.Fatalf("canonical defaults drifted: %+v", cfg)
	}
	if !cfg.HysteresisEnabled || cfg.ForcedRuleHits != nil {
		t.Fatalf("canonical defaults drifted: %+v", cfg)
	}
}
