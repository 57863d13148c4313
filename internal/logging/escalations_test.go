package logging

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielpatrickdp/output-arbiter/internal/arbiter"
	"github.com/danielpatrickdp/output-arbiter/internal/archive"
)

func TestLogActionsSkipsNone(t *testing.T) {
	store, err := archive.NewStore(filepath.Join(t.TempDir(), "arbiter.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	actions := []arbiter.Action{
		{IntentID: "quiet", Escalation: arbiter.EscalationNone},
		{IntentID: "loud", Escalation: arbiter.EscalationSecondLLM, RuleHits: 5, Stalled: true},
		{IntentID: "mid", Escalation: arbiter.EscalationCritiquePass, Repeated: true},
	}
	if err := LogActions(store.DB(), "handle-1", actions); err != nil {
		t.Fatalf("log actions: %v", err)
	}

	entries, err := RecentEscalations(store.DB(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 logged escalations, got %d", len(entries))
	}
	// Newest first: "mid" was inserted last.
	if entries[0].IntentID != "mid" || entries[1].IntentID != "loud" {
		t.Fatalf("unexpected order: %+v", entries)
	}
	if entries[1].Escalation != "second_llm" || entries[1].RuleHits != 5 {
		t.Fatalf("unexpected entry: %+v", entries[1])
	}
	if !strings.Contains(entries[1].FlagsJSON, `"stalled":true`) {
		t.Fatalf("expected stalled flag in %s", entries[1].FlagsJSON)
	}
}
