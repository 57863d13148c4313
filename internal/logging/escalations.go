// Package logging appends escalation provenance to the archive database so
// operators can reconstruct why an output was gated.
package logging

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/danielpatrickdp/output-arbiter/internal/arbiter"
)

// #region entry
// EscalationEntry is a single row in the escalation_log table.
type EscalationEntry struct {
	Handle     string
	IntentID   string
	Escalation string
	AvgEntropy float32
	CosineSim  float32
	GateShift  float32
	RuleHits   uint32
	FlagsJSON  string
	CreatedAt  time.Time
}

// flagsRecord captures the detector flags as stored in flags column JSON.
type flagsRecord struct {
	Repeated bool `json:"repeated"`
	Stalled  bool `json:"stalled"`
	Tell     bool `json:"tell"`
}

// #endregion entry

// #region log-actions
// LogActions records every escalated action (level != none) from a batch.
// Actions that decided NONE are not persisted; they carry no intervention.
func LogActions(db *sql.DB, handle string, actions []arbiter.Action) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, act := range actions {
		if act.Escalation == arbiter.EscalationNone {
			continue
		}
		flagsJSON, _ := json.Marshal(flagsRecord{
			Repeated: act.Repeated,
			Stalled:  act.Stalled,
			Tell:     act.Tell,
		})
		_, err := db.Exec(
			`INSERT INTO escalation_log (handle, intent_id, escalation, avg_entropy, cosine_sim, gate_shift, rule_hits, flags, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			handle,
			act.IntentID,
			act.Escalation.String(),
			act.AvgEntropy,
			act.CosineSim,
			act.GateShift,
			act.RuleHits,
			string(flagsJSON),
			now,
		)
		if err != nil {
			return fmt.Errorf("log escalation: %w", err)
		}
	}
	return nil
}

// #endregion log-actions

// #region recent
// RecentEscalations returns the newest logged escalations, newest first.
func RecentEscalations(db *sql.DB, limit int) ([]EscalationEntry, error) {
	rows, err := db.Query(
		`SELECT handle, intent_id, escalation, avg_entropy, cosine_sim, gate_shift, rule_hits, flags, created_at
		 FROM escalation_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query escalations: %w", err)
	}
	defer rows.Close()

	var entries []EscalationEntry
	for rows.Next() {
		var e EscalationEntry
		var flags sql.NullString
		var createdStr string
		if err := rows.Scan(&e.Handle, &e.IntentID, &e.Escalation, &e.AvgEntropy, &e.CosineSim, &e.GateShift, &e.RuleHits, &flags, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if flags.Valid {
			e.FlagsJSON = flags.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion recent
