package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/danielpatrickdp/output-arbiter/internal/archive"
	"github.com/danielpatrickdp/output-arbiter/internal/logging"
	"github.com/danielpatrickdp/output-arbiter/internal/shard"
	"github.com/danielpatrickdp/output-arbiter/internal/snapshot"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to the snapshot archive (arbiter.db)")
	id := flag.String("id", "", "archive snapshot id to inspect")
	latest := flag.Bool("latest", false, "inspect the most recent archived snapshot")
	file := flag.String("file", "", "inspect a raw snapshot file instead of the archive")
	last := flag.Int("last", 20, "show N most recent escalations (archive mode)")
	jsonOut := flag.Bool("json", false, "output as JSON instead of tables")
	flag.Parse()

	if *file == "" && *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: snapshot-inspect --db arbiter.db [--id uuid | --latest] [--last N] [--json]")
		fmt.Fprintln(os.Stderr, "       snapshot-inspect --file snapshot.bin [--json]")
		os.Exit(2)
	}

	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read file: %v\n", err)
			os.Exit(1)
		}
		if err := dumpSnapshot(data, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runArchiveMode(*dbPath, *id, *latest, *last, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region archive-mode

func runArchiveMode(dbPath, id string, latest bool, last int, jsonOut bool) error {
	store, err := archive.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	var data []byte
	switch {
	case id != "":
		data, err = store.Load(id)
		if err != nil {
			return err
		}
	case latest:
		var entry archive.Entry
		entry, data, err = store.Latest()
		if err != nil {
			return err
		}
		if !jsonOut {
			fmt.Printf("Snapshot:  %s\n", entry.SnapshotID)
			fmt.Printf("Created:   %s\n", entry.CreatedAt.Format("2006-01-02T15:04:05Z"))
			fmt.Printf("Size:      %d bytes\n", entry.ByteLen)
			if entry.Note != "" {
				fmt.Printf("Note:      %s\n", entry.Note)
			}
			fmt.Println()
		}
	default:
		// No snapshot selected: list what the archive holds.
		if err := listEntries(store, last, jsonOut); err != nil {
			return err
		}
		return dumpEscalations(store, last, jsonOut)
	}

	if err := dumpSnapshot(data, jsonOut); err != nil {
		return err
	}
	return dumpEscalations(store, last, jsonOut)
}

func listEntries(store *archive.Store, limit int, jsonOut bool) error {
	entries, err := store.List(limit)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(entries)
	}
	if len(entries) == 0 {
		fmt.Println("archive is empty")
		return nil
	}

	fmt.Printf("%-36s  %10s  %-20s  %s\n", "Snapshot", "Bytes", "Created", "Note")
	for _, e := range entries {
		fmt.Printf("%-36s  %10d  %-20s  %s\n",
			e.SnapshotID, e.ByteLen, e.CreatedAt.Format("2006-01-02T15:04:05Z"), e.Note)
	}
	fmt.Println()
	return nil
}

// #endregion archive-mode

// #region snapshot-dump

type recordRow struct {
	IntentID   string  `json:"intent_id"`
	Shard      int     `json:"shard"`
	Escalation string  `json:"escalation"`
	AvgEntropy float32 `json:"avg_entropy"`
	CosineSim  float32 `json:"cosine_sim"`
	GateShift  float32 `json:"gate_shift"`
	RuleHits   uint32  `json:"rule_hits"`
	RepStreak  uint32  `json:"rep_streak"`
	StallCount uint32  `json:"stall_count"`
	Latch      bool    `json:"latch"`
}

type snapshotDump struct {
	FormatVersion uint16      `json:"format_version"`
	ShardCount    uint32      `json:"shard_count"`
	Records       []recordRow `json:"records"`
}

func dumpSnapshot(data []byte, jsonOut bool) error {
	hdr, records, err := snapshot.Decode(data)
	if err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	rows := make([]recordRow, len(records))
	for i, rec := range records {
		rows[i] = recordRow{
			IntentID:   rec.IntentID,
			Shard:      shard.Route(rec.IntentID, int(hdr.ShardCount)),
			Escalation: rec.State.Escalation.String(),
			AvgEntropy: rec.State.AvgEntropy,
			CosineSim:  rec.State.CosineSim,
			GateShift:  rec.State.GateShift,
			RuleHits:   rec.State.RuleHits,
			RepStreak:  rec.State.RepStreak,
			StallCount: rec.State.StallCount,
			Latch:      rec.State.Latch,
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Shard != rows[j].Shard {
			return rows[i].Shard < rows[j].Shard
		}
		return rows[i].IntentID < rows[j].IntentID
	})

	if jsonOut {
		return printJSON(snapshotDump{
			FormatVersion: hdr.Version,
			ShardCount:    hdr.ShardCount,
			Records:       rows,
		})
	}

	fmt.Printf("Format:  v%d | Shards: %d | Records: %d\n\n", hdr.Version, hdr.ShardCount, len(rows))
	if len(rows) == 0 {
		return nil
	}

	fmt.Printf("%-5s  %-24s  %-13s  %9s  %8s  %8s  %5s  %5s  %5s  %s\n",
		"Shard", "Intent", "Escalation", "AvgEntr", "CosSim", "Gate", "Hits", "Rep", "Stall", "Latch")
	for _, r := range rows {
		fmt.Printf("%-5d  %-24s  %-13s  %9.4f  %8.4f  %8.4f  %5d  %5d  %5d  %v\n",
			r.Shard, shortID(r.IntentID), r.Escalation,
			r.AvgEntropy, r.CosineSim, r.GateShift,
			r.RuleHits, r.RepStreak, r.StallCount, r.Latch)
	}
	return nil
}

// #endregion snapshot-dump

// #region escalation-dump

func dumpEscalations(store *archive.Store, limit int, jsonOut bool) error {
	entries, err := logging.RecentEscalations(store.DB(), limit)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(entries)
	}
	if len(entries) == 0 {
		return nil
	}

	fmt.Printf("\nRecent escalations:\n")
	fmt.Printf("%-24s  %-13s  %9s  %8s  %5s  %-20s  %s\n",
		"Intent", "Escalation", "AvgEntr", "CosSim", "Hits", "Time", "Flags")
	for _, e := range entries {
		fmt.Printf("%-24s  %-13s  %9.4f  %8.4f  %5d  %-20s  %s\n",
			shortID(e.IntentID), e.Escalation, e.AvgEntropy, e.CosineSim,
			e.RuleHits, e.CreatedAt.Format("2006-01-02T15:04:05Z"), e.FlagsJSON)
	}
	return nil
}

// #endregion escalation-dump

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 24 {
		return id[:24]
	}
	return id
}

// #endregion output
