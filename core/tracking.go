package core

import (
	"fmt"
	"time"

	"github.com/entolab/bugtally/internal/contract"
	"github.com/entolab/bugtally/schema"
)

// beginRun opens a run record when an archive store is configured.
// Returns 0 when archiving is off or the store rejects the run; archive
// problems never block the command itself.
func beginRun(mgr contract.ArchiveManager, command, source string, cfg *contract.Config) int64 {
	store := mgr.GetRunStore()
	if store == nil {
		return 0
	}
	configParams := map[string]any{
		"delimiter": string(cfg.Delimiter),
		"ext":       cfg.RecordExt,
		"output":    string(cfg.Output),
		"precision": cfg.Precision,
	}
	runID, err := store.BeginRun(command, source, time.Now(), configParams)
	if err != nil {
		contract.LogWarn("Run tracking initialization failed", err)
		return 0
	}
	return runID
}

// finishRun records per-key stats and closes the run record.
func finishRun(mgr contract.ArchiveManager, runID int64, resultRows int, stats map[string]int) {
	store := mgr.GetRunStore()
	if store == nil || runID == 0 {
		return
	}
	for _, stat := range schema.SortStats(stats) {
		if err := store.RecordStat(runID, stat.Key, int64(stat.Value)); err != nil {
			logTrackingError(stat.Key, err)
		}
	}
	if err := store.EndRun(runID, time.Now(), resultRows); err != nil {
		contract.LogWarn("Failed to finalize run tracking", err)
	}
}

// logTrackingError logs archive write errors to stderr without
// disrupting the command.
func logTrackingError(key string, err error) {
	contract.LogWarn(fmt.Sprintf("Run tracking failed for stat %q", key), err)
}

// TrackRun archives one completed run for entry points that render results
// themselves, such as MCP tool handlers. The run is recorded after the fact,
// so its duration covers only the archive write.
func TrackRun(mgr contract.ArchiveManager, command, source string, cfg *contract.Config, stats []schema.StatResult) {
	runID := beginRun(mgr, command, source, cfg)
	if runID == 0 {
		return
	}
	statMap := make(map[string]int, len(stats))
	for _, s := range stats {
		statMap[s.Key] = s.Value
	}
	finishRun(mgr, runID, len(stats), statMap)
}
