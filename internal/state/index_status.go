package state

import (
	"fmt"
	"strings"
	"time"

	indexsvc "github.com/Paintersrp/focusnest/internal/services/index"
)

// StatsSource reports snapshot statistics.
type StatsSource interface {
	Stats() indexsvc.Stats
}

// IndexStatus renders a one-line summary of the graph snapshot.
func (s *State) IndexStatus() string {
	if s == nil || s.Index == nil {
		return ""
	}
	return formatIndexStatus(s.Index)
}

func formatIndexStatus(svc StatsSource) string {
	if svc == nil {
		return ""
	}

	stats := svc.Stats()
	parts := []string{fmt.Sprintf("Graph: %d notes, %d links", stats.Notes, stats.Edges)}
	if !stats.LastRebuild.IsZero() {
		parts = append(parts, fmt.Sprintf("rebuilt %s", formatRebuildTime(stats.LastRebuild)))
	}
	if stats.Stale {
		parts = append(parts, "stale")
	}

	return strings.Join(parts, " · ")
}

func formatRebuildTime(t time.Time) string {
	return t.Local().Format("15:04")
}
