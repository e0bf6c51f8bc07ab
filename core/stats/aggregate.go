// Package stats tallies extracted headings by level.
package stats

import "github.com/gaurav-prasanna/headscan/core"

// Aggregate counts headings per level. Levels that never occur are absent
// from the result; LevelCounts.Get reports them as 0.
func Aggregate(headings []core.Heading) core.LevelCounts {
	counts := make(core.LevelCounts)
	for _, h := range headings {
		counts[h.Level]++
	}
	return counts
}
