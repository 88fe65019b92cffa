package journal

import (
	"sort"
	"strings"
	"time"
)

// Stats aggregates a user's journaling history.
type Stats struct {
	TotalEntries  int
	TotalWords    int
	CurrentStreak int
	LongestStreak int
	TopMood       string
	MoodCounts    map[string]int
	Monthly       map[string]int
}

// ComputeStats derives all aggregates from the entries map. now anchors the
// current-streak walk at today's local date.
func ComputeStats(entries Entries, now time.Time) Stats {
	st := Stats{
		TotalEntries: len(entries),
		MoodCounts:   map[string]int{},
		Monthly:      map[string]int{},
	}
	for k, e := range entries {
		st.TotalWords += len(strings.Fields(e.Text))
		if e.Mood != "" {
			st.MoodCounts[e.Mood]++
		}
		if len(k) >= 7 {
			st.Monthly[k[:7]]++
		}
	}
	st.TopMood = topMood(st.MoodCounts)
	st.CurrentStreak = currentStreak(entries, now)
	st.LongestStreak = longestStreak(entries)
	return st
}

// topMood picks the most frequent mood, breaking ties lexicographically so
// the result is deterministic.
func topMood(counts map[string]int) string {
	var best string
	var bestN int
	for mood, n := range counts {
		if n > bestN || (n == bestN && bestN > 0 && mood < best) {
			best, bestN = mood, n
		}
	}
	return best
}

// currentStreak counts consecutive journaled days ending today. A missing
// entry for today does not break the streak; a gap before today does. The
// walk is capped at a year back.
func currentStreak(entries Entries, now time.Time) int {
	streak := 0
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for i := 0; i < 366; i++ {
		if _, ok := entries[DateKey(day)]; ok {
			streak++
		} else if i > 0 {
			break
		}
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// longestStreak finds the longest run of consecutive journaled days anywhere
// in the history.
func longestStreak(entries Entries) int {
	if len(entries) == 0 {
		return 0
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	longest, run := 0, 0
	var prev time.Time
	for i, k := range keys {
		curr, err := ParseDateKey(k)
		if err != nil {
			continue
		}
		if i > 0 && prev.AddDate(0, 0, 1).Equal(curr) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = curr
	}
	return longest
}
