// Package streak derives streak statistics from completion history.
package streak

import (
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/NinaWiik/Tracker-app/pkg/entity"
)

// Window is the largest gap between two consecutive completions that still
// continues a run.
const Window = 36 * time.Hour

// Compute returns the streak statistics of completions, which are expected to
// belong to one habit. Current is the length of the most recent run, Best the
// longest run and Total the number of completions, duplicates included.
// The input is not modified.
func Compute(completions []entity.HabitCompletion) entity.HabitStats {
	if len(completions) == 0 {
		return entity.HabitStats{}
	}
	times := make([]time.Time, len(completions))
	for i, c := range completions {
		times[i] = c.CompletedAt
	}
	slices.SortFunc(times, func(a, b time.Time) int { return a.Compare(b) })

	run, best := 1, 1
	for i := 1; i < len(times); i++ {
		if times[i].Sub(times[i-1]) <= Window {
			run++
		} else {
			run = 1
		}
		best = max(best, run)
	}
	return entity.HabitStats{Current: run, Best: best, Total: len(times)}
}

// ComputeFor is Compute over the completions of habitID only.
func ComputeFor(habitID string, completions []entity.HabitCompletion) entity.HabitStats {
	own := make([]entity.HabitCompletion, 0, len(completions))
	for _, c := range completions {
		if c.HabitID == habitID {
			own = append(own, c)
		}
	}
	return Compute(own)
}

// Rank computes stats for every habit and orders them best streak first,
// then current streak, then title.
func Rank(habits []entity.Habit, completions []entity.HabitCompletion) []entity.HabitStreak {
	byHabit := make(map[string][]entity.HabitCompletion, len(habits))
	for _, c := range completions {
		byHabit[c.HabitID] = append(byHabit[c.HabitID], c)
	}
	ranked := make([]entity.HabitStreak, 0, len(habits))
	for _, h := range habits {
		ranked = append(ranked, entity.HabitStreak{Habit: h, HabitStats: Compute(byHabit[h.ID])})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Best != b.Best {
			return a.Best > b.Best
		}
		if a.Current != b.Current {
			return a.Current > b.Current
		}
		return strings.Compare(a.Habit.Title, b.Habit.Title) < 0
	})
	return ranked
}
