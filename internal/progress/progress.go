// Package progress derives everything the UI shows about a habit's recent
// performance: the 7-day check-in window, streak, and weekly completion
// percentage. All functions are pure; the reference time is always an
// explicit asOf argument, never the wall clock.
package progress

import (
	"math"
	"time"

	"dayflow/internal/models"
	"dayflow/internal/utils"
)

// WindowSize is the number of days shown for every habit.
const WindowSize = 7

// Day is a single cell of a habit's display window. Disabled means a
// check-in on this date is not currently permitted.
type Day struct {
	Key          string
	WeekdayLabel string
	Disabled     bool
}

// Summary is a habit's weekly completion against its goal. Percentage is
// rounded and may exceed 100 when CheckedCount exceeds Goal; renderers clamp
// the bar, not the number.
type Summary struct {
	CheckedCount int
	Goal         int
	Percentage   int
}

// DisplayWindow returns the rolling window of the 7 days ending at asOf,
// strictly ascending. A day is Disabled when it falls after asOf or before
// the habit's start date, mirroring IsCheckInAllowed.
func DisplayWindow(habit models.Habit, asOf time.Time) []Day {
	end := utils.StartOfLocalDay(asOf)
	window := make([]Day, 0, WindowSize)
	for i := WindowSize - 1; i >= 0; i-- {
		d := end.AddDate(0, 0, -i)
		key := utils.ToDayKey(d)
		window = append(window, Day{
			Key:          key,
			WeekdayLabel: d.Weekday().String()[:3],
			Disabled:     !IsCheckInAllowed(key, habit, asOf),
		})
	}
	return window
}

// IsCheckInAllowed is the single gating rule for toggles: a day is checkable
// iff it is not after asOf and not before the habit's start date. An
// unparseable start date imposes no lower bound; the validation layer keeps
// those out of new records.
func IsCheckInAllowed(dayKey string, habit models.Habit, asOf time.Time) bool {
	day, err := utils.FromDayKey(dayKey)
	if err != nil {
		return false
	}
	if day.After(utils.StartOfLocalDay(asOf)) {
		return false
	}
	if start, err := utils.FromDayKey(habit.StartDate); err == nil && day.Before(start) {
		return false
	}
	return true
}

// Streak counts consecutive checked days walking backward from the window's
// most recent allowed day. The first unchecked or unrecorded day ends the
// count, so the result is 0-7: this is a windowed streak, not an all-time
// one.
func Streak(window []Day, checkIns []models.CheckIn) int {
	byDate := indexByDate(checkIns)
	streak := 0
	for i := len(window) - 1; i >= 0; i-- {
		if window[i].Disabled {
			if streak == 0 {
				continue // skip disabled days at the tail before any count
			}
			break
		}
		c, ok := byDate[window[i].Key]
		if !ok || !c.IsChecked {
			break
		}
		streak++
	}
	return streak
}

// WeeklyProgress counts checked days inside the window and computes the
// completion percentage against the habit's goal.
func WeeklyProgress(window []Day, checkIns []models.CheckIn, goal int) Summary {
	goal = normalizeGoal(goal)
	byDate := indexByDate(checkIns)
	checked := 0
	for _, d := range window {
		if c, ok := byDate[d.Key]; ok && c.IsChecked {
			checked++
		}
	}
	return Summary{
		CheckedCount: checked,
		Goal:         goal,
		Percentage:   int(math.Round(float64(checked) / float64(goal) * 100)),
	}
}

// normalizeGoal clamps a habit's frequency to at least 1 so a malformed
// record still renders instead of dividing by zero.
func normalizeGoal(goal int) int {
	if goal < 1 {
		return 1
	}
	return goal
}

func indexByDate(checkIns []models.CheckIn) map[string]models.CheckIn {
	byDate := make(map[string]models.CheckIn, len(checkIns))
	for _, c := range checkIns {
		byDate[c.Date] = c
	}
	return byDate
}
