package models

// Section is the time-of-day grouping a habit is displayed under.
type Section string

const (
	SectionMorning   Section = "Morning"
	SectionAfternoon Section = "Afternoon"
	SectionEvening   Section = "Evening"
	SectionOthers    Section = "Others"
)

// Sections lists every section in display order.
var Sections = []Section{SectionMorning, SectionAfternoon, SectionEvening, SectionOthers}

// Valid reports whether s is one of the known sections.
func (s Section) Valid() bool {
	switch s {
	case SectionMorning, SectionAfternoon, SectionEvening, SectionOthers:
		return true
	}
	return false
}

// Habit represents a recurring practice with a weekly check-in goal.
// Frequency is the target number of checked days per 7-day window (1-7).
// StartDate (YYYY-MM-DD) marks the first day the habit is eligible for
// check-in and is immutable after creation.
type Habit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Frequency int       `json:"frequency"`
	Section   Section   `json:"section"`
	StartDate string    `json:"startDate"`
	CheckIns  []CheckIn `json:"checkIns,omitempty"`
}

// CheckIn records the state of a habit on a single day. IsChecked false is
// an explicit "not done" record, distinct from no record at all. ID is
// assigned by the server; it is empty on entries not yet persisted.
type CheckIn struct {
	ID        string `json:"id,omitempty"`
	HabitID   string `json:"habitId,omitempty"`
	Date      string `json:"date"`
	IsChecked bool   `json:"isChecked"`
}

// CheckInFor returns the habit's check-in for the given day key, if any.
// A habit holds at most one check-in per date.
func (h Habit) CheckInFor(dayKey string) (CheckIn, bool) {
	for _, c := range h.CheckIns {
		if c.Date == dayKey {
			return c, true
		}
	}
	return CheckIn{}, false
}
