package models

import "fmt"

// Stream is the part of day a habit belongs to.
type Stream string

const (
	StreamAnytime   Stream = "Anytime"
	StreamMorning   Stream = "Morning"
	StreamAfternoon Stream = "Afternoon"
	StreamEvening   Stream = "Evening"
)

// Valid reports whether s is a known stream or empty.
func (s Stream) Valid() bool {
	switch s {
	case "", StreamAnytime, StreamMorning, StreamAfternoon, StreamEvening:
		return true
	default:
		return false
	}
}

// Habit is a recurring practice tracked per day. Only habits with a
// TimeStart generate Task instances; the rest are tracked through
// HabitLog records alone. Days is Monday-indexed (0=Mon .. 6=Sun),
// empty meaning every day.
type Habit struct {
	ID           string `json:"id"`
	Mode         string `json:"mode"`
	Title        string `json:"title"`
	FreqPerWeek  int    `json:"freqPerWeek"`
	Days         []int  `json:"days"`
	Stream       Stream `json:"stream,omitempty"`
	TimeStart    string `json:"timeStart,omitempty"`    // HH:MM
	TimeFinish   string `json:"timeFinish,omitempty"`   // HH:MM
	ReminderTime string `json:"reminderTime,omitempty"` // HH:MM, informational only
	Note         string `json:"note,omitempty"`
	Active       bool   `json:"active"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// AppliesOn reports whether the habit applies on the given Monday-indexed weekday.
func (h Habit) AppliesOn(weekday int) bool {
	if len(h.Days) == 0 {
		return true
	}
	for _, d := range h.Days {
		if d == weekday {
			return true
		}
	}
	return false
}

// HabitLog is the per-day execution record of a habit, at most one per
// (date, mode, habit). Logs are upserted, never deleted.
type HabitLog struct {
	Key          string `json:"key"` // date|mode|habitId
	Date         string `json:"date"`
	Mode         string `json:"mode"`
	HabitID      string `json:"habitId"`
	Done         bool   `json:"done"`
	ActualStart  string `json:"actualStart,omitempty"`  // HH:MM
	ActualFinish string `json:"actualFinish,omitempty"` // HH:MM
	Note         string `json:"note,omitempty"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// HabitLogKey builds the composite primary key for a habit log.
func HabitLogKey(date, mode, habitID string) string {
	return fmt.Sprintf("%s|%s|%s", date, mode, habitID)
}
