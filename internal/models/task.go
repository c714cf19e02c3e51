package models

// Priority is a P1 (highest) to P4 (lowest) task priority.
type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
	PriorityP4 Priority = "P4"
)

// Rank returns the numeric sort rank of the priority (P1=1 .. P4=4).
// An unset or unknown priority ranks with P2.
func (p Priority) Rank() int {
	switch p {
	case PriorityP1:
		return 1
	case PriorityP2:
		return 2
	case PriorityP3:
		return 3
	case PriorityP4:
		return 4
	default:
		return 2
	}
}

// Valid reports whether p is one of the four known priorities or empty.
func (p Priority) Valid() bool {
	switch p {
	case "", PriorityP1, PriorityP2, PriorityP3, PriorityP4:
		return true
	default:
		return false
	}
}

// Task is a concrete per-day task instance, either created by hand or
// materialized from a RecurringRule or a timed Habit. At most one of
// SourceRuleID / SourceHabitID is non-empty.
type Task struct {
	ID            string   `json:"id"`
	Date          string   `json:"date"` // YYYY-MM-DD
	Mode          string   `json:"mode"`
	Title         string   `json:"title"`
	PlannedStart  string   `json:"plannedStart,omitempty"`  // HH:MM
	PlannedFinish string   `json:"plannedFinish,omitempty"` // HH:MM
	Priority      Priority `json:"priority,omitempty"`
	Done          bool     `json:"done"`
	ActualStart   string   `json:"actualStart,omitempty"`  // HH:MM
	ActualFinish  string   `json:"actualFinish,omitempty"` // HH:MM
	Note          string   `json:"note,omitempty"`
	SourceRuleID  string   `json:"sourceRuleId,omitempty"`
	SourceHabitID string   `json:"sourceHabitId,omitempty"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// Timed reports whether the task has a planned start time.
func (t Task) Timed() bool {
	return t.PlannedStart != ""
}
