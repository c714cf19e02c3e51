package models

// RecurringRule describes a task template expanded into one Task per
// applicable day. Days holds Monday-indexed weekdays (0=Mon .. 6=Sun);
// an empty set means the rule applies every day.
type RecurringRule struct {
	ID            string   `json:"id"`
	Mode          string   `json:"mode"`
	Title         string   `json:"title"`
	PlannedStart  string   `json:"plannedStart,omitempty"`  // HH:MM
	PlannedFinish string   `json:"plannedFinish,omitempty"` // HH:MM
	Days          []int    `json:"days"`
	Priority      Priority `json:"priority,omitempty"`
	Active        bool     `json:"active"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// AppliesOn reports whether the rule applies on the given Monday-indexed
// weekday. An empty day set is an "every day" rule.
func (r RecurringRule) AppliesOn(weekday int) bool {
	if len(r.Days) == 0 {
		return true
	}
	for _, d := range r.Days {
		if d == weekday {
			return true
		}
	}
	return false
}
