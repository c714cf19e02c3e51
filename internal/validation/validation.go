package validation

import (
	"errors"
	"fmt"

	"github.com/daygrid/daygrid/internal/models"
	"github.com/daygrid/daygrid/internal/utils"
)

// ErrInvalidInput marks validation failures. Nothing is written when a
// validator rejects a record; the caller corrects the input and resubmits.
var ErrInvalidInput = errors.New("invalid input")

// ValidateTimeRange checks an optional HH:MM start/finish pair.
// A finish without a start is invalid; when both are present the finish
// must be strictly after the start at minute granularity. Empty values
// carry no constraint.
func ValidateTimeRange(start, finish string) error {
	return validateTimeRange(start, finish, "")
}

// ValidatePlannedTimes applies the time-range rule to a planned pair.
func ValidatePlannedTimes(start, finish string) error {
	return validateTimeRange(start, finish, "planned ")
}

// ValidateActualTimes applies the time-range rule to an actual pair.
func ValidateActualTimes(start, finish string) error {
	return validateTimeRange(start, finish, "actual ")
}

func validateTimeRange(start, finish, label string) error {
	if finish != "" && start == "" {
		return fmt.Errorf("%w: %sfinish requires start", ErrInvalidInput, label)
	}
	if start != "" {
		if _, err := utils.ParseTimeToMinutes(start); err != nil {
			return fmt.Errorf("%w: invalid %stime %q", ErrInvalidInput, label, start)
		}
	}
	if finish != "" {
		if _, err := utils.ParseTimeToMinutes(finish); err != nil {
			return fmt.Errorf("%w: invalid %stime %q", ErrInvalidInput, label, finish)
		}
	}
	if start != "" && finish != "" {
		s, _ := utils.ParseTimeToMinutes(start)
		f, _ := utils.ParseTimeToMinutes(finish)
		if f <= s {
			return fmt.Errorf("%w: %sfinish must be after start", ErrInvalidInput, label)
		}
	}
	return nil
}

// ValidateTask checks every field invariant of a task before it is written.
func ValidateTask(t models.Task) error {
	if t.ID == "" {
		return fmt.Errorf("%w: task id is required", ErrInvalidInput)
	}
	if t.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !utils.ValidateDateFormat(t.Date) {
		return fmt.Errorf("%w: invalid date %q", ErrInvalidInput, t.Date)
	}
	if t.Mode == "" {
		return fmt.Errorf("%w: mode is required", ErrInvalidInput)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("%w: invalid priority %q", ErrInvalidInput, t.Priority)
	}
	if t.SourceRuleID != "" && t.SourceHabitID != "" {
		return fmt.Errorf("%w: task cannot have both a source rule and a source habit", ErrInvalidInput)
	}
	if err := ValidatePlannedTimes(t.PlannedStart, t.PlannedFinish); err != nil {
		return err
	}
	return ValidateActualTimes(t.ActualStart, t.ActualFinish)
}

// ValidateRule checks a recurring rule before it is written.
func ValidateRule(r models.RecurringRule) error {
	if r.ID == "" {
		return fmt.Errorf("%w: rule id is required", ErrInvalidInput)
	}
	if r.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if r.Mode == "" {
		return fmt.Errorf("%w: mode is required", ErrInvalidInput)
	}
	if !r.Priority.Valid() {
		return fmt.Errorf("%w: invalid priority %q", ErrInvalidInput, r.Priority)
	}
	if err := validateWeekdays(r.Days); err != nil {
		return err
	}
	return ValidatePlannedTimes(r.PlannedStart, r.PlannedFinish)
}

// ValidateHabit checks a habit before it is written.
func ValidateHabit(h models.Habit) error {
	if h.ID == "" {
		return fmt.Errorf("%w: habit id is required", ErrInvalidInput)
	}
	if h.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if h.Mode == "" {
		return fmt.Errorf("%w: mode is required", ErrInvalidInput)
	}
	if !h.Stream.Valid() {
		return fmt.Errorf("%w: invalid stream %q", ErrInvalidInput, h.Stream)
	}
	if h.FreqPerWeek < 0 {
		return fmt.Errorf("%w: frequency cannot be negative", ErrInvalidInput)
	}
	if err := validateWeekdays(h.Days); err != nil {
		return err
	}
	if h.ReminderTime != "" && !utils.ValidateTimeFormat(h.ReminderTime) {
		return fmt.Errorf("%w: invalid time %q", ErrInvalidInput, h.ReminderTime)
	}
	return ValidateTimeRange(h.TimeStart, h.TimeFinish)
}

// ValidateHabitLog checks a habit log before it is written.
func ValidateHabitLog(l models.HabitLog) error {
	if !utils.ValidateDateFormat(l.Date) {
		return fmt.Errorf("%w: invalid date %q", ErrInvalidInput, l.Date)
	}
	if l.Mode == "" {
		return fmt.Errorf("%w: mode is required", ErrInvalidInput)
	}
	if l.HabitID == "" {
		return fmt.Errorf("%w: habit id is required", ErrInvalidInput)
	}
	return ValidateActualTimes(l.ActualStart, l.ActualFinish)
}

// ValidateBigTask checks a big task before it is written.
func ValidateBigTask(b models.BigTask) error {
	if b.ID == "" {
		return fmt.Errorf("%w: big task id is required", ErrInvalidInput)
	}
	if b.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if b.Mode == "" {
		return fmt.Errorf("%w: mode is required", ErrInvalidInput)
	}
	if !b.Priority.Valid() {
		return fmt.Errorf("%w: invalid priority %q", ErrInvalidInput, b.Priority)
	}
	if b.DueDate != "" && !utils.ValidateDateFormat(b.DueDate) {
		return fmt.Errorf("%w: invalid date %q", ErrInvalidInput, b.DueDate)
	}
	return nil
}

func validateWeekdays(days []int) error {
	for _, d := range days {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: weekday index %d out of range 0-6", ErrInvalidInput, d)
		}
	}
	return nil
}
