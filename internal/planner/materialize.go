package planner

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/daygrid/daygrid/internal/logger"
	"github.com/daygrid/daygrid/internal/models"
	"github.com/daygrid/daygrid/internal/utils"
)

// EnsureRecurringTasks materializes the day's tasks from active recurring
// rules. A rule produces at most one task per day: rules that are inactive,
// do not apply on the date's weekday, or already have a task on the day
// (matched by sourceRuleId) are skipped. Existing tasks are never updated
// or removed, so editing a rule only affects days ensured afterwards.
// Returns the number of tasks created.
func (p *Planner) EnsureRecurringTasks(date, mode string) (int, error) {
	weekday, err := utils.WeekdayMon0(date)
	if err != nil {
		return 0, err
	}

	existing, err := p.store.ListTasks(date, mode)
	if err != nil {
		return 0, fmt.Errorf("failed to list tasks for %s: %w", date, err)
	}
	fromRule := make(map[string]bool)
	for _, t := range existing {
		if t.SourceRuleID != "" {
			fromRule[t.SourceRuleID] = true
		}
	}

	rules, err := p.store.ListRules(mode)
	if err != nil {
		return 0, fmt.Errorf("failed to list recurring rules: %w", err)
	}

	created := 0
	for _, r := range rules {
		if !r.Active || !r.AppliesOn(weekday) || fromRule[r.ID] {
			continue
		}

		priority := r.Priority
		if priority == "" {
			priority = models.PriorityP2
		}

		now := utils.Timestamp()
		task := models.Task{
			ID:            uuid.NewString(),
			Date:          date,
			Mode:          mode,
			Title:         r.Title,
			PlannedStart:  r.PlannedStart,
			PlannedFinish: r.PlannedFinish,
			Priority:      priority,
			SourceRuleID:  r.ID,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := p.store.PutTask(task); err != nil {
			return created, fmt.Errorf("failed to materialize task from rule %s: %w", r.ID, err)
		}
		created++
	}

	if created > 0 {
		logger.Debug("Materialized recurring tasks", "date", date, "mode", mode, "created", created)
	}
	return created, nil
}

// EnsureHabitTimedTasks materializes a timed task for each active habit
// that has a start time and applies on the date's weekday. Habits without
// a timeStart stay off the timeline (they are tracked through habit logs
// only). Same idempotency contract as EnsureRecurringTasks, matched by
// sourceHabitId.
func (p *Planner) EnsureHabitTimedTasks(date, mode string) (int, error) {
	weekday, err := utils.WeekdayMon0(date)
	if err != nil {
		return 0, err
	}

	existing, err := p.store.ListTasks(date, mode)
	if err != nil {
		return 0, fmt.Errorf("failed to list tasks for %s: %w", date, err)
	}
	fromHabit := make(map[string]bool)
	for _, t := range existing {
		if t.SourceHabitID != "" {
			fromHabit[t.SourceHabitID] = true
		}
	}

	habits, err := p.store.ListHabits(mode)
	if err != nil {
		return 0, fmt.Errorf("failed to list habits: %w", err)
	}

	created := 0
	for _, h := range habits {
		if !h.Active || h.TimeStart == "" || !h.AppliesOn(weekday) || fromHabit[h.ID] {
			continue
		}

		now := utils.Timestamp()
		task := models.Task{
			ID:            uuid.NewString(),
			Date:          date,
			Mode:          mode,
			Title:         "Habit: " + h.Title,
			PlannedStart:  h.TimeStart,
			PlannedFinish: h.TimeFinish,
			Priority:      models.PriorityP3,
			SourceHabitID: h.ID,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := p.store.PutTask(task); err != nil {
			return created, fmt.Errorf("failed to materialize task from habit %s: %w", h.ID, err)
		}
		created++
	}

	if created > 0 {
		logger.Debug("Materialized habit tasks", "date", date, "mode", mode, "created", created)
	}
	return created, nil
}

// EnsureDay runs both materialization passes for a day.
func (p *Planner) EnsureDay(date, mode string) (int, error) {
	fromRules, err := p.EnsureRecurringTasks(date, mode)
	if err != nil {
		return fromRules, err
	}
	fromHabits, err := p.EnsureHabitTimedTasks(date, mode)
	return fromRules + fromHabits, err
}
