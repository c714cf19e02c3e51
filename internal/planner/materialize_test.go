package planner

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/daygrid/daygrid/internal/models"
	"github.com/daygrid/daygrid/internal/storage/sqlite"
	"github.com/daygrid/daygrid/internal/utils"
)

const testMode = "Personal"

func newTestPlanner(t *testing.T) *Planner {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "daygrid.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return New(store)
}

func addRule(t *testing.T, p *Planner, r models.RecurringRule) models.RecurringRule {
	t.Helper()
	if r.Mode == "" {
		r.Mode = testMode
	}
	out, err := p.UpsertRule(r)
	if err != nil {
		t.Fatalf("failed to add rule: %v", err)
	}
	return out
}

func addHabit(t *testing.T, p *Planner, h models.Habit) models.Habit {
	t.Helper()
	if h.Mode == "" {
		h.Mode = testMode
	}
	out, err := p.UpsertHabit(h)
	if err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}
	return out
}

func TestEnsureRecurringTasksCreatesAndDefaults(t *testing.T) {
	p := newTestPlanner(t)
	rule := addRule(t, p, models.RecurringRule{Title: "Standup", PlannedStart: "09:00", PlannedFinish: "09:15", Active: true})

	created, err := p.EnsureRecurringTasks("2024-01-01", testMode) // a Monday
	if err != nil {
		t.Fatal(err)
	}
	if created != 1 {
		t.Fatalf("created = %d, want 1", created)
	}

	tasks, err := p.ListTasks("2024-01-01", testMode)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}

	got := tasks[0]
	if got.Title != "Standup" {
		t.Errorf("title = %q", got.Title)
	}
	if got.SourceRuleID != rule.ID {
		t.Errorf("sourceRuleId = %q, want %q", got.SourceRuleID, rule.ID)
	}
	if got.Priority != models.PriorityP2 {
		t.Errorf("priority = %q, want default P2", got.Priority)
	}
	if got.PlannedStart != "09:00" || got.PlannedFinish != "09:15" {
		t.Errorf("planned times = %s-%s", got.PlannedStart, got.PlannedFinish)
	}
	if got.Done {
		t.Error("materialized task should start not done")
	}
}

func TestEnsureRecurringTasksIdempotent(t *testing.T) {
	p := newTestPlanner(t)
	addRule(t, p, models.RecurringRule{Title: "Standup", Active: true})

	for i := 0; i < 3; i++ {
		if _, err := p.EnsureRecurringTasks("2024-01-01", testMode); err != nil {
			t.Fatal(err)
		}
	}

	tasks, err := p.ListTasks("2024-01-01", testMode)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 {
		t.Errorf("got %d tasks after repeated ensure, want 1", len(tasks))
	}
}

func TestEnsureRecurringTasksWeekdayFilter(t *testing.T) {
	p := newTestPlanner(t)
	// Monday and Wednesday only.
	addRule(t, p, models.RecurringRule{Title: "Gym", Days: []int{0, 2}, Active: true})

	tests := []struct {
		date string
		want int
	}{
		{date: "2024-01-01", want: 1}, // Monday
		{date: "2024-01-02", want: 0}, // Tuesday
		{date: "2024-01-03", want: 1}, // Wednesday
	}
	for _, tt := range tests {
		created, err := p.EnsureRecurringTasks(tt.date, testMode)
		if err != nil {
			t.Fatal(err)
		}
		if created != tt.want {
			t.Errorf("created on %s = %d, want %d", tt.date, created, tt.want)
		}
	}
}

func TestEnsureRecurringTasksSkipsInactive(t *testing.T) {
	p := newTestPlanner(t)
	addRule(t, p, models.RecurringRule{Title: "Paused", Active: false})

	created, err := p.EnsureRecurringTasks("2024-01-01", testMode)
	if err != nil {
		t.Fatal(err)
	}
	if created != 0 {
		t.Errorf("created = %d for inactive rule, want 0", created)
	}
}

func TestEnsureRecurringTasksNotRetroactive(t *testing.T) {
	p := newTestPlanner(t)
	rule := addRule(t, p, models.RecurringRule{Title: "Standup", PlannedStart: "09:00", Active: true})

	if _, err := p.EnsureRecurringTasks("2024-01-01", testMode); err != nil {
		t.Fatal(err)
	}

	// Edit the rule, then ensure the same day again.
	rule.Title = "Renamed standup"
	rule.PlannedStart = "10:00"
	if _, err := p.UpsertRule(rule); err != nil {
		t.Fatal(err)
	}
	if _, err := p.EnsureRecurringTasks("2024-01-01", testMode); err != nil {
		t.Fatal(err)
	}

	tasks, err := p.ListTasks("2024-01-01", testMode)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}
	if tasks[0].Title != "Standup" || tasks[0].PlannedStart != "09:00" {
		t.Errorf("existing task changed retroactively: %q at %s", tasks[0].Title, tasks[0].PlannedStart)
	}

	// A later day picks up the new values.
	if _, err := p.EnsureRecurringTasks("2024-01-08", testMode); err != nil {
		t.Fatal(err)
	}
	next, err := p.ListTasks("2024-01-08", testMode)
	if err != nil {
		t.Fatal(err)
	}
	if len(next) != 1 || next[0].Title != "Renamed standup" || next[0].PlannedStart != "10:00" {
		t.Errorf("next-day materialization did not use edited rule: %+v", next)
	}
}

func TestEnsureRecurringTasksSurvivesManualDelete(t *testing.T) {
	// Deleting the materialized task and ensuring again recreates it;
	// the idempotency check matches by source id, not by memory of the
	// earlier pass.
	p := newTestPlanner(t)
	addRule(t, p, models.RecurringRule{Title: "Standup", Active: true})

	if _, err := p.EnsureRecurringTasks("2024-01-01", testMode); err != nil {
		t.Fatal(err)
	}
	tasks, _ := p.ListTasks("2024-01-01", testMode)
	if err := p.DeleteTask(tasks[0].ID); err != nil {
		t.Fatal(err)
	}

	created, err := p.EnsureRecurringTasks("2024-01-01", testMode)
	if err != nil {
		t.Fatal(err)
	}
	if created != 1 {
		t.Errorf("created = %d after manual delete, want 1", created)
	}
}

func TestEnsureHabitTimedTasks(t *testing.T) {
	p := newTestPlanner(t)
	timed := addHabit(t, p, models.Habit{Title: "Run", TimeStart: "07:00", TimeFinish: "07:45", Active: true})
	addHabit(t, p, models.Habit{Title: "Read", Active: true}) // no timeStart, stays off the timeline

	created, err := p.EnsureHabitTimedTasks("2024-01-01", testMode)
	if err != nil {
		t.Fatal(err)
	}
	if created != 1 {
		t.Fatalf("created = %d, want 1", created)
	}

	tasks, err := p.ListTasks("2024-01-01", testMode)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}

	got := tasks[0]
	if got.Title != "Habit: Run" {
		t.Errorf("title = %q, want Habit: Run", got.Title)
	}
	if got.SourceHabitID != timed.ID {
		t.Errorf("sourceHabitId = %q, want %q", got.SourceHabitID, timed.ID)
	}
	if got.SourceRuleID != "" {
		t.Error("habit task must not carry a source rule id")
	}
	if got.Priority != models.PriorityP3 {
		t.Errorf("priority = %q, want default P3", got.Priority)
	}
}

func TestEnsureHabitTimedTasksIdempotent(t *testing.T) {
	p := newTestPlanner(t)
	addHabit(t, p, models.Habit{Title: "Run", TimeStart: "07:00", Active: true})

	for i := 0; i < 3; i++ {
		if _, err := p.EnsureHabitTimedTasks("2024-01-01", testMode); err != nil {
			t.Fatal(err)
		}
	}
	tasks, _ := p.ListTasks("2024-01-01", testMode)
	if len(tasks) != 1 {
		t.Errorf("got %d tasks after repeated ensure, want 1", len(tasks))
	}
}

func TestEnsureDayCombinesBothSources(t *testing.T) {
	p := newTestPlanner(t)
	addRule(t, p, models.RecurringRule{Title: "Standup", Active: true})
	addHabit(t, p, models.Habit{Title: "Run", TimeStart: "07:00", Active: true})

	created, err := p.EnsureDay(utils.Today(), testMode)
	if err != nil {
		t.Fatal(err)
	}
	if created != 2 {
		t.Errorf("created = %d, want 2", created)
	}

	tasks, _ := p.ListTasks(utils.Today(), testMode)
	var habitTitles int
	for _, task := range tasks {
		if strings.HasPrefix(task.Title, "Habit: ") {
			habitTitles++
		}
	}
	if habitTitles != 1 {
		t.Errorf("habit-prefixed titles = %d, want 1", habitTitles)
	}
}

func TestEnsureModeIsolation(t *testing.T) {
	p := newTestPlanner(t)
	addRule(t, p, models.RecurringRule{Title: "Standup", Mode: "Work", Active: true})

	created, err := p.EnsureRecurringTasks("2024-01-01", testMode)
	if err != nil {
		t.Fatal(err)
	}
	if created != 0 {
		t.Errorf("rule from another mode materialized %d tasks", created)
	}
}
