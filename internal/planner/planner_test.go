package planner

import (
	"errors"
	"testing"

	"github.com/daygrid/daygrid/internal/models"
	"github.com/daygrid/daygrid/internal/storage"
	"github.com/daygrid/daygrid/internal/validation"
)

func TestUpsertTaskRoundTrip(t *testing.T) {
	p := newTestPlanner(t)

	created, err := p.UpsertTask(models.Task{
		Date:         "2024-06-10",
		Mode:         testMode,
		Title:        "Write report",
		PlannedStart: "09:00",
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == "" || created.CreatedAt == "" || created.UpdatedAt == "" {
		t.Fatalf("new task missing generated fields: %+v", created)
	}

	got, err := p.GetTask(created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "Write report" || got.PlannedStart != "09:00" {
		t.Errorf("round trip mismatch: %+v", got)
	}

	// Update keeps createdAt.
	got.Title = "Write the report"
	updated, err := p.UpsertTask(got)
	if err != nil {
		t.Fatal(err)
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Errorf("createdAt changed on update: %s -> %s", created.CreatedAt, updated.CreatedAt)
	}
}

func TestUpsertTaskValidatesBeforeWrite(t *testing.T) {
	p := newTestPlanner(t)

	_, err := p.UpsertTask(models.Task{Date: "2024-06-10", Mode: testMode, Title: "bad", PlannedFinish: "10:00"})
	if !errors.Is(err, validation.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}

	tasks, err := p.ListTasks("2024-06-10", testMode)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 0 {
		t.Errorf("rejected task was written: %+v", tasks)
	}
}

func TestDeleteTaskMissingIsNoop(t *testing.T) {
	p := newTestPlanner(t)
	if err := p.DeleteTask("does-not-exist"); err != nil {
		t.Errorf("DeleteTask on missing id = %v, want nil", err)
	}
}

func TestGetTaskNotFound(t *testing.T) {
	p := newTestPlanner(t)
	_, err := p.GetTask("missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestToggleTaskDone(t *testing.T) {
	p := newTestPlanner(t)
	task, err := p.UpsertTask(models.Task{Date: "2024-06-10", Mode: testMode, Title: "Thing"})
	if err != nil {
		t.Fatal(err)
	}

	toggled, err := p.ToggleTaskDone(task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !toggled.Done {
		t.Error("first toggle should mark done")
	}

	toggled, err = p.ToggleTaskDone(task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if toggled.Done {
		t.Error("second toggle should mark not done")
	}
}

func TestToggleHabitTaskSyncsLog(t *testing.T) {
	p := newTestPlanner(t)
	habit := addHabit(t, p, models.Habit{Title: "Run", TimeStart: "07:00", Active: true})
	if _, err := p.EnsureHabitTimedTasks("2024-06-10", testMode); err != nil {
		t.Fatal(err)
	}

	tasks, _ := p.ListTasks("2024-06-10", testMode)
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}

	if _, err := p.ToggleTaskDone(tasks[0].ID); err != nil {
		t.Fatal(err)
	}

	log, err := p.GetHabitLog("2024-06-10", testMode, habit.ID)
	if err != nil {
		t.Fatalf("habit log not created on toggle: %v", err)
	}
	if !log.Done {
		t.Error("habit log done = false after toggling task done")
	}
	if log.Key != models.HabitLogKey("2024-06-10", testMode, habit.ID) {
		t.Errorf("log key = %q", log.Key)
	}

	// Toggling back flips the same log entry.
	if _, err := p.ToggleTaskDone(tasks[0].ID); err != nil {
		t.Fatal(err)
	}
	log, err = p.GetHabitLog("2024-06-10", testMode, habit.ID)
	if err != nil {
		t.Fatal(err)
	}
	if log.Done {
		t.Error("habit log still done after toggling task back")
	}
}

func TestCopyTasks(t *testing.T) {
	p := newTestPlanner(t)

	done, err := p.UpsertTask(models.Task{Date: "2024-06-10", Mode: testMode, Title: "Done thing"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.ToggleTaskDone(done.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := p.UpsertTask(models.Task{Date: "2024-06-10", Mode: testMode, Title: "Undone thing", PlannedStart: "14:00"}); err != nil {
		t.Fatal(err)
	}

	copied, err := p.CopyTasks("2024-06-10", "2024-06-11", testMode, true)
	if err != nil {
		t.Fatal(err)
	}
	if copied != 1 {
		t.Fatalf("copied = %d with onlyUndone, want 1", copied)
	}

	got, err := p.ListTasks("2024-06-11", testMode)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Title != "Undone thing" {
		t.Fatalf("copied tasks = %+v", got)
	}
	if got[0].Done || got[0].ActualStart != "" || got[0].SourceRuleID != "" || got[0].SourceHabitID != "" {
		t.Errorf("copy did not reset state: %+v", got[0])
	}
	if got[0].PlannedStart != "14:00" {
		t.Errorf("copy lost planned time: %+v", got[0])
	}

	// Copy all, including done tasks.
	copied, err = p.CopyTasks("2024-06-10", "2024-06-12", testMode, false)
	if err != nil {
		t.Fatal(err)
	}
	if copied != 2 {
		t.Errorf("copied = %d without onlyUndone, want 2", copied)
	}
}

func TestCopyTasksResetsProvenance(t *testing.T) {
	p := newTestPlanner(t)
	addRule(t, p, models.RecurringRule{Title: "Standup", Active: true})
	if _, err := p.EnsureRecurringTasks("2024-01-01", testMode); err != nil {
		t.Fatal(err)
	}

	if _, err := p.CopyTasks("2024-01-01", "2024-01-02", testMode, false); err != nil {
		t.Fatal(err)
	}

	// The copy is a manual task, so ensuring the target day still
	// materializes the rule there.
	created, err := p.EnsureRecurringTasks("2024-01-02", testMode)
	if err != nil {
		t.Fatal(err)
	}
	if created != 1 {
		t.Errorf("created = %d on target day, want 1 (copy must not satisfy the rule)", created)
	}
}

func TestUpsertHabitLogAndWeekCount(t *testing.T) {
	p := newTestPlanner(t)
	habit := addHabit(t, p, models.Habit{Title: "Stretch", Active: true})

	// 2024-06-10 is a Monday; log Mon, Wed, Sun done plus one outside the week.
	for _, date := range []string{"2024-06-10", "2024-06-12", "2024-06-16"} {
		if _, err := p.UpsertHabitLog(models.HabitLog{Date: date, Mode: testMode, HabitID: habit.ID, Done: true}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := p.UpsertHabitLog(models.HabitLog{Date: "2024-06-17", Mode: testMode, HabitID: habit.ID, Done: true}); err != nil {
		t.Fatal(err)
	}
	// An undone entry does not count.
	if _, err := p.UpsertHabitLog(models.HabitLog{Date: "2024-06-11", Mode: testMode, HabitID: habit.ID, Done: false}); err != nil {
		t.Fatal(err)
	}

	count, err := p.HabitWeekDoneCount(habit.ID, "2024-06-13")
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("week done count = %d, want 3", count)
	}
}

func TestUpsertHabitLogOverwritesInPlace(t *testing.T) {
	p := newTestPlanner(t)
	habit := addHabit(t, p, models.Habit{Title: "Stretch", Active: true})

	first, err := p.UpsertHabitLog(models.HabitLog{Date: "2024-06-10", Mode: testMode, HabitID: habit.ID, Done: true})
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.UpsertHabitLog(models.HabitLog{Date: "2024-06-10", Mode: testMode, HabitID: habit.ID, Done: false, Note: "skipped"})
	if err != nil {
		t.Fatal(err)
	}
	if second.CreatedAt != first.CreatedAt {
		t.Errorf("upsert changed createdAt: %s -> %s", first.CreatedAt, second.CreatedAt)
	}

	got, err := p.GetHabitLog("2024-06-10", testMode, habit.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Done || got.Note != "skipped" {
		t.Errorf("log not overwritten: %+v", got)
	}
}

func TestSetNoteUpsert(t *testing.T) {
	p := newTestPlanner(t)

	if _, err := p.SetNote("2024-06-10", testMode, "first"); err != nil {
		t.Fatal(err)
	}
	if _, err := p.SetNote("2024-06-10", testMode, "second"); err != nil {
		t.Fatal(err)
	}

	got, err := p.GetNote("2024-06-10", testMode)
	if err != nil {
		t.Fatal(err)
	}
	if got.Text != "second" {
		t.Errorf("note text = %q, want second", got.Text)
	}
}

func TestDeleteRuleMissingReturnsNotFound(t *testing.T) {
	p := newTestPlanner(t)
	err := p.DeleteRule("missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestBigTaskLifecycle(t *testing.T) {
	p := newTestPlanner(t)

	b, err := p.UpsertBigTask(models.BigTask{Mode: testMode, Title: "File taxes", DueDate: "2024-12-31", Priority: models.PriorityP1})
	if err != nil {
		t.Fatal(err)
	}

	list, err := p.ListBigTasks(testMode)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Title != "File taxes" {
		t.Fatalf("list = %+v", list)
	}

	b.Done = true
	if _, err := p.UpsertBigTask(b); err != nil {
		t.Fatal(err)
	}
	got, err := p.GetBigTask(b.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Done {
		t.Error("done flag not persisted")
	}

	if err := p.DeleteBigTask(b.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := p.GetBigTask(b.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("err after delete = %v, want ErrNotFound", err)
	}
}
