package planner

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/daygrid/daygrid/internal/models"
	"github.com/daygrid/daygrid/internal/storage"
	"github.com/daygrid/daygrid/internal/utils"
	"github.com/daygrid/daygrid/internal/validation"
)

// Planner is the domain facade over a storage.Provider. Every mutating
// operation validates its input before any write, stamps timestamps and
// generates ids for new records. Operations issue store calls one at a
// time; there is no cross-operation atomicity.
type Planner struct {
	store storage.Provider
}

func New(store storage.Provider) *Planner {
	return &Planner{store: store}
}

// Tasks

func (p *Planner) GetTask(id string) (models.Task, error) {
	return p.store.GetTask(id)
}

func (p *Planner) ListTasks(date, mode string) ([]models.Task, error) {
	return p.store.ListTasks(date, mode)
}

// UpsertTask validates and writes a task. A task with no ID is treated as
// new: it gets a fresh uuid and createdAt. Updates keep the stored
// createdAt and refresh updatedAt.
func (p *Planner) UpsertTask(t models.Task) (models.Task, error) {
	now := utils.Timestamp()
	if t.ID == "" {
		t.ID = uuid.NewString()
		t.CreatedAt = now
	} else if t.CreatedAt == "" {
		if prev, err := p.store.GetTask(t.ID); err == nil {
			t.CreatedAt = prev.CreatedAt
		} else if errors.Is(err, storage.ErrNotFound) {
			t.CreatedAt = now
		} else {
			return models.Task{}, err
		}
	}
	t.UpdatedAt = now

	if err := validation.ValidateTask(t); err != nil {
		return models.Task{}, err
	}
	if err := p.store.PutTask(t); err != nil {
		return models.Task{}, err
	}
	return t, nil
}

// DeleteTask removes a task. Deleting an id that does not exist is a no-op.
func (p *Planner) DeleteTask(id string) error {
	return p.store.DeleteTask(id)
}

// ToggleTaskDone flips a task's done flag. When the task was materialized
// from a habit, the habit's log entry for the day is upserted to match, as
// a second independent write; a crash between the two is corrected the
// next time the task is toggled.
func (p *Planner) ToggleTaskDone(id string) (models.Task, error) {
	t, err := p.store.GetTask(id)
	if err != nil {
		return models.Task{}, err
	}

	t.Done = !t.Done
	t.UpdatedAt = utils.Timestamp()
	if err := p.store.PutTask(t); err != nil {
		return models.Task{}, err
	}

	if t.SourceHabitID != "" {
		if err := p.syncHabitLog(t); err != nil {
			return models.Task{}, fmt.Errorf("task updated but habit log sync failed: %w", err)
		}
	}
	return t, nil
}

func (p *Planner) syncHabitLog(t models.Task) error {
	now := utils.Timestamp()
	log, err := p.store.GetHabitLog(t.Date, t.Mode, t.SourceHabitID)
	if errors.Is(err, storage.ErrNotFound) {
		log = models.HabitLog{
			Key:       models.HabitLogKey(t.Date, t.Mode, t.SourceHabitID),
			Date:      t.Date,
			Mode:      t.Mode,
			HabitID:   t.SourceHabitID,
			CreatedAt: now,
		}
	} else if err != nil {
		return err
	}

	log.Done = t.Done
	log.ActualStart = t.ActualStart
	log.ActualFinish = t.ActualFinish
	log.UpdatedAt = now
	return p.store.PutHabitLog(log)
}

// CopyTasks copies one day's tasks to another day in the same mode. Copies
// are fresh manual tasks: new ids, done and actual times cleared, source
// links dropped so the target day materializes independently. Returns the
// number of tasks copied.
func (p *Planner) CopyTasks(fromDate, toDate, mode string, onlyUndone bool) (int, error) {
	if !utils.ValidateDateFormat(fromDate) || !utils.ValidateDateFormat(toDate) {
		return 0, fmt.Errorf("%w: dates must be YYYY-MM-DD", validation.ErrInvalidInput)
	}

	tasks, err := p.store.ListTasks(fromDate, mode)
	if err != nil {
		return 0, err
	}

	copied := 0
	for _, t := range tasks {
		if onlyUndone && t.Done {
			continue
		}
		now := utils.Timestamp()
		dup := t
		dup.ID = uuid.NewString()
		dup.Date = toDate
		dup.Done = false
		dup.ActualStart = ""
		dup.ActualFinish = ""
		dup.SourceRuleID = ""
		dup.SourceHabitID = ""
		dup.CreatedAt = now
		dup.UpdatedAt = now
		if err := p.store.PutTask(dup); err != nil {
			return copied, err
		}
		copied++
	}
	return copied, nil
}

// Recurring rules

func (p *Planner) GetRule(id string) (models.RecurringRule, error) {
	return p.store.GetRule(id)
}

func (p *Planner) ListRules(mode string) ([]models.RecurringRule, error) {
	return p.store.ListRules(mode)
}

func (p *Planner) UpsertRule(r models.RecurringRule) (models.RecurringRule, error) {
	now := utils.Timestamp()
	if r.ID == "" {
		r.ID = uuid.NewString()
		r.CreatedAt = now
	} else if r.CreatedAt == "" {
		if prev, err := p.store.GetRule(r.ID); err == nil {
			r.CreatedAt = prev.CreatedAt
		} else if errors.Is(err, storage.ErrNotFound) {
			r.CreatedAt = now
		} else {
			return models.RecurringRule{}, err
		}
	}
	r.UpdatedAt = now

	if err := validation.ValidateRule(r); err != nil {
		return models.RecurringRule{}, err
	}
	if err := p.store.PutRule(r); err != nil {
		return models.RecurringRule{}, err
	}
	return r, nil
}

// DeleteRule removes a rule. Tasks already materialized from it stay.
func (p *Planner) DeleteRule(id string) error {
	if _, err := p.store.GetRule(id); err != nil {
		return err
	}
	return p.store.DeleteRule(id)
}

// Habits

func (p *Planner) GetHabit(id string) (models.Habit, error) {
	return p.store.GetHabit(id)
}

func (p *Planner) ListHabits(mode string) ([]models.Habit, error) {
	return p.store.ListHabits(mode)
}

func (p *Planner) UpsertHabit(h models.Habit) (models.Habit, error) {
	now := utils.Timestamp()
	if h.ID == "" {
		h.ID = uuid.NewString()
		h.CreatedAt = now
	} else if h.CreatedAt == "" {
		if prev, err := p.store.GetHabit(h.ID); err == nil {
			h.CreatedAt = prev.CreatedAt
		} else if errors.Is(err, storage.ErrNotFound) {
			h.CreatedAt = now
		} else {
			return models.Habit{}, err
		}
	}
	h.UpdatedAt = now

	if err := validation.ValidateHabit(h); err != nil {
		return models.Habit{}, err
	}
	if err := p.store.PutHabit(h); err != nil {
		return models.Habit{}, err
	}
	return h, nil
}

// DeleteHabit removes a habit. Its logs and materialized tasks stay.
func (p *Planner) DeleteHabit(id string) error {
	if _, err := p.store.GetHabit(id); err != nil {
		return err
	}
	return p.store.DeleteHabit(id)
}

func (p *Planner) GetHabitLog(date, mode, habitID string) (models.HabitLog, error) {
	return p.store.GetHabitLog(date, mode, habitID)
}

// UpsertHabitLog records a habit check-in for a day. The log key is
// derived from (date, mode, habitId); repeated upserts overwrite the
// day's entry in place.
func (p *Planner) UpsertHabitLog(l models.HabitLog) (models.HabitLog, error) {
	now := utils.Timestamp()
	l.Key = models.HabitLogKey(l.Date, l.Mode, l.HabitID)
	if l.CreatedAt == "" {
		if prev, err := p.store.GetHabitLog(l.Date, l.Mode, l.HabitID); err == nil {
			l.CreatedAt = prev.CreatedAt
		} else if errors.Is(err, storage.ErrNotFound) {
			l.CreatedAt = now
		} else {
			return models.HabitLog{}, err
		}
	}
	l.UpdatedAt = now

	if err := validation.ValidateHabitLog(l); err != nil {
		return models.HabitLog{}, err
	}
	if err := p.store.PutHabitLog(l); err != nil {
		return models.HabitLog{}, err
	}
	return l, nil
}

// HabitWeekDoneCount counts the habit's done log entries in the
// Monday-based week containing date.
func (p *Planner) HabitWeekDoneCount(habitID, date string) (int, error) {
	start, err := utils.WeekStartMonday(date)
	if err != nil {
		return 0, err
	}
	week, err := utils.RangeDays(start, 7)
	if err != nil {
		return 0, err
	}

	logs, err := p.store.ListHabitLogs(habitID, week[0], week[len(week)-1])
	if err != nil {
		return 0, err
	}

	count := 0
	for _, l := range logs {
		if l.Done {
			count++
		}
	}
	return count, nil
}

// Big tasks

func (p *Planner) GetBigTask(id string) (models.BigTask, error) {
	return p.store.GetBigTask(id)
}

func (p *Planner) ListBigTasks(mode string) ([]models.BigTask, error) {
	return p.store.ListBigTasks(mode)
}

func (p *Planner) UpsertBigTask(b models.BigTask) (models.BigTask, error) {
	now := utils.Timestamp()
	if b.ID == "" {
		b.ID = uuid.NewString()
		b.CreatedAt = now
	} else if b.CreatedAt == "" {
		if prev, err := p.store.GetBigTask(b.ID); err == nil {
			b.CreatedAt = prev.CreatedAt
		} else if errors.Is(err, storage.ErrNotFound) {
			b.CreatedAt = now
		} else {
			return models.BigTask{}, err
		}
	}
	b.UpdatedAt = now

	if err := validation.ValidateBigTask(b); err != nil {
		return models.BigTask{}, err
	}
	if err := p.store.PutBigTask(b); err != nil {
		return models.BigTask{}, err
	}
	return b, nil
}

func (p *Planner) DeleteBigTask(id string) error {
	if _, err := p.store.GetBigTask(id); err != nil {
		return err
	}
	return p.store.DeleteBigTask(id)
}

// Notes

func (p *Planner) GetNote(date, mode string) (models.Note, error) {
	return p.store.GetNote(date, mode)
}

// SetNote upserts the day's single free-text note.
func (p *Planner) SetNote(date, mode, text string) (models.Note, error) {
	if !utils.ValidateDateFormat(date) {
		return models.Note{}, fmt.Errorf("%w: date must be YYYY-MM-DD", validation.ErrInvalidInput)
	}

	now := utils.Timestamp()
	n := models.Note{
		Key:       models.NoteKey(date, mode),
		Date:      date,
		Mode:      mode,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if prev, err := p.store.GetNote(date, mode); err == nil {
		n.CreatedAt = prev.CreatedAt
	} else if !errors.Is(err, storage.ErrNotFound) {
		return models.Note{}, err
	}

	if err := p.store.PutNote(n); err != nil {
		return models.Note{}, err
	}
	return n, nil
}
