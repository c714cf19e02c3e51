package storage

import "github.com/daygrid/daygrid/internal/models"

// Provider is the transactional record store over the six collections.
// Every operation runs in its own scoped transaction: all of its writes
// are durably applied or none are. There is no atomicity across separate
// calls; callers that need composite updates issue them as separate
// operations and rely on idempotent correction.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error
	GetConfigPath() string

	// Tasks (primary key id, secondary index (date, mode))
	GetTask(id string) (models.Task, error)
	ListTasks(date, mode string) ([]models.Task, error)
	PutTask(models.Task) error
	DeleteTask(id string) error

	// Recurring rules (primary key id, secondary index mode)
	GetRule(id string) (models.RecurringRule, error)
	ListRules(mode string) ([]models.RecurringRule, error)
	PutRule(models.RecurringRule) error
	DeleteRule(id string) error

	// Habits (primary key id, secondary index mode)
	GetHabit(id string) (models.Habit, error)
	ListHabits(mode string) ([]models.Habit, error)
	PutHabit(models.Habit) error
	DeleteHabit(id string) error

	// Habit logs (composite key date|mode|habitId; upsert only, never deleted)
	GetHabitLog(date, mode, habitID string) (models.HabitLog, error)
	ListHabitLogs(habitID, startDate, endDate string) ([]models.HabitLog, error)
	PutHabitLog(models.HabitLog) error

	// Big tasks (primary key id, secondary index mode)
	GetBigTask(id string) (models.BigTask, error)
	ListBigTasks(mode string) ([]models.BigTask, error)
	PutBigTask(models.BigTask) error
	DeleteBigTask(id string) error

	// Notes (composite key date|mode; upsert only)
	GetNote(date, mode string) (models.Note, error)
	PutNote(models.Note) error

	// Bulk retrieval for export
	AllTasks() ([]models.Task, error)
	AllRules() ([]models.RecurringRule, error)
	AllHabits() ([]models.Habit, error)
	AllHabitLogs() ([]models.HabitLog, error)
	AllBigTasks() ([]models.BigTask, error)
	AllNotes() ([]models.Note, error)

	// Reset removes every record from every collection in one transaction.
	Reset() error
}
