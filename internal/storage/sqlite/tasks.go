package sqlite

import (
	"database/sql"
	"errors"

	"github.com/daygrid/daygrid/internal/models"
	"github.com/daygrid/daygrid/internal/storage"
)

const taskColumns = `id, date, mode, title, planned_start, planned_finish, priority, done,
	actual_start, actual_finish, note, source_rule_id, source_habit_id, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var t models.Task
	var priority string
	err := row.Scan(
		&t.ID, &t.Date, &t.Mode, &t.Title, &t.PlannedStart, &t.PlannedFinish, &priority, &t.Done,
		&t.ActualStart, &t.ActualFinish, &t.Note, &t.SourceRuleID, &t.SourceHabitID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return models.Task{}, err
	}
	t.Priority = models.Priority(priority)
	return t, nil
}

func (s *Store) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, storage.ErrNotFound
	}
	if err != nil {
		return models.Task{}, storage.WrapErr("get", "tasks", err)
	}
	return t, nil
}

func (s *Store) ListTasks(date, mode string) ([]models.Task, error) {
	rows, err := s.db.Query(`SELECT `+taskColumns+` FROM tasks WHERE date = ? AND mode = ?`, date, mode)
	if err != nil {
		return nil, storage.WrapErr("list", "tasks", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, storage.WrapErr("list", "tasks", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) PutTask(t models.Task) error {
	return s.inTx("put", "tasks", func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO tasks (id, date, mode, title, planned_start, planned_finish, priority, done,
				actual_start, actual_finish, note, source_rule_id, source_habit_id, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				date = excluded.date,
				mode = excluded.mode,
				title = excluded.title,
				planned_start = excluded.planned_start,
				planned_finish = excluded.planned_finish,
				priority = excluded.priority,
				done = excluded.done,
				actual_start = excluded.actual_start,
				actual_finish = excluded.actual_finish,
				note = excluded.note,
				source_rule_id = excluded.source_rule_id,
				source_habit_id = excluded.source_habit_id,
				created_at = excluded.created_at,
				updated_at = excluded.updated_at`,
			t.ID, t.Date, t.Mode, t.Title, t.PlannedStart, t.PlannedFinish, string(t.Priority), t.Done,
			t.ActualStart, t.ActualFinish, t.Note, t.SourceRuleID, t.SourceHabitID, t.CreatedAt, t.UpdatedAt)
		return err
	})
}

// DeleteTask removes a task by id; deleting an absent id is a no-op.
func (s *Store) DeleteTask(id string) error {
	return s.inTx("delete", "tasks", func(tx *sql.Tx) error {
		_, err := tx.Exec(`DELETE FROM tasks WHERE id = ?`, id)
		return err
	})
}

func (s *Store) AllTasks() ([]models.Task, error) {
	rows, err := s.db.Query(`SELECT ` + taskColumns + ` FROM tasks`)
	if err != nil {
		return nil, storage.WrapErr("all", "tasks", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, storage.WrapErr("all", "tasks", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
