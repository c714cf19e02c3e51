package postgres

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
	row := s.db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)
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
	rows, err := s.db.Query(`SELECT `+taskColumns+` FROM tasks WHERE date = $1 AND mode = $2`, date, mode)
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
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			ON CONFLICT (id) DO UPDATE SET
				date = EXCLUDED.date,
				mode = EXCLUDED.mode,
				title = EXCLUDED.title,
				planned_start = EXCLUDED.planned_start,
				planned_finish = EXCLUDED.planned_finish,
				priority = EXCLUDED.priority,
				done = EXCLUDED.done,
				actual_start = EXCLUDED.actual_start,
				actual_finish = EXCLUDED.actual_finish,
				note = EXCLUDED.note,
				source_rule_id = EXCLUDED.source_rule_id,
				source_habit_id = EXCLUDED.source_habit_id,
				created_at = EXCLUDED.created_at,
				updated_at = EXCLUDED.updated_at`,
			t.ID, t.Date, t.Mode, t.Title, t.PlannedStart, t.PlannedFinish, string(t.Priority), t.Done,
			t.ActualStart, t.ActualFinish, t.Note, t.SourceRuleID, t.SourceHabitID, t.CreatedAt, t.UpdatedAt)
		return err
	})
}

func (s *Store) DeleteTask(id string) error {
	return s.inTx("delete", "tasks", func(tx *sql.Tx) error {
		_, err := tx.Exec(`DELETE FROM tasks WHERE id = $1`, id)
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
