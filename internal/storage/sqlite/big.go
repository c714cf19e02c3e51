package sqlite

import (
	"database/sql"
	"errors"

	"github.com/daygrid/daygrid/internal/models"
	"github.com/daygrid/daygrid/internal/storage"
)

const bigColumns = `id, mode, title, due_date, priority, pinned, done, created_at, updated_at`

func scanBigTask(row rowScanner) (models.BigTask, error) {
	var b models.BigTask
	var priority string
	err := row.Scan(&b.ID, &b.Mode, &b.Title, &b.DueDate, &priority, &b.Pinned, &b.Done, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return models.BigTask{}, err
	}
	b.Priority = models.Priority(priority)
	return b, nil
}

func (s *Store) GetBigTask(id string) (models.BigTask, error) {
	row := s.db.QueryRow(`SELECT `+bigColumns+` FROM big WHERE id = ?`, id)
	b, err := scanBigTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BigTask{}, storage.ErrNotFound
	}
	if err != nil {
		return models.BigTask{}, storage.WrapErr("get", "big", err)
	}
	return b, nil
}

func (s *Store) ListBigTasks(mode string) ([]models.BigTask, error) {
	rows, err := s.db.Query(`SELECT `+bigColumns+` FROM big WHERE mode = ?`, mode)
	if err != nil {
		return nil, storage.WrapErr("list", "big", err)
	}
	defer rows.Close()

	var items []models.BigTask
	for rows.Next() {
		b, err := scanBigTask(rows)
		if err != nil {
			return nil, storage.WrapErr("list", "big", err)
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

func (s *Store) PutBigTask(b models.BigTask) error {
	return s.inTx("put", "big", func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO big (id, mode, title, due_date, priority, pinned, done, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				mode = excluded.mode,
				title = excluded.title,
				due_date = excluded.due_date,
				priority = excluded.priority,
				pinned = excluded.pinned,
				done = excluded.done,
				created_at = excluded.created_at,
				updated_at = excluded.updated_at`,
			b.ID, b.Mode, b.Title, b.DueDate, string(b.Priority), b.Pinned, b.Done, b.CreatedAt, b.UpdatedAt)
		return err
	})
}

func (s *Store) DeleteBigTask(id string) error {
	return s.inTx("delete", "big", func(tx *sql.Tx) error {
		_, err := tx.Exec(`DELETE FROM big WHERE id = ?`, id)
		return err
	})
}

func (s *Store) AllBigTasks() ([]models.BigTask, error) {
	rows, err := s.db.Query(`SELECT ` + bigColumns + ` FROM big`)
	if err != nil {
		return nil, storage.WrapErr("all", "big", err)
	}
	defer rows.Close()

	var items []models.BigTask
	for rows.Next() {
		b, err := scanBigTask(rows)
		if err != nil {
			return nil, storage.WrapErr("all", "big", err)
		}
		items = append(items, b)
	}
	return items, rows.Err()
}
