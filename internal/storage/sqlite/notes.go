package sqlite

import (
	"database/sql"
	"errors"

	"github.com/daygrid/daygrid/internal/models"
	"github.com/daygrid/daygrid/internal/storage"
)

const noteColumns = `key, date, mode, text, created_at, updated_at`

func scanNote(row rowScanner) (models.Note, error) {
	var n models.Note
	err := row.Scan(&n.Key, &n.Date, &n.Mode, &n.Text, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return models.Note{}, err
	}
	return n, nil
}

func (s *Store) GetNote(date, mode string) (models.Note, error) {
	row := s.db.QueryRow(`SELECT `+noteColumns+` FROM notes WHERE key = ?`, models.NoteKey(date, mode))
	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, storage.ErrNotFound
	}
	if err != nil {
		return models.Note{}, storage.WrapErr("get", "notes", err)
	}
	return n, nil
}

func (s *Store) PutNote(n models.Note) error {
	return s.inTx("put", "notes", func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO notes (key, date, mode, text, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET
				text = excluded.text,
				updated_at = excluded.updated_at`,
			n.Key, n.Date, n.Mode, n.Text, n.CreatedAt, n.UpdatedAt)
		return err
	})
}

func (s *Store) AllNotes() ([]models.Note, error) {
	rows, err := s.db.Query(`SELECT ` + noteColumns + ` FROM notes`)
	if err != nil {
		return nil, storage.WrapErr("all", "notes", err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, storage.WrapErr("all", "notes", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
