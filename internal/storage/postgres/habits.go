package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/daygrid/daygrid/internal/models"
	"github.com/daygrid/daygrid/internal/storage"
)

const habitColumns = `id, mode, title, freq_per_week, days, stream, time_start, time_finish,
	reminder_time, note, active, created_at, updated_at`

const habitLogColumns = `key, date, mode, habit_id, done, actual_start, actual_finish, note, created_at, updated_at`

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var days, stream string
	err := row.Scan(
		&h.ID, &h.Mode, &h.Title, &h.FreqPerWeek, &days, &stream, &h.TimeStart, &h.TimeFinish,
		&h.ReminderTime, &h.Note, &h.Active, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return models.Habit{}, err
	}
	h.Stream = models.Stream(stream)
	if days != "" {
		if err := json.Unmarshal([]byte(days), &h.Days); err != nil {
			return models.Habit{}, fmt.Errorf("failed to parse days for habit %s: %w", h.ID, err)
		}
	}
	return h, nil
}

func scanHabitLog(row rowScanner) (models.HabitLog, error) {
	var l models.HabitLog
	err := row.Scan(&l.Key, &l.Date, &l.Mode, &l.HabitID, &l.Done, &l.ActualStart, &l.ActualFinish, &l.Note, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return models.HabitLog{}, err
	}
	return l, nil
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE id = $1`, id)
	h, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, storage.ErrNotFound
	}
	if err != nil {
		return models.Habit{}, storage.WrapErr("get", "habits", err)
	}
	return h, nil
}

func (s *Store) ListHabits(mode string) ([]models.Habit, error) {
	rows, err := s.db.Query(`SELECT `+habitColumns+` FROM habits WHERE mode = $1`, mode)
	if err != nil {
		return nil, storage.WrapErr("list", "habits", err)
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, storage.WrapErr("list", "habits", err)
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *Store) PutHabit(h models.Habit) error {
	days, err := json.Marshal(h.Days)
	if err != nil {
		return storage.WrapErr("put", "habits", fmt.Errorf("failed to marshal days: %w", err))
	}

	return s.inTx("put", "habits", func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO habits (id, mode, title, freq_per_week, days, stream, time_start, time_finish,
				reminder_time, note, active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			ON CONFLICT (id) DO UPDATE SET
				mode = EXCLUDED.mode,
				title = EXCLUDED.title,
				freq_per_week = EXCLUDED.freq_per_week,
				days = EXCLUDED.days,
				stream = EXCLUDED.stream,
				time_start = EXCLUDED.time_start,
				time_finish = EXCLUDED.time_finish,
				reminder_time = EXCLUDED.reminder_time,
				note = EXCLUDED.note,
				active = EXCLUDED.active,
				created_at = EXCLUDED.created_at,
				updated_at = EXCLUDED.updated_at`,
			h.ID, h.Mode, h.Title, h.FreqPerWeek, string(days), string(h.Stream), h.TimeStart, h.TimeFinish,
			h.ReminderTime, h.Note, h.Active, h.CreatedAt, h.UpdatedAt)
		return err
	})
}

func (s *Store) DeleteHabit(id string) error {
	return s.inTx("delete", "habits", func(tx *sql.Tx) error {
		_, err := tx.Exec(`DELETE FROM habits WHERE id = $1`, id)
		return err
	})
}

func (s *Store) AllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`SELECT ` + habitColumns + ` FROM habits`)
	if err != nil {
		return nil, storage.WrapErr("all", "habits", err)
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, storage.WrapErr("all", "habits", err)
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

// Habit logs

func (s *Store) GetHabitLog(date, mode, habitID string) (models.HabitLog, error) {
	row := s.db.QueryRow(`SELECT `+habitLogColumns+` FROM habit_logs WHERE key = $1`,
		models.HabitLogKey(date, mode, habitID))
	l, err := scanHabitLog(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.HabitLog{}, storage.ErrNotFound
	}
	if err != nil {
		return models.HabitLog{}, storage.WrapErr("get", "habitLogs", err)
	}
	return l, nil
}

func (s *Store) ListHabitLogs(habitID, startDate, endDate string) ([]models.HabitLog, error) {
	rows, err := s.db.Query(`
		SELECT `+habitLogColumns+` FROM habit_logs
		WHERE habit_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date`, habitID, startDate, endDate)
	if err != nil {
		return nil, storage.WrapErr("list", "habitLogs", err)
	}
	defer rows.Close()

	var logs []models.HabitLog
	for rows.Next() {
		l, err := scanHabitLog(rows)
		if err != nil {
			return nil, storage.WrapErr("list", "habitLogs", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (s *Store) PutHabitLog(l models.HabitLog) error {
	return s.inTx("put", "habitLogs", func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO habit_logs (key, date, mode, habit_id, done, actual_start, actual_finish, note, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (key) DO UPDATE SET
				done = EXCLUDED.done,
				actual_start = EXCLUDED.actual_start,
				actual_finish = EXCLUDED.actual_finish,
				note = EXCLUDED.note,
				updated_at = EXCLUDED.updated_at`,
			l.Key, l.Date, l.Mode, l.HabitID, l.Done, l.ActualStart, l.ActualFinish, l.Note, l.CreatedAt, l.UpdatedAt)
		return err
	})
}

func (s *Store) AllHabitLogs() ([]models.HabitLog, error) {
	rows, err := s.db.Query(`SELECT ` + habitLogColumns + ` FROM habit_logs`)
	if err != nil {
		return nil, storage.WrapErr("all", "habitLogs", err)
	}
	defer rows.Close()

	var logs []models.HabitLog
	for rows.Next() {
		l, err := scanHabitLog(rows)
		if err != nil {
			return nil, storage.WrapErr("all", "habitLogs", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
