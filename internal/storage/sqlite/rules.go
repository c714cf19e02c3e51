package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/daygrid/daygrid/internal/models"
	"github.com/daygrid/daygrid/internal/storage"
)

const ruleColumns = `id, mode, title, planned_start, planned_finish, days, priority, active, created_at, updated_at`

func scanRule(row rowScanner) (models.RecurringRule, error) {
	var r models.RecurringRule
	var days, priority string
	err := row.Scan(&r.ID, &r.Mode, &r.Title, &r.PlannedStart, &r.PlannedFinish, &days, &priority, &r.Active, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return models.RecurringRule{}, err
	}
	r.Priority = models.Priority(priority)
	if days != "" {
		if err := json.Unmarshal([]byte(days), &r.Days); err != nil {
			return models.RecurringRule{}, fmt.Errorf("failed to parse days for rule %s: %w", r.ID, err)
		}
	}
	return r, nil
}

func (s *Store) GetRule(id string) (models.RecurringRule, error) {
	row := s.db.QueryRow(`SELECT `+ruleColumns+` FROM recurring WHERE id = ?`, id)
	r, err := scanRule(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RecurringRule{}, storage.ErrNotFound
	}
	if err != nil {
		return models.RecurringRule{}, storage.WrapErr("get", "recurring", err)
	}
	return r, nil
}

func (s *Store) ListRules(mode string) ([]models.RecurringRule, error) {
	rows, err := s.db.Query(`SELECT `+ruleColumns+` FROM recurring WHERE mode = ?`, mode)
	if err != nil {
		return nil, storage.WrapErr("list", "recurring", err)
	}
	defer rows.Close()

	var rules []models.RecurringRule
	for rows.Next() {
		r, err := scanRule(rows)
		if err != nil {
			return nil, storage.WrapErr("list", "recurring", err)
		}
		rules = append(rules, r)
	}
	return rules, rows.Err()
}

func (s *Store) PutRule(r models.RecurringRule) error {
	days, err := json.Marshal(r.Days)
	if err != nil {
		return storage.WrapErr("put", "recurring", fmt.Errorf("failed to marshal days: %w", err))
	}

	return s.inTx("put", "recurring", func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO recurring (id, mode, title, planned_start, planned_finish, days, priority, active, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				mode = excluded.mode,
				title = excluded.title,
				planned_start = excluded.planned_start,
				planned_finish = excluded.planned_finish,
				days = excluded.days,
				priority = excluded.priority,
				active = excluded.active,
				created_at = excluded.created_at,
				updated_at = excluded.updated_at`,
			r.ID, r.Mode, r.Title, r.PlannedStart, r.PlannedFinish, string(days), string(r.Priority), r.Active, r.CreatedAt, r.UpdatedAt)
		return err
	})
}

func (s *Store) DeleteRule(id string) error {
	return s.inTx("delete", "recurring", func(tx *sql.Tx) error {
		_, err := tx.Exec(`DELETE FROM recurring WHERE id = ?`, id)
		return err
	})
}

func (s *Store) AllRules() ([]models.RecurringRule, error) {
	rows, err := s.db.Query(`SELECT ` + ruleColumns + ` FROM recurring`)
	if err != nil {
		return nil, storage.WrapErr("all", "recurring", err)
	}
	defer rows.Close()

	var rules []models.RecurringRule
	for rows.Next() {
		r, err := scanRule(rows)
		if err != nil {
			return nil, storage.WrapErr("all", "recurring", err)
		}
		rules = append(rules, r)
	}
	return rules, rows.Err()
}
