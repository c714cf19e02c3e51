package backup

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/daygrid/daygrid/internal/constants"
	"github.com/daygrid/daygrid/internal/models"
	"github.com/daygrid/daygrid/internal/storage"
	"github.com/daygrid/daygrid/internal/utils"
)

// Archive is the full-collection JSON export format. Records are carried
// verbatim; importing an archive replaces the current data with exactly
// what was exported.
type Archive struct {
	Version    string                 `json:"version"`
	ExportedAt string                 `json:"exportedAt"`
	Tasks      []models.Task          `json:"tasks"`
	Rules      []models.RecurringRule `json:"recurring"`
	Habits     []models.Habit         `json:"habits"`
	HabitLogs  []models.HabitLog      `json:"habitLogs"`
	BigTasks   []models.BigTask       `json:"big"`
	Notes      []models.Note          `json:"notes"`
}

// Manager exports and imports archives against a store.
type Manager struct {
	store storage.Provider
}

func NewManager(store storage.Provider) *Manager {
	return &Manager{store: store}
}

// Export reads every collection and packs it into an archive.
func (m *Manager) Export() (*Archive, error) {
	a := &Archive{
		Version:    constants.Version,
		ExportedAt: utils.Timestamp(),
	}

	var err error
	if a.Tasks, err = m.store.AllTasks(); err != nil {
		return nil, fmt.Errorf("failed to export tasks: %w", err)
	}
	if a.Rules, err = m.store.AllRules(); err != nil {
		return nil, fmt.Errorf("failed to export recurring rules: %w", err)
	}
	if a.Habits, err = m.store.AllHabits(); err != nil {
		return nil, fmt.Errorf("failed to export habits: %w", err)
	}
	if a.HabitLogs, err = m.store.AllHabitLogs(); err != nil {
		return nil, fmt.Errorf("failed to export habit logs: %w", err)
	}
	if a.BigTasks, err = m.store.AllBigTasks(); err != nil {
		return nil, fmt.Errorf("failed to export big tasks: %w", err)
	}
	if a.Notes, err = m.store.AllNotes(); err != nil {
		return nil, fmt.Errorf("failed to export notes: %w", err)
	}
	return a, nil
}

// ExportToFile writes the archive as indented JSON.
func (m *Manager) ExportToFile(path string) (*Archive, error) {
	a, err := m.Export()
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode archive: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return nil, fmt.Errorf("failed to write archive: %w", err)
	}
	return a, nil
}

// Import replaces all current data with the archive's contents. The reset
// and the record writes are separate transactions; a failure mid-import
// leaves a partial restore, so callers should keep the archive file until
// the import reports success.
func (m *Manager) Import(a *Archive) error {
	if err := m.store.Reset(); err != nil {
		return fmt.Errorf("failed to clear existing data: %w", err)
	}

	for _, t := range a.Tasks {
		if err := m.store.PutTask(t); err != nil {
			return fmt.Errorf("failed to import task %s: %w", t.ID, err)
		}
	}
	for _, r := range a.Rules {
		if err := m.store.PutRule(r); err != nil {
			return fmt.Errorf("failed to import rule %s: %w", r.ID, err)
		}
	}
	for _, h := range a.Habits {
		if err := m.store.PutHabit(h); err != nil {
			return fmt.Errorf("failed to import habit %s: %w", h.ID, err)
		}
	}
	for _, l := range a.HabitLogs {
		if err := m.store.PutHabitLog(l); err != nil {
			return fmt.Errorf("failed to import habit log %s: %w", l.Key, err)
		}
	}
	for _, b := range a.BigTasks {
		if err := m.store.PutBigTask(b); err != nil {
			return fmt.Errorf("failed to import big task %s: %w", b.ID, err)
		}
	}
	for _, n := range a.Notes {
		if err := m.store.PutNote(n); err != nil {
			return fmt.Errorf("failed to import note %s: %w", n.Key, err)
		}
	}
	return nil
}

// ImportFromFile reads an archive file and imports it.
func (m *Manager) ImportFromFile(path string) (*Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive: %w", err)
	}

	var a Archive
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to parse archive: %w", err)
	}
	if err := m.Import(&a); err != nil {
		return nil, err
	}
	return &a, nil
}
