package models

import "fmt"

// Note is the free-text blob for one (date, mode), upserted in place.
type Note struct {
	Key       string `json:"key"` // date|mode
	Date      string `json:"date"`
	Mode      string `json:"mode"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// NoteKey builds the composite primary key for a day note.
func NoteKey(date, mode string) string {
	return fmt.Sprintf("%s|%s", date, mode)
}
