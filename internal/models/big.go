package models

// BigTask is a long-horizon item tracked per mode without date partitioning.
type BigTask struct {
	ID        string   `json:"id"`
	Mode      string   `json:"mode"`
	Title     string   `json:"title"`
	DueDate   string   `json:"dueDate,omitempty"` // YYYY-MM-DD
	Priority  Priority `json:"priority,omitempty"`
	Pinned    bool     `json:"pinned"`
	Done      bool     `json:"done"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}
