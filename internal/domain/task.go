package domain

import "time"

const (
	TitleMaxLen       = 200
	DescriptionMaxLen = 1000
)

type Task struct {
	ID          int64     `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Completed   bool      `json:"completed" db:"completed"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// TaskFilter narrows a task listing by completion state.
type TaskFilter string

const (
	FilterAll       TaskFilter = "all"
	FilterPending   TaskFilter = "pending"
	FilterCompleted TaskFilter = "completed"
)

// ParseTaskFilter maps the status_filter query value to a TaskFilter.
// An empty value means "all"; anything unrecognized is rejected.
func ParseTaskFilter(s string) (TaskFilter, bool) {
	switch s {
	case "", string(FilterAll):
		return FilterAll, true
	case string(FilterPending):
		return FilterPending, true
	case string(FilterCompleted):
		return FilterCompleted, true
	}
	return FilterAll, false
}
