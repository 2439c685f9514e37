package repository

import (
	"time"

	"voicetask/internal/model"
	"voicetask/pkg/voiceparse"
)

// CreateTaskOptions holds the parameters for creating a task.
type CreateTaskOptions struct {
	Title       string
	Description string
	DueDate     *time.Time
	DueTime     *voiceparse.ClockTime
	Category    string
	Priority    string

	CalendarLink string
	Source       model.TaskSource
}

// ListTasksOptions holds the parameters for listing tasks.
type ListTasksOptions struct {
	Category string // filter by category name, empty for all
	Limit    int    // max number of results (default 20)
	Offset   int    // pagination offset
}
