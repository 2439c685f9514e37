package repository

import (
	"context"

	"voicetask/internal/model"
)

// TaskRepository is the interface for task persistence. The voice usecase
// only ever writes fully-formed tasks after user confirmation.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}
