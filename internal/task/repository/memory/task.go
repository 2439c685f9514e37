package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"voicetask/internal/model"
	"voicetask/internal/task/repository"
	pkgLog "voicetask/pkg/log"
)

type implRepository struct {
	mu    sync.RWMutex
	tasks map[string]model.Task
	l     pkgLog.Logger
}

// New creates an in-memory task repository.
func New(l pkgLog.Logger) repository.TaskRepository {
	return &implRepository{
		tasks: make(map[string]model.Task),
		l:     l,
	}
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if strings.TrimSpace(opt.Title) == "" {
		return model.Task{}, repository.ErrEmptyTitle
	}

	t := model.Task{
		ID:           uuid.NewString(),
		Title:        opt.Title,
		Description:  opt.Description,
		DueDate:      opt.DueDate,
		DueTime:      opt.DueTime,
		Category:     opt.Category,
		Priority:     opt.Priority,
		CalendarLink: opt.CalendarLink,
		Source:       opt.Source,
		CreatedAt:    time.Now().UTC(),
	}

	r.mu.Lock()
	r.tasks[t.ID] = t
	r.mu.Unlock()

	r.l.Debugf(ctx, "memory repository: created task %s (%q)", t.ID, t.Title)
	return t, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	r.mu.RLock()
	t, ok := r.tasks[id]
	r.mu.RUnlock()
	if !ok {
		return model.Task{}, repository.ErrTaskNotFound
	}
	return t, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	limit := opt.Limit
	if limit == 0 {
		limit = 20
	}

	r.mu.RLock()
	all := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if opt.Category != "" && !strings.EqualFold(t.Category, opt.Category) {
			continue
		}
		all = append(all, t)
	}
	r.mu.RUnlock()

	// Newest first, ID as tie-break so pagination is stable.
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})

	if opt.Offset >= len(all) {
		return []model.Task{}, nil
	}
	all = all[opt.Offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return repository.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}
