package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"voicetask/internal/model"
	"voicetask/internal/task/repository"
	"voicetask/pkg/voiceparse"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)    {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)    {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)   {}

func TestCreateAndGetTask(t *testing.T) {
	repo := New(&mockLogger{})
	ctx := context.Background()

	due := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:    "Buy groceries",
		DueDate:  &due,
		DueTime:  &voiceparse.ClockTime{Hour: 17, Minute: 0},
		Category: "household",
		Priority: "high",
		Source:   model.SourceVoiceAPI,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if created.ID == "" {
		t.Error("expected generated ID")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	got, err := repo.GetTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Title != "Buy groceries" || got.Category != "household" || got.Priority != "high" {
		t.Errorf("unexpected task: %+v", got)
	}
	if got.DueTime == nil || got.DueTime.Hour != 17 {
		t.Errorf("expected due time 17:00, got %v", got.DueTime)
	}
}

func TestCreateTaskEmptyTitle(t *testing.T) {
	repo := New(&mockLogger{})

	_, err := repo.CreateTask(context.Background(), repository.CreateTaskOptions{Title: "   "})
	if !errors.Is(err, repository.ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
}

func TestGetTaskNotFound(t *testing.T) {
	repo := New(&mockLogger{})

	_, err := repo.GetTask(context.Background(), "missing")
	if !errors.Is(err, repository.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestListTasksFilterAndPaging(t *testing.T) {
	repo := New(&mockLogger{})
	ctx := context.Background()

	titles := []struct {
		title    string
		category string
	}{
		{"Call dentist", "health"},
		{"Pay rent", "finance"},
		{"Book checkup", "health"},
	}
	for _, tc := range titles {
		if _, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
			Title:    tc.title,
			Category: tc.category,
			Source:   model.SourceVoiceAPI,
		}); err != nil {
			t.Fatalf("CreateTask(%q): %v", tc.title, err)
		}
	}

	health, err := repo.ListTasks(ctx, repository.ListTasksOptions{Category: "health"})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(health) != 2 {
		t.Fatalf("expected 2 health tasks, got %d", len(health))
	}

	page, err := repo.ListTasks(ctx, repository.ListTasksOptions{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(page) != 1 {
		t.Errorf("expected 1 task on second page, got %d", len(page))
	}

	empty, err := repo.ListTasks(ctx, repository.ListTasksOptions{Offset: 10})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty page, got %d", len(empty))
	}
}

func TestDeleteTask(t *testing.T) {
	repo := New(&mockLogger{})
	ctx := context.Background()

	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{Title: "Temp", Source: model.SourceTelegram})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if err := repo.DeleteTask(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if err := repo.DeleteTask(ctx, created.ID); !errors.Is(err, repository.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound on second delete, got %v", err)
	}
}
