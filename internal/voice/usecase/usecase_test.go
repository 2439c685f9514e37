package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"voicetask/internal/model"
	"voicetask/internal/task/repository"
	"voicetask/internal/task/repository/memory"
	"voicetask/internal/voice"
	"voicetask/pkg/gcalendar"
	"voicetask/pkg/voiceparse"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any) {}

// failingRepo always fails CreateTask to exercise the error path.
type failingRepo struct {
	repository.TaskRepository
}

func (r *failingRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	return model.Task{}, errors.New("backend down")
}

func newUseCase(repo repository.TaskRepository, calendar *gcalendar.Client) *implUseCase {
	if repo == nil {
		repo = memory.New(&mockLogger{})
	}
	return New(
		&mockLogger{},
		voiceparse.New(),
		repo,
		calendar,
		5*time.Minute,
		0.3,
		"personal",
		"primary",
		10,
		time.UTC,
	)
}

func TestParseOpensConfirmationSession(t *testing.T) {
	uc := newUseCase(nil, nil)
	sc := model.Scope{UserID: "u1"}
	ref := time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC) // Wednesday

	out, err := uc.Parse(context.Background(), sc, voice.ParseInput{
		Text:          "Remind me to buy groceries tomorrow at 5pm",
		ReferenceTime: &ref,
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if out.SessionID == "" {
		t.Error("expected session ID")
	}
	if out.Phase != model.PhaseConfirmation {
		t.Errorf("expected confirmation phase, got %s", out.Phase)
	}
	if out.NeedsReview {
		t.Errorf("high-confidence parse flagged for review (confidence %.2f)", out.Result.Confidence)
	}
	if out.Result.TaskTitle != "Buy groceries" {
		t.Errorf("unexpected title %q", out.Result.TaskTitle)
	}
	if out.Result.ParsedDate == nil || out.Result.ParsedDate.Day() != 14 {
		t.Errorf("expected due date March 14, got %v", out.Result.ParsedDate)
	}
	if out.ExpiresAt.Before(time.Now()) {
		t.Error("session should not be expired at creation")
	}
}

func TestParseLowConfidenceNeedsReview(t *testing.T) {
	uc := newUseCase(nil, nil)
	ref := time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC)

	out, err := uc.Parse(context.Background(), model.Scope{UserID: "u1"}, voice.ParseInput{
		Text:          "",
		ReferenceTime: &ref,
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !out.NeedsReview {
		t.Errorf("empty transcript should need review, confidence %.2f", out.Result.Confidence)
	}
	if out.Result.TaskTitle != voiceparse.PlaceholderTitle {
		t.Errorf("expected placeholder title, got %q", out.Result.TaskTitle)
	}
}

func TestConfirmCreatesTask(t *testing.T) {
	repo := memory.New(&mockLogger{})
	uc := newUseCase(repo, nil)
	sc := model.Scope{UserID: "u1"}
	ctx := context.Background()
	ref := time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC)

	parsed, err := uc.Parse(ctx, sc, voice.ParseInput{
		Text:          "urgent pay the electricity bill tomorrow at 9am",
		ReferenceTime: &ref,
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	out, err := uc.Confirm(ctx, sc, voice.ConfirmInput{SessionID: parsed.SessionID})
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if out.Task.ID == "" {
		t.Fatal("expected task ID")
	}
	if out.Task.Priority != "urgent" {
		t.Errorf("expected urgent priority, got %q", out.Task.Priority)
	}
	if out.Task.Category != "finance" {
		t.Errorf("expected finance category, got %q", out.Task.Category)
	}
	if out.Task.Source != model.SourceVoiceAPI {
		t.Errorf("expected voice_api source, got %q", out.Task.Source)
	}

	stored, err := repo.GetTask(ctx, out.Task.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if stored.Title != out.Task.Title {
		t.Errorf("stored title %q != returned %q", stored.Title, out.Task.Title)
	}

	// Session is consumed on confirm.
	if _, err := uc.Confirm(ctx, sc, voice.ConfirmInput{SessionID: parsed.SessionID}); !errors.Is(err, voice.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound on double confirm, got %v", err)
	}
}

func TestConfirmAppliesEditsAndDefaults(t *testing.T) {
	uc := newUseCase(nil, nil)
	sc := model.Scope{UserID: "u1"}
	ctx := context.Background()
	ref := time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC)

	parsed, err := uc.Parse(ctx, sc, voice.ParseInput{
		Text:          "water the plants",
		ReferenceTime: &ref,
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	title := "Water the balcony plants"
	out, err := uc.Confirm(ctx, sc, voice.ConfirmInput{
		SessionID: parsed.SessionID,
		Edits:     voiceparse.Override{TaskTitle: &title},
	})
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if out.Task.Title != title {
		t.Errorf("edit not applied, got %q", out.Task.Title)
	}
	if out.Task.Category != "personal" {
		t.Errorf("expected default category personal, got %q", out.Task.Category)
	}
	if out.Task.Priority != "medium" {
		t.Errorf("expected default priority medium, got %q", out.Task.Priority)
	}
}

func TestConfirmScopeMismatch(t *testing.T) {
	uc := newUseCase(nil, nil)
	ctx := context.Background()
	ref := time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC)

	parsed, err := uc.Parse(ctx, model.Scope{UserID: "owner"}, voice.ParseInput{
		Text:          "call mom tomorrow",
		ReferenceTime: &ref,
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	_, err = uc.Confirm(ctx, model.Scope{UserID: "intruder"}, voice.ConfirmInput{SessionID: parsed.SessionID})
	if !errors.Is(err, voice.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound for foreign scope, got %v", err)
	}
}

func TestConfirmRepositoryFailure(t *testing.T) {
	uc := newUseCase(&failingRepo{}, nil)
	sc := model.Scope{UserID: "u1"}
	ctx := context.Background()
	ref := time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC)

	parsed, err := uc.Parse(ctx, sc, voice.ParseInput{Text: "do a thing", ReferenceTime: &ref})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	_, err = uc.Confirm(ctx, sc, voice.ConfirmInput{SessionID: parsed.SessionID})
	if !errors.Is(err, voice.ErrTaskCreate) {
		t.Errorf("expected ErrTaskCreate, got %v", err)
	}
}

func TestCancel(t *testing.T) {
	uc := newUseCase(nil, nil)
	sc := model.Scope{UserID: "u1"}
	ctx := context.Background()
	ref := time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC)

	parsed, err := uc.Parse(ctx, sc, voice.ParseInput{Text: "call the plumber", ReferenceTime: &ref})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if err := uc.Cancel(ctx, sc, parsed.SessionID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if err := uc.Cancel(ctx, sc, parsed.SessionID); !errors.Is(err, voice.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after cancel, got %v", err)
	}
	if _, err := uc.Confirm(ctx, sc, voice.ConfirmInput{SessionID: parsed.SessionID}); !errors.Is(err, voice.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound confirm after cancel, got %v", err)
	}
}

func TestStats(t *testing.T) {
	uc := newUseCase(nil, nil)

	out, err := uc.Stats(context.Background(), voice.StatsInput{
		Text: "urgent call the doctor tomorrow at 3pm",
	})
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if out.Stats.WordCount != 7 {
		t.Errorf("expected 7 words, got %d", out.Stats.WordCount)
	}
	if !out.Stats.HasDateKeywords || !out.Stats.HasTimeKeywords || !out.Stats.HasPriorityKeywords {
		t.Errorf("expected all keyword classes present: %+v", out.Stats)
	}
}

type rewriteTransport struct {
	transport http.RoundTripper
	host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.host
	return t.transport.RoundTrip(req)
}

func TestConfirmCreatesCalendarReminder(t *testing.T) {
	var gotEvent map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotEvent); err != nil {
			t.Errorf("decode event: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"id":       "evt1",
			"htmlLink": "https://calendar.google.com/event?eid=evt1",
		}); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
	defer ts.Close()

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		transport: tsClient.Transport,
		host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	calendar, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("calendar client: %v", err)
	}

	uc := newUseCase(nil, calendar)
	sc := model.Scope{UserID: "u1"}
	ctx := context.Background()
	ref := time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC)

	parsed, err := uc.Parse(ctx, sc, voice.ParseInput{
		Text:          "dentist appointment tomorrow at 3pm",
		ReferenceTime: &ref,
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	out, err := uc.Confirm(ctx, sc, voice.ConfirmInput{SessionID: parsed.SessionID})
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if out.Task.CalendarLink != "https://calendar.google.com/event?eid=evt1" {
		t.Errorf("expected reminder link, got %q", out.Task.CalendarLink)
	}
	if gotEvent == nil {
		t.Fatal("no event sent to calendar API")
	}
	if summary, _ := gotEvent["summary"].(string); summary != out.Task.Title {
		t.Errorf("event summary %q != task title %q", summary, out.Task.Title)
	}
}

func TestConfirmSkipCalendar(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"id":"evt1"}`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer ts.Close()

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		transport: tsClient.Transport,
		host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	calendar, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("calendar client: %v", err)
	}

	uc := newUseCase(nil, calendar)
	sc := model.Scope{UserID: "u1"}
	ctx := context.Background()
	ref := time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC)

	parsed, err := uc.Parse(ctx, sc, voice.ParseInput{
		Text:          "dentist appointment tomorrow at 3pm",
		ReferenceTime: &ref,
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	out, err := uc.Confirm(ctx, sc, voice.ConfirmInput{SessionID: parsed.SessionID, SkipCalendar: true})
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if out.Task.CalendarLink != "" {
		t.Errorf("expected no calendar link, got %q", out.Task.CalendarLink)
	}
	if called {
		t.Error("calendar API should not be called with SkipCalendar")
	}
}
