package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"voicetask/internal/model"
	"voicetask/internal/task/repository"
	"voicetask/pkg/gcalendar"
	pkgLog "voicetask/pkg/log"
	"voicetask/pkg/voiceparse"
)

// maxPendingSessions bounds the pending-confirmation cache; least recently
// used sessions are evicted first once full.
const maxPendingSessions = 1024

type implUseCase struct {
	l        pkgLog.Logger
	parser   *voiceparse.Parser
	repo     repository.TaskRepository
	calendar *gcalendar.Client // nil disables reminder creation

	sessions *expirable.LRU[string, model.VoiceSession]

	sessionTTL      time.Duration
	minConfidence   float64
	defaultCategory string
	calendarID      string
	popupMinutes    int64
	loc             *time.Location
}

// New creates a new voice UseCase instance.
func New(
	l pkgLog.Logger,
	parser *voiceparse.Parser,
	repo repository.TaskRepository,
	calendar *gcalendar.Client,
	sessionTTL time.Duration,
	minConfidence float64,
	defaultCategory string,
	calendarID string,
	popupMinutes int64,
	loc *time.Location,
) *implUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &implUseCase{
		l:               l,
		parser:          parser,
		repo:            repo,
		calendar:        calendar,
		sessions:        expirable.NewLRU[string, model.VoiceSession](maxPendingSessions, nil, sessionTTL),
		sessionTTL:      sessionTTL,
		minConfidence:   minConfidence,
		defaultCategory: defaultCategory,
		calendarID:      calendarID,
		popupMinutes:    popupMinutes,
		loc:             loc,
	}
}
