package voice

import (
	"time"

	"voicetask/internal/model"
	"voicetask/pkg/voiceparse"
)

// ParseInput is the input for parsing one voice transcript.
type ParseInput struct {
	Text string

	// ReferenceTime anchors relative expressions like "tomorrow". Nil means
	// the current wall clock in the configured timezone.
	ReferenceTime *time.Time

	Source model.TaskSource
}

// ParseOutput is the parse result plus the pending session awaiting
// confirmation.
type ParseOutput struct {
	SessionID string
	Phase     model.VoicePhase
	Result    voiceparse.ParsedVoiceInput

	// NeedsReview is set when the overall confidence falls below the
	// configured threshold; clients should force manual review then.
	NeedsReview bool

	ExpiresAt time.Time
}

// ConfirmInput finalizes a pending session into a task. Edits override the
// parsed fields the user corrected on the confirmation screen.
type ConfirmInput struct {
	SessionID string
	Edits     voiceparse.Override

	// SkipCalendar suppresses reminder creation even when a due date is set.
	SkipCalendar bool
}

// ConfirmOutput is the created task.
type ConfirmOutput struct {
	Task model.Task
}

// StatsInput is the input for transcript diagnostics.
type StatsInput struct {
	Text string
}

// StatsOutput is the diagnostic summary of a transcript.
type StatsOutput struct {
	Stats voiceparse.Stats
}
