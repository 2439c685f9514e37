package voice

import (
	"context"

	"voicetask/internal/model"
)

// UseCase defines the business logic interface for the voice capture domain.
type UseCase interface {
	// Parse runs the transcript through the parser and opens a pending
	// session that awaits confirmation or cancellation.
	Parse(ctx context.Context, sc model.Scope, input ParseInput) (ParseOutput, error)

	// Confirm turns a pending session into a persisted task, applying any
	// user edits and optionally creating a calendar reminder.
	Confirm(ctx context.Context, sc model.Scope, input ConfirmInput) (ConfirmOutput, error)

	// Cancel discards a pending session without side effects.
	Cancel(ctx context.Context, sc model.Scope, sessionID string) error

	// Stats computes transcript diagnostics without opening a session.
	Stats(ctx context.Context, input StatsInput) (StatsOutput, error)
}
