package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"voicetask/internal/model"
	"voicetask/internal/voice"
)

func (uc *implUseCase) Parse(ctx context.Context, sc model.Scope, input voice.ParseInput) (voice.ParseOutput, error) {
	ref := time.Now().In(uc.loc)
	if input.ReferenceTime != nil {
		ref = input.ReferenceTime.In(uc.loc)
	}

	result := uc.parser.Parse(input.Text, ref)

	now := time.Now().In(uc.loc)
	source := input.Source
	if source == "" {
		source = model.SourceVoiceAPI
	}
	sess := model.VoiceSession{
		ID:        uuid.NewString(),
		Phase:     model.PhaseConfirmation,
		Scope:     sc,
		Source:    source,
		Parse:     result,
		CreatedAt: now,
	}
	uc.sessions.Add(sess.ID, sess)

	uc.l.Infof(ctx, "voice: parsed transcript for user %s, session %s, confidence %.2f",
		sc.UserID, sess.ID, result.Confidence)

	return voice.ParseOutput{
		SessionID:   sess.ID,
		Phase:       sess.Phase,
		Result:      result,
		NeedsReview: result.Confidence < uc.minConfidence,
		ExpiresAt:   now.Add(uc.sessionTTL),
	}, nil
}

func (uc *implUseCase) Stats(ctx context.Context, input voice.StatsInput) (voice.StatsOutput, error) {
	return voice.StatsOutput{Stats: uc.parser.Stats(input.Text)}, nil
}
