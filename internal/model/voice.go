package model

import (
	"time"

	"voicetask/pkg/voiceparse"
)

// VoicePhase tags the capture session state machine. Transitions are strictly
// ordered: idle → listening → processing → confirmation → creating →
// success/error. Cancellation at any phase discards in-flight work; nothing
// is persisted before the creating phase completes.
type VoicePhase string

const (
	PhaseIdle         VoicePhase = "idle"
	PhaseListening    VoicePhase = "listening"
	PhaseProcessing   VoicePhase = "processing"
	PhaseConfirmation VoicePhase = "confirmation"
	PhaseCreating     VoicePhase = "creating"
	PhaseSuccess      VoicePhase = "success"
	PhaseError        VoicePhase = "error"
)

// VoiceSession is the tagged state of one capture flow. Payload fields are
// only meaningful for the phases that set them: Parse from confirmation
// onward, TaskID on success, ErrMessage on error.
type VoiceSession struct {
	ID     string
	Phase  VoicePhase
	Scope  Scope
	Source TaskSource

	Parse      voiceparse.ParsedVoiceInput
	TaskID     string
	ErrMessage string

	CreatedAt time.Time
}
