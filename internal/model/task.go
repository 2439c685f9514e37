package model

import (
	"time"

	"voicetask/pkg/voiceparse"
)

// TaskSource records which delivery produced a task.
type TaskSource string

const (
	SourceVoiceAPI TaskSource = "voice_api"
	SourceTelegram TaskSource = "telegram"
)

// Task is a persisted task built from a confirmed voice parse.
// DueDate and DueTime are kept separate so the time of day survives
// round-trips exactly; DueDate is midnight in the capture timezone.
type Task struct {
	ID          string
	Title       string
	Description string
	DueDate     *time.Time
	DueTime     *voiceparse.ClockTime
	Category    string
	Priority    string // urgent, high, medium, low

	// CalendarLink is the reminder event deep link, empty when no
	// calendar integration ran.
	CalendarLink string

	Source    TaskSource
	CreatedAt time.Time
}
