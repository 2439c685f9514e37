package http

import (
	"errors"
	"time"

	"voicetask/internal/model"
	"voicetask/internal/voice"
	"voicetask/pkg/response"
	"voicetask/pkg/voiceparse"
)

var (
	errBadDate     = errors.New("due_date must be formatted YYYY-MM-DD")
	errBadTime     = errors.New("due_time must be formatted HH:MM")
	errBadPriority = errors.New("priority must be one of urgent, high, medium, low")
)

// --- Request DTOs ---

type parseReq struct {
	// Text may be empty; the parser degrades to a low-confidence placeholder
	// instead of rejecting the request.
	Text string `json:"text"`

	// ReferenceTime pins "tomorrow"-style expressions for replayable
	// requests; RFC 3339. Empty means the server clock.
	ReferenceTime string `json:"reference_time"`
}

func (r parseReq) validate() error {
	if r.ReferenceTime == "" {
		return nil
	}
	_, err := time.Parse(time.RFC3339, r.ReferenceTime)
	return err
}

func (r parseReq) toInput() voice.ParseInput {
	in := voice.ParseInput{Text: r.Text, Source: model.SourceVoiceAPI}
	if r.ReferenceTime != "" {
		if ref, err := time.Parse(time.RFC3339, r.ReferenceTime); err == nil {
			in.ReferenceTime = &ref
		}
	}
	return in
}

type confirmReq struct {
	SessionID string `json:"session_id" binding:"required"`

	// Optional user edits from the confirmation screen. Omitted fields keep
	// the parsed values.
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"` // YYYY-MM-DD
	DueTime     *string `json:"due_time"` // HH:MM, 24h
	Category    *string `json:"category"`
	Priority    *string `json:"priority"` // urgent, high, medium, low

	SkipCalendar bool `json:"skip_calendar"`
}

func (r confirmReq) validate() error {
	if r.DueDate != nil {
		if _, err := time.Parse(response.DateFormat, *r.DueDate); err != nil {
			return errBadDate
		}
	}
	if r.DueTime != nil {
		if _, err := time.Parse("15:04", *r.DueTime); err != nil {
			return errBadTime
		}
	}
	if r.Priority != nil {
		switch voiceparse.Priority(*r.Priority) {
		case voiceparse.PriorityUrgent, voiceparse.PriorityHigh, voiceparse.PriorityMedium, voiceparse.PriorityLow:
		default:
			return errBadPriority
		}
	}
	return nil
}

func (r confirmReq) toInput() voice.ConfirmInput {
	in := voice.ConfirmInput{
		SessionID:    r.SessionID,
		SkipCalendar: r.SkipCalendar,
		Edits: voiceparse.Override{
			TaskTitle:         r.Title,
			Description:       r.Description,
			SuggestedCategory: r.Category,
		},
	}
	if r.DueDate != nil {
		if d, err := time.Parse(response.DateFormat, *r.DueDate); err == nil {
			in.Edits.ParsedDate = &d
		}
	}
	if r.DueTime != nil {
		if t, err := time.Parse("15:04", *r.DueTime); err == nil {
			in.Edits.ParsedTime = &voiceparse.ClockTime{Hour: t.Hour(), Minute: t.Minute()}
		}
	}
	if r.Priority != nil {
		p := voiceparse.Priority(*r.Priority)
		in.Edits.SuggestedPriority = &p
	}
	return in
}

type statsReq struct {
	Text string `form:"text"`
}

func (r statsReq) validate() error { return nil }

// --- Response DTOs ---

type parseResp struct {
	SessionID   string                      `json:"session_id"`
	Phase       string                      `json:"phase"`
	NeedsReview bool                        `json:"needs_review"`
	ExpiresAt   time.Time                   `json:"expires_at"`
	Result      voiceparse.ParsedVoiceInput `json:"result"`
}

func (h *handler) newParseResp(o voice.ParseOutput) parseResp {
	return parseResp{
		SessionID:   o.SessionID,
		Phase:       string(o.Phase),
		NeedsReview: o.NeedsReview,
		ExpiresAt:   o.ExpiresAt,
		Result:      o.Result,
	}
}

type taskResp struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	DueDate      string    `json:"due_date,omitempty"` // YYYY-MM-DD
	DueTime      string    `json:"due_time,omitempty"` // HH:MM
	Category     string    `json:"category"`
	Priority     string    `json:"priority"`
	CalendarLink string    `json:"calendar_link,omitempty"`
	Source       string    `json:"source"`
	CreatedAt    time.Time `json:"created_at"`
}

func (h *handler) newTaskResp(t model.Task) taskResp {
	out := taskResp{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Category:     t.Category,
		Priority:     t.Priority,
		CalendarLink: t.CalendarLink,
		Source:       string(t.Source),
		CreatedAt:    t.CreatedAt,
	}
	if t.DueDate != nil {
		out.DueDate = t.DueDate.Format(response.DateFormat)
	}
	if t.DueTime != nil {
		out.DueTime = t.DueTime.String()
	}
	return out
}

type confirmResp struct {
	Task taskResp `json:"task"`
}

type statsResp struct {
	Stats voiceparse.Stats `json:"stats"`
}
