package voiceparse

import (
	"fmt"
	"time"
)

// Priority is a task priority level extracted from an utterance.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ClockTime is a local time of day, independent of any date.
type ClockTime struct {
	Hour   int `json:"hour"`   // 0-23
	Minute int `json:"minute"` // 0-59
}

// String formats the time as HH:MM.
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ParsedVoiceInput is the structured result of parsing one transcript.
// It is a value: the parser constructs it once and callers produce edited
// copies via With rather than mutating fields in place.
type ParsedVoiceInput struct {
	OriginalText string `json:"original_text"`

	// TaskTitle is never empty for non-empty input. If segmentation fails
	// it falls back to a truncated copy of the cleaned transcript.
	TaskTitle   string `json:"task_title"`
	Description string `json:"description,omitempty"`

	// ParsedDate is the resolved calendar date at midnight in the reference
	// instant's location, nil when no date expression was found.
	ParsedDate *time.Time `json:"parsed_date,omitempty"`
	ParsedTime *ClockTime `json:"parsed_time,omitempty"`

	// SuggestedCategory is empty when no trigger word matched. The parser
	// never substitutes a default category; that is a caller policy.
	SuggestedCategory string    `json:"suggested_category,omitempty"`
	SuggestedPriority *Priority `json:"suggested_priority,omitempty"`

	// Confidence is derived from the fields above, never set independently.
	Confidence float64 `json:"confidence"`

	// Per-field confidences are nil exactly when the paired field is unset.
	DateConfidence     *float64 `json:"date_confidence,omitempty"`
	TimeConfidence     *float64 `json:"time_confidence,omitempty"`
	CategoryConfidence *float64 `json:"category_confidence,omitempty"`
	PriorityConfidence *float64 `json:"priority_confidence,omitempty"`

	// Alternatives lists secondary interpretations (competing date readings),
	// most likely first.
	Alternatives []string `json:"alternatives"`
}

// Override carries user edits applied on top of a parse result.
// Nil fields keep the parsed value.
type Override struct {
	TaskTitle         *string
	Description       *string
	ParsedDate        *time.Time
	ParsedTime        *ClockTime
	SuggestedCategory *string
	SuggestedPriority *Priority
}

// With returns a copy of v with the non-nil override fields applied.
// Confidence metrics describe the original parse and are left untouched.
func (v ParsedVoiceInput) With(o Override) ParsedVoiceInput {
	out := v
	if o.TaskTitle != nil {
		out.TaskTitle = *o.TaskTitle
	}
	if o.Description != nil {
		out.Description = *o.Description
	}
	if o.ParsedDate != nil {
		d := *o.ParsedDate
		out.ParsedDate = &d
	}
	if o.ParsedTime != nil {
		t := *o.ParsedTime
		out.ParsedTime = &t
	}
	if o.SuggestedCategory != nil {
		out.SuggestedCategory = *o.SuggestedCategory
	}
	if o.SuggestedPriority != nil {
		p := *o.SuggestedPriority
		out.SuggestedPriority = &p
	}
	return out
}

// Stats is the diagnostic summary returned by Parser.Stats. It is used for
// tuning and testing, not by the parse pipeline itself.
type Stats struct {
	WordCount           int     `json:"word_count"`
	HasDateKeywords     bool    `json:"has_date_keywords"`
	HasTimeKeywords     bool    `json:"has_time_keywords"`
	HasPriorityKeywords bool    `json:"has_priority_keywords"`
	ComplexityScore     float64 `json:"complexity_score"`
}
