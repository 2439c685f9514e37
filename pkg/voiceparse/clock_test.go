package voiceparse_test

import (
	"testing"

	"voicetask/pkg/voiceparse"
)

func TestParseTimeExpressions(t *testing.T) {
	p := voiceparse.New()

	tests := []struct {
		name string
		text string
		want voiceparse.ClockTime
	}{
		{"meridiem no minutes", "call john at 3pm", voiceparse.ClockTime{Hour: 15}},
		{"meridiem with minutes", "call john at 3:30pm", voiceparse.ClockTime{Hour: 15, Minute: 30}},
		{"detached meridiem", "call john at 9 am", voiceparse.ClockTime{Hour: 9}},
		{"dotted meridiem", "call john at 9 A.M.", voiceparse.ClockTime{Hour: 9}},
		{"24 hour form", "backup the files 15:45", voiceparse.ClockTime{Hour: 15, Minute: 45}},
		{"noon", "lunch with sarah at noon", voiceparse.ClockTime{Hour: 12}},
		{"midnight", "deploy the release at midnight", voiceparse.ClockTime{Hour: 0}},
		{"half past", "pick up the kids at half past 3 pm", voiceparse.ClockTime{Hour: 15, Minute: 30}},
		{"quarter past heuristic", "coffee quarter past 9", voiceparse.ClockTime{Hour: 9, Minute: 15}},
		{"quarter to", "leave quarter to five pm", voiceparse.ClockTime{Hour: 16, Minute: 45}},
		{"quarter to one wraps", "leave quarter to 1 pm", voiceparse.ClockTime{Hour: 12, Minute: 45}},
		{"bare hour anchored by at", "dinner at 7", voiceparse.ClockTime{Hour: 19}},
		{"bare hour anchored by oclock", "dinner 7 o'clock", voiceparse.ClockTime{Hour: 19}},
		{"spelled hour", "dinner at seven", voiceparse.ClockTime{Hour: 19}},
		{"morning bucket", "standup in the morning", voiceparse.ClockTime{Hour: 9}},
		{"evening bucket", "review notes in the evening", voiceparse.ClockTime{Hour: 18}},
		{"tonight", "watch the game tonight", voiceparse.ClockTime{Hour: 21}},
		{"early modifier", "jog early morning", voiceparse.ClockTime{Hour: 7}},
		{"late modifier", "sync late afternoon", voiceparse.ClockTime{Hour: 16}},
		{"bare hour plus bucket", "dinner at 7 in the evening", voiceparse.ClockTime{Hour: 19}},
		{"business hours small hour leans pm", "gym at 5", voiceparse.ClockTime{Hour: 17}},
		{"business hours large hour leans am", "gym at 10", voiceparse.ClockTime{Hour: 10}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := p.Parse(tc.text, refWednesday)
			if out.ParsedTime == nil {
				t.Fatalf("Parse(%q): no time resolved", tc.text)
			}
			if *out.ParsedTime != tc.want {
				t.Errorf("Parse(%q) time = %s, want %s", tc.text, out.ParsedTime, tc.want)
			}
		})
	}
}

func TestParseTimeNotRecognized(t *testing.T) {
	p := voiceparse.New()

	// A bare number without "at" or "o'clock" is a count, not a time.
	tests := []string{
		"buy 2 apples",
		"read three chapters",
		"water the plants",
	}
	for _, text := range tests {
		out := p.Parse(text, refWednesday)
		if out.ParsedTime != nil {
			t.Errorf("Parse(%q) time = %v, want none", text, out.ParsedTime)
		}
	}
}

func TestParseTimeConfidenceOrdering(t *testing.T) {
	p := voiceparse.New()

	exact := p.Parse("call john at 3:30pm", refWednesday)
	bucket := p.Parse("call john in the evening", refWednesday)
	bare := p.Parse("call john at 7", refWednesday)

	for _, out := range []voiceparse.ParsedVoiceInput{exact, bucket, bare} {
		if out.TimeConfidence == nil {
			t.Fatalf("Parse(%q): no time confidence", out.OriginalText)
		}
	}
	if !(*exact.TimeConfidence > *bucket.TimeConfidence && *bucket.TimeConfidence > *bare.TimeConfidence) {
		t.Errorf("expected exact (%.2f) > bucket (%.2f) > bare heuristic (%.2f)",
			*exact.TimeConfidence, *bucket.TimeConfidence, *bare.TimeConfidence)
	}
}

func TestParseTimeMergedConfidence(t *testing.T) {
	p := voiceparse.New()

	out := p.Parse("dinner at 7 in the evening", refWednesday)
	if out.TimeConfidence == nil || *out.TimeConfidence != 0.85 {
		t.Errorf("merged bare hour and bucket confidence = %v, want 0.85", out.TimeConfidence)
	}
}
