package voiceparse_test

import (
	"testing"

	"voicetask/pkg/voiceparse"
)

func TestParseTitleSegmentation(t *testing.T) {
	p := voiceparse.New()

	tests := []struct {
		name      string
		text      string
		wantTitle string
		wantDesc  string
	}{
		{
			name:      "command prefix stripped",
			text:      "Remind me to water the plants",
			wantTitle: "Water the plants",
		},
		{
			name:      "longer command prefix stripped",
			text:      "set a reminder for me to feed the cat",
			wantTitle: "Feed the cat",
		},
		{
			name:      "dont forget prefix",
			text:      "don't forget to charge the camera",
			wantTitle: "Charge the camera",
		},
		{
			name:      "fillers dropped",
			text:      "um call uh the doctor",
			wantTitle: "Call the doctor",
		},
		{
			name:      "filler phrase dropped",
			text:      "you know book the flights",
			wantTitle: "Book the flights",
		},
		{
			name:      "clause boundary splits description",
			text:      "call the vet about vaccine records",
			wantTitle: "Call the vet",
			wantDesc:  "vaccine records",
		},
		{
			name:      "dangling connective dropped",
			text:      "submit the report by friday",
			wantTitle: "Submit the report",
		},
		{
			name:      "trailing punctuation trimmed",
			text:      "Urgent: call the bank!",
			wantTitle: "Call the bank",
		},
		{
			name:      "date and time excised",
			text:      "dentist appointment tomorrow at 3pm",
			wantTitle: "Dentist appointment",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := p.Parse(tc.text, refWednesday)
			if out.TaskTitle != tc.wantTitle {
				t.Errorf("Parse(%q) title = %q, want %q", tc.text, out.TaskTitle, tc.wantTitle)
			}
			if out.Description != tc.wantDesc {
				t.Errorf("Parse(%q) description = %q, want %q", tc.text, out.Description, tc.wantDesc)
			}
		})
	}
}

func TestParseFallbackTitle(t *testing.T) {
	p := voiceparse.New()

	// Everything is consumed by resolvers; the title falls back to the
	// cleaned transcript.
	out := p.Parse("tomorrow at 5pm", refWednesday)
	if out.TaskTitle != "Tomorrow at 5pm" {
		t.Errorf("fallback title = %q, want %q", out.TaskTitle, "Tomorrow at 5pm")
	}
	if out.ParsedDate == nil || out.ParsedTime == nil {
		t.Error("date and time should still resolve")
	}
}

func TestParseFallbackTitleTruncates(t *testing.T) {
	p := voiceparse.New()

	// Only stopwords survive excision, so the fallback kicks in and keeps
	// the first seven words.
	out := p.Parse("it is a to the of and or my me", refWednesday)
	if out.TaskTitle == "" || out.TaskTitle == voiceparse.PlaceholderTitle {
		t.Fatalf("expected fallback title, got %q", out.TaskTitle)
	}
	if got, want := out.TaskTitle, "It is a to the of and"; got != want {
		t.Errorf("fallback title = %q, want %q", got, want)
	}
}
