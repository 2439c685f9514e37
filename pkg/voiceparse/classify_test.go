package voiceparse_test

import (
	"testing"

	"voicetask/pkg/voiceparse"
)

func TestParseCategoryClassification(t *testing.T) {
	p := voiceparse.New()

	tests := []struct {
		name     string
		text     string
		want     string
		wantConf float64
	}{
		{"single trigger", "email john", "work", 0.8},
		{"multiple distinct triggers", "buy groceries for the week", "household", 0.85},
		{"tie breaks in declared order", "buy groceries and pay the bill", "household", 0.65},
		{"no trigger", "ponder the meaning of life", "", 0},
		{"repeated trigger counts once", "pay and pay again", "finance", 0.8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := p.Parse(tc.text, refWednesday)
			if out.SuggestedCategory != tc.want {
				t.Errorf("Parse(%q) category = %q, want %q", tc.text, out.SuggestedCategory, tc.want)
			}
			if tc.want == "" {
				if out.CategoryConfidence != nil {
					t.Errorf("Parse(%q) unexpected category confidence", tc.text)
				}
				return
			}
			if out.CategoryConfidence == nil || *out.CategoryConfidence != tc.wantConf {
				t.Errorf("Parse(%q) category confidence = %v, want %.2f", tc.text, out.CategoryConfidence, tc.wantConf)
			}
		})
	}
}

func TestParseCategoryWholeWordOnly(t *testing.T) {
	p := voiceparse.New()

	// "billboard" must not match the "bill" trigger by substring.
	out := p.Parse("design the billboard", refWednesday)
	if out.SuggestedCategory == "finance" {
		t.Errorf("substring matched a trigger: %q", out.SuggestedCategory)
	}
}

func TestParseCategoryFuzzyMatching(t *testing.T) {
	strict := voiceparse.New()
	fuzzy := voiceparse.New(voiceparse.WithFuzzyMatching(0.85))

	// STT mishearing of "medicine".
	text := "pick up the medecine"

	if out := strict.Parse(text, refWednesday); out.SuggestedCategory != "" {
		t.Errorf("strict parser matched %q from a misspelling", out.SuggestedCategory)
	}

	out := fuzzy.Parse(text, refWednesday)
	if out.SuggestedCategory != "health" {
		t.Fatalf("fuzzy parser category = %q, want health", out.SuggestedCategory)
	}
	if out.CategoryConfidence == nil || *out.CategoryConfidence > 0.7 {
		t.Errorf("phonetic-only match confidence = %v, want <= 0.7", out.CategoryConfidence)
	}
}

func TestParsePriorityClassification(t *testing.T) {
	p := voiceparse.New()

	tests := []struct {
		name string
		text string
		want *voiceparse.Priority
	}{
		{"urgent word", "urgent call the bank", prioPtr(voiceparse.PriorityUrgent)},
		{"asap", "fix the heater asap", prioPtr(voiceparse.PriorityUrgent)},
		{"multi word urgent", "do it right away", prioPtr(voiceparse.PriorityUrgent)},
		{"high", "important sign the contract", prioPtr(voiceparse.PriorityHigh)},
		{"high phrase", "high priority review the lease", prioPtr(voiceparse.PriorityHigh)},
		{"low phrase", "no rush organize the garage", prioPtr(voiceparse.PriorityLow)},
		{"low word", "clean the attic whenever", prioPtr(voiceparse.PriorityLow)},
		{"urgent outranks low", "urgent but no rush", prioPtr(voiceparse.PriorityUrgent)},
		{"none", "walk the dog", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := p.Parse(tc.text, refWednesday)
			switch {
			case tc.want == nil && out.SuggestedPriority != nil:
				t.Errorf("Parse(%q) priority = %v, want none", tc.text, *out.SuggestedPriority)
			case tc.want != nil && out.SuggestedPriority == nil:
				t.Errorf("Parse(%q) priority = none, want %v", tc.text, *tc.want)
			case tc.want != nil && *out.SuggestedPriority != *tc.want:
				t.Errorf("Parse(%q) priority = %v, want %v", tc.text, *out.SuggestedPriority, *tc.want)
			}
			if out.SuggestedPriority != nil {
				if out.PriorityConfidence == nil || *out.PriorityConfidence != 0.85 {
					t.Errorf("Parse(%q) priority confidence = %v, want 0.85", tc.text, out.PriorityConfidence)
				}
				if *out.SuggestedPriority == voiceparse.PriorityMedium {
					t.Errorf("Parse(%q): parser must never assert medium", tc.text)
				}
			}
		})
	}
}

func TestParsePriorityPhraseExcisedFromTitle(t *testing.T) {
	p := voiceparse.New()

	out := p.Parse("urgent call the bank", refWednesday)
	if out.TaskTitle != "Call the bank" {
		t.Errorf("title = %q, want %q", out.TaskTitle, "Call the bank")
	}
}

func prioPtr(p voiceparse.Priority) *voiceparse.Priority { return &p }
