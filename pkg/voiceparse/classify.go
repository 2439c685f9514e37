package voiceparse

import (
	"strings"

	"github.com/antzucaro/matchr"
)

type categoryResult struct {
	name string
	conf float64
}

// classifyCategory scores every category by the number of distinct trigger
// words matched (whole-word or whole-phrase, never substring) and picks the
// winner. Ties break in the declared table order. Confidence scales with the
// match count and the winner's margin over the runner-up.
func (p *Parser) classifyCategory(toks []token) categoryResult {
	scores := make([]int, len(p.tables.Categories))
	fuzzyOnly := make([]bool, len(p.tables.Categories))

	for ci, cat := range p.tables.Categories {
		matched := map[string]bool{}
		exact := false
		for _, trigger := range cat.Triggers {
			words := tokenizePhrase(trigger)
			if len(words) == 0 {
				continue
			}
			for i := range toks {
				if matchPhraseAt(toks, i, [][]string{words}) > 0 {
					matched[trigger] = true
					exact = true
					break
				}
			}
			if !matched[trigger] && p.fuzzyMatching && len(words) == 1 {
				if fuzzyTokenMatch(toks, words[0], p.fuzzyThreshold) {
					matched[trigger] = true
				}
			}
		}
		scores[ci] = len(matched)
		fuzzyOnly[ci] = len(matched) > 0 && !exact
	}

	best, runnerUp := -1, 0
	for ci, s := range scores {
		if s == 0 {
			continue
		}
		if best == -1 || s > scores[best] {
			if best != -1 {
				runnerUp = scores[best]
			}
			best = ci
		} else if s > runnerUp {
			runnerUp = s
		}
	}
	if best == -1 {
		return categoryResult{}
	}

	margin := scores[best] - runnerUp
	conf := 0.6
	if margin > 0 {
		conf += 0.2
	}
	if scores[best] > 1 {
		conf += 0.05
	}
	if fuzzyOnly[best] && conf > 0.7 {
		// Phonetic-only matches never reach full keyword confidence.
		conf = 0.7
	}
	if conf > 0.95 {
		conf = 0.95
	}
	return categoryResult{name: p.tables.Categories[best].Name, conf: conf}
}

// fuzzyTokenMatch reports whether any token is phonetically equivalent to the
// trigger (shared Double Metaphone code) and string-similar above the
// threshold. This tolerates STT mishearings like "grocerys".
func fuzzyTokenMatch(toks []token, trigger string, threshold float64) bool {
	tp, ts := matchr.DoubleMetaphone(trigger)
	for _, t := range toks {
		if len(t.key) < 3 {
			continue
		}
		kp, ks := matchr.DoubleMetaphone(t.key)
		if kp != tp && (ks == "" || ks != ts) {
			continue
		}
		if matchr.JaroWinkler(t.key, strings.ToLower(trigger), false) >= threshold {
			return true
		}
	}
	return false
}

type priorityResult struct {
	priority *Priority
	conf     float64
	spans    []span
}

// classifyPriority finds an explicit priority signal. No trigger means no
// priority at all: "medium" is a caller-side default the parser never asserts.
// Matched trigger phrases are excised from the title.
func (p *Parser) classifyPriority(toks []token) priorityResult {
	levels := []struct {
		priority Priority
		triggers []string
	}{
		{PriorityUrgent, p.tables.UrgentTriggers},
		{PriorityHigh, p.tables.HighTriggers},
		{PriorityLow, p.tables.LowTriggers},
	}

	for _, level := range levels {
		for _, trigger := range level.triggers {
			words := tokenizePhrase(trigger)
			if len(words) == 0 {
				continue
			}
			for i := range toks {
				if n := matchPhraseAt(toks, i, [][]string{words}); n > 0 {
					pr := level.priority
					return priorityResult{
						priority: &pr,
						conf:     0.85,
						spans:    []span{{i, i + n}},
					}
				}
			}
		}
	}
	return priorityResult{}
}
