// Package voiceparse turns a transcribed voice utterance into a structured
// task draft: title, optional description, calendar date, clock time,
// category and priority suggestions, each with an independent confidence.
//
// The parser is pure and stateless: no clock reads, no I/O, no shared
// mutable state. The reference instant is threaded into every resolver, so
// the same text and instant always produce field-for-field identical
// results, and a Parser is safe for concurrent use.
package voiceparse

import "time"

// PlaceholderTitle is used when the transcript is empty or carries no
// usable words at all.
const PlaceholderTitle = "New task"

// Weights control how per-field confidences blend into the overall score.
// The base applies whenever a non-empty title was produced; each optional
// field contributes its weight scaled by its own confidence, or nothing
// when unresolved.
type Weights struct {
	Base     float64
	Date     float64
	Time     float64
	Category float64
	Priority float64
}

// DefaultWeights is the default blending policy.
func DefaultWeights() Weights {
	return Weights{Base: 0.5, Date: 0.2, Time: 0.15, Category: 0.1, Priority: 0.05}
}

// Parser parses voice transcripts. Construct with New; the zero value is not
// usable. All configuration is read-only after construction.
type Parser struct {
	tables         Tables
	weights        Weights
	weekEndDay     time.Weekday
	fuzzyMatching  bool
	fuzzyThreshold float64
}

// Option configures a Parser.
type Option func(*Parser)

// WithTables replaces the built-in keyword tables, e.g. with a set built
// from the category catalog.
func WithTables(t Tables) Option {
	return func(p *Parser) { p.tables = t }
}

// WithWeights replaces the confidence blending weights.
func WithWeights(w Weights) Option {
	return func(p *Parser) { p.weights = w }
}

// WithWeekEndDay sets the weekday "end of week" resolves to. Default: Sunday.
func WithWeekEndDay(d time.Weekday) Option {
	return func(p *Parser) { p.weekEndDay = d }
}

// WithFuzzyMatching enables phonetic-tolerant category matching for misheard
// speech-to-text tokens. threshold is the minimum Jaro-Winkler similarity a
// phonetic candidate must reach; values at or below 0 keep the default 0.85.
func WithFuzzyMatching(threshold float64) Option {
	return func(p *Parser) {
		p.fuzzyMatching = true
		if threshold > 0 {
			p.fuzzyThreshold = threshold
		}
	}
}

// New creates a Parser with the built-in tables and default policy.
func New(opts ...Option) *Parser {
	p := &Parser{
		tables:         DefaultTables(),
		weights:        DefaultWeights(),
		weekEndDay:     time.Sunday,
		fuzzyThreshold: 0.85,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Parse converts one transcript into a ParsedVoiceInput, resolving relative
// expressions against ref. It never fails: degenerate input yields a
// structurally valid result with low confidence.
func (p *Parser) Parse(text string, ref time.Time) ParsedVoiceInput {
	out := ParsedVoiceInput{
		OriginalText: text,
		Alternatives: []string{},
	}

	toks := stripFillers(tokenize(text))
	if len(toks) == 0 {
		out.TaskTitle = PlaceholderTitle
		return out
	}
	cleaned := toks
	toks = stripCommandPrefix(toks)

	// Each resolver scans the full remaining text independently.
	dres := p.resolveDate(toks, ref)
	tres := p.resolveTime(toks)
	pres := p.classifyPriority(toks)
	cres := p.classifyCategory(toks)

	if dres.date != nil {
		out.ParsedDate = dres.date
		out.DateConfidence = floatPtr(dres.conf)
		out.Alternatives = append(out.Alternatives, dres.alternatives...)
	}
	if tres.ct != nil {
		out.ParsedTime = tres.ct
		out.TimeConfidence = floatPtr(tres.conf)
	}
	if pres.priority != nil {
		out.SuggestedPriority = pres.priority
		out.PriorityConfidence = floatPtr(pres.conf)
	}
	if cres.name != "" {
		out.SuggestedCategory = cres.name
		out.CategoryConfidence = floatPtr(cres.conf)
	}

	consumed := append(append(dres.spans, tres.spans...), pres.spans...)
	title, desc := segment(toks, consumed)
	if title == "" {
		title = fallbackTitle(cleaned)
	}
	if title == "" {
		title = PlaceholderTitle
		out.TaskTitle = title
		return out
	}
	out.TaskTitle = title
	out.Description = desc

	out.Confidence = p.overallConfidence(out)
	return out
}

// overallConfidence blends the per-field confidences per the configured
// weights, clamped to [0,1].
func (p *Parser) overallConfidence(v ParsedVoiceInput) float64 {
	c := p.weights.Base
	if v.DateConfidence != nil {
		c += p.weights.Date * *v.DateConfidence
	}
	if v.TimeConfidence != nil {
		c += p.weights.Time * *v.TimeConfidence
	}
	if v.CategoryConfidence != nil {
		c += p.weights.Category * *v.CategoryConfidence
	}
	if v.PriorityConfidence != nil {
		c += p.weights.Priority * *v.PriorityConfidence
	}
	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	return c
}

// Stats computes a pure diagnostic summary of the transcript, used for
// tuning and tests.
func (p *Parser) Stats(text string) Stats {
	toks := tokenize(text)
	s := Stats{WordCount: len(toks)}

	for i := range toks {
		key := toks[i].key
		if _, ok := weekdayNames[key]; ok {
			s.HasDateKeywords = true
		}
		switch key {
		case "today", "tomorrow", "yesterday", "week", "month", "year", "weekend":
			s.HasDateKeywords = true
		case "noon", "midnight", "morning", "afternoon", "evening", "night", "tonight", "am", "pm", "o'clock":
			s.HasTimeKeywords = true
		}
		if clockTokenRe.MatchString(key) {
			s.HasTimeKeywords = true
		}
	}

	prios := [][]string{p.tables.UrgentTriggers, p.tables.HighTriggers, p.tables.LowTriggers}
	for _, triggers := range prios {
		for _, trigger := range triggers {
			words := tokenizePhrase(trigger)
			for i := range toks {
				if matchPhraseAt(toks, i, [][]string{words}) > 0 {
					s.HasPriorityKeywords = true
				}
			}
		}
	}

	score := float64(s.WordCount) / 20.0
	for _, present := range []bool{s.HasDateKeywords, s.HasTimeKeywords, s.HasPriorityKeywords} {
		if present {
			score += 0.15
		}
	}
	if score > 1 {
		score = 1
	}
	s.ComplexityScore = score
	return s
}

func floatPtr(f float64) *float64 { return &f }
