package voiceparse

import "time"

// CategoryTriggers maps one category name to its trigger words and phrases.
// Matching is whole-word (or whole-phrase), case-insensitive.
type CategoryTriggers struct {
	Name     string   `json:"name" yaml:"name"`
	Triggers []string `json:"triggers" yaml:"triggers"`
}

// Holiday is a fixed-date holiday the date resolver recognizes by name.
type Holiday struct {
	Phrase string     `json:"phrase" yaml:"phrase"`
	Month  time.Month `json:"month" yaml:"month"`
	Day    int        `json:"day" yaml:"day"`
}

// Tables holds the keyword data the classifiers and the date resolver match
// against. Tables are data, not code: callers may inject their own set
// (e.g. built from a category catalog) without touching resolver logic.
type Tables struct {
	// Categories in declared order; order breaks classification ties.
	Categories []CategoryTriggers `json:"categories" yaml:"categories"`

	// Priority trigger phrases. Absence of any trigger yields no priority;
	// "medium" is a caller-side default and has no triggers here.
	UrgentTriggers []string `json:"urgent_triggers" yaml:"urgent_triggers"`
	HighTriggers   []string `json:"high_triggers" yaml:"high_triggers"`
	LowTriggers    []string `json:"low_triggers" yaml:"low_triggers"`

	Holidays []Holiday `json:"holidays" yaml:"holidays"`
}

// DefaultTables returns the built-in keyword tables.
func DefaultTables() Tables {
	return Tables{
		Categories: []CategoryTriggers{
			{Name: "household", Triggers: []string{"buy", "groceries", "grocery", "clean", "cleaning", "laundry", "shopping", "cook", "dishes"}},
			{Name: "work", Triggers: []string{"meeting", "report", "presentation", "client", "boss", "project", "deadline", "email", "standup", "interview"}},
			{Name: "health", Triggers: []string{"doctor", "dentist", "medicine", "appointment", "gym", "pharmacy", "workout", "prescription", "checkup"}},
			{Name: "finance", Triggers: []string{"pay", "bill", "bills", "mortgage", "rent", "bank", "invoice", "taxes", "budget"}},
			{Name: "family", Triggers: []string{"mom", "dad", "kids", "children", "school", "birthday", "anniversary"}},
		},
		UrgentTriggers: []string{"urgent", "asap", "critical", "emergency", "immediately", "right away"},
		HighTriggers:   []string{"important", "high priority", "must do", "crucial"},
		LowTriggers:    []string{"low priority", "whenever", "no rush", "no hurry", "eventually", "someday"},
		// Longer phrases first so "christmas eve" wins over "christmas".
		Holidays: []Holiday{
			{Phrase: "christmas eve", Month: time.December, Day: 24},
			{Phrase: "christmas", Month: time.December, Day: 25},
			{Phrase: "new year's eve", Month: time.December, Day: 31},
			{Phrase: "new year's day", Month: time.January, Day: 1},
			{Phrase: "valentine's day", Month: time.February, Day: 14},
			{Phrase: "halloween", Month: time.October, Day: 31},
			{Phrase: "fourth of july", Month: time.July, Day: 4},
		},
	}
}

// fillerWords are disfluencies stripped before any matching.
var fillerWords = map[string]bool{
	"um": true, "uh": true, "uhh": true, "umm": true, "er": true, "erm": true,
	"hmm": true, "like": true, "actually": true, "basically": true,
}

// fillerPhrases are multi-word disfluencies, longest first.
var fillerPhrases = [][]string{
	{"you", "know"},
	{"i", "mean"},
}

// commandPrefixes are leading phrases that never become part of the title,
// longest first so the greediest match wins.
var commandPrefixes = [][]string{
	{"set", "a", "reminder", "for", "me", "to"},
	{"set", "a", "reminder", "to"},
	{"set", "a", "reminder", "for"},
	{"set", "a", "reminder"},
	{"don't", "forget", "to"},
	{"dont", "forget", "to"},
	{"don't", "forget"},
	{"remind", "me", "to"},
	{"remind", "me", "about"},
	{"remind", "me"},
	{"i", "need", "to"},
	{"i", "have", "to"},
	{"add", "a", "task", "to"},
	{"add", "a", "task"},
	{"create", "a", "task", "to"},
	{"create", "a", "task"},
	{"schedule", "a"},
	{"schedule"},
	{"new", "task"},
}

// clauseBoundaries split the remaining text into title and description.
var clauseBoundaries = map[string]bool{
	"to": true, "for": true, "about": true, "including": true,
}

var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "to": true, "for": true, "of": true,
	"and": true, "or": true, "my": true, "me": true, "i": true, "is": true,
	"at": true, "on": true, "in": true, "it": true, "this": true, "that": true,
	"with": true, "about": true, "be": true, "do": true, "so": true,
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// numberWords covers small spoken numbers; voice transcripts frequently spell
// them out instead of using digits.
var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
}

// periodBuckets map period-of-day words to a representative clock time.
// Modifiers "early" and "late" select the variant buckets.
type periodBucket struct {
	hour   int
	minute int
}

var periodBuckets = map[string]periodBucket{
	"morning":   {9, 0},
	"afternoon": {14, 0},
	"evening":   {18, 0},
	"night":     {21, 0},
	"tonight":   {21, 0},
}

var earlyBuckets = map[string]periodBucket{
	"morning":   {7, 0},
	"afternoon": {13, 0},
	"evening":   {17, 0},
}

var lateBuckets = map[string]periodBucket{
	"morning":   {11, 0},
	"afternoon": {16, 0},
	"evening":   {20, 0},
}
