package voiceparse

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// dateCandidate is one recognized date expression. rank is the precedence
// category; lower ranks win when several expressions compete.
type dateCandidate struct {
	date   time.Time
	conf   float64
	rank   int
	sp     span
	phrase string
}

// dateResult carries the primary resolution plus everything needed by the
// segmenter and the alternatives list.
type dateResult struct {
	date         *time.Time
	conf         float64
	spans        []span
	alternatives []string
}

// resolveDate scans the tokens for date expressions and resolves the primary
// one against the reference instant. All spans are reported so the segmenter
// can excise every date phrase, not just the winning one.
func (p *Parser) resolveDate(toks []token, ref time.Time) dateResult {
	var cands []dateCandidate
	for i := 0; i < len(toks); {
		c, n := p.matchDateAt(toks, i, ref)
		if n == 0 {
			i++
			continue
		}
		cands = append(cands, c)
		i += n
	}

	if len(cands) == 0 {
		return dateResult{}
	}

	// Primary: lowest precedence rank, then earliest position.
	sort.SliceStable(cands, func(a, b int) bool {
		if cands[a].rank != cands[b].rank {
			return cands[a].rank < cands[b].rank
		}
		return cands[a].sp.start < cands[b].sp.start
	})

	primary := cands[0]
	res := dateResult{conf: primary.conf}
	d := primary.date
	res.date = &d

	for _, c := range cands {
		res.spans = append(res.spans, c.sp)
	}
	if len(cands) > 1 {
		// Competing date phrases make the primary reading less certain.
		if res.conf > 0.7 {
			res.conf = 0.7
		}
		for _, c := range cands[1:] {
			res.alternatives = append(res.alternatives,
				fmt.Sprintf("%s (%s)", c.phrase, c.date.Format("2006-01-02")))
		}
	}
	return res
}

// matchDateAt tries every date category at token index i and returns the
// candidate plus the number of tokens consumed, or (zero, 0).
func (p *Parser) matchDateAt(toks []token, i int, ref time.Time) (dateCandidate, int) {
	today := dateOnly(ref)
	key := toks[i].key

	// 1. Weekday with optional next/this qualifier.
	if key == "next" || key == "this" {
		if i+1 < len(toks) {
			if wd, ok := weekdayNames[toks[i+1].key]; ok {
				days := int(wd-ref.Weekday()+7) % 7
				conf := 0.9
				if key == "next" {
					// "next" always skips the current week.
					days += 7
				}
				return dateCandidate{
					date:   today.AddDate(0, 0, days),
					conf:   conf,
					rank:   1,
					sp:     span{i, i + 2},
					phrase: key + " " + toks[i+1].original,
				}, 2
			}
		}
	}
	if wd, ok := weekdayNames[key]; ok {
		// Bare weekday: assume the coming occurrence, reduced confidence.
		days := int(wd-ref.Weekday()+7) % 7
		if days == 0 {
			days = 7
		}
		return dateCandidate{
			date:   today.AddDate(0, 0, days),
			conf:   0.65,
			rank:   1,
			sp:     span{i, i + 1},
			phrase: toks[i].original,
		}, 1
	}

	// 2. Relative day offsets.
	if n := matchPhraseAt(toks, i, [][]string{{"day", "after", "tomorrow"}}); n > 0 {
		start := i
		if i > 0 && toks[i-1].key == "the" {
			start = i - 1
		}
		return dateCandidate{
			date:   today.AddDate(0, 0, 2),
			conf:   0.9,
			rank:   2,
			sp:     span{start, i + n},
			phrase: "day after tomorrow",
		}, n
	}
	switch key {
	case "today":
		return dateCandidate{date: today, conf: 0.9, rank: 2, sp: span{i, i + 1}, phrase: "today"}, 1
	case "tomorrow":
		return dateCandidate{date: today.AddDate(0, 0, 1), conf: 0.9, rank: 2, sp: span{i, i + 1}, phrase: "tomorrow"}, 1
	case "yesterday":
		return dateCandidate{date: today.AddDate(0, 0, -1), conf: 0.9, rank: 2, sp: span{i, i + 1}, phrase: "yesterday"}, 1
	}

	// 3. "in N days/weeks/months".
	if key == "in" && i+2 < len(toks) {
		if n, ok := parseSmallNumber(toks[i+1].key); ok {
			var d time.Time
			switch toks[i+2].key {
			case "day", "days":
				d = today.AddDate(0, 0, n)
			case "week", "weeks":
				d = today.AddDate(0, 0, n*7)
			case "month", "months":
				d = addMonthsClamped(today, n)
			default:
				return dateCandidate{}, 0
			}
			return dateCandidate{
				date:   d,
				conf:   0.85,
				rank:   3,
				sp:     span{i, i + 3},
				phrase: fmt.Sprintf("in %d %s", n, toks[i+2].key),
			}, 3
		}
	}

	// 4. Period-end expressions.
	if key == "end" && i+1 < len(toks) && toks[i+1].key == "of" {
		j := i + 2
		if j < len(toks) && (toks[j].key == "this" || toks[j].key == "the") {
			j++
		}
		if j < len(toks) {
			var d time.Time
			switch toks[j].key {
			case "week":
				days := int(p.weekEndDay-ref.Weekday()+7) % 7
				d = today.AddDate(0, 0, days)
			case "month":
				first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
				d = first.AddDate(0, 1, -1)
			case "year":
				d = time.Date(ref.Year(), time.December, 31, 0, 0, 0, 0, ref.Location())
			default:
				return dateCandidate{}, 0
			}
			return dateCandidate{
				date:   d,
				conf:   0.85,
				rank:   4,
				sp:     span{i, j + 1},
				phrase: "end of " + toks[j].key,
			}, j + 1 - i
		}
	}

	// 6. Weekend references (checked before rank 5 falls through on "next").
	if (key == "this" || key == "next") && i+1 < len(toks) && toks[i+1].key == "weekend" {
		sat := int(time.Saturday-ref.Weekday()+7) % 7
		var d time.Time
		if key == "this" {
			if ref.Weekday() == time.Saturday || ref.Weekday() == time.Sunday {
				d = today
			} else {
				d = today.AddDate(0, 0, sat)
			}
		} else {
			if ref.Weekday() == time.Saturday || ref.Weekday() == time.Sunday {
				if sat == 0 {
					sat = 7
				}
				d = today.AddDate(0, 0, sat)
			} else {
				d = today.AddDate(0, 0, sat+7)
			}
		}
		return dateCandidate{
			date:   d,
			conf:   0.8,
			rank:   6,
			sp:     span{i, i + 2},
			phrase: key + " weekend",
		}, 2
	}

	// 5. Named-period anchors.
	if key == "next" && i+1 < len(toks) {
		var d time.Time
		switch toks[i+1].key {
		case "week":
			d = today.AddDate(0, 0, 7)
		case "month":
			d = addMonthsClamped(today, 1)
		case "year":
			d = today.AddDate(1, 0, 0)
		default:
			return dateCandidate{}, 0
		}
		return dateCandidate{
			date:   d,
			conf:   0.85,
			rank:   5,
			sp:     span{i, i + 2},
			phrase: "next " + toks[i+1].key,
		}, 2
	}

	// 7. Fixed holidays, rolling forward once the date has passed.
	for _, h := range p.tables.Holidays {
		words := tokenizePhrase(h.Phrase)
		if n := matchPhraseAt(toks, i, [][]string{words}); n > 0 {
			d := time.Date(ref.Year(), h.Month, h.Day, 0, 0, 0, 0, ref.Location())
			if d.Before(today) {
				d = d.AddDate(1, 0, 0)
			}
			return dateCandidate{
				date:   d,
				conf:   0.85,
				rank:   7,
				sp:     span{i, i + n},
				phrase: h.Phrase,
			}, n
		}
	}

	return dateCandidate{}, 0
}

// addMonthsClamped adds calendar months, clamping the day to the target
// month's length (Jan 31 + 1 month = Feb 28/29, not Mar 2).
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	firstOfTarget := time.Date(y, m, 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	last := firstOfTarget.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, 0, 0, 0, 0, t.Location())
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func parseSmallNumber(key string) (int, bool) {
	if n, ok := numberWords[key]; ok {
		return n, true
	}
	n, err := strconv.Atoi(key)
	if err != nil || n <= 0 || n > 999 {
		return 0, false
	}
	return n, true
}

// tokenizePhrase lowers and splits a table phrase the same way transcript
// tokens are normalized, so phrase matching stays consistent.
func tokenizePhrase(phrase string) []string {
	toks := tokenize(phrase)
	words := make([]string, len(toks))
	for i, t := range toks {
		words[i] = t.key
	}
	return words
}
