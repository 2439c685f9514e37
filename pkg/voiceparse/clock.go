package voiceparse

import (
	"regexp"
	"sort"
	"strconv"
)

var clockTokenRe = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?(am|pm)?$`)

// timeCandidate is one recognized clock-time expression.
type timeCandidate struct {
	ct            ClockTime
	conf          float64
	sp            span
	needsMeridiem bool // bare hour, resolved by the business-hours heuristic
	bucket        bool // period-of-day word standing in for a range
}

type timeResult struct {
	ct    *ClockTime
	conf  float64
	spans []span
}

// resolveTime finds at most one clock time, independent of the date resolver.
// When a bare hour and a period-of-day bucket both appear ("at 7 in the
// evening"), the bucket supplies the meridiem for the hour.
func (p *Parser) resolveTime(toks []token) timeResult {
	var cands []timeCandidate
	for i := 0; i < len(toks); {
		c, n := matchTimeAt(toks, i)
		if n == 0 {
			i++
			continue
		}
		cands = append(cands, c)
		i = c.sp.end
	}

	if len(cands) == 0 {
		return timeResult{}
	}

	res := timeResult{}
	for _, c := range cands {
		res.spans = append(res.spans, c.sp)
	}

	// Merge a heuristic bare hour with a bucket word before ranking.
	var bare, bucket *timeCandidate
	for idx := range cands {
		switch {
		case cands[idx].needsMeridiem && bare == nil:
			bare = &cands[idx]
		case cands[idx].bucket && bucket == nil:
			bucket = &cands[idx]
		}
	}
	if bare != nil && bucket != nil {
		h := bare.ct.Hour % 12
		if bucket.ct.Hour >= 12 {
			h += 12
		}
		ct := ClockTime{Hour: h, Minute: bare.ct.Minute}
		res.ct = &ct
		res.conf = 0.85
		return res
	}

	sort.SliceStable(cands, func(a, b int) bool {
		if cands[a].conf != cands[b].conf {
			return cands[a].conf > cands[b].conf
		}
		return cands[a].sp.start < cands[b].sp.start
	})
	ct := cands[0].ct
	res.ct = &ct
	res.conf = cands[0].conf
	return res
}

// matchTimeAt tries every clock-time form at token index i.
func matchTimeAt(toks []token, i int) (timeCandidate, int) {
	key := toks[i].key

	switch key {
	case "noon", "midday":
		return timeCandidate{ct: ClockTime{12, 0}, conf: 0.9, sp: span{i, i + 1}}, 1
	case "midnight":
		return timeCandidate{ct: ClockTime{0, 0}, conf: 0.9, sp: span{i, i + 1}}, 1
	}

	// "half past H", "quarter past H", "quarter to H".
	if (key == "half" || key == "quarter") && i+2 < len(toks) {
		rel := toks[i+1].key
		if rel == "past" || rel == "to" {
			if h, ok := parseHourToken(toks[i+2].key); ok {
				end := i + 3
				minute := 30
				if key == "quarter" {
					minute = 15
				}
				hour := h.hour
				if rel == "to" {
					minute = 45
					hour = (hour + 11) % 12
					if hour == 0 {
						hour = 12
					}
				}
				explicit := h.meridiem != ""
				if !explicit && end < len(toks) && isMeridiem(toks[end].key) {
					h.meridiem = toks[end].key
					explicit = true
					end++
				}
				ct := ClockTime{Hour: hour, Minute: minute}
				if explicit {
					ct.Hour = applyMeridiem(hour, h.meridiem)
					return timeCandidate{ct: ct, conf: 0.85, sp: span{i, end}}, end - i
				}
				ct.Hour = businessHours(hour)
				return timeCandidate{ct: ct, conf: 0.65, sp: span{i, end}, needsMeridiem: true}, end - i
			}
		}
	}

	// Numeric clock tokens: "3", "3:30", "3pm", "3:30pm".
	if m := clockTokenRe.FindStringSubmatch(key); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		hasMinutes := m[2] != ""
		if hasMinutes {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour > 23 || minute > 59 {
			return timeCandidate{}, 0
		}
		meridiem := m[3]
		end := i + 1
		if meridiem == "" && end < len(toks) && isMeridiem(toks[end].key) {
			meridiem = toks[end].key
			end++
		}

		switch {
		case meridiem != "":
			if hour < 1 || hour > 12 {
				return timeCandidate{}, 0
			}
			conf := 0.85
			if hasMinutes {
				conf = 0.9
			}
			return timeCandidate{
				ct:   ClockTime{Hour: applyMeridiem(hour, meridiem), Minute: minute},
				conf: conf,
				sp:   span{i, end},
			}, end - i
		case hasMinutes && (hour >= 13 || hour == 0):
			// Unambiguous 24-hour form.
			return timeCandidate{ct: ClockTime{hour, minute}, conf: 0.85, sp: span{i, end}}, end - i
		case hasMinutes:
			return timeCandidate{
				ct:            ClockTime{businessHours(hour), minute},
				conf:          0.65,
				sp:            span{i, end},
				needsMeridiem: true,
			}, end - i
		default:
			// Bare hour is only a time when anchored: "at 3", "3 o'clock".
			return matchBareHour(toks, i, hour)
		}
	}

	// Spelled-out bare hour: "at three", "three o'clock".
	if h, ok := numberWords[key]; ok && h >= 1 && h <= 12 {
		return matchBareHour(toks, i, h)
	}

	// Period-of-day buckets, with optional early/late modifier and
	// optional "in the" prefix.
	if bucket, ok := lookupBucket(toks, i); ok {
		return bucket, bucket.sp.end - bucket.sp.start
	}

	return timeCandidate{}, 0
}

// matchBareHour handles an hour with no minutes and no meridiem. It requires
// a preceding "at" or a following "o'clock" so plain counts ("buy 2 apples")
// are not misread as times.
func matchBareHour(toks []token, i int, hour int) (timeCandidate, int) {
	if hour < 1 || hour > 12 {
		return timeCandidate{}, 0
	}
	start, end := i, i+1
	anchored := false
	if i > 0 && toks[i-1].key == "at" {
		start = i - 1
		anchored = true
	}
	if end < len(toks) && toks[end].key == "o'clock" {
		end++
		anchored = true
	}
	if !anchored {
		return timeCandidate{}, 0
	}
	if end < len(toks) && isMeridiem(toks[end].key) {
		return timeCandidate{
			ct:   ClockTime{Hour: applyMeridiem(hour, toks[end].key)},
			conf: 0.85,
			sp:   span{start, end + 1},
		}, end + 1 - i
	}
	return timeCandidate{
		ct:            ClockTime{Hour: businessHours(hour)},
		conf:          0.6,
		sp:            span{start, end},
		needsMeridiem: true,
	}, end - i
}

func lookupBucket(toks []token, i int) (timeCandidate, bool) {
	key := toks[i].key
	start := i

	buckets := periodBuckets
	if i > 0 {
		switch toks[i-1].key {
		case "early":
			if _, ok := earlyBuckets[key]; ok {
				buckets = earlyBuckets
				start = i - 1
			}
		case "late":
			if _, ok := lateBuckets[key]; ok {
				buckets = lateBuckets
				start = i - 1
			}
		}
	}
	b, ok := buckets[key]
	if !ok {
		return timeCandidate{}, false
	}

	// Pull "in the" / "in" into the span so it does not dangle in the title.
	if start > 0 && toks[start-1].key == "the" {
		start--
	}
	if start > 0 && toks[start-1].key == "in" {
		start--
	}

	return timeCandidate{
		ct:     ClockTime{Hour: b.hour, Minute: b.minute},
		conf:   0.75,
		sp:     span{start, i + 1},
		bucket: true,
	}, true
}

type hourToken struct {
	hour     int
	meridiem string
}

func parseHourToken(key string) (hourToken, bool) {
	if h, ok := numberWords[key]; ok {
		return hourToken{hour: h}, true
	}
	if m := clockTokenRe.FindStringSubmatch(key); m != nil && m[2] == "" {
		h, _ := strconv.Atoi(m[1])
		if h >= 1 && h <= 12 {
			return hourToken{hour: h, meridiem: m[3]}, true
		}
	}
	return hourToken{}, false
}

func isMeridiem(key string) bool { return key == "am" || key == "pm" }

func applyMeridiem(hour12 int, meridiem string) int {
	h := hour12 % 12
	if meridiem == "pm" {
		h += 12
	}
	return h
}

// businessHours resolves a bare 1-12 hour: 1-7 lean PM, 8-11 lean AM,
// 12 means noon.
func businessHours(hour int) int {
	switch {
	case hour == 12:
		return 12
	case hour >= 1 && hour <= 7:
		return hour + 12
	default:
		return hour
	}
}
