package voiceparse

import (
	"strings"
	"unicode"
)

// token pairs the original word with its normalized matching key.
type token struct {
	original string // original casing, outer punctuation trimmed
	key      string // lowercase, dots stripped ("P.M." -> "pm")
}

// span marks a half-open token range [start, end) consumed by a resolver.
type span struct {
	start, end int
}

func (s span) contains(i int) bool { return i >= s.start && i < s.end }

// tokenize splits the transcript into tokens, trimming outer punctuation but
// keeping inner characters like the colon in "3:30".
func tokenize(text string) []token {
	fields := strings.Fields(text)
	toks := make([]token, 0, len(fields))
	for _, f := range fields {
		trimmed := strings.TrimFunc(f, func(r rune) bool {
			return unicode.IsPunct(r) && r != '\'' && r != ':'
		})
		// A trailing colon is sentence punctuation ("Urgent:"), an inner
		// colon is a clock time ("3:30").
		trimmed = strings.TrimRight(trimmed, ":")
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		key = strings.ReplaceAll(key, ".", "")
		toks = append(toks, token{original: trimmed, key: key})
	}
	return toks
}

// stripFillers drops disfluency tokens and phrases.
func stripFillers(toks []token) []token {
	out := make([]token, 0, len(toks))
	for i := 0; i < len(toks); {
		if matched := matchPhraseAt(toks, i, fillerPhrases); matched > 0 {
			i += matched
			continue
		}
		if fillerWords[toks[i].key] {
			i++
			continue
		}
		out = append(out, toks[i])
		i++
	}
	return out
}

// stripCommandPrefix removes a leading command phrase, if any.
func stripCommandPrefix(toks []token) []token {
	if n := matchPhraseAt(toks, 0, commandPrefixes); n > 0 {
		return toks[n:]
	}
	return toks
}

// matchPhraseAt returns the length of the longest phrase matching at index i,
// or 0 when none matches. Phrases must be ordered longest first.
func matchPhraseAt(toks []token, i int, phrases [][]string) int {
	for _, phrase := range phrases {
		if i+len(phrase) > len(toks) {
			continue
		}
		ok := true
		for j, w := range phrase {
			if toks[i+j].key != w {
				ok = false
				break
			}
		}
		if ok {
			return len(phrase)
		}
	}
	return 0
}

// segment builds the title and description from the tokens left after the
// resolver spans are excised. It returns empty strings when nothing usable
// remains; the caller applies the fallback title.
func segment(toks []token, consumed []span) (title, description string) {
	kept := make([]token, 0, len(toks))
	for i, t := range toks {
		if inSpans(i, consumed) {
			continue
		}
		kept = append(kept, t)
	}

	// Drop dangling connectives left behind by span excision
	// ("call doctor on <friday>" -> "call doctor on").
	for len(kept) > 0 {
		last := kept[len(kept)-1].key
		if last == "on" || last == "at" || last == "by" || last == "in" || last == "until" ||
			last == "or" || last == "and" {
			kept = kept[:len(kept)-1]
			continue
		}
		break
	}

	// Split at the first strong clause boundary after the initial verb phrase.
	titleToks := kept
	var descToks []token
	for i := 1; i < len(kept); i++ {
		if clauseBoundaries[kept[i].key] {
			titleToks = kept[:i]
			descToks = kept[i+1:]
			break
		}
	}

	if !hasContentWord(titleToks) {
		return "", ""
	}

	title = capitalizeFirst(joinTokens(titleToks))
	if hasContentWord(descToks) {
		description = joinTokens(descToks)
	}
	return title, description
}

// fallbackTitle builds a title from the first few words of the cleaned
// transcript when segmentation produced nothing usable.
func fallbackTitle(toks []token) string {
	const maxWords = 7
	n := len(toks)
	if n > maxWords {
		n = maxWords
	}
	if n == 0 {
		return ""
	}
	return capitalizeFirst(joinTokens(toks[:n]))
}

func inSpans(i int, spans []span) bool {
	for _, s := range spans {
		if s.contains(i) {
			return true
		}
	}
	return false
}

func hasContentWord(toks []token) bool {
	for _, t := range toks {
		if !stopwords[t.key] {
			return true
		}
	}
	return false
}

func joinTokens(toks []token) string {
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = t.original
	}
	return strings.TrimRight(strings.Join(parts, " "), " .,!?;:")
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
