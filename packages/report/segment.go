package report

import (
	"regexp"
	"strings"
)

// Tone classifies a verdict for display coloring.
type Tone int

const (
	ToneNeutral Tone = iota
	TonePositive
	ToneNegative
	ToneCaution
)

// VerdictTone maps verdict text onto a display tone by keyword.
func VerdictTone(verdict string) Tone {
	upper := strings.ToUpper(verdict)
	switch {
	case strings.Contains(upper, "LEGITIMATE"):
		return TonePositive
	case strings.Contains(upper, "LARPING"):
		return ToneNegative
	case strings.Contains(upper, "BORDERLINE"):
		return ToneCaution
	default:
		return ToneNeutral
	}
}

var (
	headingMarkup = regexp.MustCompile(`#+\s+(.+)`)
	embeddedTags  = regexp.MustCompile(`<[^>]+>`)
	newlineRuns   = regexp.MustCompile(`\n{3,}`)
)

// FormatMarkup converts heading markup to bold emphasis, strips
// embedded tags, and collapses runs of three or more newlines to two.
func FormatMarkup(text string) string {
	text = headingMarkup.ReplaceAllString(text, "**${1}**")
	text = embeddedTags.ReplaceAllString(text, "")
	return newlineRuns.ReplaceAllString(text, "\n\n")
}

// SplitSegments divides text into ordered segments of at most budget
// characters. Each cut prefers the last paragraph break inside the
// window, then the last line break, then a hard cut at the budget
// boundary, so progress is guaranteed even on a single unbroken line.
// Split characters stay attached to the segment they end, which makes
// in-order concatenation reproduce the input exactly.
func SplitSegments(text string, budget int) []string {
	if budget <= 0 || len(text) <= budget {
		return []string{text}
	}

	var segments []string
	rest := text
	for len(rest) > budget {
		window := rest[:budget]
		cut := budget
		if i := strings.LastIndex(window, "\n\n"); i > 0 {
			cut = i + 2
		} else if i := strings.LastIndex(window, "\n"); i > 0 {
			cut = i + 1
		}
		segments = append(segments, rest[:cut])
		rest = rest[cut:]
	}
	if len(rest) > 0 {
		segments = append(segments, rest)
	}

	return segments
}
