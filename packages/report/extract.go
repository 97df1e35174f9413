// Package report turns raw generated analysis text into its structured
// form and renders it for display.
package report

import (
	"regexp"
	"strings"

	"larpscan/types"
)

// RatingLabels lists the five rating categories in display order.
var RatingLabels = []string{"Code Quality", "Completeness", "Security", "Originality", "Activity"}

// ratingPatterns pairs each category's extraction pattern with its
// display label. Matching is case-insensitive; a missing category is
// simply absent from the result.
var ratingPatterns = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`(?i)CODE QUALITY:\s*(\d+)/5`), "Code Quality"},
	{regexp.MustCompile(`(?i)COMPLETENESS:\s*(\d+)/5`), "Completeness"},
	{regexp.MustCompile(`(?i)SECURITY:\s*(\d+)/5`), "Security"},
	{regexp.MustCompile(`(?i)ORIGINALITY:\s*(\d+)/5`), "Originality"},
	{regexp.MustCompile(`(?i)ACTIVITY:\s*(\d+)/5`), "Activity"},
}

var (
	verdictPattern = regexp.MustCompile(`(?i)VERDICT:?\s*(.+?)(?:\n|$)`)
	ratingSpan     = regexp.MustCompile(`(?i)(CODE QUALITY|COMPLETENESS|SECURITY|ORIGINALITY|ACTIVITY):\s*\d+/5`)
)

// Extract parses raw generated text into verdict, per-category ratings,
// and the leftover narrative. All three extractions are best effort and
// non-destructive; absent fields stay empty rather than erroring.
// Extract is idempotent: run on its own narrative output it extracts
// nothing further.
func Extract(raw string) types.StructuredAssessment {
	assessment := types.StructuredAssessment{Ratings: make(map[string]string)}

	for _, p := range ratingPatterns {
		if m := p.re.FindStringSubmatch(raw); m != nil {
			assessment.Ratings[p.label] = m[1] + "/5"
		}
	}

	if m := verdictPattern.FindStringSubmatch(raw); m != nil {
		assessment.Verdict = strings.TrimSpace(m[1])
	}

	assessment.Narrative = extractNarrative(raw)

	return assessment
}

// extractNarrative removes the rating spans and verdict lines, then
// drops blank lines from what remains.
func extractNarrative(raw string) string {
	text := ratingSpan.ReplaceAllString(raw, "")
	text = verdictPattern.ReplaceAllString(text, "")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}
