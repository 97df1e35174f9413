package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"larpscan/types"
)

const promptHeader = `
Analyze this cryptocurrency/blockchain GitHub repository to determine if the project is "larping" (pretending to be more substantial than it actually is).

REPOSITORY OVERVIEW:
- Name: %s
- Description: %s
- Stars: %d
- Forks: %d
- Total files: %d
- File types: %s
- Total commits: %d
- Total contributors: %d
- Recent activity: %s

ANALYSIS INSTRUCTIONS:
1. Provide a concise assessment (max 500 words total) focused on these key questions:
   a) Is this a real, functional project or just empty promises?
   b) Does the code actually implement what the project claims?
   c) Are there specific red flags indicating a scam or incompetence?
   d) Is this a copy/paste of another project with minimal modifications?

2. Rate each of the following on a scale of 1-5 (1=Very Poor, 5=Excellent):
   - CODE QUALITY: Is the code well-written or amateurish?
   - COMPLETENESS: Is it a complete implementation or just a skeleton?
   - SECURITY: Are there obvious security flaws?
   - ORIGINALITY: Is this unique code or copied/forked?
   - ACTIVITY: Is this an actively maintained project?

3. VERDICT: Explicitly state whether this project is LEGITIMATE or LARPING, with a 1-2 sentence explanation.

Here are excerpts from key files:

`

// BuildPrompt compiles the repository evidence into the due-diligence
// prompt. Each sampled file's content is truncated to maxExcerptChars
// with an explicit marker so total prompt size stays bounded regardless
// of file count or size.
func BuildPrompt(meta types.RepoMetadata, structure types.RepoStructure, activity types.ActivityMetrics, samples []types.SampledFile, maxExcerptChars int) string {
	description := meta.Description
	if description == "" {
		description = "No description"
	}

	recent := "No"
	if activity.RecentActivity {
		recent = "Yes"
	}

	fileTypes, err := json.Marshal(structure.FileTypes)
	if err != nil {
		fileTypes = []byte("{}")
	}

	var b strings.Builder
	fmt.Fprintf(&b, promptHeader,
		meta.Name,
		description,
		meta.Stars,
		meta.Forks,
		structure.TotalFiles,
		fileTypes,
		activity.TotalCommits,
		activity.TotalContributors,
		recent,
	)

	for _, sample := range samples {
		fmt.Fprintf(&b, "\n--- %s ---\n%s\n", sample.Path, truncateExcerpt(sample.Content, maxExcerptChars))
	}

	return b.String()
}

// truncateExcerpt caps content at limit characters, marking the cut.
func truncateExcerpt(content string, limit int) string {
	if limit <= 0 || len(content) <= limit {
		return content
	}
	runes := []rune(content)
	if len(runes) <= limit {
		return content
	}
	return string(runes[:limit]) + "...[truncated]"
}
