package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"larpscan/types"
)

// Verdict tone colors for console output.
var (
	positiveColor = color.New(color.FgGreen, color.Bold)
	negativeColor = color.New(color.FgRed, color.Bold)
	cautionColor  = color.New(color.FgYellow, color.Bold)
)

// Render writes the analysis report to w: repository header, info
// block, colored verdict line, star-rating table, and the narrative
// segments in order.
func Render(w io.Writer, rep *types.AnalysisReport) error {
	fmt.Fprintf(w, "Analysis: %s\n", rep.Metadata.Name)
	fmt.Fprintf(w, "Repository by %s (%s)\n\n", rep.Metadata.Owner, rep.Metadata.HTMLURL)

	fmt.Fprintf(w, "Stars: %d\n", rep.Metadata.Stars)
	fmt.Fprintf(w, "Forks: %d\n", rep.Metadata.Forks)
	fmt.Fprintf(w, "Files: %d\n", rep.Structure.TotalFiles)
	if !rep.Metadata.UpdatedAt.IsZero() {
		fmt.Fprintf(w, "Last updated: %s\n", rep.Metadata.UpdatedAt.Format("2006-01-02"))
	}
	fmt.Fprintln(w)

	if rep.Assessment.Verdict != "" {
		fmt.Fprintf(w, "Verdict: %s\n\n", colorVerdict(rep.Assessment.Verdict))
	}

	if len(rep.Assessment.Ratings) > 0 {
		if err := renderRatings(w, rep.Assessment.Ratings); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	for i, segment := range rep.Segments {
		if segment == "" {
			continue
		}
		if i == 0 {
			fmt.Fprintf(w, "Analysis Summary\n\n")
		} else {
			fmt.Fprintf(w, "\nAnalysis Summary (continued %d)\n\n", i)
		}
		fmt.Fprintln(w, segment)
	}

	return nil
}

func colorVerdict(verdict string) string {
	switch VerdictTone(verdict) {
	case TonePositive:
		return positiveColor.Sprint(verdict)
	case ToneNegative:
		return negativeColor.Sprint(verdict)
	case ToneCaution:
		return cautionColor.Sprint(verdict)
	default:
		return verdict
	}
}

// renderRatings prints the category scores as a star-bar table in
// canonical label order.
func renderRatings(w io.Writer, ratings map[string]string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Category", "Stars", "Score"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, label := range RatingLabels {
		score, ok := ratings[label]
		if !ok {
			continue
		}
		data = append(data, []string{label, StarBar(score), score})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// StarBar renders a "d/5" score as filled and hollow stars.
func StarBar(score string) string {
	value, _, ok := strings.Cut(score, "/")
	n, err := strconv.Atoi(value)
	if !ok || err != nil {
		return score
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", max(0, 5-n))
}
