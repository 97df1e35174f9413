package analyzer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"larpscan/types"
)

const commitDayFormat = "2006-01-02"

// collectActivity issues the three history queries concurrently. Each
// query is isolated: a failure is absorbed and leaves its fields at
// their zero values, so the result is always well formed.
func (a *Analyzer) collectActivity(ctx context.Context, ref types.RepoRef, cutoff string) types.ActivityMetrics {
	var (
		commits      []types.Commit
		contributors int
		issues       int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := a.host.ListRecentCommits(gctx, ref)
		if err != nil {
			a.policy.Absorb("list commits", err)
			return nil
		}
		commits = list
		return nil
	})
	g.Go(func() error {
		count, err := a.host.CountContributors(gctx, ref)
		if err != nil {
			a.policy.Absorb("count contributors", err)
			return nil
		}
		contributors = count
		return nil
	})
	g.Go(func() error {
		count, err := a.host.CountIssues(gctx, ref)
		if err != nil {
			a.policy.Absorb("count issues", err)
			return nil
		}
		issues = count
		return nil
	})
	_ = g.Wait()

	return BuildActivityMetrics(commits, contributors, issues, cutoff)
}

// BuildActivityMetrics derives day-granularity commit dates (first-seen
// order, one entry per day) and the recency flag. cutoff is an ISO day
// string; the comparison is lexical, which is sound for the fixed-width
// zero-padded format.
func BuildActivityMetrics(commits []types.Commit, contributors, issues int, cutoff string) types.ActivityMetrics {
	metrics := types.ActivityMetrics{
		TotalCommits:      len(commits),
		TotalContributors: contributors,
		TotalIssues:       issues,
	}

	seen := make(map[string]bool)
	for _, commit := range commits {
		if commit.AuthoredAt.IsZero() {
			continue
		}
		day := commit.AuthoredAt.Format(commitDayFormat)
		if !seen[day] {
			seen[day] = true
			metrics.CommitDates = append(metrics.CommitDates, day)
		}
		if day >= cutoff {
			metrics.RecentActivity = true
		}
	}

	return metrics
}
