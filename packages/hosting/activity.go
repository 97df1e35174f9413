package hosting

import (
	"context"
	"fmt"

	"github.com/google/go-github/v62/github"

	"larpscan/types"
)

const activityPageSize = 100

// ListRecentCommits returns up to one page of the newest commits.
func (c *Client) ListRecentCommits(ctx context.Context, ref types.RepoRef) ([]types.Commit, error) {
	commits, _, err := c.gh.Repositories.ListCommits(ctx, ref.Owner, ref.Name, &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: activityPageSize},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list commits for %s: %w", ref, err)
	}

	out := make([]types.Commit, 0, len(commits))
	for _, commit := range commits {
		out = append(out, types.Commit{
			SHA:        commit.GetSHA(),
			AuthoredAt: commit.GetCommit().GetAuthor().GetDate().Time,
		})
	}

	return out, nil
}

// CountContributors returns the contributor count, capped at one page.
func (c *Client) CountContributors(ctx context.Context, ref types.RepoRef) (int, error) {
	contributors, _, err := c.gh.Repositories.ListContributors(ctx, ref.Owner, ref.Name, &github.ListContributorsOptions{
		ListOptions: github.ListOptions{PerPage: activityPageSize},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to list contributors for %s: %w", ref, err)
	}

	return len(contributors), nil
}

// CountIssues returns the number of issues in any state, capped at one
// page. Pull requests ride along in the listing the same way the REST
// API reports them.
func (c *Client) CountIssues(ctx context.Context, ref types.RepoRef) (int, error) {
	issues, _, err := c.gh.Issues.ListByRepo(ctx, ref.Owner, ref.Name, &github.IssueListByRepoOptions{
		State:       "all",
		ListOptions: github.ListOptions{PerPage: activityPageSize},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to list issues for %s: %w", ref, err)
	}

	return len(issues), nil
}
