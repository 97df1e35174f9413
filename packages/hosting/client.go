// Package hosting wraps the GitHub REST API behind the read-only queries
// the analysis pipeline needs.
package hosting

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"larpscan/types"
)

// Client issues repository queries. An empty token yields an
// unauthenticated client subject to the public rate limits.
type Client struct {
	gh   *github.Client
	http *http.Client
}

// NewClient builds a Client. baseURL overrides the API endpoint and is
// meant for tests; production callers pass "".
func NewClient(token, baseURL string) (*Client, error) {
	httpClient := http.DefaultClient
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	gh := github.NewClient(httpClient)
	if baseURL != "" {
		parsed, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
		}
		gh.BaseURL = parsed
		gh.UploadURL = parsed
	}

	return &Client{gh: gh, http: httpClient}, nil
}

// GetRepository fetches the repository metadata record.
func (c *Client) GetRepository(ctx context.Context, ref types.RepoRef) (types.RepoMetadata, error) {
	repo, _, err := c.gh.Repositories.Get(ctx, ref.Owner, ref.Name)
	if err != nil {
		return types.RepoMetadata{}, fmt.Errorf("failed to get repository %s: %w", ref, err)
	}

	return types.RepoMetadata{
		Owner:       repo.GetOwner().GetLogin(),
		Name:        repo.GetName(),
		FullName:    repo.GetFullName(),
		Description: repo.GetDescription(),
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		UpdatedAt:   repo.GetUpdatedAt().Time,
		HTMLURL:     repo.GetHTMLURL(),
	}, nil
}

// ListDirectory returns the immediate entries of one directory. Entries
// that are neither plain files nor directories (symlinks, submodules)
// are skipped.
func (c *Client) ListDirectory(ctx context.Context, ref types.RepoRef, dir string) ([]types.FileEntry, error) {
	_, entries, _, err := c.gh.Repositories.GetContents(ctx, ref.Owner, ref.Name, dir, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list %q in %s: %w", dir, ref, err)
	}

	out := make([]types.FileEntry, 0, len(entries))
	for _, e := range entries {
		kind := types.EntryKind(e.GetType())
		if kind != types.EntryFile && kind != types.EntryDir {
			continue
		}
		out = append(out, types.FileEntry{
			Path:        e.GetPath(),
			Kind:        kind,
			Size:        e.GetSize(),
			DownloadURL: e.GetDownloadURL(),
		})
	}

	return out, nil
}

// DownloadFile fetches raw file content from its download URL over the
// same transport as the API calls. It returns the body and the response
// content type.
func (c *Client) DownloadFile(ctx context.Context, downloadURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build download request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download %s: %w", downloadURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("download %s: unexpected status %d", downloadURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read download body: %w", err)
	}

	return body, resp.Header.Get("Content-Type"), nil
}
