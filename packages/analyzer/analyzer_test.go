package analyzer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"larpscan/packages/config"
	"larpscan/types"
)

type fakeHost struct {
	mu sync.Mutex

	meta    types.RepoMetadata
	metaErr error

	dirs    map[string][]types.FileEntry
	dirErrs map[string]error

	contents     map[string]string
	contentTypes map[string]string
	contentErrs  map[string]error
	fetched      []string

	commits      []types.Commit
	commitsErr   error
	contributors int
	contribErr   error
	issues       int
	issuesErr    error
}

func (f *fakeHost) GetRepository(_ context.Context, _ types.RepoRef) (types.RepoMetadata, error) {
	if f.metaErr != nil {
		return types.RepoMetadata{}, f.metaErr
	}
	return f.meta, nil
}

func (f *fakeHost) ListDirectory(_ context.Context, _ types.RepoRef, dir string) ([]types.FileEntry, error) {
	if err := f.dirErrs[dir]; err != nil {
		return nil, err
	}
	return f.dirs[dir], nil
}

func (f *fakeHost) DownloadFile(_ context.Context, downloadURL string) ([]byte, string, error) {
	f.mu.Lock()
	f.fetched = append(f.fetched, downloadURL)
	f.mu.Unlock()

	if err := f.contentErrs[downloadURL]; err != nil {
		return nil, "", err
	}
	return []byte(f.contents[downloadURL]), f.contentTypes[downloadURL], nil
}

func (f *fakeHost) ListRecentCommits(_ context.Context, _ types.RepoRef) ([]types.Commit, error) {
	if f.commitsErr != nil {
		return nil, f.commitsErr
	}
	return f.commits, nil
}

func (f *fakeHost) CountContributors(_ context.Context, _ types.RepoRef) (int, error) {
	if f.contribErr != nil {
		return 0, f.contribErr
	}
	return f.contributors, nil
}

func (f *fakeHost) CountIssues(_ context.Context, _ types.RepoRef) (int, error) {
	if f.issuesErr != nil {
		return 0, f.issuesErr
	}
	return f.issues, nil
}

func (f *fakeHost) fetchedURLs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.fetched))
	copy(out, f.fetched)
	return out
}

type fakeGenerator struct {
	mu     sync.Mutex
	text   string
	err    error
	prompt string
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	g.prompt = prompt
	g.mu.Unlock()

	if g.err != nil {
		return "", g.err
	}
	return g.text, nil
}

func newTestAnalyzer(host HostService, gen Generator) *Analyzer {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(host, gen, config.Default(), log)
}

func TestAnalyze(t *testing.T) {
	host := &fakeHost{
		meta: types.RepoMetadata{
			Owner:       "acme",
			Name:        "widget",
			FullName:    "acme/widget",
			Description: "Fast widgets",
			Stars:       42,
			Forks:       7,
			HTMLURL:     "https://github.com/acme/widget",
		},
		dirs: map[string][]types.FileEntry{
			"": {
				{Path: "main.go", Kind: types.EntryFile, Size: 13, DownloadURL: "https://raw.test/main.go"},
				{Path: "README.md", Kind: types.EntryFile, Size: 9, DownloadURL: "https://raw.test/README.md"},
			},
		},
		contents: map[string]string{
			"https://raw.test/main.go":   "package main\n",
			"https://raw.test/README.md": "# Widget\n",
		},
		commits:      []types.Commit{{SHA: "abc", AuthoredAt: time.Now()}},
		contributors: 2,
		issues:       5,
	}
	gen := &fakeGenerator{text: "The code is real and maintained.\n\nCODE QUALITY: 4/5\nCOMPLETENESS: 3/5\n\nVERDICT: LEGITIMATE - working implementation\n"}

	a := newTestAnalyzer(host, gen)
	rep, err := a.Analyze(context.Background(), "https://github.com/acme/widget")
	require.NoError(t, err)

	assert.Equal(t, types.RepoRef{Owner: "acme", Name: "widget"}, rep.Ref)
	assert.Equal(t, "acme/widget", rep.Metadata.FullName)
	assert.Equal(t, 2, rep.Structure.TotalFiles)
	assert.Equal(t, 1, rep.Activity.TotalCommits)
	assert.Equal(t, 2, rep.Activity.TotalContributors)
	assert.Equal(t, 5, rep.Activity.TotalIssues)
	assert.True(t, rep.Activity.RecentActivity)
	assert.Equal(t, 2, rep.SampleCount)
	assert.Equal(t, "LEGITIMATE - working implementation", rep.Assessment.Verdict)
	assert.Equal(t, map[string]string{"Code Quality": "4/5", "Completeness": "3/5"}, rep.Assessment.Ratings)
	require.NotEmpty(t, rep.Segments)
	assert.Equal(t, "The code is real and maintained.", rep.Segments[0])

	assert.Contains(t, gen.prompt, "- Name: widget")
	assert.Contains(t, gen.prompt, "- Stars: 42")
	assert.Contains(t, gen.prompt, "--- main.go ---")
	assert.Contains(t, gen.prompt, "package main")
}

func TestAnalyzeInvalidLocator(t *testing.T) {
	a := newTestAnalyzer(&fakeHost{}, &fakeGenerator{})

	_, err := a.Analyze(context.Background(), "not a repository")
	assert.ErrorIs(t, err, ErrInvalidLocator)
}

func TestAnalyzeMetadataFailure(t *testing.T) {
	host := &fakeHost{metaErr: errors.New("api down")}
	a := newTestAnalyzer(host, &fakeGenerator{})

	_, err := a.Analyze(context.Background(), "https://github.com/acme/widget")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch repository metadata")
}

func TestAnalyzeGenerationFailure(t *testing.T) {
	host := &fakeHost{meta: types.RepoMetadata{Owner: "acme", Name: "widget"}}
	gen := &fakeGenerator{err: errors.New("quota exceeded")}

	a := newTestAnalyzer(host, gen)
	rep, err := a.Analyze(context.Background(), "https://github.com/acme/widget")
	require.NoError(t, err)

	assert.Contains(t, rep.RawAnalysis, "Error analyzing code with LLM")
	assert.Contains(t, rep.RawAnalysis, "quota exceeded")
	assert.Empty(t, rep.Assessment.Verdict)
	require.NotEmpty(t, rep.Segments)
}

func TestCollectActivityAllQueriesFail(t *testing.T) {
	down := errors.New("service unavailable")
	host := &fakeHost{commitsErr: down, contribErr: down, issuesErr: down}
	a := newTestAnalyzer(host, &fakeGenerator{})

	metrics := a.collectActivity(context.Background(), types.RepoRef{Owner: "acme", Name: "widget"}, "2024-01-01")
	assert.Equal(t, types.ActivityMetrics{}, metrics)
}
