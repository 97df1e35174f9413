package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"path"
	"strings"

	"golang.org/x/sync/errgroup"

	"larpscan/types"
)

const (
	oversizePlaceholder   = "File too large to analyze"
	fetchErrorPlaceholder = "Error fetching content"
)

// codeExtensions is the explicit allow-list of extensions treated as
// code-like. Membership is enumerated, not inferred.
var codeExtensions = map[string]bool{
	// programming languages
	".js": true, ".ts": true, ".jsx": true, ".tsx": true, ".py": true,
	".rb": true, ".java": true, ".c": true, ".cpp": true, ".cs": true,
	".go": true, ".rs": true, ".php": true, ".swift": true, ".kt": true,
	".scala": true, ".sh": true, ".bash": true, ".pl": true, ".lua": true,
	".sol": true, ".ex": true, ".exs": true, ".erl": true, ".hrl": true,
	// web
	".html": true, ".css": true, ".scss": true, ".sass": true, ".less": true,
	// config
	".json": true, ".yml": true, ".yaml": true, ".toml": true, ".xml": true,
	".ini": true, ".env.example": true, ".gitignore": true,
	// documentation
	".md": true, ".txt": true,
}

// IsCodeFile reports whether the file's extension is on the code-like
// allow-list.
func IsCodeFile(filePath string) bool {
	return codeExtensions[strings.ToLower(path.Ext(filePath))]
}

// sampleFiles filters the crawl listing to code-like files, caps the
// selection at the configured sample size (first-N in crawl order), and
// fetches the retained bodies behind a bounded worker limit. Results
// keep selection order regardless of fetch completion order.
func (a *Analyzer) sampleFiles(ctx context.Context, files []types.FileEntry) []types.SampledFile {
	selected := make([]types.FileEntry, 0, a.cfg.Sampling.MaxFiles)
	for _, file := range files {
		if !IsCodeFile(file.Path) {
			continue
		}
		selected = append(selected, file)
		if len(selected) == a.cfg.Sampling.MaxFiles {
			break
		}
	}

	samples := make([]types.SampledFile, len(selected))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, a.cfg.Sampling.Workers))
	for i, file := range selected {
		i, file := i, file // per-iteration copies; required while go.mod targets go < 1.22
		g.Go(func() error {
			samples[i] = a.sampleOne(gctx, file)
			return nil
		})
	}
	_ = g.Wait()

	return samples
}

// sampleOne applies the three-tier policy: oversized files get a
// placeholder without a fetch, fetched files get their body, failed
// fetches get a placeholder plus the error description. Every tier
// yields a well-formed SampledFile.
func (a *Analyzer) sampleOne(ctx context.Context, file types.FileEntry) types.SampledFile {
	sample := types.SampledFile{Path: file.Path, Size: file.Size}

	if file.Size > a.cfg.Sampling.MaxFileSize {
		sample.Content = oversizePlaceholder
		return sample
	}

	body, contentType, err := a.host.DownloadFile(ctx, file.DownloadURL)
	if err != nil {
		a.policy.Absorb("fetch content", err, "path", file.Path)
		sample.Content = fetchErrorPlaceholder
		sample.Error = err.Error()
		return sample
	}

	sample.Content = decodeContent(body, contentType)
	return sample
}

// decodeContent renders a fetched body as prompt text. Structured JSON
// payloads are re-serialized compactly; everything else passes through
// unchanged.
func decodeContent(body []byte, contentType string) string {
	if strings.Contains(contentType, "application/json") {
		var buf bytes.Buffer
		if err := json.Compact(&buf, body); err == nil {
			return buf.String()
		}
	}
	return string(body)
}
