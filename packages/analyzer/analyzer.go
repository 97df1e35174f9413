// Package analyzer runs the repository analysis pipeline: locator
// parsing, tree crawl, structure and activity aggregation, content
// sampling, prompt generation, and result extraction.
package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"larpscan/packages/ai"
	"larpscan/packages/config"
	"larpscan/packages/report"
	"larpscan/types"
)

// HostService is the read-only slice of the code-hosting API the
// pipeline consumes. *hosting.Client satisfies it.
type HostService interface {
	GetRepository(ctx context.Context, ref types.RepoRef) (types.RepoMetadata, error)
	ListDirectory(ctx context.Context, ref types.RepoRef, dir string) ([]types.FileEntry, error)
	DownloadFile(ctx context.Context, downloadURL string) ([]byte, string, error)
	ListRecentCommits(ctx context.Context, ref types.RepoRef) ([]types.Commit, error)
	CountContributors(ctx context.Context, ref types.RepoRef) (int, error)
	CountIssues(ctx context.Context, ref types.RepoRef) (int, error)
}

// Generator produces the free-form assessment text for a compiled
// prompt. *ai.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Analyzer wires the pipeline stages over injected collaborators.
type Analyzer struct {
	host   HostService
	gen    Generator
	cfg    *config.Config
	log    *slog.Logger
	policy *FailurePolicy
}

func New(host HostService, gen Generator, cfg *config.Config, log *slog.Logger) *Analyzer {
	if log == nil {
		log = slog.Default()
	}
	return &Analyzer{
		host:   host,
		gen:    gen,
		cfg:    cfg,
		log:    log,
		policy: NewFailurePolicy(log),
	}
}

// Analyze runs the whole pipeline for one repository locator. Only an
// unparseable locator or a failed metadata fetch abort; every other
// failure degrades and the returned report is still complete, with the
// narrative pre-segmented for display.
func (a *Analyzer) Analyze(ctx context.Context, locator string) (*types.AnalysisReport, error) {
	ref, err := ParseLocator(locator)
	if err != nil {
		return nil, err
	}

	a.log.Info("Starting analysis", "repo", ref.String())

	meta, err := a.host.GetRepository(ctx, ref)
	if err != nil {
		return nil, a.policy.Abort("fetch repository metadata", err)
	}

	files := a.crawlTree(ctx, ref, "")
	a.log.Info("Crawl finished", "repo", ref.String(), "files", len(files))

	structure := BuildStructure(files)
	activity := a.collectActivity(ctx, ref, a.recencyCutoff())
	samples := a.sampleFiles(ctx, files)

	prompt := ai.BuildPrompt(meta, structure, activity, samples, a.cfg.Sampling.MaxExcerptChars)
	raw, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		a.policy.Absorb("generate analysis", err)
		raw = fmt.Sprintf("Error analyzing code with LLM: %v", err)
	}

	assessment := report.Extract(raw)
	segments := report.SplitSegments(report.FormatMarkup(assessment.Narrative), a.cfg.Display.SegmentChars)

	a.log.Info("Analysis finished", "repo", ref.String(), "verdict", assessment.Verdict)

	return &types.AnalysisReport{
		Ref:         ref,
		Metadata:    meta,
		Structure:   structure,
		Activity:    activity,
		SampleCount: len(samples),
		RawAnalysis: raw,
		Assessment:  assessment,
		Segments:    segments,
	}, nil
}

// recencyCutoff renders the configured look-back window as an ISO day
// for the lexical commit-date comparison.
func (a *Analyzer) recencyCutoff() string {
	months := a.cfg.Activity.RecencyMonths
	if months <= 0 {
		months = 12
	}
	return time.Now().AddDate(0, -months, 0).Format(commitDayFormat)
}
