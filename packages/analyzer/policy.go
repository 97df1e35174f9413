package analyzer

import (
	"fmt"
	"log/slog"
)

// FailurePolicy is the single place that decides whether a failing
// pipeline stage degrades or aborts. Sub-repository failures (one
// subtree listing, one activity query, one content fetch) are absorbed
// so the analysis continues on defaults; locator and metadata failures
// abort.
type FailurePolicy struct {
	log *slog.Logger
}

func NewFailurePolicy(log *slog.Logger) *FailurePolicy {
	if log == nil {
		log = slog.Default()
	}
	return &FailurePolicy{log: log}
}

// Absorb records a degradable failure. The caller continues with its
// zero-value default.
func (p *FailurePolicy) Absorb(op string, err error, attrs ...any) {
	if err == nil {
		return
	}
	args := append([]any{"op", op, "error", err}, attrs...)
	p.log.Warn("Continuing with defaults after failure", args...)
}

// Abort wraps a terminal failure. The analysis stops here and the
// caller sees the returned error.
func (p *FailurePolicy) Abort(op string, err error) error {
	p.log.Error("Analysis aborted", "op", op, "error", err)
	return fmt.Errorf("%s: %w", op, err)
}
