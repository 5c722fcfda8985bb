package validation

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"ratersync/internal/compliance"
	"ratersync/pkg/contracts/domain"
)

// BatchEvaluation holds the per-project outcomes of an evaluation run.
// Both maps are keyed by the batch's project keys.
type BatchEvaluation struct {
	Validation map[string]domain.ValidationResult
	Compliance map[string]*domain.ComplianceVerdict
}

// ExportReady reports how many projects passed completeness validation.
func (e *BatchEvaluation) ExportReady() int {
	n := 0
	for _, r := range e.Validation {
		if r.IsValid {
			n++
		}
	}
	return n
}

// CountByStatus reports how many projects landed on the given overall
// compliance status.
func (e *BatchEvaluation) CountByStatus(status domain.CheckStatus) int {
	n := 0
	for _, v := range e.Compliance {
		if v.Overall == status {
			n++
		}
	}
	return n
}

// Evaluator runs completeness validation and compliance checking over a
// batch. The two passes are independent, so they run concurrently.
type Evaluator struct {
	projects *ProjectValidator
	checker  *compliance.Checker
	logger   *slog.Logger
}

// NewEvaluator creates an evaluator for the given compliance standard.
func NewEvaluator(std *compliance.Standard, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{
		projects: NewProjectValidator(logger),
		checker:  compliance.NewChecker(std),
		logger:   logger,
	}
}

// EvaluateBatch validates and checks every project in the batch.
func (e *Evaluator) EvaluateBatch(ctx context.Context, batch *domain.Batch) (*BatchEvaluation, error) {
	eval := &BatchEvaluation{
		Validation: make(map[string]domain.ValidationResult, batch.Len()),
		Compliance: make(map[string]*domain.ComplianceVerdict, batch.Len()),
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for _, key := range batch.Keys() {
			if err := ctx.Err(); err != nil {
				return err
			}
			r := e.projects.Validate(batch.Get(key))
			mu.Lock()
			eval.Validation[key] = r
			mu.Unlock()
		}
		return nil
	})

	g.Go(func() error {
		for _, key := range batch.Keys() {
			if err := ctx.Err(); err != nil {
				return err
			}
			v := e.checker.CheckProject(batch.Get(key))
			mu.Lock()
			eval.Compliance[key] = v
			mu.Unlock()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.logger.InfoContext(ctx, "Batch evaluated",
		slog.Int("projects", batch.Len()),
		slog.Int("export_ready", eval.ExportReady()),
		slog.Int("compliance_pass", eval.CountByStatus(domain.StatusPass)),
		slog.Int("compliance_warn", eval.CountByStatus(domain.StatusWarn)),
		slog.Int("compliance_fail", eval.CountByStatus(domain.StatusFail)))
	return eval, nil
}

// SummarizeIssues flattens a validation result into a one-line report
// string for console output, or "" when the project is clean.
func SummarizeIssues(r domain.ValidationResult) string {
	if len(r.Errors) == 0 && len(r.Warnings) == 0 {
		return ""
	}
	parts := make([]string, 0, len(r.Errors)+len(r.Warnings))
	parts = append(parts, r.Errors...)
	parts = append(parts, r.Warnings...)
	return strings.Join(parts, "; ")
}
