package validation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ratersync/internal/compliance"
	"ratersync/pkg/contracts/domain"
)

func newTestEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	std, err := compliance.GetStandard(compliance.DefaultVersion)
	require.NoError(t, err)
	return NewEvaluator(std, nil)
}

func evaluationBatch(t *testing.T) *domain.Batch {
	t.Helper()
	batch := domain.NewBatch()

	good := completeProject()
	good.ReturnCount = domain.Float(2)
	require.True(t, batch.Add("Oakwood_Lot12", good))

	bad := &domain.Project{
		Subdivision:      "Oakwood",
		Lot:              "14",
		StreetAddress:    "125 Main St",
		LivingArea:       domain.Float(1800),
		TotalDuctLeakage: domain.Float(400),
	}
	require.True(t, batch.Add("Oakwood_Lot14", bad))
	require.True(t, batch.Add("Oakwood_Lot15", &domain.Project{}))
	return batch
}

func TestEvaluateBatchConcurrent(t *testing.T) {
	e := newTestEvaluator(t)
	batch := evaluationBatch(t)

	eval, err := e.EvaluateBatch(context.Background(), batch)
	require.NoError(t, err)

	// Every batch key must appear in both result maps.
	require.Len(t, eval.Validation, batch.Len())
	require.Len(t, eval.Compliance, batch.Len())
	for _, key := range batch.Keys() {
		assert.Contains(t, eval.Validation, key)
		assert.Contains(t, eval.Compliance, key)
	}

	assert.Equal(t, 2, eval.ExportReady())
	assert.Equal(t, domain.StatusPass, eval.Compliance["Oakwood_Lot12"].Overall)
	assert.Equal(t, domain.StatusFail, eval.Compliance["Oakwood_Lot14"].Overall)
	assert.Equal(t, domain.StatusFail, eval.Compliance["Oakwood_Lot15"].Overall)
	assert.Equal(t, 1, eval.CountByStatus(domain.StatusPass))
	assert.Equal(t, 2, eval.CountByStatus(domain.StatusFail))
	assert.Zero(t, eval.CountByStatus(domain.StatusWarn))
}

func TestEvaluateBatchCancelled(t *testing.T) {
	e := newTestEvaluator(t)
	batch := evaluationBatch(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eval, err := e.EvaluateBatch(ctx, batch)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, eval)
}

func TestEvaluateBatchEmpty(t *testing.T) {
	e := newTestEvaluator(t)

	eval, err := e.EvaluateBatch(context.Background(), domain.NewBatch())
	require.NoError(t, err)
	assert.Empty(t, eval.Validation)
	assert.Empty(t, eval.Compliance)
	assert.Zero(t, eval.ExportReady())
}

func TestSummarizeIssues(t *testing.T) {
	assert.Empty(t, SummarizeIssues(domain.ValidationResult{IsValid: true}))

	r := domain.ValidationResult{
		Errors:   []string{"Missing: Lot"},
		Warnings: []string{"Missing: TDLCFM"},
	}
	assert.Equal(t, "Missing: Lot; Missing: TDLCFM", SummarizeIssues(r))
}
