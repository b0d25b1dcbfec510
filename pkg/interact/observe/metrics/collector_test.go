package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/interactor/pkg/interact"
	"github.com/ib-77/interactor/pkg/interact/interacttest"
)

func TestCollector_RecordsRunsAndRollbacks(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewCollector(reg, "interactor")
	ctx := interact.WithObservers(context.Background(), collector)

	ref := interacttest.Sequence("P", false,
		interacttest.Recording("A"),
		interacttest.Recording("B", interacttest.Fails("b failed")),
		interacttest.Recording("C"),
	)

	_, err := interact.Run(ctx, ref, nil)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.runsStarted.WithLabelValues("P", "organizer")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.runsFinished.WithLabelValues("P", "organizer", "rolled_back")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.runsFinished.WithLabelValues("A", "unit", "succeeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.runsFinished.WithLabelValues("B", "unit", "failed")))
	assert.Equal(t, 0.0, testutil.ToFloat64(collector.runsStarted.WithLabelValues("C", "unit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.rollbacks.WithLabelValues("A")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.rollbacks.WithLabelValues("B")))
	assert.Equal(t, 0.0, testutil.ToFloat64(collector.activeRuns))
	assert.Equal(t, 3, testutil.CollectAndCount(collector.runDuration))
}

func TestCollector_RollbackErrors(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewCollector(reg, "")
	ctx := interact.WithObservers(context.Background(), collector)

	ref := interacttest.Sequence("P", false,
		interacttest.Recording("A", interacttest.Fails("a failed"), interacttest.RollbackErrors(interacttest.ErrBoom)),
	)

	_, err := interact.Run(ctx, ref, nil)
	require.ErrorIs(t, err, interacttest.ErrBoom)

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.rollbackErrors.WithLabelValues("A")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.runsFinished.WithLabelValues("P", "organizer", "propagated")))
}

func TestCollector_SkippedAndContinued(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewCollector(reg, "")
	ctx := interact.WithObservers(context.Background(), collector)

	ref := interacttest.Sequence("P", true,
		interacttest.Recording("A", interacttest.Vetoes()),
		interacttest.Recording("B", interacttest.Fails("b failed")),
	)

	_, err := interact.Run(ctx, ref, nil)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.runsFinished.WithLabelValues("A", "unit", "skipped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.runsFinished.WithLabelValues("P", "organizer", "completed_with_failures")))
	assert.Equal(t, 0, testutil.CollectAndCount(collector.rollbacks))
}
