package interact_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ib-77/interactor/pkg/interact"
	"github.com/ib-77/interactor/pkg/interact/interacttest"
)

type runLog struct {
	interact.NopObserver
	started    []string
	finished   []*interact.Record
	rolledBack []string
}

func (l *runLog) Started(ctx context.Context, r *interact.Record) context.Context {
	l.started = append(l.started, r.Unit())
	return ctx
}

func (l *runLog) Finished(_ context.Context, r *interact.Record) {
	l.finished = append(l.finished, r)
}

func (l *runLog) RolledBack(_ context.Context, r *interact.Record, _ error) {
	l.rolledBack = append(l.rolledBack, r.Unit())
}

func (l *runLog) byUnit(unit string) *interact.Record {
	for _, r := range l.finished {
		if r.Unit() == unit {
			return r
		}
	}
	return nil
}

func TestObservers_ReceiveRecords(t *testing.T) {
	log := &runLog{}
	ctx := interact.WithObservers(context.Background(), log)

	ref := interacttest.Sequence("P", false,
		interacttest.Recording("A"),
		interacttest.Recording("B", interacttest.Vetoes()),
		interacttest.Recording("C", interacttest.Fails("c failed")),
		interacttest.Recording("D"),
	)

	c, err := interact.Run(ctx, ref, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"P", "A", "B", "C"}, log.started)
	assert.Equal(t, []string{"C", "B", "A"}, log.rolledBack)

	p := log.byUnit("P")
	require.NotNil(t, p)
	assert.Equal(t, interact.KindOrganizer, p.Kind())
	assert.Equal(t, interact.StatusRolledBack, p.Status())
	assert.Equal(t, uuid.Nil, p.ParentID())
	assert.Equal(t, 0, p.Depth())
	assert.Same(t, c, p.Context())

	want := map[string]interact.Status{
		"A": interact.StatusSucceeded,
		"B": interact.StatusSkipped,
		"C": interact.StatusFailed,
	}
	for unit, status := range want {
		r := log.byUnit(unit)
		require.NotNil(t, r, unit)
		assert.Equal(t, status, r.Status(), unit)
		assert.Equal(t, interact.KindUnit, r.Kind())
		assert.Equal(t, p.ID(), r.ParentID(), unit)
		assert.Equal(t, 1, r.Depth(), unit)
		assert.True(t, r.IsFinished())
		assert.False(t, r.FinishedAt().Before(r.StartedAt()))
	}
}

func TestObservers_Statuses(t *testing.T) {
	tests := []struct {
		name string
		ref  interact.Ref
		want interact.Status
	}{
		{"success", interacttest.Sequence("P", false, interacttest.Recording("A")), interact.StatusSucceeded},
		{"continued", interacttest.Sequence("P", true, interacttest.Recording("A", interacttest.Fails("x"))), interact.StatusCompletedWithFailures},
		{"rolled back", interacttest.Sequence("P", false, interacttest.Recording("A", interacttest.Fails("x"))), interact.StatusRolledBack},
		{"propagated", interacttest.Sequence("P", false, interacttest.Recording("A", interacttest.FailsStrict("x"))), interact.StatusPropagated},
		{"vetoed", interacttest.Recording("P", interacttest.Vetoes()), interact.StatusSkipped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &runLog{}
			ctx := interact.WithObservers(context.Background(), log)

			_, _ = interact.Run(ctx, tt.ref, nil)

			p := log.byUnit("P")
			require.NotNil(t, p)
			assert.Equal(t, tt.want, p.Status())
			assert.Equal(t, tt.want.String(), p.Status().String())
		})
	}
}

func TestWithObservers_Appends(t *testing.T) {
	first, second := &runLog{}, &runLog{}
	ctx := interact.WithObservers(context.Background(), first)
	ctx = interact.WithObservers(ctx, second)

	_, err := interact.Run(ctx, interacttest.Recording("A"), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, first.started)
	assert.Equal(t, []string{"A"}, second.started)
	assert.Len(t, interact.GetObservers(ctx), 2)
}

func TestWithLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := interact.WithLogger(context.Background(), zap.New(core))

	ref := interacttest.Sequence("P", false,
		interacttest.Recording("A", interacttest.Fails("a failed")),
	)
	_, err := interact.Run(ctx, ref, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, logs.FilterMessage("unit started").Len())
	assert.Equal(t, 2, logs.FilterMessage("unit finished").Len())
	rolledBack := logs.FilterMessage("unit rolled back").All()
	require.Len(t, rolledBack, 1)
	assert.Equal(t, "A", rolledBack[0].ContextMap()["unit"])
}

func TestWithLogger_ConfigErrorsAndRollbackErrors(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := interact.WithLogger(context.Background(), zap.New(core))

	_, err := interact.Call[notAUnit](ctx, nil)
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("unit rejected").FilterLevelExact(zapcore.ErrorLevel).Len())

	ref := interacttest.Sequence("P", false,
		interacttest.Recording("A", interacttest.Fails("x"), interacttest.RollbackErrors(interacttest.ErrBoom)),
	)
	_, err = interact.Run(ctx, ref, nil)
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("rollback failed").FilterLevelExact(zapcore.WarnLevel).Len())
	assert.Equal(t, 0, logs.FilterMessage("unit started").Len())
}

func TestGetLogger_DefaultsToNop(t *testing.T) {
	assert.NotNil(t, interact.GetLogger(context.Background()))
}
