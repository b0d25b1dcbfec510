package interact

import (
	"context"

	"go.uber.org/zap"
)

// Input is accepted by the entry points: Params build a fresh Context,
// an existing *Context is reused so that several calls share one state.
type Input interface {
	resolveContext() *Context
}

// Params seeds a fresh Context.
type Params map[string]any

func (p Params) resolveContext() *Context { return NewContext(p) }

func (c *Context) resolveContext() *Context { return c }

// Call runs the unit or organizer T.
func Call[T any](ctx context.Context, in Input) (*Context, error) {
	return Run(ctx, RefOf[T](), in)
}

// Run runs the unit or organizer behind ref and returns the Context it ran
// against. Recoverable failures are reported only through the Context;
// a non-nil error means a strict failure, a configuration error or any
// other error escaped the call tree.
func Run(ctx context.Context, ref Ref, in Input) (*Context, error) {
	c := ContextFrom(in)
	_, err := run(ctx, ref, c)
	return c, err
}

// ContextFrom resolves in the way the entry points do; nil yields an empty
// Context.
func ContextFrom(in Input) *Context {
	if IsNil(in) {
		return NewContext(nil)
	}
	return in.resolveContext()
}

type recordKey struct{}

// step is a unit instance together with the record of its run.
type step struct {
	hooks  Hooks
	record *Record
}

func run(ctx context.Context, ref Ref, c *Context) (*step, error) {
	logger := GetLogger(ctx)

	hooks, kind, err := resolve(ref)
	if err != nil {
		logger.Error("unit rejected", zap.String("unit", ref.Name()), zap.Error(err))
		return nil, err
	}

	parent, _ := ctx.Value(recordKey{}).(*Record)
	rec := newRecord(parent, ref, kind, c)
	observers := GetObservers(ctx)

	ctx = observers.Started(ctx, rec)
	ctx = context.WithValue(ctx, recordKey{}, rec)

	logger.Debug("unit started",
		zap.String("unit", rec.Unit()),
		zap.Stringer("kind", rec.Kind()),
		zap.Stringer("run_id", rec.ID()),
		zap.Stringer("context_id", c.ID()),
		zap.Int("depth", rec.Depth()))

	var core func(ctx context.Context, c *Context) (Status, error)
	switch h := hooks.(type) {
	case Organizer:
		core = func(ctx context.Context, c *Context) (Status, error) {
			return organize(ctx, h, rec, c)
		}
	case Unit:
		core = func(ctx context.Context, c *Context) (Status, error) {
			return StatusSucceeded, h.Execute(ctx, c)
		}
	}

	status, err := lifecycle(ctx, hooks, core, c)
	rec.finish(status, err)
	observers.Finished(ctx, rec)

	fields := []zap.Field{
		zap.String("unit", rec.Unit()),
		zap.Stringer("status", rec.Status()),
		zap.Stringer("run_id", rec.ID()),
		zap.Duration("duration", rec.Duration()),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	logger.Debug("unit finished", fields...)

	return &step{hooks: hooks, record: rec}, err
}

// lifecycle runs around, before, the core operation and after. The first
// error stops the sequence and goes through intercept.
func lifecycle(ctx context.Context, h Hooks,
	core func(ctx context.Context, c *Context) (Status, error), c *Context) (Status, error) {

	proceed, err := h.Around(ctx, c)
	if err != nil {
		return intercept(c, err)
	}
	if !proceed {
		return StatusSkipped, nil
	}

	if err := h.Before(ctx, c); err != nil {
		return intercept(c, err)
	}

	status, err := core(ctx, c)
	if err != nil {
		return intercept(c, err)
	}

	if err := h.After(ctx, c); err != nil {
		return intercept(c, err)
	}

	if status == StatusSucceeded && c.Failed() {
		status = StatusFailed
	}
	return status, nil
}

// intercept absorbs recoverable failures and lets everything else through.
func intercept(c *Context, err error) (Status, error) {
	if !IsFailure(err) || c.Strict() {
		return StatusPropagated, err
	}
	return StatusFailed, nil
}
