package chain

import (
	"context"

	"github.com/ib-77/interactor/pkg/interact"
)

// Chain runs independently defined units one after another over a single
// Context. Once the Context has failed or a call returned an error the
// remaining steps are skipped.
type Chain struct {
	ctx context.Context
	c   *interact.Context
	err error
}

// Start creates a chain over in (Params or an existing Context).
func Start(ctx context.Context, in interact.Input) Chain {
	return Chain{ctx: ctx, c: interact.ContextFrom(in)}
}

// Context returns the shared Context.
func (ch Chain) Context() *interact.Context {
	return ch.c
}

// Result returns the shared Context and the first escaped error.
func (ch Chain) Result() (*interact.Context, error) {
	return ch.c, ch.err
}

func (ch Chain) stopped() bool {
	return ch.err != nil || ch.c.Failed()
}

// Then runs ref unless the chain already stopped.
func (ch Chain) Then(ref interact.Ref) Chain {
	if ch.stopped() {
		return ch
	}
	_, err := interact.Run(ch.ctx, ref, ch.c)
	return Chain{ctx: ch.ctx, c: ch.c, err: err}
}

// Call runs the unit or organizer T unless the chain already stopped.
func Call[T any](ch Chain) Chain {
	return ch.Then(interact.RefOf[T]())
}

// ThenIf runs ref only when condition holds.
func (ch Chain) ThenIf(condition func(ctx context.Context, c *interact.Context) bool, ref interact.Ref) Chain {
	if ch.stopped() || !condition(ch.ctx, ch.c) {
		return ch
	}
	return ch.Then(ref)
}

// RepeatUntil runs ref at least once and again while until reports false.
func (ch Chain) RepeatUntil(ref interact.Ref, until func(ctx context.Context, c *interact.Context) bool) Chain {
	if ch.stopped() {
		return ch
	}

	for {
		ch = ch.Then(ref)

		if ch.stopped() || until(ch.ctx, ch.c) {
			return ch
		}
	}
}

// Ensure triggers side effects without changing the chain. Nil callbacks
// are ignored.
func (ch Chain) Ensure(onSuccess func(context.Context, *interact.Context),
	onFailure func(context.Context, *interact.Context),
	onError func(context.Context, error)) Chain {

	switch {
	case ch.err != nil:
		if onError != nil {
			onError(ch.ctx, ch.err)
		}
	case ch.c.Failed():
		if onFailure != nil {
			onFailure(ch.ctx, ch.c)
		}
	default:
		if onSuccess != nil {
			onSuccess(ch.ctx, ch.c)
		}
	}
	return ch
}

// Finally collapses the chain to a value.
func Finally[U any](ch Chain,
	onSuccess func(context.Context, *interact.Context) U,
	onFailure func(context.Context, *interact.Context) U,
	onError func(context.Context, error) U) U {

	if ch.err != nil {
		return onError(ch.ctx, ch.err)
	}
	if ch.c.Failed() {
		return onFailure(ch.ctx, ch.c)
	}
	return onSuccess(ch.ctx, ch.c)
}
