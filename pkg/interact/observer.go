package interact

import "context"

// Observer is notified about every engine invocation and every
// compensation. Started may return a derived context which is then used
// for the rest of the run, including nested runs and Finished.
type Observer interface {
	Started(ctx context.Context, r *Record) context.Context
	Finished(ctx context.Context, r *Record)
	RolledBack(ctx context.Context, r *Record, err error)
}

// Observers fans out to several observers in order.
type Observers []Observer

func (o Observers) Started(ctx context.Context, r *Record) context.Context {
	for _, obs := range o {
		ctx = obs.Started(ctx, r)
	}
	return ctx
}

func (o Observers) Finished(ctx context.Context, r *Record) {
	for _, obs := range o {
		obs.Finished(ctx, r)
	}
}

func (o Observers) RolledBack(ctx context.Context, r *Record, err error) {
	for _, obs := range o {
		obs.RolledBack(ctx, r, err)
	}
}

// NopObserver can be embedded to implement only some callbacks.
type NopObserver struct{}

func (NopObserver) Started(ctx context.Context, _ *Record) context.Context { return ctx }
func (NopObserver) Finished(context.Context, *Record)                     {}
func (NopObserver) RolledBack(context.Context, *Record, error)            {}
