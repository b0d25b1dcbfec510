package interacttest

import (
	"context"
	"errors"

	"github.com/ib-77/interactor/pkg/interact"
)

// JournalKey holds the hook invocations written by Recording units.
const JournalKey = "journal"

var ErrBoom = errors.New("boom")

// Journal returns the entries recorded so far, e.g. "A.execute".
func Journal(c *interact.Context) []string {
	return interact.ValueOr[[]string](c, JournalKey, nil)
}

func record(c *interact.Context, entry string) {
	c.Set(JournalKey, append(Journal(c), entry))
}

type recordingOptions struct {
	fail         string
	failStrict   bool
	veto         bool
	err          error
	rollbackErr  error
	failInBefore bool
}

type Option func(*recordingOptions)

// Fails makes Execute record a recoverable failure.
func Fails(message string) Option {
	return func(o *recordingOptions) { o.fail = message }
}

// FailsStrict makes Execute record a strict failure.
func FailsStrict(message string) Option {
	return func(o *recordingOptions) { o.fail, o.failStrict = message, true }
}

// FailsInBefore moves the failure configured by Fails into Before.
func FailsInBefore() Option {
	return func(o *recordingOptions) { o.failInBefore = true }
}

// Vetoes makes Around return false.
func Vetoes() Option {
	return func(o *recordingOptions) { o.veto = true }
}

// Errors makes Execute return err.
func Errors(err error) Option {
	return func(o *recordingOptions) { o.err = err }
}

// RollbackErrors makes Rollback return err.
func RollbackErrors(err error) Option {
	return func(o *recordingOptions) { o.rollbackErr = err }
}

// Recording returns a Ref to a unit that journals every hook it runs.
func Recording(name string, opts ...Option) interact.Ref {
	o := recordingOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	return interact.NewRef(name, func() any {
		return &recorder{name: name, opts: o}
	})
}

type recorder struct {
	name string
	opts recordingOptions
}

func (r *recorder) Around(_ context.Context, c *interact.Context) (bool, error) {
	record(c, r.name+".around")
	return !r.opts.veto, nil
}

func (r *recorder) Before(_ context.Context, c *interact.Context) error {
	record(c, r.name+".before")
	if r.opts.failInBefore {
		return r.failure(c)
	}
	return nil
}

func (r *recorder) Execute(_ context.Context, c *interact.Context) error {
	record(c, r.name+".execute")
	if r.opts.err != nil {
		return r.opts.err
	}
	if !r.opts.failInBefore {
		return r.failure(c)
	}
	return nil
}

func (r *recorder) After(_ context.Context, c *interact.Context) error {
	record(c, r.name+".after")
	return nil
}

func (r *recorder) Rollback(_ context.Context, c *interact.Context) error {
	record(c, r.name+".rollback")
	return r.opts.rollbackErr
}

func (r *recorder) failure(c *interact.Context) error {
	switch {
	case r.opts.fail == "":
		return nil
	case r.opts.failStrict:
		return c.FailStrict(r.opts.fail)
	default:
		return c.Fail(r.opts.fail)
	}
}
