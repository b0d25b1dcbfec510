package interact

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the terminal state of one engine invocation.
type Status int

const (
	StatusPending Status = iota
	// StatusSucceeded: the lifecycle completed and the Context is not failed.
	StatusSucceeded
	// StatusSkipped: Around vetoed the run.
	StatusSkipped
	// StatusFailed: a recoverable failure was recorded and absorbed, or the
	// unit ran over an already failed Context.
	StatusFailed
	// StatusCompletedWithFailures: an organizer that continues on failure
	// ran every step and at least one failed.
	StatusCompletedWithFailures
	// StatusRolledBack: an organizer aborted and compensated its steps.
	StatusRolledBack
	// StatusPropagated: a strict failure or another error escaped the run.
	StatusPropagated
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "succeeded"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	case StatusCompletedWithFailures:
		return "completed_with_failures"
	case StatusRolledBack:
		return "rolled_back"
	case StatusPropagated:
		return "propagated"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Record describes a single engine invocation. Observers receive it when
// the run starts and again, completed, when it finishes.
type Record struct {
	id         uuid.UUID
	parentID   uuid.UUID
	unit       string
	kind       Kind
	depth      int
	startedAt  time.Time
	finishedAt time.Time
	status     Status
	err        error
	context    *Context
}

func newRecord(parent *Record, ref Ref, kind Kind, c *Context) *Record {
	r := &Record{
		id:        uuid.New(),
		unit:      ref.Name(),
		kind:      kind,
		startedAt: time.Now().UTC(),
		status:    StatusPending,
		context:   c,
	}
	if parent != nil {
		r.parentID = parent.id
		r.depth = parent.depth + 1
	}
	return r
}

func (r *Record) finish(status Status, err error) {
	r.status = status
	r.err = err
	r.finishedAt = time.Now().UTC()
}

func (r *Record) ID() uuid.UUID { return r.id }

// ParentID is uuid.Nil for top-level runs.
func (r *Record) ParentID() uuid.UUID { return r.parentID }

func (r *Record) Unit() string          { return r.unit }
func (r *Record) Kind() Kind            { return r.kind }
func (r *Record) Depth() int            { return r.depth }
func (r *Record) StartedAt() time.Time  { return r.startedAt }
func (r *Record) FinishedAt() time.Time { return r.finishedAt }
func (r *Record) Status() Status        { return r.status }
func (r *Record) Err() error            { return r.err }
func (r *Record) Context() *Context     { return r.context }

func (r *Record) Duration() time.Duration {
	if r.finishedAt.IsZero() {
		return 0
	}
	return r.finishedAt.Sub(r.startedAt)
}

func (r *Record) IsFinished() bool {
	return r.status != StatusPending
}
