package interact

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// organize is the core operation of an organizer: it runs the declared
// steps in order over c and compensates them when the pipeline aborts.
func organize(ctx context.Context, o Organizer, rec *Record, c *Context) (Status, error) {
	refs := o.Organize()
	continueOnFailure := o.ContinueOnFailure()

	executed := make([]*step, 0, len(refs))
	aborted := false

	for i, ref := range refs {
		s, err := run(ctx, ref, c)
		if err != nil {
			var ce *ConfigError
			if errors.As(err, &ce) && ce.Organizer == "" {
				ce.Organizer = rec.Unit()
				ce.Index = i
			}
			return StatusPropagated, err
		}

		executed = append(executed, s)

		if c.Failed() && !continueOnFailure {
			aborted = true
			break
		}
	}

	if aborted {
		if err := rollback(ctx, executed); err != nil {
			return StatusPropagated, err
		}
		return StatusRolledBack, nil
	}

	if c.Failed() && continueOnFailure {
		return StatusCompletedWithFailures, nil
	}
	return StatusSucceeded, nil
}

// rollback compensates executed steps newest first, including the step
// that failed. The first compensation error stops the pass.
func rollback(ctx context.Context, executed []*step) error {
	logger := GetLogger(ctx)
	observers := GetObservers(ctx)

	for i := len(executed) - 1; i >= 0; i-- {
		s := executed[i]
		err := s.hooks.Rollback(ctx, s.record.Context())
		observers.RolledBack(ctx, s.record, err)

		if err != nil {
			logger.Warn("rollback failed",
				zap.String("unit", s.record.Unit()),
				zap.Stringer("run_id", s.record.ID()),
				zap.Error(err))
			return err
		}

		logger.Debug("unit rolled back",
			zap.String("unit", s.record.Unit()),
			zap.Stringer("run_id", s.record.ID()))
	}
	return nil
}
