package interacttest

import (
	"context"
	"slices"

	"github.com/ib-77/interactor/pkg/interact"
)

// Sequence returns a Ref to an organizer running refs. Its own hooks are
// journaled like those of Recording units.
func Sequence(name string, continueOnFailure bool, refs ...interact.Ref) interact.Ref {
	return interact.NewRef(name, func() any {
		return &sequence{name: name, continueOnFailure: continueOnFailure, refs: refs}
	})
}

type sequence struct {
	interact.Base
	name              string
	continueOnFailure bool
	refs              []interact.Ref
}

func (s *sequence) Organize() []interact.Ref {
	return slices.Clone(s.refs)
}

func (s *sequence) ContinueOnFailure() bool {
	return s.continueOnFailure
}

func (s *sequence) Before(_ context.Context, c *interact.Context) error {
	record(c, s.name+".before")
	return nil
}

func (s *sequence) After(_ context.Context, c *interact.Context) error {
	record(c, s.name+".after")
	return nil
}

func (s *sequence) Rollback(_ context.Context, c *interact.Context) error {
	record(c, s.name+".rollback")
	return nil
}
