package interact

import (
	"context"
	"fmt"
	"reflect"
)

// Hooks are the lifecycle slots shared by units and organizers.
type Hooks interface {
	// Around gates execution: returning false skips Before, the core
	// operation and After.
	Around(ctx context.Context, c *Context) (bool, error)
	Before(ctx context.Context, c *Context) error
	After(ctx context.Context, c *Context) error
	// Rollback compensates the unit's effect when an enclosing pipeline aborts.
	Rollback(ctx context.Context, c *Context) error
}

// Unit is one atomic piece of business logic.
type Unit interface {
	Hooks
	Execute(ctx context.Context, c *Context) error
}

// Organizer is a unit whose core operation runs an ordered list of units
// over the same Context.
type Organizer interface {
	Hooks
	// Organize declares the pipeline. It must return the same sequence on
	// every call.
	Organize() []Ref
	// ContinueOnFailure selects completeness over consistency: when true
	// every step runs and nothing is rolled back.
	ContinueOnFailure() bool
}

// Base provides no-op hooks. Embed it and implement Execute.
type Base struct{}

func (Base) Around(context.Context, *Context) (bool, error) { return true, nil }
func (Base) Before(context.Context, *Context) error         { return nil }
func (Base) After(context.Context, *Context) error          { return nil }
func (Base) Rollback(context.Context, *Context) error       { return nil }

// Pipeline is the default organizer base: abort on the first failure and
// roll back. Embed it and implement Organize.
type Pipeline struct {
	Base
}

func (Pipeline) ContinueOnFailure() bool { return false }

// Ref identifies a unit type. Every invocation builds a fresh instance.
type Ref struct {
	name  string
	build func() any
}

// RefOf returns a Ref that instantiates *T.
func RefOf[T any]() Ref {
	return Ref{
		name:  reflect.TypeOf((*T)(nil)).Elem().String(),
		build: func() any { return new(T) },
	}
}

// NewRef returns a Ref backed by an arbitrary constructor.
func NewRef(name string, build func() any) Ref {
	return Ref{name: name, build: build}
}

func (r Ref) Name() string {
	return r.name
}

func (r Ref) String() string {
	return r.name
}

// New builds a fresh instance, or nil when the Ref has no constructor.
func (r Ref) New() any {
	if r.build == nil {
		return nil
	}
	return r.build()
}

// Kind tells leaf units from organizers in run records.
type Kind int

const (
	KindUnit Kind = iota
	KindOrganizer
)

func (k Kind) String() string {
	switch k {
	case KindUnit:
		return "unit"
	case KindOrganizer:
		return "organizer"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// resolve validates the capability contract of ref's instance.
func resolve(ref Ref) (Hooks, Kind, error) {
	instance := ref.New()
	if IsNil(instance) {
		return nil, 0, &ConfigError{Ref: ref.Name(), Reason: "has no instance"}
	}
	switch h := instance.(type) {
	case Organizer:
		return h, KindOrganizer, nil
	case Unit:
		return h, KindUnit, nil
	default:
		return nil, 0, &ConfigError{Ref: ref.Name(), Reason: "must implement interact.Unit or interact.Organizer"}
	}
}
