package interact

import (
	"slices"

	"github.com/google/uuid"
)

// Context is the mutable state shared by every unit of one call tree.
// It is always passed by reference; copying it would hide mutations made
// by earlier pipeline steps from later ones.
type Context struct {
	id     uuid.UUID
	keys   []string
	values map[string]any
	errors []string
	strict bool
}

// NewContext creates a Context seeded with params. Initial keys are ordered
// alphabetically; keys added later keep insertion order.
func NewContext(params map[string]any) *Context {
	c := &Context{
		id:     uuid.New(),
		values: make(map[string]any, len(params)),
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		c.Set(k, params[k])
	}
	return c
}

// ID identifies the Context in logs and traces.
func (c *Context) ID() uuid.UUID {
	return c.id
}

// Get returns the value stored under key, or nil if it was never set.
func (c *Context) Get(key string) any {
	return c.values[key]
}

// Lookup returns the value stored under key and whether it exists.
func (c *Context) Lookup(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Set inserts or overwrites key.
func (c *Context) Set(key string, value any) {
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

// Delete removes key so that Get reports it as absent again.
func (c *Context) Delete(key string) {
	if _, ok := c.values[key]; !ok {
		return
	}
	delete(c.values, key)
	c.keys = slices.DeleteFunc(c.keys, func(k string) bool { return k == key })
}

// Keys returns the stored keys in insertion order.
func (c *Context) Keys() []string {
	return slices.Clone(c.keys)
}

// Fail records message and returns the recoverable failure signal.
// The returned error must be returned from the hook that called Fail:
//
//	if !order.Save() {
//		return c.Fail("failed to save order")
//	}
func (c *Context) Fail(message string) error {
	return c.fail(message, false)
}

// FailStrict records message and returns a failure signal that keeps
// unwinding through every enclosing engine frame.
func (c *Context) FailStrict(message string) error {
	return c.fail(message, true)
}

func (c *Context) fail(message string, strict bool) error {
	c.errors = append(c.errors, message)
	c.strict = strict
	return &Failure{Message: message, Strict: strict}
}

// Succeeded reports whether no failure was ever recorded.
func (c *Context) Succeeded() bool {
	return len(c.errors) == 0
}

// Failed reports whether at least one failure was recorded.
func (c *Context) Failed() bool {
	return len(c.errors) > 0
}

// Errors returns the recorded failure messages in order.
func (c *Context) Errors() []string {
	return slices.Clone(c.errors)
}

// Strict reports the strict flag of the most recent failure.
func (c *Context) Strict() bool {
	return c.strict
}
