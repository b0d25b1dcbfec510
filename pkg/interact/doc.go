// Package interact runs units of business logic, alone or composed into
// organizers, over one shared mutable Context.
//
// Highlights:
// - Context: key/value state plus an append-only error log and a strict flag
// - Unit: Around/Before/Execute/After/Rollback hooks; embed Base for no-ops
// - Organizer: Organize returns the ordered steps; embed Pipeline for the
//   abort-and-roll-back policy or override ContinueOnFailure
// - Call/Run: entry points taking Params or an existing *Context
// - Fail/FailStrict: record a failure and return the signal the engine
//   intercepts; strict failures keep unwinding to the caller
// - WithLogger/WithObservers: zap logging and run observers carried in
//   context.Context
//
// A failing step in a Pipeline stops the loop and every step that ran,
// including the failing one, is rolled back newest first.
package interact
