// Package chain composes top-level calls of independently defined units
// and organizers over one shared interact.Context.
//
// - Start: create a Chain from Params or an existing Context
// - Then/Call/ThenIf: run the next unit unless the chain stopped
// - RepeatUntil: run a unit until a condition holds
// - Ensure: trigger side effects on success, failure or error
// - Finally: reduce to a concrete value via handlers
//
// A chain stops once the Context has failed or a call returned an error;
// unlike an Organizer it never rolls anything back.
package chain
