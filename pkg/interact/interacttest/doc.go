// Package interacttest provides units for exercising engines and pipelines
// in tests: the username pipeline steps and a journaling Recording unit
// whose hooks can be configured to fail, veto or error.
package interacttest
