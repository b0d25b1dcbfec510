// Package tracing records unit runs as OpenTelemetry spans.
package tracing
