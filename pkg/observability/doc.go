// Package observability turns engine lifecycle hooks into Prometheus metrics
// and structured logs, and composes multiple hook sets into one.
package observability
