// Package server exposes a builder session over HTTP: JSON endpoints for the
// store operations, rendering and validation, a websocket feed of form
// snapshots and Prometheus metrics.
package server
