// Package timeouts defines shared timeout constants used by seed tooling.
package timeouts

import "time"

// HTTPRequest caps the time allowed for a single seed request to the
// backend, including reading the response body.
const HTTPRequest = 30 * time.Second

// Shutdown limits how long telemetry flushing may delay process exit.
const Shutdown = 5 * time.Second
