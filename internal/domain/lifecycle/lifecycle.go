// Package lifecycle holds shared constants for service start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown steps.
const DefaultTimeout = 30 * time.Second
