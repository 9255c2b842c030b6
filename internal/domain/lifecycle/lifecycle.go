// Package lifecycle holds shared constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown.
const DefaultTimeout = 10 * time.Second
