// Package lifecycle holds shared startup and shutdown constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown.
const DefaultTimeout = 15 * time.Second
