// Package lifecycle holds shared timing constants for start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle hooks such as DB pings and server shutdown.
const DefaultTimeout = 10 * time.Second
