// Package lifecycle defines shared startup and shutdown settings.
package lifecycle

import "time"

// DefaultTimeout bounds start hooks and graceful shutdown.
const DefaultTimeout = 10 * time.Second
