// Package lifecycle holds shared timeouts for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of servers,
// database pools and publishers.
const DefaultTimeout = 10 * time.Second
