// Package lifecycle holds shared start/stop constants.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks that touch external resources.
const DefaultTimeout = 10 * time.Second
