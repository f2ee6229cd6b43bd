// Package lifecycle holds shared timing constants for start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook that talks to a backend.
const DefaultTimeout = 10 * time.Second
