// Package delivery holds the entry points that expose the use cases: the
// HTTP API and the background reminder worker.
package delivery

import "context"

// Delivery is a long-running entry point started by the application.
// Serve blocks until the entry point stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
