// Package delivery defines the contract every transport-level server
// implements, so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a long-running server such as an HTTP listener.
type Delivery interface {
	// Serve blocks until the server stops or fails to start.
	Serve(ctx context.Context) error
}
