// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a long-running transport server started by the application
// entrypoint. Serve blocks until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
