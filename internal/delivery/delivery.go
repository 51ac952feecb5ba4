// Package delivery holds the outward-facing servers started by the application.
package delivery

import "context"

// Delivery is a long-running server started once the fx graph is ready.
type Delivery interface {
	Serve(ctx context.Context) error
}
