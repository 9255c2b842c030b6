// Package delivery defines the contract every transport entry point satisfies.
package delivery

import "context"

// Delivery is a serving surface of the application (HTTP today, more later).
// Implementations block inside Serve until shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
