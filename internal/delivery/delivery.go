// Package delivery defines the contract every transport front end
// (HTTP today, possibly others later) satisfies so main can start them
// uniformly.
package delivery

import "context"

// Delivery is a long-running transport serving the application.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
