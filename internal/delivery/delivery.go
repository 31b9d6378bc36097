// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) managed by the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
