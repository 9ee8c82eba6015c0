// Package delivery holds the entry points that drive the use cases: HTTP
// servers and background loops.
package delivery

import "context"

// Delivery is started by the fx "deliveries" group and runs until stopped.
type Delivery interface {
	Serve(ctx context.Context) error
}
