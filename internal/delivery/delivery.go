// Package delivery contains the inbound adapters of the dev account service.
package delivery

import "context"

// Delivery is a server that runs until stopped through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
