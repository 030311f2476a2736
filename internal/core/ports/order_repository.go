// Package ports defines the contracts between the fulfillment core and
// infrastructure. Repositories persist aggregates, geocoding ports resolve
// delivery and restaurant addresses to coordinates. Adapters implement
// these interfaces so the application layer stays storage and transport
// agnostic.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUnfinished retrieves every order that has not reached the Done
	// status, ordered by creation for stable routing output.
	GetAllUnfinished(ctx context.Context) ([]*order.Order, error)
}
