// Package queries contains read-only operations of the CQRS architecture.
// Query handlers read the database directly with raw SQL, bypassing the
// aggregate repositories, and shape the data for presentation.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRouteOrdersQueryIsNotConstructed = errors.New(
	"RouteOrdersQuery must be created via NewRouteOrdersQuery constructor",
)

// Status messages shown to managers on the routing board. Orders already
// handed to a restaurant show who is working on them; Created orders show
// either the ranked restaurant list or why there is none.
const (
	MessageDeliverableBy           = "deliverable by the following restaurants:"
	MessageNoEligibleRestaurants   = "no restaurant can fulfill this order"
	MessageAddressResolutionFailed = "delivery address could not be resolved"
)

// RouteOrdersQuery requests the routing board: every unfinished order with
// its status message and, for unassigned orders, the ranked list of
// restaurants able to cook it.
type RouteOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewRouteOrdersQuery creates a query to build the routing board.
// This is a parameterless query covering all unfinished orders.
func NewRouteOrdersQuery() RouteOrdersQuery {
	return RouteOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q RouteOrdersQuery) Validate() error {
	return q.guard.Validate(ErrRouteOrdersQueryIsNotConstructed)
}

// RankedRestaurantResponse is one restaurant in an order's ranked list.
// DistanceKm is nil when the restaurant address could not be geocoded;
// such entries always follow the entries with a known distance.
type RankedRestaurantResponse struct {
	Name       string
	DistanceKm *float64
}

// RouteOrdersQueryResponse is the routing board entry for one order.
// Restaurants is populated only for Created orders whose delivery address
// resolved and that have at least one eligible restaurant.
type RouteOrdersQueryResponse struct {
	OrderID         kernel.UUID
	DeliveryAddress string
	Status          string
	Message         string
	Restaurants     []RankedRestaurantResponse
}
