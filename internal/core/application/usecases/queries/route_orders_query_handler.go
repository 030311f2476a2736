package queries

import (
	"context"
	"database/sql"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RouteOrdersQueryHandler builds the routing board: for every unfinished
// order it produces a status message and, for orders still waiting for a
// restaurant, the list of eligible restaurants ranked by distance from the
// delivery address.
//
// Failures are isolated per address. A restaurant whose address cannot be
// geocoded stays in the ranking without a distance; an order whose delivery
// address cannot be geocoded gets an explanatory message instead of a list,
// and every other order is routed normally.
type RouteOrdersQueryHandler struct {
	db       *gorm.DB
	resolver ports.AddressResolver
	ranker   *services.RestaurantRanker
}

// NewRouteOrdersQueryHandler creates a handler for routing board queries.
// Requires a GORM database connection and an address resolver.
func NewRouteOrdersQueryHandler(db *gorm.DB, resolver ports.AddressResolver) RouteOrdersQueryHandler {
	return RouteOrdersQueryHandler{
		db:       db,
		resolver: resolver,
		ranker:   services.NewRestaurantRanker(),
	}
}

type orderRow struct {
	id              kernel.UUID
	deliveryAddress string
	status          order.Status
	restaurantName  string
}

// Handle executes the routing query.
// Orders are returned in creation order; Done orders are excluded.
func (h RouteOrdersQueryHandler) Handle(
	ctx context.Context,
	query RouteOrdersQuery,
) ([]RouteOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.loadUnfinishedOrders(ctx)
	if err != nil {
		return nil, err
	}

	orderProducts, err := h.loadOrderProducts(ctx)
	if err != nil {
		return nil, err
	}

	facts, err := h.loadMenuFacts(ctx)
	if err != nil {
		return nil, err
	}
	menuIndex := services.BuildMenuIndex(facts)

	resolved, err := h.resolver.ResolveMany(ctx, collectAddresses(orders, facts))
	if err != nil {
		return nil, err
	}

	responses := make([]RouteOrdersQueryResponse, 0, len(orders))
	for _, row := range orders {
		response := RouteOrdersQueryResponse{
			OrderID:         row.id,
			DeliveryAddress: row.deliveryAddress,
			Status:          row.status.String(),
		}

		switch row.status {
		case order.Assembling:
			response.Message = fmt.Sprintf("being prepared by %s", row.restaurantName)
		case order.Delivering:
			response.Message = fmt.Sprintf("being delivered by %s", row.restaurantName)
		case order.Created:
			message, restaurants, routeErr := h.routeOrder(row, orderProducts[row.id], menuIndex, resolved)
			if routeErr != nil {
				return nil, routeErr
			}
			response.Message = message
			response.Restaurants = restaurants
		}

		responses = append(responses, response)
	}

	return responses, nil
}

// routeOrder builds the ranked restaurant list for one unassigned order.
// Eligibility is checked before geocoding: an order no restaurant can cook
// needs no coordinates at all.
func (h RouteOrdersQueryHandler) routeOrder(
	row orderRow,
	productIDs []kernel.UUID,
	menuIndex *services.MenuIndex,
	resolved map[string]*kernel.GeoPoint,
) (string, []RankedRestaurantResponse, error) {
	eligible := menuIndex.EligibleRestaurants(productIDs)
	if len(eligible) == 0 {
		return MessageNoEligibleRestaurants, nil, nil
	}

	origin, ok := resolved[row.deliveryAddress]
	if !ok || origin == nil {
		return MessageAddressResolutionFailed, nil, nil
	}

	candidates := make([]services.RankCandidate, 0, len(eligible))
	for _, candidate := range eligible {
		candidates = append(candidates, services.RankCandidate{
			Name:  candidate.Name,
			Point: resolved[candidate.Address],
		})
	}

	ranked, err := h.ranker.Rank(*origin, candidates)
	if err != nil {
		return "", nil, err
	}

	restaurants := make([]RankedRestaurantResponse, 0, len(ranked))
	for _, entry := range ranked {
		restaurants = append(restaurants, RankedRestaurantResponse{
			Name:       entry.Name,
			DistanceKm: entry.DistanceKm,
		})
	}

	return MessageDeliverableBy, restaurants, nil
}

func (h RouteOrdersQueryHandler) loadUnfinishedOrders(ctx context.Context) ([]orderRow, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.delivery_address,
			o.status,
			r.name
		FROM orders o
		LEFT JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.status != ?
		ORDER BY o.created_at, o.id
	`, order.Done.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]orderRow, 0)
	for rows.Next() {
		var id uuid.UUID
		var status string
		var restaurantName sql.NullString
		var row orderRow

		if err = rows.Scan(&id, &row.deliveryAddress, &status, &restaurantName); err != nil {
			return nil, err
		}

		row.id, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		row.status, err = order.StatusFromString(status)
		if err != nil {
			return nil, err
		}
		row.restaurantName = restaurantName.String

		orders = append(orders, row)
	}

	return orders, rows.Err()
}

// loadOrderProducts returns the distinct product identifiers of every
// unfinished order, keyed by order.
func (h RouteOrdersQueryHandler) loadOrderProducts(ctx context.Context) (map[kernel.UUID][]kernel.UUID, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT i.order_id, i.product_id
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.status != ?
	`, order.Done.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make(map[kernel.UUID][]kernel.UUID)
	for rows.Next() {
		var rawOrderID, rawProductID uuid.UUID

		if err = rows.Scan(&rawOrderID, &rawProductID); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(rawOrderID[:])
		if idErr != nil {
			return nil, idErr
		}
		productID, idErr := kernel.UUIDFromBytes(rawProductID[:])
		if idErr != nil {
			return nil, idErr
		}

		products[orderID] = append(products[orderID], productID)
	}

	return products, rows.Err()
}

// loadMenuFacts returns one row per available menu item with its restaurant.
// Unavailable items are filtered out here so eligibility only ever sees what
// a restaurant can actually cook today.
func (h RouteOrdersQueryHandler) loadMenuFacts(ctx context.Context) ([]services.MenuFact, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT r.id, r.name, r.address, m.product_id
		FROM restaurants r
		JOIN menu_items m ON m.restaurant_id = r.id
		WHERE m.available
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	facts := make([]services.MenuFact, 0)
	for rows.Next() {
		var rawRestaurantID, rawProductID uuid.UUID
		var fact services.MenuFact

		if err = rows.Scan(&rawRestaurantID, &fact.RestaurantName, &fact.RestaurantAddress, &rawProductID); err != nil {
			return nil, err
		}

		fact.RestaurantID, err = kernel.UUIDFromBytes(rawRestaurantID[:])
		if err != nil {
			return nil, err
		}
		fact.ProductID, err = kernel.UUIDFromBytes(rawProductID[:])
		if err != nil {
			return nil, err
		}

		facts = append(facts, fact)
	}

	return facts, rows.Err()
}

// collectAddresses gathers the distinct addresses a routing pass needs:
// the delivery address of every unassigned order and the address of every
// restaurant with at least one available menu item.
func collectAddresses(orders []orderRow, facts []services.MenuFact) []string {
	seen := make(map[string]struct{})
	addresses := make([]string, 0, len(orders)+len(facts))

	add := func(address string) {
		if _, ok := seen[address]; ok {
			return
		}
		seen[address] = struct{}{}
		addresses = append(addresses, address)
	}

	for _, row := range orders {
		if row.status == order.Created {
			add(row.deliveryAddress)
		}
	}
	for _, fact := range facts {
		add(fact.RestaurantAddress)
	}

	return addresses
}
