// Package http contains the inbound HTTP adapter. Handlers translate JSON
// requests into commands and queries and map the results back, keeping all
// business decisions in the application layer.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createProductHandler    commands.CreateProductCommandHandler
	createOrderHandler      commands.CreateOrderCommandHandler
	createRestaurantHandler commands.CreateRestaurantCommandHandler
	assignRestaurantHandler commands.AssignRestaurantCommandHandler
	routeOrdersHandler      queries.RouteOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createProductHandler commands.CreateProductCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	createRestaurantHandler commands.CreateRestaurantCommandHandler,
	assignRestaurantHandler commands.AssignRestaurantCommandHandler,
	routeOrdersHandler queries.RouteOrdersQueryHandler,
) *Server {
	return &Server{
		createProductHandler:    createProductHandler,
		createOrderHandler:      createOrderHandler,
		createRestaurantHandler: createRestaurantHandler,
		assignRestaurantHandler: assignRestaurantHandler,
		routeOrdersHandler:      routeOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/assign-restaurant", s.AssignRestaurant)
	api.GET("/orders/routing", s.RouteOrders)
	api.POST("/restaurants", s.CreateRestaurant)
	api.POST("/products", s.CreateProduct)
}

// Error is the JSON error body returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewProduct is the product creation request body.
type NewProduct struct {
	Name string `json:"name"`
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body NewProduct
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, body.Name)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid product data: " + err.Error(),
		})
	}

	if handleErr := s.createProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create product",
		})
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: productID.String()})
}

// NewOrderItem is one line of an order creation request.
type NewOrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// NewOrder is the order creation request body.
type NewOrder struct {
	DeliveryAddress string         `json:"delivery_address"`
	Items           []NewOrderItem `json:"items"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]commands.CreateOrderItem, 0, len(body.Items))
	for _, item := range body.Items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid product id: " + item.ProductID,
			})
		}
		items = append(items, commands.CreateOrderItem{ProductID: productID, Quantity: item.Quantity})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, body.DeliveryAddress, items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// NewMenuItem is one menu position of a restaurant creation request.
type NewMenuItem struct {
	ProductID string `json:"product_id"`
	Available bool   `json:"available"`
}

// NewRestaurant is the restaurant creation request body.
type NewRestaurant struct {
	Name    string        `json:"name"`
	Address string        `json:"address"`
	Menu    []NewMenuItem `json:"menu"`
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	var body NewRestaurant
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	menu := make([]commands.CreateMenuItem, 0, len(body.Menu))
	for _, item := range body.Menu {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid product id: " + item.ProductID,
			})
		}
		menu = append(menu, commands.CreateMenuItem{ProductID: productID, Available: item.Available})
	}

	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewCreateRestaurantCommand(restaurantID, body.Name, body.Address, menu)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid restaurant data: " + err.Error(),
		})
	}

	if handleErr := s.createRestaurantHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create restaurant",
		})
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: restaurantID.String()})
}

// AssignRestaurantRequest is the restaurant assignment request body.
type AssignRestaurantRequest struct {
	RestaurantID string `json:"restaurant_id"`
}

// AssignRestaurant handles POST /api/v1/orders/:id/assign-restaurant.
func (s *Server) AssignRestaurant(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var body AssignRestaurantRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	restaurantID, err := kernel.UUIDFromString(body.RestaurantID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid restaurant id",
		})
	}

	cmd, err := commands.NewAssignRestaurantCommand(orderID, restaurantID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid assignment data: " + err.Error(),
		})
	}

	if handleErr := s.assignRestaurantHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: handleErr.Error(),
			})
		}
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to assign restaurant: " + handleErr.Error(),
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RankedRestaurant is one entry of an order's ranked restaurant list.
// DistanceKm is null when the restaurant address could not be geocoded.
type RankedRestaurant struct {
	Name       string   `json:"name"`
	DistanceKm *float64 `json:"distance_km"`
}

// RoutedOrder is one entry of the routing board response.
type RoutedOrder struct {
	ID              string             `json:"id"`
	DeliveryAddress string             `json:"delivery_address"`
	Status          string             `json:"status"`
	Message         string             `json:"message"`
	Restaurants     []RankedRestaurant `json:"restaurants"`
}

// RouteOrders handles GET /api/v1/orders/routing.
func (s *Server) RouteOrders(ctx echo.Context) error {
	query := queries.NewRouteOrdersQuery()

	routed, err := s.routeOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to route orders",
		})
	}

	response := make([]RoutedOrder, len(routed))
	for i, entry := range routed {
		restaurants := make([]RankedRestaurant, len(entry.Restaurants))
		for j, candidate := range entry.Restaurants {
			restaurants[j] = RankedRestaurant{
				Name:       candidate.Name,
				DistanceKm: candidate.DistanceKm,
			}
		}

		response[i] = RoutedOrder{
			ID:              entry.OrderID.String(),
			DeliveryAddress: entry.DeliveryAddress,
			Status:          entry.Status,
			Message:         entry.Message,
			Restaurants:     restaurants,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
