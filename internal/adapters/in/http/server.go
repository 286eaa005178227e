// Package http adapts the generated API surface to the application use cases.
// Every mutating endpoint resolves the acting user from the X-Actor-Id header
// before constructing a command; authorization itself lives in the domain
// layer.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"bitebox/internal/core/application/usecases/commands"
	"bitebox/internal/core/application/usecases/queries"
	"bitebox/internal/core/domain/model/actor"
	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/model/order"
	"bitebox/internal/core/domain/model/product"
	"bitebox/internal/core/domain/model/user"
	"bitebox/internal/core/domain/services"
	"bitebox/internal/core/ports"
	"bitebox/internal/generated/servers"
	"bitebox/internal/pkg/errs"
)

// actorHeader carries the acting user's ID. There is no authentication layer;
// callers are trusted to present their own ID.
const actorHeader = "X-Actor-Id"

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateUser       commands.CreateUserCommandHandler
	UpdateUser       commands.UpdateUserCommandHandler
	DeleteUser       commands.DeleteUserCommandHandler
	CreateRestaurant commands.CreateRestaurantCommandHandler
	UpdateRestaurant commands.UpdateRestaurantCommandHandler
	DeleteRestaurant commands.DeleteRestaurantCommandHandler
	CreateProduct    commands.CreateProductCommandHandler
	UpdateProduct    commands.UpdateProductCommandHandler
	DeleteProduct    commands.DeleteProductCommandHandler
	CreateOrder      commands.CreateOrderCommandHandler
	UpdateOrder      commands.UpdateOrderCommandHandler
	SendOrder        commands.SendOrderCommandHandler
	AcceptOrder      commands.AcceptOrderCommandHandler
	AdvanceOrder     commands.AdvanceOrderCommandHandler
	DeleteOrder      commands.DeleteOrderCommandHandler

	GetUserByID                 queries.GetUserByIDQueryHandler
	GetOrderByID                queries.GetOrderByIDQueryHandler
	GetOrdersByFilters          queries.GetOrdersByFiltersQueryHandler
	GetNotAcceptedOrders        queries.GetNotAcceptedOrdersQueryHandler
	GetRestaurants              queries.GetRestaurantsQueryHandler
	GetProducts                 queries.GetProductsQueryHandler
	GetRestaurantMenu           queries.GetRestaurantMenuQueryHandler
	GetRestaurantOngoingOrders  queries.GetRestaurantOngoingOrdersQueryHandler
	GetRestaurantFinishedOrders queries.GetRestaurantFinishedOrdersQueryHandler
}

// Server implements the generated ServerInterface. It coordinates between
// HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// resolveUser loads the account behind the X-Actor-Id header.
func (s *Server) resolveUser(ctx echo.Context) (queries.UserResponse, error) {
	raw := ctx.Request().Header.Get(actorHeader)
	if raw == "" {
		return queries.UserResponse{}, echo.NewHTTPError(http.StatusUnauthorized, "X-Actor-Id header is required")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return queries.UserResponse{}, echo.NewHTTPError(http.StatusUnauthorized, "X-Actor-Id is not a valid UUID")
	}

	query, err := queries.NewGetUserByIDQuery(id)
	if err != nil {
		return queries.UserResponse{}, echo.NewHTTPError(http.StatusUnauthorized, "X-Actor-Id is not a valid UUID")
	}

	resp, err := s.handlers.GetUserByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return queries.UserResponse{}, echo.NewHTTPError(http.StatusUnauthorized, "unknown actor")
		}
		return queries.UserResponse{}, err
	}

	return resp, nil
}

// resolveActor builds the domain actor context for the acting user.
func (s *Server) resolveActor(ctx echo.Context) (actor.Context, error) {
	resp, err := s.resolveUser(ctx)
	if err != nil {
		return actor.Context{}, err
	}

	role, err := user.RoleFromString(resp.Role)
	if err != nil {
		return actor.Context{}, err
	}

	return actor.NewContext(resp.ID, role, resp.OwnedRestaurantNames)
}

// writeError maps domain errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, ports.ErrOrderStateConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, order.ErrAlreadyFinished),
		errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, queries.ErrInvalidPeriod):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: err.Error(),
	})
}

// CreateUser handles POST /api/v1/users - registers a user account.
func (s *Server) CreateUser(ctx echo.Context) error {
	var body servers.NewUser
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	role, err := user.RoleFromString(string(body.Role))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateUserCommand(kernel.NewUUID(), body.Name, body.Email, body.Address, role)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.handlers.CreateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, userToAPI(created))
}

// GetUser handles GET /api/v1/users/{userId} - retrieves a user account.
func (s *Server) GetUser(ctx echo.Context, userId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(userId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetUserByIDQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.handlers.GetUserByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	owned := resp.OwnedRestaurantNames
	return ctx.JSON(http.StatusOK, servers.User{
		Id:                   resp.ID.Bytes(),
		Name:                 resp.Name,
		Email:                resp.Email,
		Address:              resp.Address,
		Role:                 resp.Role,
		OwnedRestaurantNames: &owned,
	})
}

// UpdateUser handles PATCH /api/v1/users/{userId} - updates profile fields.
func (s *Server) UpdateUser(ctx echo.Context, userId openapi_types.UUID) error {
	act, err := s.resolveActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := kernel.UUIDFromBytes(userId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.UserUpdate
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateUserCommand(act, id, body.Name, body.Email, body.Address)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.handlers.UpdateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userToAPI(updated))
}

// DeleteUser handles DELETE /api/v1/users/{userId}.
func (s *Server) DeleteUser(ctx echo.Context, userId openapi_types.UUID) error {
	act, err := s.resolveActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := kernel.UUIDFromBytes(userId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteUserCommand(act, id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.DeleteUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRestaurants handles GET /api/v1/restaurants - searches the directory.
// This is a public read, no actor required.
func (s *Server) GetRestaurants(ctx echo.Context, params servers.GetRestaurantsParams) error {
	var name, category string
	if params.Name != nil {
		name = *params.Name
	}
	if params.Category != nil {
		category = *params.Category
	}

	query, err := queries.NewGetRestaurantsQuery(name, category)
	if err != nil {
		return writeError(ctx, err)
	}

	restaurants, err := s.handlers.GetRestaurants.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Restaurant, len(restaurants))
	for i, r := range restaurants {
		response[i] = restaurantToAPI(r)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateRestaurant handles POST /api/v1/restaurants - creates a restaurant.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	act, err := s.resolveActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.NewRestaurant
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateRestaurantCommand(act, kernel.NewUUID(), body.Name, body.Address, body.Categories)
	if err != nil {
		return writeError(ctx, err)
	}

	if _, err = s.handlers.CreateRestaurant.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateRestaurant handles PATCH /api/v1/restaurants/{restaurantName}.
func (s *Server) UpdateRestaurant(ctx echo.Context, restaurantName string) error {
	act, err := s.resolveActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.RestaurantUpdate
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	var categories []string
	if body.Categories != nil {
		categories = *body.Categories
	}

	cmd, err := commands.NewUpdateRestaurantCommand(act, restaurantName, body.Address, categories)
	if err != nil {
		return writeError(ctx, err)
	}

	if _, err = s.handlers.UpdateRestaurant.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteRestaurant handles DELETE /api/v1/restaurants/{restaurantName}.
func (s *Server) DeleteRestaurant(ctx echo.Context, restaurantName string) error {
	act, err := s.resolveActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteRestaurantCommand(act, restaurantName)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.DeleteRestaurant.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRestaurantMenu handles GET /api/v1/restaurants/{restaurantName}/menu.
func (s *Server) GetRestaurantMenu(ctx echo.Context, restaurantName string) error {
	act, err := s.resolveActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetRestaurantMenuQuery(act, restaurantName)
	if err != nil {
		return writeError(ctx, err)
	}

	products, err := s.handlers.GetRestaurantMenu.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = productResponseToAPI(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRestaurantOngoingOrders handles GET /api/v1/restaurants/{restaurantName}/orders/ongoing.
func (s *Server) GetRestaurantOngoingOrders(ctx echo.Context, restaurantName string) error {
	act, err := s.resolveActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetRestaurantOngoingOrdersQuery(act, restaurantName)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.handlers.GetRestaurantOngoingOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponsesToAPI(orders))
}

// GetRestaurantFinishedOrders handles GET /api/v1/restaurants/{restaurantName}/orders/finished.
func (s *Server) GetRestaurantFinishedOrders(
	ctx echo.Context,
	restaurantName string,
	params servers.GetRestaurantFinishedOrdersParams,
) error {
	act, err := s.resolveActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetRestaurantFinishedOrdersQuery(act, restaurantName, queries.Period(params.Period))
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.handlers.GetRestaurantFinishedOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponsesToAPI(orders))
}

// GetProducts handles GET /api/v1/products - searches the catalog. This is a
// public read, no actor required.
func (s *Server) GetProducts(ctx echo.Context, params servers.GetProductsParams) error {
	var restaurantName, category string
	if params.RestaurantName != nil {
		restaurantName = *params.RestaurantName
	}
	if params.Category != nil {
		category = *params.Category
	}

	query, err := queries.NewGetProductsQuery(restaurantName, category)
	if err != nil {
		return writeError(ctx, err)
	}

	products, err := s.handlers.GetProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = productResponseToAPI(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products - creates a catalog product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	act, err := s.resolveActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.NewProduct
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	var description, restaurantName string
	if body.Description != nil {
		description = *body.Description
	}
	if body.RestaurantName != nil {
		restaurantName = *body.RestaurantName
	}

	cmd, err := commands.NewCreateProductCommand(
		act, kernel.NewUUID(), body.Name, description, body.Price, body.Category, restaurantName,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productToAPI(created))
}

// UpdateProduct handles PATCH /api/v1/products/{productId}.
func (s *Server) UpdateProduct(ctx echo.Context, productId openapi_types.UUID) error {
	act, err := s.resolveActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := kernel.UUIDFromBytes(productId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.ProductUpdate
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateProductCommand(act, id, body.Name, body.Description, body.Price, body.Category)
	if err != nil {
		return writeError(ctx, err)
	}

	if _, err = s.handlers.UpdateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/v1/products/{productId}.
func (s *Server) DeleteProduct(ctx echo.Context, productId openapi_types.UUID) error {
	act, err := s.resolveActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := kernel.UUIDFromBytes(productId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteProductCommand(act, id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders - creates a draft order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	act, err := s.resolveActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.NewOrder
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(act, kernel.NewUUID(), body.RestaurantName, requestedItems(body.Items))
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToAPI(created))
}

// GetOrders handles GET /api/v1/orders - lists orders by filters.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	filters := queries.OrderFilters{
		CreatedAfter:  params.CreatedAfter,
		CreatedBefore: params.CreatedBefore,
	}

	if params.CustomerId != nil {
		id, err := kernel.UUIDFromBytes((*params.CustomerId)[:])
		if err != nil {
			return writeError(ctx, err)
		}
		filters.CustomerID = &id
	}

	if params.CourierId != nil {
		id, err := kernel.UUIDFromBytes((*params.CourierId)[:])
		if err != nil {
			return writeError(ctx, err)
		}
		filters.CourierID = &id
	}

	if params.RestaurantName != nil {
		filters.RestaurantName = *params.RestaurantName
	}

	query, err := queries.NewGetOrdersByFiltersQuery(filters)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.handlers.GetOrdersByFilters.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponsesToAPI(orders))
}

// GetAvailableOrders handles GET /api/v1/orders/available - the courier feed
// of sent orders nobody has accepted yet. When no courierAddress is given the
// acting user's own address anchors the distance sort.
func (s *Server) GetAvailableOrders(ctx echo.Context, params servers.GetAvailableOrdersParams) error {
	actingUser, err := s.resolveUser(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var sort queries.OrderSort
	if params.Sort != nil {
		sort = queries.OrderSort(*params.Sort)
	}

	courierAddress := actingUser.Address
	if params.CourierAddress != nil {
		courierAddress = *params.CourierAddress
	}

	query := queries.NewGetNotAcceptedOrdersQuery(sort, courierAddress)

	orders, err := s.handlers.GetNotAcceptedOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponsesToAPI(orders))
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderByIDQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.handlers.GetOrderByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseToAPI(resp))
}

// UpdateOrder handles PUT /api/v1/orders/{orderId} - amends a draft order.
func (s *Server) UpdateOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	act, err := s.resolveActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.NewOrder
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(act, id, body.RestaurantName, requestedItems(body.Items))
	if err != nil {
		return writeError(ctx, err)
	}

	amended, err := s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToAPI(amended))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	act, err := s.resolveActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(act, id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SendOrder handles POST /api/v1/orders/{orderId}/send.
func (s *Server) SendOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	act, err := s.resolveActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSendOrderCommand(act, id)
	if err != nil {
		return writeError(ctx, err)
	}

	if _, err = s.handlers.SendOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptOrder handles POST /api/v1/orders/{orderId}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	act, err := s.resolveActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(act, id)
	if err != nil {
		return writeError(ctx, err)
	}

	if _, err = s.handlers.AcceptOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceOrder handles POST /api/v1/orders/{orderId}/advance.
func (s *Server) AdvanceOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	act, err := s.resolveActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderCommand(act, id)
	if err != nil {
		return writeError(ctx, err)
	}

	if _, err = s.handlers.AdvanceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func requestedItems(items []servers.OrderItem) []services.RequestedItem {
	requested := make([]services.RequestedItem, len(items))
	for i, item := range items {
		requested[i] = services.RequestedItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		}
	}
	return requested
}

func orderToAPI(o *order.Order) servers.Order {
	items := make([]servers.OrderLineItem, 0, len(o.LineItems()))
	for _, item := range o.LineItems() {
		items = append(items, servers.OrderLineItem{
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			LineTotal:   item.LineTotal(),
		})
	}

	result := servers.Order{
		Id:             o.ID().Bytes(),
		CustomerId:     o.CustomerID().Bytes(),
		RestaurantName: o.RestaurantName(),
		Status:         o.Status().String(),
		Items:          items,
		Total:          o.Total(),
		CreatedAt:      o.CreatedAt(),
	}

	if courier := o.Courier(); courier != nil {
		id := courier.Bytes()
		result.CourierId = &id
	}

	return result
}

func orderResponseToAPI(resp queries.OrderResponse) servers.Order {
	items := make([]servers.OrderLineItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, servers.OrderLineItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			LineTotal:   item.LineTotal,
		})
	}

	result := servers.Order{
		Id:             resp.ID.Bytes(),
		CustomerId:     resp.CustomerID.Bytes(),
		RestaurantName: resp.RestaurantName,
		Status:         resp.Status,
		Items:          items,
		Total:          resp.Total,
		CreatedAt:      resp.CreatedAt,
	}

	if resp.CourierID != nil {
		id := resp.CourierID.Bytes()
		result.CourierId = &id
	}

	return result
}

func orderResponsesToAPI(responses []queries.OrderResponse) []servers.Order {
	result := make([]servers.Order, len(responses))
	for i, resp := range responses {
		result[i] = orderResponseToAPI(resp)
	}
	return result
}

func productToAPI(p *product.Product) servers.Product {
	description := p.Description()
	restaurantName := p.RestaurantName()
	return servers.Product{
		Id:             p.ID().Bytes(),
		Name:           p.Name(),
		Description:    &description,
		Price:          p.Price(),
		Category:       p.Category(),
		RestaurantName: &restaurantName,
	}
}

func productResponseToAPI(resp queries.ProductResponse) servers.Product {
	description := resp.Description
	restaurantName := resp.RestaurantName
	return servers.Product{
		Id:             resp.ID.Bytes(),
		Name:           resp.Name,
		Description:    &description,
		Price:          resp.Price,
		Category:       resp.Category,
		RestaurantName: &restaurantName,
	}
}

func restaurantToAPI(resp queries.RestaurantResponse) servers.Restaurant {
	return servers.Restaurant{
		Id:         resp.ID.Bytes(),
		Name:       resp.Name,
		Address:    resp.Address,
		Categories: resp.Categories,
		Popularity: resp.Popularity,
	}
}

func userToAPI(u *user.User) servers.User {
	owned := u.OwnedRestaurantNames()
	return servers.User{
		Id:                   u.ID().Bytes(),
		Name:                 u.Name(),
		Email:                u.Email(),
		Address:              u.Address(),
		Role:                 u.Role().String(),
		OwnedRestaurantNames: &owned,
	}
}
