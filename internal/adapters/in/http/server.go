// Package http is the inbound HTTP adapter. It translates the JSON API into
// commands and queries and maps use-case errors to status codes; no business
// rules live here.
package http

import (
	"github.com/labstack/echo/v4"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/ports"
)

// CommandHandlers bundles the write-side handlers the server dispatches to.
type CommandHandlers struct {
	RegisterAccount          commands.RegisterAccountCommandHandler
	AddCartItem              commands.AddCartItemCommandHandler
	RemoveCartItem           commands.RemoveCartItemCommandHandler
	Checkout                 commands.CheckoutCommandHandler
	AdvanceOrder             commands.AdvanceOrderCommandHandler
	CancelOrder              commands.CancelOrderCommandHandler
	ClaimOrder               commands.ClaimOrderCommandHandler
	CreateMenuItem           commands.CreateMenuItemCommandHandler
	UpdateMenuItem           commands.UpdateMenuItemCommandHandler
	DeleteMenuItem           commands.DeleteMenuItemCommandHandler
	SetMenuItemAvailability  commands.SetMenuItemAvailabilityCommandHandler
	RequestAffiliation       commands.RequestAffiliationCommandHandler
	RespondAffiliation       commands.RespondAffiliationCommandHandler
	CancelAffiliationRequest commands.CancelAffiliationRequestCommandHandler
	SetAccountStatus         commands.SetAccountStatusCommandHandler
	ApproveRestaurant        commands.ApproveRestaurantCommandHandler
	RetireAccount            commands.RetireAccountCommandHandler
}

// QueryHandlers bundles the read-side handlers.
type QueryHandlers struct {
	ViewCart               queries.ViewCartQueryHandler
	GetOrder               queries.GetOrderQueryHandler
	GetCustomerOrders      queries.GetCustomerOrdersQueryHandler
	GetRestaurantOrders    queries.GetRestaurantOrdersQueryHandler
	GetClaimableOrders     queries.GetClaimableOrdersQueryHandler
	GetAffiliationRequests queries.GetAffiliationRequestsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	uowFactory ports.UnitOfWorkFactory
	tokens     TokenIssuer
	commands   CommandHandlers
	queries    QueryHandlers
}

// NewServer creates the HTTP server. The unit-of-work factory backs the two
// endpoints that read aggregates directly: login and the public menu listing.
func NewServer(
	uowFactory ports.UnitOfWorkFactory,
	tokens TokenIssuer,
	commandHandlers CommandHandlers,
	queryHandlers QueryHandlers,
) *Server {
	return &Server{
		uowFactory: uowFactory,
		tokens:     tokens,
		commands:   commandHandlers,
		queries:    queryHandlers,
	}
}

// RegisterRoutes mounts the API under /api/v1. Registration, login, and menu
// browsing are public; everything else requires a bearer token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)
	api.GET("/restaurants/:id/menu", s.GetRestaurantMenu)

	authed := api.Group("", s.tokens.Middleware())

	authed.GET("/cart", s.GetCart)
	authed.POST("/cart/items", s.AddCartItem)
	authed.DELETE("/cart/items/:id", s.RemoveCartItem)

	authed.POST("/orders", s.Checkout)
	authed.GET("/orders", s.GetOrders)
	authed.GET("/orders/:id", s.GetOrder)
	authed.PATCH("/orders/:id/status", s.AdvanceOrder)
	authed.POST("/orders/:id/cancel", s.CancelOrder)

	authed.GET("/courier/orders", s.GetClaimableOrders)
	authed.POST("/courier/orders/:id/claim", s.ClaimOrder)
	authed.PATCH("/courier/orders/:id/status", s.AdvanceOrder)

	authed.POST("/menu", s.CreateMenuItem)
	authed.PUT("/menu/:id", s.UpdateMenuItem)
	authed.DELETE("/menu/:id", s.DeleteMenuItem)
	authed.PATCH("/menu/:id/availability", s.SetMenuItemAvailability)

	authed.POST("/affiliations", s.RequestAffiliation)
	authed.GET("/affiliations", s.GetAffiliationRequests)
	authed.POST("/affiliations/:id/respond", s.RespondAffiliation)
	authed.DELETE("/affiliations/:id", s.CancelAffiliationRequest)

	authed.PATCH("/admin/accounts/:id/status", s.SetAccountStatus)
	authed.POST("/admin/accounts/:id/approve", s.ApproveRestaurant)
	authed.POST("/admin/accounts/:id/retire", s.RetireAccount)
}
