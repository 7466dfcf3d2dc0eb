package cmd

import (
	"log/slog"
	"os"
	"time"

	"gorm.io/gorm"

	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/jobs"
)

const tokenTTL = 24 * time.Hour

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     slog.New(slog.NewTextHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.uowFactory,
		c.CreateTokenIssuer(),
		httpin.CommandHandlers{
			RegisterAccount: commands.NewRegisterAccountCommandHandler(
				FuncAccountUoWFactory(func() commands.AccountUoW { return c.uowFactory.Create() })),
			AddCartItem: commands.NewAddCartItemCommandHandler(
				FuncCartUoWFactory(func() commands.CartUoW { return c.uowFactory.Create() })),
			RemoveCartItem: commands.NewRemoveCartItemCommandHandler(
				FuncCartUoWFactory(func() commands.CartUoW { return c.uowFactory.Create() })),
			Checkout: commands.NewCheckoutCommandHandler(
				FuncCheckoutUoWFactory(func() commands.CheckoutUoW { return c.uowFactory.Create() })),
			AdvanceOrder: commands.NewAdvanceOrderCommandHandler(
				FuncOrderUoWFactory(func() commands.OrderUoW { return c.uowFactory.Create() })),
			CancelOrder: commands.NewCancelOrderCommandHandler(
				FuncOrderUoWFactory(func() commands.OrderUoW { return c.uowFactory.Create() })),
			ClaimOrder: commands.NewClaimOrderCommandHandler(
				FuncClaimUoWFactory(func() commands.ClaimUoW { return c.uowFactory.Create() })),
			CreateMenuItem: commands.NewCreateMenuItemCommandHandler(
				FuncMenuUoWFactory(func() commands.MenuUoW { return c.uowFactory.Create() })),
			UpdateMenuItem: commands.NewUpdateMenuItemCommandHandler(
				FuncMenuUoWFactory(func() commands.MenuUoW { return c.uowFactory.Create() })),
			DeleteMenuItem: commands.NewDeleteMenuItemCommandHandler(
				FuncMenuUoWFactory(func() commands.MenuUoW { return c.uowFactory.Create() })),
			SetMenuItemAvailability: commands.NewSetMenuItemAvailabilityCommandHandler(
				FuncMenuUoWFactory(func() commands.MenuUoW { return c.uowFactory.Create() })),
			RequestAffiliation: commands.NewRequestAffiliationCommandHandler(
				FuncAffiliationUoWFactory(func() commands.AffiliationUoW { return c.uowFactory.Create() })),
			RespondAffiliation: commands.NewRespondAffiliationCommandHandler(
				FuncAffiliationUoWFactory(func() commands.AffiliationUoW { return c.uowFactory.Create() })),
			CancelAffiliationRequest: commands.NewCancelAffiliationRequestCommandHandler(
				FuncAffiliationUoWFactory(func() commands.AffiliationUoW { return c.uowFactory.Create() })),
			SetAccountStatus: commands.NewSetAccountStatusCommandHandler(
				FuncOrderUoWFactory(func() commands.OrderUoW { return c.uowFactory.Create() })),
			ApproveRestaurant: commands.NewApproveRestaurantCommandHandler(
				FuncAccountUoWFactory(func() commands.AccountUoW { return c.uowFactory.Create() })),
			RetireAccount: commands.NewRetireAccountCommandHandler(
				FuncUoWFactory(func() commands.UoW { return c.uowFactory.Create() })),
		},
		httpin.QueryHandlers{
			ViewCart:               queries.NewViewCartQueryHandler(c.uowFactory),
			GetOrder:               queries.NewGetOrderQueryHandler(c.gormDB),
			GetCustomerOrders:      queries.NewGetCustomerOrdersQueryHandler(c.gormDB),
			GetRestaurantOrders:    queries.NewGetRestaurantOrdersQueryHandler(c.gormDB),
			GetClaimableOrders:     queries.NewGetClaimableOrdersQueryHandler(c.gormDB),
			GetAffiliationRequests: queries.NewGetAffiliationRequestsQueryHandler(c.gormDB),
		},
	)
}

func (c *CompositionRoot) CreateTokenIssuer() httpin.TokenIssuer {
	return httpin.NewTokenIssuer(c.config.JWTSecret, tokenTTL)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	sweepHandler := commands.NewSweepUnavailableCartsCommandHandler(
		FuncSweepUoWFactory(func() commands.SweepUoW { return c.uowFactory.Create() }))
	return jobs.NewJobManager(sweepHandler, c.config.CartSweepCron, c.logger)
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncClaimUoWFactory func() commands.ClaimUoW

func (f FuncClaimUoWFactory) Create() commands.ClaimUoW {
	return f()
}

type FuncAffiliationUoWFactory func() commands.AffiliationUoW

func (f FuncAffiliationUoWFactory) Create() commands.AffiliationUoW {
	return f()
}

type FuncSweepUoWFactory func() commands.SweepUoW

func (f FuncSweepUoWFactory) Create() commands.SweepUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
