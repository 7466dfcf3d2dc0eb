// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// MenuItemRepoFactory provides access to the menu item repository within a transaction.
	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AffiliationRepoFactory provides access to the affiliation repository within a transaction.
	AffiliationRepoFactory interface {
		AffiliationRepository() ports.AffiliationRepository
	}

	// AccountUoW manages transactions for account-only operations
	// such as registration.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// MenuUoW manages transactions for menu management. Account access covers
	// the owner check, order access covers the active-reference edit gate.
	MenuUoW interface {
		TxManager
		AccountRepoFactory
		MenuItemRepoFactory
		OrderRepoFactory
	}

	// MenuUoWFactory creates new menu unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// CartUoW manages transactions for cart mutations. Menu and account access
	// cover the availability and restaurant gate checks on add.
	CartUoW interface {
		TxManager
		AccountRepoFactory
		MenuItemRepoFactory
		CartRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW manages the cart-to-order conversion: the order and payment
	// are written and the cart cleared in one transaction.
	CheckoutUoW interface {
		TxManager
		AccountRepoFactory
		MenuItemRepoFactory
		CartRepoFactory
		OrderRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW manages transactions for order status changes. Account access
	// covers caller role checks and the restaurant suspension cascade.
	OrderUoW interface {
		TxManager
		AccountRepoFactory
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ClaimUoW manages transactions for courier claims: the affiliation check
	// and the conditional assignment run in the same transaction.
	ClaimUoW interface {
		TxManager
		AccountRepoFactory
		OrderRepoFactory
		AffiliationRepoFactory
	}

	// ClaimUoWFactory creates new claim unit of work instances.
	ClaimUoWFactory interface {
		Create() ClaimUoW
	}

	// AffiliationUoW manages transactions for affiliation request operations.
	AffiliationUoW interface {
		TxManager
		AccountRepoFactory
		AffiliationRepoFactory
	}

	// AffiliationUoWFactory creates new affiliation unit of work instances.
	AffiliationUoWFactory interface {
		Create() AffiliationUoW
	}

	// SweepUoW manages transactions for the unavailable-restaurant cart sweep.
	SweepUoW interface {
		TxManager
		AccountRepoFactory
		CartRepoFactory
	}

	// SweepUoWFactory creates new sweep unit of work instances.
	SweepUoWFactory interface {
		Create() SweepUoW
	}

	// UoW manages transactions across all aggregates. Used by account
	// retirement, which cascades over every dependent record type.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   accountRepo := uow.AccountRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		AccountRepoFactory
		MenuItemRepoFactory
		CartRepoFactory
		OrderRepoFactory
		AffiliationRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
