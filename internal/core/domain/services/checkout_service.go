package services

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// ErrCartIsEmpty is returned when checking out an empty cart.
var ErrCartIsEmpty = errors.New("cart is empty")

// CheckoutRequest carries the checkout parameters supplied by the customer.
type CheckoutRequest struct {
	DeliveryAddress string
	PaymentMethod   order.PaymentMethod
	DeliveryType    order.DeliveryType
	TipAmount       float64
	Card            *order.CardInfo
}

// CheckoutResult is the pair of records a successful checkout produces.
// Both must be persisted in the same transaction.
type CheckoutResult struct {
	Order   *order.Order
	Payment *order.Payment
}

// CheckoutService converts a customer's cart into an order. It is the one
// place where the gate checks, the item snapshot, and the total computation
// come together:
//
//   - the customer must not be suspended or banned
//   - the cart's restaurant must be approved, active, and open
//   - every cart line must resolve to an available catalog item
//   - line name and unit price are snapshotted from the catalog; the total
//     is Σ(price × quantity) + tip, fixed at this moment
//   - for credit-card payments a fully populated card is required; only the
//     masked number is recorded
//
// On success the cart is cleared in place; the caller persists the cleared
// cart, the order, and the payment atomically.
type CheckoutService struct{}

// NewCheckoutService creates the checkout domain service.
func NewCheckoutService() CheckoutService {
	return CheckoutService{}
}

// Checkout validates all preconditions and builds the order and payment from
// the cart. catalog must contain an entry for every cart line, keyed by menu
// item ID.
func (s CheckoutService) Checkout(
	customer *account.Account,
	restaurant *account.Account,
	customerCart *cart.Cart,
	catalog map[kernel.UUID]*menu.MenuItem,
	request CheckoutRequest,
	now time.Time,
) (CheckoutResult, error) {
	if err := errors.Join(
		customer.Validate(),
		restaurant.Validate(),
		customerCart.Validate(),
	); err != nil {
		return CheckoutResult{}, err
	}

	if err := customer.EnsureActive(); err != nil {
		return CheckoutResult{}, err
	}
	if err := restaurant.EnsureOrderable(); err != nil {
		return CheckoutResult{}, err
	}
	if customerCart.IsEmpty() {
		return CheckoutResult{}, ErrCartIsEmpty
	}

	lines := customerCart.Lines()
	items := make([]order.LineItem, 0, len(lines))
	for _, line := range lines {
		item, ok := catalog[line.MenuItemID]
		if !ok {
			return CheckoutResult{}, errs.NewObjectNotFoundError("menuItem", line.MenuItemID.String())
		}
		if !item.IsAvailable() {
			return CheckoutResult{}, menu.ErrItemUnavailable
		}
		items = append(items, order.LineItem{
			MenuItemID: item.ID(),
			Name:       item.Name(),
			UnitPrice:  item.Price(),
			Quantity:   line.Quantity,
		})
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		customer.ID(),
		restaurant.ID(),
		items,
		request.DeliveryAddress,
		request.PaymentMethod,
		request.DeliveryType,
		request.TipAmount,
		now,
	)
	if err != nil {
		return CheckoutResult{}, err
	}

	payment, err := order.NewPayment(
		kernel.NewUUID(),
		newOrder.ID(),
		request.PaymentMethod,
		request.Card,
		now,
	)
	if err != nil {
		return CheckoutResult{}, err
	}

	customerCart.Clear()
	return CheckoutResult{Order: newOrder, Payment: payment}, nil
}
