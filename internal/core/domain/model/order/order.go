package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrAlreadyClaimed is returned when a courier tries to claim an order
	// that already has a courier. Losing the claim race is a normal outcome,
	// surfaced distinctly so the caller can present "order taken".
	ErrAlreadyClaimed = errors.New("order has already been claimed by another courier")

	// ErrNotClaimable is returned when claiming an order that is not in the
	// Ready status.
	ErrNotClaimable = errors.New("order is not ready for pickup")

	// ErrNotCancellable is returned when a customer cancellation is requested
	// while the order is past InProgress.
	ErrNotCancellable = errors.New("order can no longer be cancelled by the customer")

	// ErrOrderItemsRequired is returned when creating an order without items.
	ErrOrderItemsRequired = errs.NewValueIsRequiredError("order items")

	// ErrDeliveryAddressRequired is returned when creating an order without a
	// delivery address.
	ErrDeliveryAddressRequired = errs.NewValueIsRequiredError("delivery address")
)

// LineItem is a frozen snapshot of one cart line taken at checkout. Name and
// unit price are captured from the menu catalog at creation time and never
// recomputed, so later catalog edits cannot change an existing order.
type LineItem struct {
	MenuItemID kernel.UUID
	Name       string
	UnitPrice  float64
	Quantity   int
}

// Validate checks a line item snapshot for structural validity.
func (li LineItem) Validate() error {
	return errors.Join(
		li.MenuItemID.Validate(),
		func() error {
			if li.UnitPrice <= 0 {
				return errs.NewValueIsInvalidErrorWithCause("unit price",
					fmt.Errorf("%f is not greater than 0", li.UnitPrice))
			}
			return nil
		}(),
		func() error {
			if li.Quantity < 1 {
				return errs.NewValueIsInvalidErrorWithCause("quantity",
					fmt.Errorf("%d is not greater than 0", li.Quantity))
			}
			return nil
		}(),
	)
}

// Order is the aggregate root of the fulfillment workflow. It owns the status
// state machine and the courier assignment; its item snapshot is immutable
// after creation.
//
// Invariants:
//   - items reference exactly one restaurant (guaranteed by the cart at
//     checkout) and never change after creation
//   - totalAmount = Σ(unit price × quantity) + tip, computed once at creation
//   - courierID moves nil → non-nil at most once through the claim path
//   - status only moves along the Status state machine
//
// customerID and restaurantID are pointers because administrative account
// retirement detaches them while the order record itself is preserved.
type Order struct {
	id              kernel.UUID
	customerID      *kernel.UUID
	restaurantID    *kernel.UUID
	courierID       *kernel.UUID
	items           []LineItem
	deliveryAddress string
	paymentMethod   PaymentMethod
	deliveryType    DeliveryType
	tipAmount       float64
	totalAmount     float64
	status          Status
	createdAt       time.Time

	// version supports optimistic locking: claim and status-advance both
	// read-modify-write the same row and must not lose each other's updates.
	version int

	guard guard.ConstructorGuard
}

// NewOrder creates a pending order from a checked-out cart snapshot.
// The total is computed here, once, from the snapshotted unit prices plus the
// tip, and is never recomputed from live catalog prices.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []LineItem,
	deliveryAddress string,
	paymentMethod PaymentMethod,
	deliveryType DeliveryType,
	tipAmount float64,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		restaurantID.Validate(),
		paymentMethod.Validate(),
		deliveryType.Validate(),
	); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, ErrOrderItemsRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	if strings.TrimSpace(deliveryAddress) == "" {
		return nil, ErrDeliveryAddressRequired
	}
	if tipAmount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("tip amount",
			fmt.Errorf("%f is negative", tipAmount))
	}

	total := tipAmount
	snapshot := make([]LineItem, len(items))
	for i, item := range items {
		snapshot[i] = item
		total += item.UnitPrice * float64(item.Quantity)
	}

	return &Order{
		id:              id,
		customerID:      &customerID,
		restaurantID:    &restaurantID,
		items:           snapshot,
		deliveryAddress: deliveryAddress,
		paymentMethod:   paymentMethod,
		deliveryType:    deliveryType,
		tipAmount:       tipAmount,
		totalAmount:     total,
		status:          Pending,
		createdAt:       createdAt,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an Order aggregate from persistence, including
// its stored total, status, courier assignment, and version.
func RestoreOrder(
	id kernel.UUID,
	customerID *kernel.UUID,
	restaurantID *kernel.UUID,
	courierID *kernel.UUID,
	items []LineItem,
	deliveryAddress string,
	paymentMethod PaymentMethod,
	deliveryType DeliveryType,
	tipAmount float64,
	totalAmount float64,
	status Status,
	createdAt time.Time,
	version int,
) (*Order, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:              id,
		customerID:      customerID,
		restaurantID:    restaurantID,
		courierID:       courierID,
		items:           items,
		deliveryAddress: deliveryAddress,
		paymentMethod:   paymentMethod,
		deliveryType:    deliveryType,
		tipAmount:       tipAmount,
		totalAmount:     totalAmount,
		status:          status,
		createdAt:       createdAt,
		version:         version,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order was created via a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Customer returns the owning customer's ID, or nil if the customer account
// has been retired.
func (o *Order) Customer() *kernel.UUID { return o.customerID }

// Restaurant returns the owning restaurant's ID, or nil if the restaurant
// account has been retired.
func (o *Order) Restaurant() *kernel.UUID { return o.restaurantID }

// Courier returns the claiming courier's ID, or nil while unclaimed.
func (o *Order) Courier() *kernel.UUID { return o.courierID }

// Items returns a copy of the frozen line-item snapshot.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// DeliveryAddress returns the delivery destination.
func (o *Order) DeliveryAddress() string { return o.deliveryAddress }

// PaymentMethod returns how the order is paid.
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }

// DeliveryType returns whether the order is delivered or picked up.
func (o *Order) DeliveryType() DeliveryType { return o.deliveryType }

// TipAmount returns the tip recorded at checkout.
func (o *Order) TipAmount() float64 { return o.tipAmount }

// TotalAmount returns the total computed at creation time.
func (o *Order) TotalAmount() float64 { return o.totalAmount }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// CreatedAt returns the order creation time.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Version returns the optimistic-locking version loaded from persistence.
func (o *Order) Version() int { return o.version }

// Advance moves the order to the requested status following the state
// machine. Re-requesting a cancellation on an order already in a cancelled
// terminal state is a no-op success so that retried client requests do not
// fail.
func (o *Order) Advance(next Status) error {
	if next.IsCancellation() && o.status.IsCancellation() {
		return nil
	}

	newStatus, err := o.status.Transition(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel force-cancels the order from any non-terminal state. Used by the
// restaurant, the admin, and the suspension cascade. Idempotent on already
// cancelled orders.
func (o *Order) Cancel() error {
	return o.Advance(Cancelled)
}

// CancelByCustomer cancels the order on the owning customer's request.
// Allowed only while the order is Pending or InProgress; idempotent when the
// order is already in a cancelled terminal state.
func (o *Order) CancelByCustomer() error {
	if o.status.IsCancellation() {
		return nil
	}
	if o.status != Pending && o.status != InProgress {
		return fmt.Errorf("%w: status is %s", ErrNotCancellable, o.status)
	}

	o.status = CancelledByCustomer
	return nil
}

// Claim assigns the courier to this order. The courier slot transitions
// nil → non-nil once: a repeated claim by the courier who already holds the
// order is a no-op success so client retries are safe, while any other
// courier gets ErrAlreadyClaimed. Only Ready orders are claimable. The
// persistence layer enforces the same precondition as a single conditional
// update, so two racing couriers cannot both observe an empty slot.
func (o *Order) Claim(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.courierID != nil {
		if o.courierID.IsEqual(courierID) {
			return nil
		}
		return ErrAlreadyClaimed
	}
	if o.status != Ready {
		return fmt.Errorf("%w: status is %s", ErrNotClaimable, o.status)
	}

	o.courierID = &courierID
	return nil
}

// Unassign removes the courier from the order. This is the explicit
// administrative path; the claim path itself never reassigns.
func (o *Order) Unassign() {
	o.courierID = nil
}

// DetachCustomer clears the customer reference, preserving the order record
// after the customer account is retired.
func (o *Order) DetachCustomer() {
	o.customerID = nil
}

// DetachRestaurant clears the restaurant reference, preserving the order
// record after the restaurant account is retired.
func (o *Order) DetachRestaurant() {
	o.restaurantID = nil
}
