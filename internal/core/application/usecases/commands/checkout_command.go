package commands

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand represents a customer's request to convert their cart into
// an order. Card details ride along only for credit-card payments and are
// reduced to a masked number before anything is persisted.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	deliveryAddress string
	paymentMethod   order.PaymentMethod
	deliveryType    order.DeliveryType
	tipAmount       float64
	card            *order.CardInfo

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command. For credit-card payments the
// card must be fully populated; for cash on delivery it must be absent.
func NewCheckoutCommand(
	customerID kernel.UUID,
	deliveryAddress string,
	paymentMethod order.PaymentMethod,
	deliveryType order.DeliveryType,
	tipAmount float64,
	card *order.CardInfo,
) (CheckoutCommand, error) {
	command := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customerID.Validate(),
		paymentMethod.Validate(),
		deliveryType.Validate(),
		func() error {
			if strings.TrimSpace(deliveryAddress) == "" {
				return errs.NewValueIsRequiredError("delivery address")
			}
			return nil
		}(),
		func() error {
			if tipAmount < 0 {
				return errs.NewValueIsInvalidErrorWithCause("tip amount",
					fmt.Errorf("%f is negative", tipAmount))
			}
			return nil
		}(),
	); err != nil {
		return CheckoutCommand{}, err
	}

	command.customerID = customerID
	command.deliveryAddress = deliveryAddress
	command.paymentMethod = paymentMethod
	command.deliveryType = deliveryType
	command.tipAmount = tipAmount
	command.card = card
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// CustomerID returns the checking-out customer's account ID.
func (c CheckoutCommand) CustomerID() kernel.UUID { return c.customerID }

// DeliveryAddress returns where the order is delivered.
func (c CheckoutCommand) DeliveryAddress() string { return c.deliveryAddress }

// PaymentMethod returns how the order is paid.
func (c CheckoutCommand) PaymentMethod() order.PaymentMethod { return c.paymentMethod }

// DeliveryType returns whether the order is delivered or picked up.
func (c CheckoutCommand) DeliveryType() order.DeliveryType { return c.deliveryType }

// TipAmount returns the tip to add to the total.
func (c CheckoutCommand) TipAmount() float64 { return c.tipAmount }

// Card returns the card details, nil for cash on delivery.
func (c CheckoutCommand) Card() *order.CardInfo { return c.card }
