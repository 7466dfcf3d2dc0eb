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
	// ErrCardInfoRequired is returned when a credit-card checkout is missing
	// the card number, expiry, or CVC.
	ErrCardInfoRequired = errors.New("card info is required for credit card payments")

	// ErrPaymentIsNotConstructed is returned when using a Payment that was
	// not created via NewPayment or RestorePayment.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")
)

// PaymentMethod identifies how the customer pays for an order.
type PaymentMethod int

const (
	UnknownPaymentMethod PaymentMethod = iota
	CreditCard
	CashOnDelivery
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		UnknownPaymentMethod: "UNKNOWN",
		CreditCard:           "CREDIT_CARD",
		CashOnDelivery:       "CASH_ON_DELIVERY",
	}
}

// PaymentMethodFromString parses a payment method name case-insensitively.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for method, name := range getPaymentMethodStrings() {
		if method != UnknownPaymentMethod && name == normalized {
			return method, nil
		}
	}
	return UnknownPaymentMethod, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s))
}

func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that the method is one of the defined values.
func (m PaymentMethod) Validate() error {
	if m != CreditCard && m != CashOnDelivery {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// DeliveryType identifies whether the order is delivered or picked up.
type DeliveryType int

const (
	UnknownDeliveryType DeliveryType = iota
	Delivery
	Pickup
)

func getDeliveryTypeStrings() map[DeliveryType]string {
	return map[DeliveryType]string{
		UnknownDeliveryType: "UNKNOWN",
		Delivery:            "DELIVERY",
		Pickup:              "PICKUP",
	}
}

// DeliveryTypeFromString parses a delivery type name case-insensitively.
func DeliveryTypeFromString(s string) (DeliveryType, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for dt, name := range getDeliveryTypeStrings() {
		if dt != UnknownDeliveryType && name == normalized {
			return dt, nil
		}
	}
	return UnknownDeliveryType, errs.NewValueIsInvalidErrorWithCause("deliveryType",
		fmt.Errorf("%q is not a valid delivery type", s))
}

func (d DeliveryType) String() string {
	if str, ok := getDeliveryTypeStrings()[d]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that the delivery type is one of the defined values.
func (d DeliveryType) Validate() error {
	if d != Delivery && d != Pickup {
		return errs.NewValueIsInvalidErrorWithCause("deliveryType",
			fmt.Errorf("%d is not a valid delivery type", d))
	}
	return nil
}

// CardInfo carries raw card details supplied at checkout. It is a transient
// input value: only the masked number survives into the Payment record, and
// the CVC is never persisted anywhere.
type CardInfo struct {
	Number string
	Expiry string
	CVC    string
}

// Validate checks that all card fields are populated.
func (c CardInfo) Validate() error {
	if strings.TrimSpace(c.Number) == "" ||
		strings.TrimSpace(c.Expiry) == "" ||
		strings.TrimSpace(c.CVC) == "" {
		return ErrCardInfoRequired
	}
	return nil
}

// paymentStatusPaid is the only payment status the pass-through recorder
// produces. There is no real gateway integration.
const paymentStatusPaid = "PAID"

// Payment is the satellite record created atomically with an Order. It keeps
// a tokenized view of the instrument: for card payments only the last four
// digits are retained.
type Payment struct {
	id          kernel.UUID
	orderID     kernel.UUID
	method      PaymentMethod
	maskedCard  string
	cardExpiry  string
	status      string
	paymentDate time.Time

	guard guard.ConstructorGuard
}

// NewPayment records a payment for the given order. For credit-card payments
// the card info must be fully populated; the stored number keeps only the
// last four digits and the CVC is discarded.
func NewPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	method PaymentMethod,
	card *CardInfo,
	paymentDate time.Time,
) (*Payment, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), method.Validate()); err != nil {
		return nil, err
	}

	payment := &Payment{
		id:          id,
		orderID:     orderID,
		method:      method,
		status:      paymentStatusPaid,
		paymentDate: paymentDate,
		guard:       guard.NewConstructorGuard(),
	}

	if method == CreditCard {
		if card == nil {
			return nil, ErrCardInfoRequired
		}
		if err := card.Validate(); err != nil {
			return nil, err
		}
		payment.maskedCard = MaskCardNumber(card.Number)
		payment.cardExpiry = card.Expiry
	}

	return payment, nil
}

// RestorePayment reconstructs a Payment from persistence.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	method PaymentMethod,
	maskedCard string,
	cardExpiry string,
	status string,
	paymentDate time.Time,
) (*Payment, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), method.Validate()); err != nil {
		return nil, err
	}

	return &Payment{
		id:          id,
		orderID:     orderID,
		method:      method,
		maskedCard:  maskedCard,
		cardExpiry:  cardExpiry,
		status:      status,
		paymentDate: paymentDate,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Payment was created via a constructor.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// ID returns the payment identifier.
func (p *Payment) ID() kernel.UUID { return p.id }

// OrderID returns the identifier of the order this payment belongs to.
func (p *Payment) OrderID() kernel.UUID { return p.orderID }

// Method returns the payment method.
func (p *Payment) Method() PaymentMethod { return p.method }

// MaskedCard returns the masked instrument, empty for non-card payments.
func (p *Payment) MaskedCard() string { return p.maskedCard }

// CardExpiry returns the card expiry, empty for non-card payments.
func (p *Payment) CardExpiry() string { return p.cardExpiry }

// Status returns the payment status.
func (p *Payment) Status() string { return p.status }

// PaymentDate returns when the payment was recorded.
func (p *Payment) PaymentDate() time.Time { return p.paymentDate }

// MaskCardNumber keeps only the last four digits of a card number.
// Numbers shorter than four digits mask entirely.
func MaskCardNumber(number string) string {
	trimmed := strings.ReplaceAll(strings.TrimSpace(number), " ", "")
	if len(trimmed) < 4 {
		return "****"
	}
	return "**** **** **** " + trimmed[len(trimmed)-4:]
}
