package http

import "time"

// Error is the uniform JSON error body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Address  string `json:"address"`
	City     string `json:"city"`
	District string `json:"district"`
}

type RegisterResponse struct {
	ID string `json:"id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type AddCartItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

type CartItem struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
}

type Cart struct {
	CartID                *string    `json:"cart_id,omitempty"`
	RestaurantID          *string    `json:"restaurant_id,omitempty"`
	Items                 []CartItem `json:"items"`
	Subtotal              float64    `json:"subtotal"`
	RestaurantUnavailable bool       `json:"restaurant_unavailable,omitempty"`
}

type CheckoutRequest struct {
	DeliveryAddress string  `json:"delivery_address"`
	PaymentMethod   string  `json:"payment_method"`
	DeliveryType    string  `json:"delivery_type"`
	TipAmount       float64 `json:"tip_amount"`
	CardNumber      string  `json:"card_number,omitempty"`
	CardExpiry      string  `json:"card_expiry,omitempty"`
	CardCVC         string  `json:"card_cvc,omitempty"`
}

type CheckoutResponse struct {
	OrderID string `json:"order_id"`
}

type OrderItem struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
}

type Order struct {
	ID              string      `json:"id"`
	CustomerID      *string     `json:"customer_id,omitempty"`
	RestaurantID    *string     `json:"restaurant_id,omitempty"`
	CourierID       *string     `json:"courier_id,omitempty"`
	Items           []OrderItem `json:"items"`
	DeliveryAddress string      `json:"delivery_address"`
	PaymentMethod   string      `json:"payment_method"`
	DeliveryType    string      `json:"delivery_type"`
	TipAmount       float64     `json:"tip_amount"`
	TotalAmount     float64     `json:"total_amount"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	MaskedCard      string      `json:"masked_card,omitempty"`
}

type OrderSummary struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

type ClaimableOrder struct {
	ID              string    `json:"id"`
	RestaurantID    string    `json:"restaurant_id"`
	DeliveryAddress string    `json:"delivery_address"`
	TotalAmount     float64   `json:"total_amount"`
	CreatedAt       time.Time `json:"created_at"`
}

type AdvanceOrderRequest struct {
	Status string `json:"status"`
}

type MenuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type MenuItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Available   bool    `json:"available"`
}

type SetAvailabilityRequest struct {
	Available bool `json:"available"`
}

type RequestAffiliationRequest struct {
	RestaurantID string `json:"restaurant_id"`
}

type RequestAffiliationResponse struct {
	RequestID string `json:"request_id"`
}

type AffiliationRequest struct {
	ID        string    `json:"id"`
	CourierID string    `json:"courier_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type RespondAffiliationRequest struct {
	Accept bool `json:"accept"`
}

type SetAccountStatusRequest struct {
	Status string `json:"status"`
}

type RetireAccountResponse struct {
	DetachedOrders       int64 `json:"detached_orders"`
	CancelledOrders      int64 `json:"cancelled_orders"`
	DeletedMenuItems     int64 `json:"deleted_menu_items"`
	DeletedCarts         int64 `json:"deleted_carts"`
	DeletedRequests      int64 `json:"deleted_requests"`
	UnaffiliatedCouriers int64 `json:"unaffiliated_couriers"`
}
