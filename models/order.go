package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string
type PaymentStatus string
type PaymentMethod string

const (
	// Order statuses (forward-moving; cancelled is the escape hatch)
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"

	// Payment statuses
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"

	// Payment methods; points is the platform currency, the rest are mock.
	PaymentMethodPoints PaymentMethod = "points"
	PaymentMethodUPI    PaymentMethod = "upi"
	PaymentMethodCash   PaymentMethod = "cash"
)

// Order is a points/cash transaction. ShippingAddress is a snapshot taken
// at checkout, not a live reference to the account's address.
type Order struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	Items           []OrderItem   `json:"items"`
	TotalPoints     int           `json:"total_points"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	OrderStatus     OrderStatus   `json:"order_status"`
	ShippingAddress Address       `json:"shipping_address"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// OrderItem is a line entry. PointsValue is the item's point value times
// the quantity, captured at order time; it is never recomputed from the
// item record, which may have changed since.
type OrderItem struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	ItemID      string    `json:"item_id"`
	Quantity    int       `json:"quantity"`
	PointsValue int       `json:"points_value"`
	CreatedAt   time.Time `json:"created_at"`
}

type Address struct {
	FullName      string `json:"full_name"`
	Phone         string `json:"phone"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
}

// MapOrderStatus maps a request string to an order status.
func MapOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToLower(s) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusConfirmed):
		return OrderStatusConfirmed, nil
	case string(OrderStatusShipped):
		return OrderStatusShipped, nil
	case string(OrderStatusDelivered):
		return OrderStatusDelivered, nil
	case string(OrderStatusCancelled):
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// MapPaymentStatus maps a request string to a payment status.
func MapPaymentStatus(s string) (PaymentStatus, error) {
	switch strings.ToLower(s) {
	case string(PaymentStatusPending):
		return PaymentStatusPending, nil
	case string(PaymentStatusCompleted):
		return PaymentStatusCompleted, nil
	case string(PaymentStatusFailed):
		return PaymentStatusFailed, nil
	default:
		return "", errors.New("invalid payment status")
	}
}

// MapPaymentMethod maps a request string to a payment method.
func MapPaymentMethod(s string) (PaymentMethod, error) {
	switch strings.ToLower(s) {
	case string(PaymentMethodPoints):
		return PaymentMethodPoints, nil
	case string(PaymentMethodUPI):
		return PaymentMethodUPI, nil
	case string(PaymentMethodCash):
		return PaymentMethodCash, nil
	default:
		return "", errors.New("invalid payment method")
	}
}
