package cart

import (
	"errors"

	"github.com/google/uuid"

	"github.com/rewear-app/rewear-api/dataaccess"
	"github.com/rewear-app/rewear-api/localauth"
	"github.com/rewear-app/rewear-api/models"
)

var (
	ErrCartEmpty          = errors.New("cart is empty")
	ErrInsufficientPoints = errors.New("insufficient points for this order")
)

// Checkout turns a cart into a persisted order.
type Checkout struct {
	data *dataaccess.Client
	auth *localauth.Service
}

func NewCheckout(data *dataaccess.Client, auth *localauth.Service) *Checkout {
	return &Checkout{data: data, auth: auth}
}

// PlaceOrder snapshots the cart into an order with line items, persists
// them, deducts points when paying with points, and clears the cart.
//
// The order insert, the line-item inserts, and the points deduction are
// independent writes with no rollback; a failure partway leaves the earlier
// writes in place. This matches the storage model's single-writer
// assumption and is a known consistency gap, not an oversight.
//
// Paying with points requires a sufficient balance; PlaceOrder rejects the
// order with ErrInsufficientPoints rather than trusting a prior caller-side
// check.
func (c *Checkout) PlaceOrder(cart *Cart, userID string, address models.Address, method models.PaymentMethod) (*models.Order, error) {
	entries := cart.Entries()
	if len(entries) == 0 {
		return nil, ErrCartEmpty
	}

	total := cart.TotalPoints()

	var user *models.User
	if method == models.PaymentMethodPoints {
		u, err := c.auth.UserByID(userID)
		if err != nil {
			return nil, err
		}
		if u.Points < total {
			return nil, ErrInsufficientPoints
		}
		user = u
	}

	orderID := "order_" + uuid.NewString()
	lines := make([]models.OrderItem, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, models.OrderItem{
			ID:          "orderitem_" + uuid.NewString(),
			OrderID:     orderID,
			ItemID:      e.Item.ID,
			Quantity:    e.Quantity,
			PointsValue: e.Item.PointValue * e.Quantity,
		})
	}

	order := models.Order{
		ID:              orderID,
		UserID:          userID,
		Items:           lines,
		TotalPoints:     total,
		PaymentMethod:   method,
		PaymentStatus:   models.PaymentStatusCompleted,
		OrderStatus:     models.OrderStatusPending,
		ShippingAddress: address,
	}

	inserted, err := c.data.Orders().Insert(order)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		if _, err := c.data.OrderItems().Insert(line); err != nil {
			return nil, err
		}
	}

	if method == models.PaymentMethodPoints {
		if _, err := c.auth.UpdateUser(userID, map[string]any{"points": user.Points - total}); err != nil {
			return nil, err
		}
	}

	cart.Clear()
	return &inserted, nil
}
