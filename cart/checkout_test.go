package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewear-app/rewear-api/dataaccess"
	"github.com/rewear-app/rewear-api/localauth"
	"github.com/rewear-app/rewear-api/models"
	"github.com/rewear-app/rewear-api/storage"
)

func newCheckoutFixture(t *testing.T) (*Checkout, *Cart, *localauth.Service, *dataaccess.Client, *models.User) {
	t.Helper()
	store := storage.NewMemory()
	auth := localauth.New(store)
	data := dataaccess.NewClient(store)

	user, err := auth.Register("buyer@example.com", "secret1", "Buyer")
	require.NoError(t, err)

	cart := NewForUser(store, user.ID)
	return NewCheckout(data, auth), cart, auth, data, user
}

func testAddress() models.Address {
	return models.Address{
		FullName:      "Buyer",
		Phone:         "1234567890",
		StreetAddress: "1 Swap Street",
		City:          "Portland",
		State:         "OR",
		PostalCode:    "97201",
		Country:       "USA",
	}
}

func TestPlaceOrderWithPoints(t *testing.T) {
	checkout, cart, auth, data, user := newCheckoutFixture(t)
	cart.Add(testItem("item_a", 30))
	cart.Add(testItem("item_a", 30))
	cart.Add(testItem("item_b", 25))

	order, err := checkout.PlaceOrder(cart, user.ID, testAddress(), models.PaymentMethodPoints)
	require.NoError(t, err)

	assert.Equal(t, 85, order.TotalPoints)
	assert.Equal(t, models.PaymentStatusCompleted, order.PaymentStatus)
	assert.Equal(t, models.OrderStatusPending, order.OrderStatus)
	assert.Equal(t, user.ID, order.UserID)

	// The order total is exactly the sum of its line items.
	sum := 0
	require.Len(t, order.Items, 2)
	for _, line := range order.Items {
		assert.Equal(t, order.ID, line.OrderID)
		sum += line.PointsValue
	}
	assert.Equal(t, order.TotalPoints, sum)

	// Points were deducted from the welcome bonus.
	after, err := auth.UserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, localauth.WelcomeBonus-85, after.Points)

	// The cart is empty and the order is persisted.
	assert.Empty(t, cart.Entries())
	stored, err := data.Orders().Eq("id", order.ID).Single()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 85, stored.TotalPoints)
}

func TestPlaceOrderPersistsLineItems(t *testing.T) {
	checkout, cart, _, data, user := newCheckoutFixture(t)
	cart.Add(testItem("item_a", 30))
	cart.Add(testItem("item_b", 25))

	order, err := checkout.PlaceOrder(cart, user.ID, testAddress(), models.PaymentMethodPoints)
	require.NoError(t, err)

	lines, err := data.OrderItems().Eq("order_id", order.ID).All()
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	checkout, cart, _, _, user := newCheckoutFixture(t)

	_, err := checkout.PlaceOrder(cart, user.ID, testAddress(), models.PaymentMethodPoints)
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestPlaceOrderRejectsInsufficientPoints(t *testing.T) {
	checkout, cart, auth, data, user := newCheckoutFixture(t)
	cart.Add(testItem("item_pricey", localauth.WelcomeBonus+1))

	_, err := checkout.PlaceOrder(cart, user.ID, testAddress(), models.PaymentMethodPoints)
	assert.ErrorIs(t, err, ErrInsufficientPoints)

	// Nothing was deducted or cleared.
	after, err := auth.UserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, localauth.WelcomeBonus, after.Points)
	assert.Len(t, cart.Entries(), 1)

	orders, err := data.Orders().Eq("user_id", user.ID).All()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPlaceOrderOtherMethodsSkipBalanceCheck(t *testing.T) {
	checkout, cart, auth, _, user := newCheckoutFixture(t)
	cart.Add(testItem("item_pricey", localauth.WelcomeBonus*10))

	order, err := checkout.PlaceOrder(cart, user.ID, testAddress(), models.PaymentMethodUPI)
	require.NoError(t, err)
	assert.Equal(t, localauth.WelcomeBonus*10, order.TotalPoints)

	// Balance untouched for non-points payment.
	after, err := auth.UserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, localauth.WelcomeBonus, after.Points)
}
