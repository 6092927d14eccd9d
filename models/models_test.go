package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapItemCondition(t *testing.T) {
	c, err := MapItemCondition("Like New")
	require.NoError(t, err)
	assert.Equal(t, ConditionLikeNew, c)

	_, err = MapItemCondition("Worn Out")
	assert.Error(t, err)
}

func TestSuggestedPointValue(t *testing.T) {
	assert.Equal(t, 100, SuggestedPointValue(ConditionNew))
	assert.Equal(t, 80, SuggestedPointValue(ConditionLikeNew))
	assert.Equal(t, 60, SuggestedPointValue(ConditionGood))
	assert.Equal(t, 40, SuggestedPointValue(ConditionFair))
	assert.Equal(t, 50, SuggestedPointValue(ItemCondition("mystery")))
}

func TestStatusMappingIsCaseInsensitive(t *testing.T) {
	s, err := MapOrderStatus("SHIPPED")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusShipped, s)

	p, err := MapPaymentStatus("Completed")
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusCompleted, p)

	m, err := MapPaymentMethod("UPI")
	require.NoError(t, err)
	assert.Equal(t, PaymentMethodUPI, m)

	sw, err := MapSwapStatus("Accepted")
	require.NoError(t, err)
	assert.Equal(t, SwapStatusAccepted, sw)

	_, err = MapOrderStatus("returned")
	assert.Error(t, err)
}

func TestPublicViewHasNoCredential(t *testing.T) {
	u := User{ID: "u1", Email: "anna@example.com", Name: "Anna", PasswordHash: "$2a$10$hash", Points: 100}

	b, err := json.Marshal(u.Public())
	require.NoError(t, err)
	assert.NotContains(t, string(b), "password_hash")
	assert.NotContains(t, string(b), "$2a$10$hash")
}
