package services

import (
	"errors"
	"testing"
	"time"

	"food-storefront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidCheckoutTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{CheckoutBrowsing, CheckoutConfirmPending, true},
		{CheckoutBrowsing, CheckoutCompleted, false},
		{CheckoutConfirmPending, CheckoutCompleted, true},
		{CheckoutConfirmPending, CheckoutBrowsing, true},
		{CheckoutCompleted, CheckoutBrowsing, true},
		{CheckoutCompleted, CheckoutConfirmPending, false},
		{"", CheckoutBrowsing, false},
		{CheckoutBrowsing, "", false},
	}
	for _, tt := range tests {
		got := ValidCheckoutTransition(tt.from, tt.to)
		assert.Equal(t, tt.want, got, "ValidCheckoutTransition(%q, %q)", tt.from, tt.to)
	}
}

func TestCheckoutRequestNeedsItems(t *testing.T) {
	co := NewCheckout(NewCart())
	_, err := co.Request()
	assert.True(t, errors.Is(err, ErrCartEmpty))
	assert.Equal(t, CheckoutBrowsing, co.Stage())
}

func TestCheckoutConfirmClearsCart(t *testing.T) {
	cart := NewCart()
	cart.Add(burger)
	cart.Add(burger)
	cart.Add(shrimp)

	co := NewCheckout(cart)
	placed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	co.now = func() time.Time { return placed }
	require.NoError(t, co.SelectPayment(models.PaymentVisa))

	summary, err := co.Request()
	require.NoError(t, err)
	assert.Equal(t, CheckoutConfirmPending, co.Stage())
	assert.Equal(t, int64(240), summary.Total)
	assert.Equal(t, models.PaymentVisa, summary.Payment)
	assert.Empty(t, summary.ID)

	order, err := co.Confirm()
	require.NoError(t, err)
	assert.Equal(t, CheckoutCompleted, co.Stage())
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, placed, order.PlacedAt)
	assert.Equal(t, int64(240), order.Total)
	assert.Len(t, order.Lines, 2)

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, int64(0), cart.Total())

	co.Reset()
	assert.Equal(t, CheckoutBrowsing, co.Stage())
}

func TestCheckoutCancelKeepsCart(t *testing.T) {
	cart := NewCart()
	cart.Add(shrimp)
	co := NewCheckout(cart)

	_, err := co.Request()
	require.NoError(t, err)
	co.Cancel()

	assert.Equal(t, CheckoutBrowsing, co.Stage())
	assert.Equal(t, int64(150), cart.Total())

	_, err = co.Confirm()
	assert.True(t, errors.Is(err, ErrNoPendingCheckout))
	assert.Equal(t, int64(150), cart.Total())
}

func TestCheckoutConfirmWithoutRequest(t *testing.T) {
	co := NewCheckout(NewCart())
	_, err := co.Confirm()
	assert.True(t, errors.Is(err, ErrNoPendingCheckout))
	assert.Equal(t, CheckoutBrowsing, co.Stage())
}

func TestCheckoutConfirmAfterCartEmptied(t *testing.T) {
	cart := NewCart()
	cart.Add(burger)
	co := NewCheckout(cart)
	_, err := co.Request()
	require.NoError(t, err)

	cart.Clear()
	_, err = co.Confirm()
	assert.True(t, errors.Is(err, ErrCartEmpty))
	assert.Equal(t, CheckoutBrowsing, co.Stage())
}

func TestCheckoutSelectPayment(t *testing.T) {
	cart := NewCart()
	cart.Add(burger)
	co := NewCheckout(cart)
	assert.Equal(t, models.PaymentCash, co.Payment())

	err := co.SelectPayment("bitcoin")
	assert.True(t, errors.Is(err, ErrUnknownPayment))
	assert.Equal(t, models.PaymentCash, co.Payment())

	_, err = co.Request()
	require.NoError(t, err)
	assert.True(t, errors.Is(co.SelectPayment(models.PaymentVisa), ErrCheckoutLocked))

	co.Cancel()
	require.NoError(t, co.SelectPayment(models.PaymentVisa))
	assert.Equal(t, models.PaymentVisa, co.Payment())
}
