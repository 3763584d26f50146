package services

import (
	"errors"
	"fmt"
	"time"

	"food-storefront/models"

	"github.com/google/uuid"
)

const (
	CheckoutBrowsing       = "browsing"
	CheckoutConfirmPending = "confirm_pending"
	CheckoutCompleted      = "completed"
)

var (
	ErrCartEmpty         = errors.New("cart is empty")
	ErrUnknownPayment    = errors.New("unknown payment method")
	ErrNoPendingCheckout = errors.New("no checkout awaiting confirmation")
	ErrCheckoutLocked    = errors.New("payment method cannot change while confirming")
)

// ValidCheckoutTransition reports whether the checkout flow may move from one stage to another.
func ValidCheckoutTransition(from, to string) bool {
	switch from {
	case CheckoutBrowsing:
		return to == CheckoutConfirmPending
	case CheckoutConfirmPending:
		return to == CheckoutCompleted || to == CheckoutBrowsing
	case CheckoutCompleted:
		return to == CheckoutBrowsing
	}
	return false
}

// Checkout is the confirmation dialog in front of the cart. Nothing is charged;
// a confirmed checkout only clears the cart and yields a notional order.
type Checkout struct {
	cart    *Cart
	payment models.PaymentMethod
	stage   string
	now     func() time.Time
}

func NewCheckout(cart *Cart) *Checkout {
	return &Checkout{
		cart:    cart,
		payment: models.PaymentCash,
		stage:   CheckoutBrowsing,
		now:     time.Now,
	}
}

func (c *Checkout) Stage() string {
	return c.stage
}

func (c *Checkout) Payment() models.PaymentMethod {
	return c.payment
}

func (c *Checkout) SelectPayment(method models.PaymentMethod) error {
	if !method.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPayment, method)
	}
	if c.stage == CheckoutConfirmPending {
		return ErrCheckoutLocked
	}
	c.payment = method
	return nil
}

// Request opens the confirmation step. The returned order carries the total
// and payment method for the prompt; it has no ID until confirmed.
func (c *Checkout) Request() (models.Order, error) {
	if c.stage == CheckoutCompleted {
		c.stage = CheckoutBrowsing
	}
	if c.cart.IsEmpty() {
		return models.Order{}, ErrCartEmpty
	}
	if c.stage == CheckoutBrowsing {
		c.move(CheckoutConfirmPending)
	}
	return c.summary(), nil
}

// Confirm finalizes the pending checkout and clears the cart.
func (c *Checkout) Confirm() (models.Order, error) {
	if c.stage != CheckoutConfirmPending {
		return models.Order{}, ErrNoPendingCheckout
	}
	if c.cart.IsEmpty() {
		c.move(CheckoutBrowsing)
		return models.Order{}, ErrCartEmpty
	}
	order := c.summary()
	order.ID = uuid.NewString()
	order.PlacedAt = c.now()
	c.cart.Clear()
	c.move(CheckoutCompleted)
	return order, nil
}

// Cancel drops the pending confirmation without touching the cart.
func (c *Checkout) Cancel() {
	if c.stage == CheckoutConfirmPending {
		c.move(CheckoutBrowsing)
	}
}

// Reset returns a completed checkout to browsing.
func (c *Checkout) Reset() {
	if c.stage == CheckoutCompleted {
		c.move(CheckoutBrowsing)
	}
}

func (c *Checkout) move(to string) {
	if ValidCheckoutTransition(c.stage, to) {
		c.stage = to
	}
}

func (c *Checkout) summary() models.Order {
	return models.Order{
		Lines:   c.cart.Lines(),
		Total:   c.cart.Total(),
		Payment: c.payment,
	}
}
