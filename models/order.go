package models

import "time"

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentVisa PaymentMethod = "visa"
)

func (p PaymentMethod) Valid() bool {
	return p == PaymentCash || p == PaymentVisa
}

// CartLine is one catalog item plus the requested quantity.
type CartLine struct {
	FoodItem
	Qty int
}

func (l CartLine) Subtotal() int64 {
	return l.Price * int64(l.Qty)
}

// Order is the notional result of a confirmed checkout. It is never stored.
type Order struct {
	ID       string
	Lines    []CartLine
	Total    int64
	Payment  PaymentMethod
	PlacedAt time.Time
}
