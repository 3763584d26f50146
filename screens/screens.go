// Package screens renders storefront screens as plain text for chat and console front ends.
package screens

import (
	"errors"
	"fmt"
	"strings"

	"food-storefront/lang"
	"food-storefront/models"
	"food-storefront/services"
)

type Renderer struct {
	Lang     string
	Currency string // empty uses the language's symbol
}

func New(langCode, currency string) Renderer {
	if !lang.Valid(langCode) {
		langCode = lang.Default
	}
	return Renderer{Lang: langCode, Currency: currency}
}

func (r Renderer) t(key string, args ...interface{}) string {
	return lang.T(r.Lang, key, args...)
}

func (r Renderer) currency() string {
	if r.Currency != "" {
		return r.Currency
	}
	return r.t("currency")
}

func (r Renderer) Price(amount int64) string {
	return fmt.Sprintf("%d %s", amount, r.currency())
}

func (r Renderer) CategoryLabel(category string) string {
	return r.t("cat_" + category)
}

func (r Renderer) PaymentLabel(p models.PaymentMethod) string {
	return r.t("pay_" + string(p) + "_short")
}

func (r Renderer) FieldLabel(field string) string {
	return r.t("field_" + field)
}

func (r Renderer) Login() string {
	return r.t("login_title")
}

func (r Renderer) Signup() string {
	return r.t("signup_title")
}

func (r Renderer) FormPrompt(field string) string {
	return r.t("form_prompt", r.FieldLabel(field))
}

// Render dispatches on the session's current screen.
func (r Renderer) Render(s *services.Session) string {
	switch s.Screen() {
	case services.ScreenLogin:
		return r.Login()
	case services.ScreenSignup:
		return r.Signup()
	case services.ScreenHome:
		return r.Home(s)
	case services.ScreenDetails:
		return r.Details(s.Details())
	case services.ScreenCart:
		return r.Cart(s)
	}
	return ""
}

func (r Renderer) Home(s *services.Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s    %s\n", r.t("menu_title"), r.t("cart_badge", s.Cart().Len()))
	fmt.Fprintf(&b, "%s\n\n", r.t("category_label", r.CategoryLabel(s.Category())))
	items := s.VisibleItems()
	if len(items) == 0 {
		b.WriteString(r.t("no_items"))
		return b.String()
	}
	for _, it := range items {
		fmt.Fprintf(&b, "%s. %s — %s — %s\n", it.ID, it.Name, r.CategoryLabel(it.Category), r.Price(it.Price))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r Renderer) Details(rc *services.ReviewCollector) string {
	if rc == nil {
		return ""
	}
	it := rc.Item()
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n%s\n\n", it.Name, r.Price(it.Price), r.t("rating", rc.Average()))
	fmt.Fprintf(&b, "%s\n%s\n%s\n\n", r.t("desc_header"), it.Description, r.t("ingredients", it.Ingredients))
	b.WriteString(r.t("reviews_header") + "\n")
	reviews := rc.Reviews()
	if len(reviews) == 0 {
		b.WriteString(r.t("no_reviews") + "\n")
	}
	for _, rev := range reviews {
		fmt.Fprintf(&b, "• %s", rev.User)
		if rev.Stars > 0 {
			fmt.Fprintf(&b, " %s", Stars(rev.Stars))
		}
		fmt.Fprintf(&b, ": %s\n", rev.Comment)
	}
	fmt.Fprintf(&b, "\n%s", r.t("stars_picked", Stars(rc.Rating())))
	return b.String()
}

func (r Renderer) Cart(s *services.Session) string {
	cart := s.Cart()
	if cart.IsEmpty() {
		return r.t("cart_empty")
	}
	var b strings.Builder
	b.WriteString(r.t("cart_title") + "\n\n")
	for _, l := range cart.Lines() {
		fmt.Fprintf(&b, "%s (x%d) — %s\n", l.Name, l.Qty, r.Price(l.Subtotal()))
	}
	fmt.Fprintf(&b, "\n%s\n", r.t("total", cart.Total(), r.currency()))
	fmt.Fprintf(&b, "%s %s", r.t("choose_payment"), r.PaymentLabel(s.Checkout().Payment()))
	return b.String()
}

func (r Renderer) ConfirmCheckout(o models.Order) string {
	return r.t("confirm_title") + "\n" + r.t("confirm_body", o.Total, r.currency(), r.PaymentLabel(o.Payment))
}

func (r Renderer) OrderPlaced(o models.Order) string {
	id := o.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return r.t("order_placed") + " #" + id
}

// Error turns a service error into user text.
func (r Renderer) Error(err error) string {
	var fe *services.FormError
	switch {
	case errors.As(err, &fe):
		labels := make([]string, len(fe.Fields))
		for i, f := range fe.Fields {
			labels[i] = r.FieldLabel(f)
		}
		return r.t("form_invalid", strings.Join(labels, ", "))
	case errors.Is(err, services.ErrCartEmpty):
		return r.t("cart_empty")
	case errors.Is(err, services.ErrItemNotFound):
		return r.t("item_not_found")
	case errors.Is(err, services.ErrUnknownCategory):
		return r.t("unknown_category")
	case errors.Is(err, services.ErrUnknownPayment):
		return r.t("unknown_payment")
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrNoItemOpen),
		errors.Is(err, services.ErrNoPendingCheckout),
		errors.Is(err, services.ErrCheckoutLocked):
		return r.t("not_available")
	}
	return r.t("something_wrong")
}

// Stars draws a 0..5 rating as filled and empty stars.
func Stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > services.MaxStars {
		n = services.MaxStars
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", services.MaxStars-n)
}
