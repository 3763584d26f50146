package bot

import (
	"strconv"

	"food-storefront/lang"
	"food-storefront/models"
	"food-storefront/screens"
	"food-storefront/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const categoriesPerRow = 3

func loginKeyboard(l string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(lang.T(l, "login_btn"), "form:login"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(lang.T(l, "signup_link"), "nav:signup"),
		),
	)
}

func signupKeyboard(l string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(lang.T(l, "signup_btn"), "form:signup"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(lang.T(l, "back"), "back"),
		),
	)
}

// homeKeyboard has the category chips, one button per visible item, and the cart.
func homeKeyboard(r screens.Renderer, s *services.Session) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, c := range models.Categories {
		label := r.CategoryLabel(c)
		if c == s.Category() {
			label = "• " + label
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, "cat:"+c))
		if len(row) == categoriesPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	for _, it := range s.VisibleItems() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(it.Name+" — "+r.Price(it.Price), "item:"+it.ID),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(lang.T(r.Lang, "cart_badge", s.Cart().Len()), "cart"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func detailsKeyboard(l string, picked int) tgbotapi.InlineKeyboardMarkup {
	var stars []tgbotapi.InlineKeyboardButton
	for n := 1; n <= services.MaxStars; n++ {
		label := "☆"
		if n <= picked {
			label = "★"
		}
		stars = append(stars, tgbotapi.NewInlineKeyboardButtonData(label, "stars:"+strconv.Itoa(n)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(lang.T(l, "add_to_cart"), "add"),
		),
		stars,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(lang.T(l, "back"), "back"),
		),
	)
}

// cartKeyboard hides payment and checkout for an empty cart, so checkout is unreachable.
func cartKeyboard(l string, s *services.Session) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	if !s.Cart().IsEmpty() {
		cash, visa := lang.T(l, "pay_cash"), lang.T(l, "pay_visa")
		switch s.Checkout().Payment() {
		case models.PaymentCash:
			cash = "✅ " + cash
		case models.PaymentVisa:
			visa = "✅ " + visa
		}
		rows = append(rows,
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(cash, "pay:cash"),
				tgbotapi.NewInlineKeyboardButtonData(visa, "pay:visa"),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(lang.T(l, "checkout_btn"), "checkout"),
			),
		)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(lang.T(l, "back"), "back"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func confirmKeyboard(l string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(lang.T(l, "confirm_btn"), "checkout:confirm"),
			tgbotapi.NewInlineKeyboardButtonData(lang.T(l, "cancel_btn"), "checkout:cancel"),
		),
	)
}

func languageKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("العربية", "lang:ar"),
			tgbotapi.NewInlineKeyboardButtonData("English", "lang:en"),
		),
	)
}
