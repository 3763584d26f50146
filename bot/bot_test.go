package bot

import (
	"testing"

	"food-storefront/config"
	"food-storefront/logging"
	"food-storefront/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func (f *fakeAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// lastText returns the text of the most recent message sent or edited.
func (f *fakeAPI) lastText() string {
	for i := len(f.sent) - 1; i >= 0; i-- {
		switch m := f.sent[i].(type) {
		case tgbotapi.MessageConfig:
			return m.Text
		case tgbotapi.EditMessageTextConfig:
			return m.Text
		}
	}
	return ""
}

func (f *fakeAPI) toasts() []string {
	var out []string
	for _, r := range f.requests {
		if cb, ok := r.(tgbotapi.CallbackConfig); ok && cb.Text != "" {
			out = append(out, cb.Text)
		}
	}
	return out
}

const (
	testChat int64 = 100
	testUser int64 = 7
)

func newTestBot() (*Bot, *fakeAPI) {
	api := &fakeAPI{}
	cfg := &config.Config{Store: config.StoreConfig{Lang: "en"}}
	return newBot(api, cfg, services.DefaultCatalog(), logging.Discard()), api
}

func text(b *Bot, s string) {
	b.handleUpdate(tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: testUser},
		Chat:      &tgbotapi.Chat{ID: testChat},
		Text:      s,
	}})
}

func tap(b *Bot, data string) {
	b.handleUpdate(tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb",
		From:    &tgbotapi.User{ID: testUser},
		Message: &tgbotapi.Message{MessageID: 5, Chat: &tgbotapi.Chat{ID: testChat}},
		Data:    data,
	}})
}

func login(t *testing.T, b *Bot) {
	t.Helper()
	text(b, "/start")
	tap(b, "form:login")
	text(b, "a@example.com")
	text(b, "secret")
	require.Equal(t, services.ScreenHome, b.sessions.Get(testUser).Screen())
}

func TestStartShowsLogin(t *testing.T) {
	b, api := newTestBot()
	text(b, "/start")
	require.Len(t, api.sent, 1)
	msg := api.sent[0].(tgbotapi.MessageConfig)
	assert.Equal(t, "Log in", msg.Text)
	kb := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	assert.Equal(t, "form:login", *kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "nav:signup", *kb.InlineKeyboard[1][0].CallbackData)
}

func TestLoginFormDeletesPassword(t *testing.T) {
	b, api := newTestBot()
	login(t, b)

	var deleted bool
	for _, r := range api.requests {
		if _, ok := r.(tgbotapi.DeleteMessageConfig); ok {
			deleted = true
		}
	}
	assert.True(t, deleted)
	assert.Contains(t, api.lastText(), "Menu")
}

func TestLoginFormInvalidEmailRestarts(t *testing.T) {
	b, api := newTestBot()
	text(b, "/start")
	tap(b, "form:login")
	text(b, "nope")
	text(b, "pw")
	assert.Equal(t, "Send your email:", api.lastText())
	assert.Equal(t, services.ScreenLogin, b.sessions.Get(testUser).Screen())
}

func TestSignupFlow(t *testing.T) {
	b, _ := newTestBot()
	text(b, "/start")
	tap(b, "nav:signup")
	assert.Equal(t, services.ScreenSignup, b.sessions.Get(testUser).Screen())
	tap(b, "form:signup")
	text(b, "Sara")
	text(b, "sara@example.com")
	text(b, "pw")
	assert.Equal(t, services.ScreenHome, b.sessions.Get(testUser).Screen())
}

func TestOrderFlow(t *testing.T) {
	b, api := newTestBot()
	login(t, b)

	tap(b, "item:2")
	tap(b, "add")
	tap(b, "add")
	tap(b, "back")
	tap(b, "item:1")
	tap(b, "add")
	tap(b, "cart")

	s := b.sessions.Get(testUser)
	assert.Equal(t, services.ScreenCart, s.Screen())
	assert.Contains(t, api.lastText(), "Total: 240 SAR")
	assert.Contains(t, api.toasts(), "Success: item added to cart")

	tap(b, "pay:visa")
	tap(b, "checkout")
	assert.Contains(t, api.lastText(), "Payment method: Visa")

	tap(b, "checkout:confirm")
	assert.Equal(t, services.ScreenHome, s.Screen())
	assert.True(t, s.Cart().IsEmpty())
	assert.Contains(t, api.lastText(), "Cart (0)")
}

func TestCheckoutCancel(t *testing.T) {
	b, api := newTestBot()
	login(t, b)
	tap(b, "item:4")
	tap(b, "add")
	tap(b, "cart")
	tap(b, "checkout")
	tap(b, "checkout:cancel")

	s := b.sessions.Get(testUser)
	assert.Equal(t, services.CheckoutBrowsing, s.Checkout().Stage())
	assert.Equal(t, int64(25), s.Cart().Total())
	assert.Equal(t, "Confirmation cancelled", api.lastText())
}

func TestEmptyCartHasNoCheckoutButton(t *testing.T) {
	b, api := newTestBot()
	login(t, b)
	tap(b, "cart")

	msg := api.sent[len(api.sent)-1].(tgbotapi.MessageConfig)
	assert.Equal(t, "Your cart is empty", msg.Text)
	kb := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.Len(t, kb.InlineKeyboard, 1)
	assert.Equal(t, "back", *kb.InlineKeyboard[0][0].CallbackData)

	tap(b, "checkout")
	assert.Contains(t, api.toasts(), "Your cart is empty")
}

func TestReviewByText(t *testing.T) {
	b, api := newTestBot()
	login(t, b)
	tap(b, "item:3")
	tap(b, "stars:5")
	text(b, "   ")
	s := b.sessions.Get(testUser)
	assert.Len(t, s.Details().Reviews(), 0)

	text(b, "perfect steak")
	require.Len(t, s.Details().Reviews(), 1)
	assert.Equal(t, 5, s.Details().Reviews()[0].Stars)
	assert.Equal(t, "Me", s.Details().Reviews()[0].User)
	assert.Contains(t, api.lastText(), "perfect steak")
}

func TestLanguageSwitch(t *testing.T) {
	b, api := newTestBot()
	text(b, "/language")
	tap(b, "lang:ar")
	assert.Equal(t, "ar", b.getLang(testUser))
	assert.Equal(t, "تسجيل الدخول", api.lastText())
}

func TestRejectedCallbackLeavesScreen(t *testing.T) {
	b, api := newTestBot()
	text(b, "/start")
	tap(b, "add")
	assert.Equal(t, services.ScreenLogin, b.sessions.Get(testUser).Screen())
	assert.Contains(t, api.toasts(), "That action is not available here")
}
