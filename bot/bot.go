package bot

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"food-storefront/config"
	"food-storefront/lang"
	"food-storefront/models"
	"food-storefront/screens"
	"food-storefront/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// sender is the part of *tgbotapi.BotAPI the bot uses.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Bot struct {
	api      sender
	poller   *tgbotapi.BotAPI
	cfg      *config.Config
	log      *logrus.Logger
	sessions *services.SessionStore

	userLang   map[int64]string // "ar" or "en"
	userLangMu sync.RWMutex
}

func New(cfg *config.Config, catalog *services.Catalog, log *logrus.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}
	b := newBot(api, cfg, catalog, log)
	b.poller = api
	log.WithField("username", api.Self.UserName).Info("telegram bot authorized")
	return b, nil
}

func newBot(api sender, cfg *config.Config, catalog *services.Catalog, log *logrus.Logger) *Bot {
	return &Bot{
		api:      api,
		cfg:      cfg,
		log:      log,
		sessions: services.NewSessionStore(catalog, log),
		userLang: make(map[int64]string),
	}
}

func (b *Bot) setBotCommands() error {
	cfg := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Login / تسجيل الدخول"},
		tgbotapi.BotCommand{Command: "menu", Description: "Menu / قائمة الطعام"},
		tgbotapi.BotCommand{Command: "cart", Description: "Cart / السلة"},
		tgbotapi.BotCommand{Command: "language", Description: "Language / اللغة"},
	)
	_, err := b.api.Request(cfg)
	return err
}

// Start long-polls for updates until ctx is cancelled. Updates are handled one
// at a time, so a session only ever sees one event at once.
func (b *Bot) Start(ctx context.Context) {
	if err := b.setBotCommands(); err != nil {
		b.log.WithError(err).Warn("set bot commands")
	}
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.poller.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		b.poller.StopReceivingUpdates()
	}()

	for update := range updates {
		b.handleUpdate(update)
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.handleCallback(update.CallbackQuery)
		return
	}
	if update.Message == nil || update.Message.From == nil {
		return
	}
	msg := update.Message
	chatID, userID := msg.Chat.ID, msg.From.ID
	text := strings.TrimSpace(msg.Text)

	switch {
	case text == "/start":
		b.handleStart(chatID, userID)
	case text == "/language":
		b.sendWithInline(chatID, lang.T(b.getLang(userID), "choose_lang"), languageKeyboard())
	case text == "/menu":
		b.showScreen(chatID, userID, 0)
	case text == "/cart":
		b.handleOpenCart(chatID, userID, 0)
	case strings.HasPrefix(text, "/"):
		b.sendLang(chatID, userID, "unknown_command")
	case text != "":
		b.handleText(chatID, userID, msg.MessageID, text)
	}
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.WithError(err).WithField("chat_id", chatID).Error("send")
	}
}

func (b *Bot) sendLang(chatID int64, userID int64, key string, args ...interface{}) {
	b.send(chatID, lang.T(b.getLang(userID), key, args...))
}

func (b *Bot) sendWithInline(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := b.api.Send(msg); err != nil {
		b.log.WithError(err).WithField("chat_id", chatID).Error("send")
	}
}

// editWithInline replaces a screen message in place; on failure it sends a new one.
func (b *Bot) editWithInline(chatID int64, msgID int, text string, kb tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, msgID, text, kb)
	if _, err := b.api.Send(edit); err != nil {
		if strings.Contains(err.Error(), "not modified") {
			return
		}
		b.log.WithError(err).WithField("chat_id", chatID).Debug("edit failed, sending new message")
		b.sendWithInline(chatID, text, kb)
	}
}

func (b *Bot) getLang(userID int64) string {
	b.userLangMu.RLock()
	l := b.userLang[userID]
	b.userLangMu.RUnlock()
	if lang.Valid(l) {
		return l
	}
	if lang.Valid(b.cfg.Store.Lang) {
		return b.cfg.Store.Lang
	}
	return lang.Default
}

func (b *Bot) setLang(userID int64, code string) {
	if !lang.Valid(code) {
		return
	}
	b.userLangMu.Lock()
	b.userLang[userID] = code
	b.userLangMu.Unlock()
	b.sessions.Get(userID).SetReviewer(lang.T(code, "reviewer_me"))
}

func (b *Bot) renderer(userID int64) screens.Renderer {
	return screens.New(b.getLang(userID), b.cfg.Store.Currency)
}

func (b *Bot) session(userID int64) *services.Session {
	s := b.sessions.Get(userID)
	s.SetReviewer(lang.T(b.getLang(userID), "reviewer_me"))
	return s
}

// showScreen draws the session's current screen; editMsgID 0 sends a new message.
func (b *Bot) showScreen(chatID, userID int64, editMsgID int) {
	s := b.session(userID)
	r := b.renderer(userID)
	l := r.Lang

	var kb tgbotapi.InlineKeyboardMarkup
	text := r.Render(s)
	switch s.Screen() {
	case services.ScreenLogin:
		kb = loginKeyboard(l)
	case services.ScreenSignup:
		kb = signupKeyboard(l)
	case services.ScreenHome:
		kb = homeKeyboard(r, s)
	case services.ScreenDetails:
		kb = detailsKeyboard(l, s.Details().Rating())
		text += "\n\n" + lang.T(l, "review_prompt")
	case services.ScreenCart:
		kb = cartKeyboard(l, s)
	}
	if editMsgID != 0 {
		b.editWithInline(chatID, editMsgID, text, kb)
		return
	}
	b.sendWithInline(chatID, text, kb)
}

func (b *Bot) handleStart(chatID, userID int64) {
	b.sessions.Reset(userID)
	b.showScreen(chatID, userID, 0)
}

// handleText routes free text: form fields on login/signup, review comments on details.
func (b *Bot) handleText(chatID, userID int64, msgID int, text string) {
	s := b.session(userID)
	r := b.renderer(userID)

	if d := s.Form(); d != nil {
		field := d.Next()
		done, err := s.FillForm(text)
		if field == "password" {
			// Keep passwords out of the chat history.
			if _, delErr := b.api.Request(tgbotapi.NewDeleteMessage(chatID, msgID)); delErr != nil {
				b.log.WithError(delErr).Debug("delete password message")
			}
		}
		switch {
		case err != nil:
			b.send(chatID, r.Error(err))
			b.send(chatID, r.FormPrompt(s.Form().Next()))
		case done:
			b.showScreen(chatID, userID, 0)
		default:
			b.send(chatID, r.FormPrompt(s.Form().Next()))
		}
		return
	}

	if s.Screen() == services.ScreenDetails {
		ok, err := s.SubmitReview(text)
		if err != nil {
			b.send(chatID, r.Error(err))
			return
		}
		if ok {
			b.sendLang(chatID, userID, "review_thanks")
			b.showScreen(chatID, userID, 0)
		}
		return
	}
	b.showScreen(chatID, userID, 0)
}

func (b *Bot) handleOpenCart(chatID, userID int64, editMsgID int) {
	s := b.session(userID)
	if s.Screen() == services.ScreenDetails {
		_ = s.Back()
	}
	if err := s.OpenCart(); err != nil && s.Screen() != services.ScreenCart {
		b.send(chatID, b.renderer(userID).Error(err))
		return
	}
	b.showScreen(chatID, userID, editMsgID)
}

func (b *Bot) answer(cq *tgbotapi.CallbackQuery, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, text)); err != nil {
		b.log.WithError(err).Debug("answer callback")
	}
}

func (b *Bot) handleCallback(cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil || cq.From == nil {
		b.answer(cq, "")
		return
	}
	chatID := cq.Message.Chat.ID
	userID := cq.From.ID
	msgID := cq.Message.MessageID
	data := cq.Data
	s := b.session(userID)
	r := b.renderer(userID)

	fail := func(err error) {
		b.log.WithError(err).WithFields(logrus.Fields{"user_id": userID, "data": data}).Debug("callback rejected")
		b.answer(cq, r.Error(err))
	}

	switch {
	case strings.HasPrefix(data, "lang:"):
		code := strings.TrimPrefix(data, "lang:")
		b.setLang(userID, code)
		b.answer(cq, lang.T(code, "language_changed"))
		b.showScreen(chatID, userID, 0)
	case data == "form:login" || data == "form:signup":
		d, err := s.BeginForm()
		if err != nil {
			fail(err)
			return
		}
		b.answer(cq, "")
		b.send(chatID, r.FormPrompt(d.Next()))
	case data == "nav:signup":
		if err := s.GoSignup(); err != nil {
			fail(err)
			return
		}
		b.answer(cq, "")
		b.showScreen(chatID, userID, msgID)
	case strings.HasPrefix(data, "cat:"):
		if err := s.SelectCategory(strings.TrimPrefix(data, "cat:")); err != nil {
			fail(err)
			return
		}
		b.answer(cq, "")
		b.showScreen(chatID, userID, msgID)
	case strings.HasPrefix(data, "item:"):
		if _, err := s.OpenItem(strings.TrimPrefix(data, "item:")); err != nil {
			fail(err)
			return
		}
		b.answer(cq, "")
		b.showScreen(chatID, userID, 0)
	case data == "add":
		if _, err := s.AddCurrentToCart(); err != nil {
			fail(err)
			return
		}
		b.answer(cq, lang.T(r.Lang, "added_to_cart"))
	case strings.HasPrefix(data, "stars:"):
		n, _ := strconv.Atoi(strings.TrimPrefix(data, "stars:"))
		if err := s.SetReviewRating(n); err != nil {
			fail(err)
			return
		}
		b.answer(cq, screens.Stars(n))
		b.showScreen(chatID, userID, msgID)
	case data == "cart":
		b.answer(cq, "")
		b.handleOpenCart(chatID, userID, 0)
	case data == "back":
		if err := s.Back(); err != nil {
			fail(err)
			return
		}
		b.answer(cq, "")
		b.showScreen(chatID, userID, msgID)
	case strings.HasPrefix(data, "pay:"):
		if err := s.SelectPayment(models.PaymentMethod(strings.TrimPrefix(data, "pay:"))); err != nil {
			fail(err)
			return
		}
		b.answer(cq, r.PaymentLabel(s.Checkout().Payment()))
		b.showScreen(chatID, userID, msgID)
	case data == "checkout":
		order, err := s.RequestCheckout()
		if err != nil {
			fail(err)
			return
		}
		b.answer(cq, "")
		b.sendWithInline(chatID, r.ConfirmCheckout(order), confirmKeyboard(r.Lang))
	case data == "checkout:confirm":
		order, err := s.ConfirmCheckout()
		if err != nil {
			fail(err)
			return
		}
		b.answer(cq, r.OrderPlaced(order))
		b.removeKeyboard(chatID, msgID, r.OrderPlaced(order))
		b.showScreen(chatID, userID, 0)
	case data == "checkout:cancel":
		s.CancelCheckout()
		b.answer(cq, "")
		b.removeKeyboard(chatID, msgID, lang.T(r.Lang, "order_cancelled"))
	default:
		b.answer(cq, "")
	}
}

// removeKeyboard replaces a dialog message with plain text.
func (b *Bot) removeKeyboard(chatID int64, msgID int, text string) {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	if _, err := b.api.Send(edit); err != nil {
		b.log.WithError(err).Debug("remove keyboard")
	}
}
