package services

import (
	"errors"
	"fmt"
	"sync"

	"food-storefront/metrics"
	"food-storefront/models"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrNoItemOpen      = errors.New("no item open")
)

// Session is everything one user sees: the screen stack, the cart shared by
// every screen, checkout, and the transient details view.
type Session struct {
	UserID int64

	catalog  *Catalog
	log      *logrus.Entry
	nav      *Navigator
	cart     *Cart
	checkout *Checkout

	category string
	details  *ReviewCollector
	form     *FormDraft
	account  string
	reviewer string
}

func NewSession(userID int64, catalog *Catalog, log *logrus.Logger) *Session {
	cart := NewCart()
	s := &Session{
		UserID:   userID,
		catalog:  catalog,
		log:      log.WithField("user_id", userID),
		nav:      NewNavigator(),
		cart:     cart,
		checkout: NewCheckout(cart),
		category: models.CategoryAll,
		reviewer: DefaultReviewer,
	}
	s.nav.OnTransition(func(t Transition) {
		metrics.RecordNavigation(string(t.From), string(t.To))
		s.log.WithFields(logrus.Fields{"from": t.From, "to": t.To, "event": t.Event}).Debug("navigate")
	})
	return s
}

func (s *Session) Screen() Screen { return s.nav.Current() }
func (s *Session) Navigator() *Navigator { return s.nav }
func (s *Session) Cart() *Cart { return s.cart }
func (s *Session) Checkout() *Checkout { return s.checkout }
func (s *Session) Catalog() *Catalog { return s.catalog }
func (s *Session) Category() string { return s.category }
func (s *Session) Details() *ReviewCollector { return s.details }
func (s *Session) Account() string { return s.account }

// SetReviewer sets the name shown on reviews this user writes.
func (s *Session) SetReviewer(name string) {
	if name != "" {
		s.reviewer = name
	}
}

func (s *Session) Login(form LoginForm) error {
	if s.nav.Current() != ScreenLogin {
		return fmt.Errorf("%w: login from %s", ErrInvalidTransition, s.nav.Current())
	}
	if err := ValidateLogin(form); err != nil {
		return err
	}
	s.account = form.Email
	s.form = nil
	_, err := s.nav.Apply(NavSubmit)
	if err == nil {
		s.log.WithField("email", form.Email).Info("login")
	}
	return err
}

func (s *Session) GoSignup() error {
	s.form = nil
	_, err := s.nav.Apply(NavOpenSignup)
	return err
}

func (s *Session) Signup(form SignupForm) error {
	if s.nav.Current() != ScreenSignup {
		return fmt.Errorf("%w: signup from %s", ErrInvalidTransition, s.nav.Current())
	}
	if err := ValidateSignup(form); err != nil {
		return err
	}
	s.account = form.Name
	s.form = nil
	_, err := s.nav.Apply(NavSubmit)
	if err == nil {
		s.log.WithFields(logrus.Fields{"name": form.Name, "email": form.Email}).Info("signup")
	}
	return err
}

// BeginForm starts collecting the form for the current screen field by field.
func (s *Session) BeginForm() (*FormDraft, error) {
	cur := s.nav.Current()
	if cur != ScreenLogin && cur != ScreenSignup {
		return nil, fmt.Errorf("%w: no form on %s", ErrInvalidTransition, cur)
	}
	s.form = NewFormDraft(cur)
	return s.form, nil
}

// Form returns the draft being filled, or nil.
func (s *Session) Form() *FormDraft {
	if s.form != nil && s.form.Kind != s.nav.Current() {
		s.form = nil
	}
	return s.form
}

// FillForm feeds one value into the draft and submits it once complete.
// done is true when the draft was submitted; a validation failure restarts the draft.
func (s *Session) FillForm(value string) (done bool, err error) {
	d := s.Form()
	if d == nil {
		return false, fmt.Errorf("%w: no form in progress", ErrInvalidTransition)
	}
	if !d.Fill(value) {
		return false, nil
	}
	if d.Kind == ScreenSignup {
		err = s.Signup(d.Signup())
	} else {
		err = s.Login(d.Login())
	}
	if err != nil {
		s.form = NewFormDraft(d.Kind)
		return false, err
	}
	return true, nil
}

func (s *Session) SelectCategory(category string) error {
	if !ValidCategory(category) {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	s.category = category
	return nil
}

// VisibleItems is the home listing for the selected category.
func (s *Session) VisibleItems() []models.FoodItem {
	return s.catalog.Filter(s.category)
}

func (s *Session) OpenItem(id string) (models.FoodItem, error) {
	item, err := s.catalog.Item(id)
	if err != nil {
		return models.FoodItem{}, err
	}
	if _, err := s.nav.Apply(NavOpenItem); err != nil {
		return models.FoodItem{}, err
	}
	s.details = NewReviewCollector(item, s.reviewer)
	return item, nil
}

// AddCurrentToCart adds the open item and returns its new quantity.
func (s *Session) AddCurrentToCart() (int, error) {
	if s.details == nil || s.nav.Current() != ScreenDetails {
		return 0, ErrNoItemOpen
	}
	item := s.details.Item()
	qty := s.cart.Add(item)
	metrics.RecordCartAdd(item.ID)
	s.log.WithFields(logrus.Fields{"item": item.ID, "qty": qty, "total": s.cart.Total()}).Info("cart add")
	return qty, nil
}

func (s *Session) SetReviewRating(stars int) error {
	if s.details == nil {
		return ErrNoItemOpen
	}
	s.details.SetRating(stars)
	return nil
}

// SubmitReview posts a comment with the picked rating. Empty comments are
// ignored and report false.
func (s *Session) SubmitReview(comment string) (bool, error) {
	if s.details == nil {
		return false, ErrNoItemOpen
	}
	if !s.details.SubmitWithRating(comment) {
		return false, nil
	}
	metrics.RecordReview()
	s.log.WithField("item", s.details.Item().ID).Debug("review added")
	return true, nil
}

func (s *Session) OpenCart() error {
	_, err := s.nav.Apply(NavOpenCart)
	return err
}

// Back pops one screen. Leaving details drops its reviews; leaving the cart
// cancels any pending confirmation.
func (s *Session) Back() error {
	from := s.nav.Current()
	if _, err := s.nav.Apply(NavBack); err != nil {
		return err
	}
	switch from {
	case ScreenDetails:
		s.details = nil
	case ScreenCart:
		s.checkout.Cancel()
	case ScreenSignup:
		s.form = nil
	}
	return nil
}

func (s *Session) SelectPayment(method models.PaymentMethod) error {
	return s.checkout.SelectPayment(method)
}

func (s *Session) RequestCheckout() (models.Order, error) {
	if s.nav.Current() != ScreenCart {
		return models.Order{}, fmt.Errorf("%w: checkout from %s", ErrInvalidTransition, s.nav.Current())
	}
	return s.checkout.Request()
}

// ConfirmCheckout places the notional order, empties the cart and returns to home.
func (s *Session) ConfirmCheckout() (models.Order, error) {
	order, err := s.checkout.Confirm()
	if err != nil {
		return models.Order{}, err
	}
	if _, err := s.nav.Apply(NavCheckoutDone); err != nil {
		s.log.WithError(err).Warn("checkout confirmed off the cart screen")
	}
	s.checkout.Reset()
	metrics.RecordCheckout(string(order.Payment), order.Total)
	s.log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"total":    order.Total,
		"payment":  order.Payment,
		"lines":    len(order.Lines),
	}).Info("order placed")
	return order, nil
}

func (s *Session) CancelCheckout() {
	s.checkout.Cancel()
}

// SessionStore keeps one session per user id.
type SessionStore struct {
	catalog *Catalog
	log     *logrus.Logger

	mu       sync.RWMutex
	sessions map[int64]*Session
}

func NewSessionStore(catalog *Catalog, log *logrus.Logger) *SessionStore {
	return &SessionStore{
		catalog:  catalog,
		log:      log,
		sessions: make(map[int64]*Session),
	}
}

// Get returns the user's session, creating a fresh one at the login screen.
func (st *SessionStore) Get(userID int64) *Session {
	st.mu.RLock()
	s := st.sessions[userID]
	st.mu.RUnlock()
	if s != nil {
		return s
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if s = st.sessions[userID]; s == nil {
		s = NewSession(userID, st.catalog, st.log)
		st.sessions[userID] = s
		metrics.SetActiveSessions(len(st.sessions))
	}
	return s
}

// Reset discards the user's session; the next Get starts over at login.
func (st *SessionStore) Reset(userID int64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, userID)
	metrics.SetActiveSessions(len(st.sessions))
}

func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
