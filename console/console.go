// Package console drives a storefront session from line commands, for local
// use without a Telegram token.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"food-storefront/lang"
	"food-storefront/models"
	"food-storefront/screens"
	"food-storefront/services"

	"github.com/sirupsen/logrus"
)

const consoleUserID int64 = 0

const helpText = `commands:
  login <email> <password>        log in
  signup                          open the sign-up screen
  register <name> <email> <pass>  submit the sign-up form
  cat <category>                  filter the menu (all, seafood, sandwiches, mains, soups, appetizers, drinks)
  open <id>                       show item details
  add                             add the open item to the cart
  stars <0-5>                     pick a rating for your review
  review <comment>                post a review on the open item
  cart                            open the cart
  pay <cash|visa>                 choose payment method
  checkout                        ask to place the order
  confirm | cancel                answer the confirmation
  back                            previous screen
  show                            redraw the current screen
  lang <ar|en>                    switch language
  quit                            exit`

type Shell struct {
	session  *services.Session
	renderer screens.Renderer
	out      io.Writer
	log      *logrus.Logger
}

func New(catalog *services.Catalog, renderer screens.Renderer, out io.Writer, log *logrus.Logger) *Shell {
	s := &Shell{
		session:  services.NewSession(consoleUserID, catalog, log),
		renderer: renderer,
		out:      out,
		log:      log,
	}
	s.session.SetReviewer(lang.T(renderer.Lang, "reviewer_me"))
	return s
}

func (s *Shell) Session() *services.Session {
	return s.session
}

// Run reads commands until EOF, "quit", or ctx is cancelled.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	s.println(s.renderer.Render(s.session))
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !s.Exec(line) {
			return nil
		}
	}
	return sc.Err()
}

// Exec runs one command line. It returns false when the shell should stop.
func (s *Shell) Exec(line string) bool {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	rest := strings.TrimSpace(strings.TrimPrefix(line, fields[0]))
	sess := s.session

	var err error
	switch cmd {
	case "quit", "exit":
		return false
	case "help":
		s.println(helpText)
		return true
	case "show":
	case "login":
		if len(args) < 2 {
			args = append(args, "", "")
		}
		err = sess.Login(services.LoginForm{Email: args[0], Password: args[1]})
	case "signup":
		err = sess.GoSignup()
	case "register":
		err = sess.Signup(parseSignup(args))
	case "cat":
		if len(args) == 0 {
			args = []string{models.CategoryAll}
		}
		err = sess.SelectCategory(strings.ToLower(args[0]))
	case "open":
		if len(args) == 0 {
			args = []string{""}
		}
		_, err = sess.OpenItem(args[0])
	case "add":
		if _, err = sess.AddCurrentToCart(); err == nil {
			s.println(lang.T(s.renderer.Lang, "added_to_cart"))
			return true
		}
	case "stars":
		n := 0
		if len(args) > 0 {
			n, _ = strconv.Atoi(args[0])
		}
		err = sess.SetReviewRating(n)
	case "review":
		var ok bool
		if ok, err = sess.SubmitReview(rest); err == nil && ok {
			s.println(lang.T(s.renderer.Lang, "review_thanks"))
		}
	case "cart":
		err = sess.OpenCart()
	case "pay":
		if len(args) == 0 {
			args = []string{""}
		}
		err = sess.SelectPayment(models.PaymentMethod(strings.ToLower(args[0])))
	case "checkout":
		var order models.Order
		if order, err = sess.RequestCheckout(); err == nil {
			s.println(s.renderer.ConfirmCheckout(order))
			return true
		}
	case "confirm":
		var order models.Order
		if order, err = sess.ConfirmCheckout(); err == nil {
			s.println(s.renderer.OrderPlaced(order))
		}
	case "cancel":
		sess.CancelCheckout()
		s.println(lang.T(s.renderer.Lang, "order_cancelled"))
		return true
	case "back":
		err = sess.Back()
	case "lang":
		if len(args) > 0 && lang.Valid(args[0]) {
			s.renderer = screens.New(args[0], s.renderer.Currency)
			s.session.SetReviewer(lang.T(args[0], "reviewer_me"))
			s.println(lang.T(args[0], "language_changed"))
		} else {
			s.println(lang.T(s.renderer.Lang, "choose_lang"))
			return true
		}
	default:
		s.println(lang.T(s.renderer.Lang, "unknown_command"))
		return true
	}
	if err != nil {
		s.log.WithError(err).WithField("cmd", cmd).Debug("command rejected")
		s.println(s.renderer.Error(err))
		return true
	}
	s.println(s.renderer.Render(sess))
	return true
}

// parseSignup reads "<name...> <email> <password>"; the name may contain spaces.
func parseSignup(args []string) services.SignupForm {
	if len(args) < 3 {
		f := services.SignupForm{}
		if len(args) > 0 {
			f.Name = args[0]
		}
		if len(args) > 1 {
			f.Email = args[1]
		}
		return f
	}
	n := len(args)
	return services.SignupForm{
		Name:     strings.Join(args[:n-2], " "),
		Email:    args[n-2],
		Password: args[n-1],
	}
}

func (s *Shell) println(text string) {
	if text == "" {
		return
	}
	fmt.Fprintln(s.out, text)
}
