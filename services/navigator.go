package services

import (
	"errors"
	"fmt"
)

type Screen string

const (
	ScreenLogin   Screen = "login"
	ScreenSignup  Screen = "signup"
	ScreenHome    Screen = "home"
	ScreenDetails Screen = "details"
	ScreenCart    Screen = "cart"
)

type NavEvent string

const (
	NavSubmit       NavEvent = "submit"
	NavOpenSignup   NavEvent = "open_signup"
	NavOpenItem     NavEvent = "open_item"
	NavOpenCart     NavEvent = "open_cart"
	NavBack         NavEvent = "back"
	NavCheckoutDone NavEvent = "checkout_done"
)

var ErrInvalidTransition = errors.New("invalid navigation")

type navAction int

const (
	navPush    navAction = iota // push target on top of the stack
	navReplace                  // stack becomes [target]
	navPop                      // drop the top screen
	navPopTo                    // pop until target is on top
)

type navRule struct {
	to     Screen
	action navAction
}

// navTable is the whole screen graph. Pairs not listed here are rejected.
var navTable = map[Screen]map[NavEvent]navRule{
	ScreenLogin: {
		NavSubmit:     {ScreenHome, navReplace},
		NavOpenSignup: {ScreenSignup, navPush},
	},
	ScreenSignup: {
		NavSubmit: {ScreenHome, navReplace},
		NavBack:   {ScreenLogin, navPop},
	},
	ScreenHome: {
		NavOpenItem: {ScreenDetails, navPush},
		NavOpenCart: {ScreenCart, navPush},
	},
	ScreenDetails: {
		NavBack: {ScreenHome, navPop},
	},
	ScreenCart: {
		NavBack:         {ScreenHome, navPop},
		NavCheckoutDone: {ScreenHome, navPopTo},
	},
}

// Transition is reported to the navigator's observer after every accepted event.
type Transition struct {
	From  Screen
	To    Screen
	Event NavEvent
}

// Navigator is the screen stack. The bottom is always Login or Home.
type Navigator struct {
	stack    []Screen
	observer func(Transition)
}

func NewNavigator() *Navigator {
	return &Navigator{stack: []Screen{ScreenLogin}}
}

func (n *Navigator) OnTransition(fn func(Transition)) {
	n.observer = fn
}

func (n *Navigator) Current() Screen {
	return n.stack[len(n.stack)-1]
}

func (n *Navigator) Depth() int {
	return len(n.stack)
}

func (n *Navigator) Stack() []Screen {
	out := make([]Screen, len(n.stack))
	copy(out, n.stack)
	return out
}

// CanApply reports whether event is allowed on the current screen.
func (n *Navigator) CanApply(event NavEvent) bool {
	_, ok := navTable[n.Current()][event]
	return ok
}

// Apply moves to the next screen, or returns ErrInvalidTransition leaving the stack as it was.
func (n *Navigator) Apply(event NavEvent) (Screen, error) {
	from := n.Current()
	rule, ok := navTable[from][event]
	if !ok {
		return from, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, event, from)
	}
	switch rule.action {
	case navPush:
		n.stack = append(n.stack, rule.to)
	case navReplace:
		n.stack = []Screen{rule.to}
	case navPop:
		if len(n.stack) > 1 {
			n.stack = n.stack[:len(n.stack)-1]
		} else {
			n.stack = []Screen{rule.to}
		}
	case navPopTo:
		i := len(n.stack) - 1
		for i >= 0 && n.stack[i] != rule.to {
			i--
		}
		if i < 0 {
			n.stack = []Screen{rule.to}
		} else {
			n.stack = n.stack[:i+1]
		}
	}
	if n.observer != nil {
		n.observer(Transition{From: from, To: n.Current(), Event: event})
	}
	return n.Current(), nil
}
