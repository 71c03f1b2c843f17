// Package flow models the client session as an explicit state machine,
// replacing the single mutable view flag the UI used to juggle. It knows
// nothing about rendering; controllers report the resulting state and the
// client draws whatever screen that state calls for.
package flow

import (
	"errors"
	"fmt"
)

type State string

const (
	LoggedOut    State = "logged_out"
	Registering  State = "registering"
	ProfileSetup State = "profile_setup"
	Dashboard    State = "dashboard"
)

type Event string

const (
	StartRegister  Event = "start_register"
	CancelRegister Event = "cancel_register"
	// LoginSuccess lands on Dashboard when a profile exists, ProfileSetup
	// otherwise; see Login.
	LoginSuccess    Event = "login_success"
	RegisterSuccess Event = "register_success"
	ProfileSaved    Event = "profile_saved"
	Logout          Event = "logout"
)

// ErrInvalidTransition is returned wrapped with the offending state/event.
var ErrInvalidTransition = errors.New("invalid session transition")

var transitions = map[State]map[Event]State{
	LoggedOut: {
		StartRegister: Registering,
		Logout:        LoggedOut,
	},
	Registering: {
		CancelRegister:  LoggedOut,
		RegisterSuccess: ProfileSetup,
		Logout:          LoggedOut,
	},
	ProfileSetup: {
		ProfileSaved: Dashboard,
		Logout:       LoggedOut,
	},
	Dashboard: {
		Logout: LoggedOut,
	},
}

// Transition applies an event to a state. LoginSuccess must go through
// Login, which needs the profile-presence bit.
func Transition(s State, e Event) (State, error) {
	if e == LoginSuccess {
		return s, fmt.Errorf("%w: %s requires Login(hasProfile)", ErrInvalidTransition, e)
	}
	next, ok := transitions[s][e]
	if !ok {
		return s, fmt.Errorf("%w: %s in state %s", ErrInvalidTransition, e, s)
	}
	return next, nil
}

// Login resolves the LoginSuccess branch: straight to the dashboard when the
// account already carries a profile, otherwise through profile setup.
func Login(s State, hasProfile bool) (State, error) {
	if s != LoggedOut {
		return s, fmt.Errorf("%w: %s in state %s", ErrInvalidTransition, LoginSuccess, s)
	}
	if hasProfile {
		return Dashboard, nil
	}
	return ProfileSetup, nil
}
