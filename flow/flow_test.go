package flow

import (
	"errors"
	"testing"
)

func TestTransition_Valid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from  State
		event Event
		want  State
	}{
		{LoggedOut, StartRegister, Registering},
		{Registering, CancelRegister, LoggedOut},
		{Registering, RegisterSuccess, ProfileSetup},
		{ProfileSetup, ProfileSaved, Dashboard},
		{Dashboard, Logout, LoggedOut},
		{ProfileSetup, Logout, LoggedOut},
		{Registering, Logout, LoggedOut},
	}
	for _, tc := range cases {
		got, err := Transition(tc.from, tc.event)
		if err != nil {
			t.Errorf("Transition(%s, %s) error: %v", tc.from, tc.event, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Transition(%s, %s) = %s, want %s", tc.from, tc.event, got, tc.want)
		}
	}
}

func TestTransition_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from  State
		event Event
	}{
		{LoggedOut, ProfileSaved},
		{LoggedOut, RegisterSuccess},
		{Dashboard, StartRegister},
		{Dashboard, ProfileSaved},
		{ProfileSetup, RegisterSuccess},
	}
	for _, tc := range cases {
		got, err := Transition(tc.from, tc.event)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("Transition(%s, %s) err = %v, want ErrInvalidTransition", tc.from, tc.event, err)
		}
		if got != tc.from {
			t.Errorf("Transition(%s, %s) moved to %s on failure", tc.from, tc.event, got)
		}
	}
}

func TestTransition_LoginSuccessNeedsLogin(t *testing.T) {
	t.Parallel()

	if _, err := Transition(LoggedOut, LoginSuccess); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Transition with LoginSuccess err = %v, want ErrInvalidTransition", err)
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	if got, err := Login(LoggedOut, true); err != nil || got != Dashboard {
		t.Errorf("Login(LoggedOut, true) = %s, %v; want Dashboard", got, err)
	}
	if got, err := Login(LoggedOut, false); err != nil || got != ProfileSetup {
		t.Errorf("Login(LoggedOut, false) = %s, %v; want ProfileSetup", got, err)
	}
	if _, err := Login(Dashboard, true); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Login from Dashboard err = %v, want ErrInvalidTransition", err)
	}
}
