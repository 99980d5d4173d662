// Package authgate decides which screen the client is allowed to show:
// login, PIN setup, PIN entry, or the unlocked application. The decision is
// always derived fresh from the session store; the gate itself keeps only a
// transient projection so a mid-flow state (like a requested PIN change) can
// differ from what a cold start would derive.
package authgate

import (
	"context"
	"errors"
	"sync"

	"github.com/fintechdocs/creditapp/internal/client/session"
	"github.com/fintechdocs/creditapp/internal/common"
)

// State is the screen-level authentication state.
type State int

const (
	// StateLoggedOut: no session; the login screen is the only way forward.
	StateLoggedOut State = iota
	// StateAwaitingPinSetup: logged in, no PIN configured yet.
	StateAwaitingPinSetup
	// StateAwaitingPinEntry: logged in, a PIN exists and must be entered.
	StateAwaitingPinEntry
	// StateUnlockedNormal: full access for a regular account.
	StateUnlockedNormal
	// StateUnlockedDemo: full access for the reserved demo account, which
	// bypasses PIN gating entirely.
	StateUnlockedDemo
)

// Unlocked reports whether the main application is accessible.
func (s State) Unlocked() bool {
	return s == StateUnlockedNormal || s == StateUnlockedDemo
}

func (s State) String() string {
	switch s {
	case StateLoggedOut:
		return "logged_out"
	case StateAwaitingPinSetup:
		return "awaiting_pin_setup"
	case StateAwaitingPinEntry:
		return "awaiting_pin_entry"
	case StateUnlockedNormal:
		return "unlocked"
	case StateUnlockedDemo:
		return "unlocked_demo"
	default:
		return "unknown"
	}
}

var (
	// ErrPinMismatch: the PIN-setup guard failed (not two equal 4-digit
	// strings). State is unchanged.
	ErrPinMismatch = errors.New("pin mismatch")

	// ErrInvalidPin: the entered PIN does not match the stored one.
	// State is unchanged. There is no lockout or attempt counter.
	ErrInvalidPin = errors.New("invalid pin")
)

// Gate is the auth/session-gating state machine. All methods are safe for
// concurrent use; derivation is side-effect-free and may be repeated at any
// time, including while a login or logout is in flight.
type Gate struct {
	store *session.Store

	mu      sync.Mutex
	current State
}

func New(store *session.Store) *Gate {
	return &Gate{store: store, current: StateLoggedOut}
}

// Derive computes the state a cold start would land in, reading only the
// session store:
//
//  1. no session                → StateLoggedOut
//  2. demo account              → StateUnlockedDemo
//  3. PIN gating disabled       → StateUnlockedNormal
//  4. no PIN configured         → StateAwaitingPinSetup
//  5. otherwise                 → StateAwaitingPinEntry
func (g *Gate) Derive(ctx context.Context) (State, error) {
	u, err := g.store.Session(ctx)
	if err != nil {
		return StateLoggedOut, err
	}
	if u == nil {
		return StateLoggedOut, nil
	}
	if u.IsDemo() {
		return StateUnlockedDemo, nil
	}

	disabled, err := g.store.PinDisabled(ctx)
	if err != nil {
		return StateLoggedOut, err
	}
	if disabled {
		return StateUnlockedNormal, nil
	}

	pin, err := g.store.Pin(ctx)
	if err != nil {
		return StateLoggedOut, err
	}
	if pin == "" {
		return StateAwaitingPinSetup, nil
	}
	return StateAwaitingPinEntry, nil
}

// Refresh re-derives the state from the store and makes it current. Called
// on startup and after every write to the session store.
func (g *Gate) Refresh(ctx context.Context) (State, error) {
	s, err := g.Derive(ctx)
	if err != nil {
		return s, err
	}
	g.mu.Lock()
	g.current = s
	g.mu.Unlock()
	return s, nil
}

// Current returns the last derived or transitioned-to state.
func (g *Gate) Current() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

func (g *Gate) setCurrent(s State) {
	g.mu.Lock()
	g.current = s
	g.mu.Unlock()
}

func validPin(pin string) bool {
	if len(pin) != common.PinLength {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ConfirmPin completes PIN setup. The guard requires pin and confirm to be
// equal strings of exactly four digits; any guard failure returns
// ErrPinMismatch and leaves both the state and the stored PIN untouched.
// On success the PIN is persisted and the gate unlocks.
func (g *Gate) ConfirmPin(ctx context.Context, pin, confirm string) error {
	if !validPin(pin) || pin != confirm {
		return ErrPinMismatch
	}
	if err := g.store.SavePin(ctx, pin); err != nil {
		return err
	}
	g.setCurrent(StateUnlockedNormal)
	return nil
}

// EnterPin verifies a PIN against the stored value (exact string match).
// A wrong PIN returns ErrInvalidPin and keeps the gate where it is.
func (g *Gate) EnterPin(ctx context.Context, pin string) error {
	stored, err := g.store.Pin(ctx)
	if err != nil {
		return err
	}
	if stored == "" || pin != stored {
		return ErrInvalidPin
	}
	g.setCurrent(StateUnlockedNormal)
	return nil
}

// ForgotPin is the only recovery path for a lost PIN: it wipes the session
// and the PIN state, forcing a full re-login.
func (g *Gate) ForgotPin(ctx context.Context) error {
	if err := g.store.Clear(ctx); err != nil {
		return err
	}
	g.setCurrent(StateLoggedOut)
	return nil
}

// RequestPinChange moves an unlocked gate back to PIN setup. Nothing is
// persisted except re-enabling the gating flag: the old PIN stays on disk
// and keeps answering EnterPin truthfully until ConfirmPin commits a new one.
func (g *Gate) RequestPinChange(ctx context.Context) error {
	if err := g.store.SetPinDisabled(ctx, false); err != nil {
		return err
	}
	g.setCurrent(StateAwaitingPinSetup)
	return nil
}

// DisablePin opts the user out of PIN gating. The PIN value is left
// persisted; only the flag flips. Distinct from logout.
func (g *Gate) DisablePin(ctx context.Context) error {
	if err := g.store.SetPinDisabled(ctx, true); err != nil {
		return err
	}
	g.setCurrent(StateUnlockedNormal)
	return nil
}
