// Package session is the typed persistence layer for the two durable records
// the client owns: the logged-in user profile and the PIN-lock state. It maps
// them onto the key/value state repository, one key per field, and uses a
// transaction wherever several keys must change together.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/fintechdocs/creditapp/internal/client/models"
	"github.com/fintechdocs/creditapp/internal/client/repositories/state"
	"github.com/fintechdocs/creditapp/internal/dbx"
)

// Persisted key names. These are part of the on-disk contract; renaming them
// invalidates existing installations.
const (
	keyUserID     = "session.user_id"
	keyEmail      = "session.email"
	keyFirstName  = "session.first_name"
	keyLastName   = "session.last_name"
	keyUsername   = "session.username"
	keyAPIURL     = "session.api_url"
	keyOtdel      = "session.otdel"
	keyDirectorID = "session.director_id"
	keyDepartment = "session.department"
	keyUserGroup  = "session.user_group"

	keyPinValue    = "pin.value"
	keyPinDisabled = "pin.disabled"
)

// Store owns the persisted Session and PinLock records. It is the single
// source of truth: the auth gate only ever holds a projection derived from
// this store.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo() state.Repository {
	return state.NewSQLiteRepository(s.db)
}

// Session loads the persisted user profile. It returns nil when no session
// exists; a stored record carrying the legacy zero sentinel (id 0 and empty
// username) also reads back as nil.
func (s *Store) Session(ctx context.Context) (*models.User, error) {
	all, err := s.repo().List(ctx)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Email:      all[keyEmail],
		FirstName:  all[keyFirstName],
		LastName:   all[keyLastName],
		Username:   all[keyUsername],
		APIURL:     all[keyAPIURL],
		Otdel:      all[keyOtdel],
		Department: all[keyDepartment],
		UserGroup:  all[keyUserGroup],
	}
	if v, ok := all[keyUserID]; ok {
		if u.ID, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("corrupt session.user_id %q: %w", v, err)
		}
	}
	if v, ok := all[keyDirectorID]; ok {
		if u.DirectorID, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("corrupt session.director_id %q: %w", v, err)
		}
	}

	if u.IsZero() {
		return nil, nil
	}
	return u, nil
}

// SaveSession persists the profile atomically, overwriting any previous one.
func (s *Store) SaveSession(ctx context.Context, u *models.User) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := state.NewSQLiteRepository(tx)
		fields := map[string]string{
			keyUserID:     strconv.Itoa(u.ID),
			keyEmail:      u.Email,
			keyFirstName:  u.FirstName,
			keyLastName:   u.LastName,
			keyUsername:   u.Username,
			keyAPIURL:     u.APIURL,
			keyOtdel:      u.Otdel,
			keyDirectorID: strconv.Itoa(u.DirectorID),
			keyDepartment: u.Department,
			keyUserGroup:  u.UserGroup,
		}
		for k, v := range fields {
			if err := repo.Set(ctx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// Pin returns the stored PIN, or "" when none has been configured.
func (s *Store) Pin(ctx context.Context) (string, error) {
	v, _, err := s.repo().Get(ctx, keyPinValue)
	return v, err
}

// SavePin persists the PIN verbatim. Validation happens in the auth gate.
func (s *Store) SavePin(ctx context.Context, pin string) error {
	return s.repo().Set(ctx, keyPinValue, pin)
}

// PinDisabled reports whether the user opted out of PIN gating. A missing
// flag means gating is active.
func (s *Store) PinDisabled(ctx context.Context) (bool, error) {
	v, ok, err := s.repo().Get(ctx, keyPinDisabled)
	if err != nil || !ok {
		return false, err
	}
	disabled, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("corrupt pin.disabled %q: %w", v, err)
	}
	return disabled, nil
}

// SetPinDisabled flips the opt-out flag. The PIN value itself is untouched.
func (s *Store) SetPinDisabled(ctx context.Context, disabled bool) error {
	return s.repo().Set(ctx, keyPinDisabled, strconv.FormatBool(disabled))
}

// Clear wipes the session and the PIN-lock state in one transaction.
// Clearing an already-empty store is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return state.NewSQLiteRepository(tx).Clear(ctx)
	})
}
