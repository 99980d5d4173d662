package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintechdocs/creditapp/internal/client/authgate"
)

const (
	msgPinMismatch = "ПИН-коды не совпадают или код не состоит из 4 цифр. Попробуйте еще раз."
	msgPinInvalid  = "Неверный ПИН-код. Попробуйте еще раз."
)

// pinSetupScreen asks the user to choose a 4-digit PIN and confirm it.
// Returns true when the user wants to leave the program.
func (a *App) pinSetupScreen(ctx context.Context) bool {
	fmt.Fprintln(a.out, "Придумайте ПИН-код из 4 цифр для быстрого входа.")

	pin, err := GetSecret("ПИН-код", a.out)
	if err != nil {
		return true
	}
	confirm, err := GetSecret("Повторите ПИН-код", a.out)
	if err != nil {
		return true
	}

	if err := a.gate.ConfirmPin(ctx, pin, confirm); err != nil {
		if errors.Is(err, authgate.ErrPinMismatch) {
			fmt.Fprintln(a.out, msgPinMismatch)
			return false
		}
		a.log.Error(ctx, "error saving pin", "error", err)
		fmt.Fprintln(a.out, msgUnknownError)
	}
	return false
}

// pinEntryScreen asks for the stored PIN. The user may type "forgot" to
// drop the local session and return to the login screen.
// Returns true when the user wants to leave the program.
func (a *App) pinEntryScreen(ctx context.Context) bool {
	fmt.Fprintln(a.out, "Введите ПИН-код (или наберите forgot, если забыли код; exit — выход).")

	pin, err := GetSecret("ПИН-код", a.out)
	if err != nil {
		return true
	}

	switch pin {
	case "forgot":
		if err := a.gate.ForgotPin(ctx); err != nil {
			a.log.Error(ctx, "error resetting session", "error", err)
			fmt.Fprintln(a.out, msgUnknownError)
		}
		return false
	case "exit", "quit":
		fmt.Fprintln(a.out, "До свидания!")
		return true
	}

	if err := a.gate.EnterPin(ctx, pin); err != nil {
		if errors.Is(err, authgate.ErrInvalidPin) {
			fmt.Fprintln(a.out, msgPinInvalid)
			return false
		}
		a.log.Error(ctx, "error checking pin", "error", err)
		fmt.Fprintln(a.out, msgUnknownError)
	}
	return false
}
