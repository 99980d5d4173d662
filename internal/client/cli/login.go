package cli

import (
	"context"
	"fmt"

	"github.com/fintechdocs/creditapp/internal/client/services"
)

// User-facing error strings for a failed login attempt.
const (
	msgInvalidCredentials = "Неверные учетные данные. Проверьте логин и пароль."
	msgNetworkError       = "Проверьте подключение к интернету."
	msgUnknownError       = "Произошла неизвестная ошибка. Попробуйте еще раз."
)

func loginErrorMessage(kind services.LoginErrorKind) string {
	switch kind {
	case services.LoginInvalidCredentials:
		return msgInvalidCredentials
	case services.LoginNetworkError:
		return msgNetworkError
	default:
		return msgUnknownError
	}
}

// loginScreen is shown while no account is stored on the device. It returns
// true when the user wants to leave the program.
func (a *App) loginScreen(ctx context.Context) bool {
	fmt.Fprintln(a.out, "Вход в систему. Команды: login, demo, exit")

	cmd, err := GetSimpleText(a.reader, "Выберите действие", a.out)
	if err != nil {
		return true
	}

	switch cmd {
	case "login":
		a.promptLogin(ctx)
	case "demo":
		if outcome := a.auth.LoginDemo(ctx); outcome.Status == services.OutcomeFailure {
			fmt.Fprintln(a.out, loginErrorMessage(outcome.Kind))
		}
	case "exit", "quit":
		fmt.Fprintln(a.out, "До свидания!")
		return true
	case "":
	default:
		fmt.Fprintln(a.out, "Неизвестная команда:", cmd)
	}
	return false
}

func (a *App) promptLogin(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Логин", a.out)
	if err != nil {
		return
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return
	}
	password, err := GetSecret("Пароль", a.out)
	if err != nil {
		return
	}

	outcome := a.auth.Login(ctx, username, email, password)
	if outcome.Status == services.OutcomeFailure {
		fmt.Fprintln(a.out, loginErrorMessage(outcome.Kind))
		return
	}
	fmt.Fprintf(a.out, "Добро пожаловать, %s %s!\n", outcome.User.FirstName, outcome.User.LastName)
}
