package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fintechdocs/creditapp/internal/client/authgate"
	"github.com/fintechdocs/creditapp/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// mainIface defines the command surface of the unlocked screen. The real App
// type satisfies this interface; tests can provide a lightweight stub.
type mainIface interface {
	isDemo() bool
	Whoami(ctx context.Context)
	Statuses(ctx context.Context)
	FetchSettings(ctx context.Context)
	PushSettings(ctx context.Context)
	RegisterDevice(ctx context.Context, token string)
	Comment(ctx context.Context)
	ChangePin(ctx context.Context)
	DisablePin(ctx context.Context)
	Logout(ctx context.Context)
}

// dispatchMain executes one command of the unlocked screen and reports
// whether the user asked to leave the program.
//
// Commands:
//
//	help                — show available commands
//	whoami              — show the stored profile
//	statuses            — list deal statuses for the user's region
//	settings            — fetch notification settings from the backend
//	settings-push       — edit and push notification settings
//	device <token>      — register a push token for this installation
//	comment             — post a comment on a client (interactive)
//	pin                 — change the PIN code
//	pinoff              — disable the PIN screen
//	logout              — log out and wipe local state
//	exit | quit         — leave the program
//
// The demo account is read-only: settings, device and comment commands are
// hidden and rejected for it.
func dispatchMain(ctx context.Context, a mainIface, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "help":
		if a.isDemo() {
			printlnFn("Доступные команды: whoami, statuses, pin, pinoff, logout, exit")
		} else {
			printlnFn("Доступные команды: whoami, statuses, settings, settings-push, device, comment, pin, pinoff, logout, exit")
		}

	case "whoami":
		a.Whoami(ctx)

	case "statuses":
		a.Statuses(ctx)

	case "settings":
		if a.isDemo() {
			printlnFn("Недоступно в демо-режиме.")
			return false
		}
		a.FetchSettings(ctx)

	case "settings-push":
		if a.isDemo() {
			printlnFn("Недоступно в демо-режиме.")
			return false
		}
		a.PushSettings(ctx)

	case "device":
		if a.isDemo() {
			printlnFn("Недоступно в демо-режиме.")
			return false
		}
		if len(args) == 0 {
			printlnFn("Использование: device <token>")
			return false
		}
		a.RegisterDevice(ctx, args[0])

	case "comment":
		if a.isDemo() {
			printlnFn("Недоступно в демо-режиме.")
			return false
		}
		a.Comment(ctx)

	case "pin":
		a.ChangePin(ctx)

	case "pinoff":
		a.DisablePin(ctx)

	case "logout":
		a.Logout(ctx)

	case "exit", "quit":
		printlnFn("До свидания!")
		return true

	default:
		printlnFn("Неизвестная команда:", cmd)
	}
	return false
}

// mainScreen reads and executes one command while the app is unlocked.
// Returns true when the user wants to leave the program.
func (a *App) mainScreen(ctx context.Context) bool {
	prompt := "creditapp"
	if a.gate.Current() == authgate.StateUnlockedDemo {
		prompt = "creditapp (демо)"
	}
	line, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return true
	}
	return dispatchMain(ctx, a, line)
}

func (a *App) isDemo() bool {
	return a.gate.Current() == authgate.StateUnlockedDemo
}

func (a *App) Whoami(ctx context.Context) {
	u, err := a.store.Session(ctx)
	if err != nil || u == nil {
		printlnFn(msgUnknownError)
		return
	}
	printlnFn(fmt.Sprintf("%s %s (%s), отдел: %s, группа: %s", u.FirstName, u.LastName, u.Email, u.Otdel, u.UserGroup))
}

func (a *App) Statuses(ctx context.Context) {
	statuses, err := a.notifications.Statuses(ctx)
	if err != nil {
		a.log.Error(ctx, "error fetching statuses", "error", err)
		printlnFn(msgNetworkError)
		return
	}
	if len(statuses) == 0 {
		printlnFn("Список статусов пуст.")
		return
	}
	for _, s := range statuses {
		printlnFn(" -", s)
	}
}

func (a *App) FetchSettings(ctx context.Context) {
	settings, err := a.notifications.Fetch(ctx, a.config.DeviceType)
	if err != nil {
		a.log.Error(ctx, "error fetching notification settings", "error", err)
		printlnFn(msgNetworkError)
		return
	}
	printlnFn(fmt.Sprintf("Комментарии: %d, просрочка: %d, резолюции: %d, статусы: %s",
		settings.CommentsNotifications,
		settings.LateDebtNotifications,
		settings.ResolutionNotifications,
		strings.Join(settings.StatusNotifications, ", ")))
}

func (a *App) PushSettings(ctx context.Context) {
	var settings models.NotificationSettings

	flags := []struct {
		prompt string
		dest   *int
	}{
		{"Уведомлять о комментариях?", &settings.CommentsNotifications},
		{"Уведомлять о просрочке?", &settings.LateDebtNotifications},
		{"Уведомлять о резолюциях?", &settings.ResolutionNotifications},
	}
	for _, f := range flags {
		yes, err := GetYesNo(a.reader, f.prompt, a.out)
		if err != nil {
			return
		}
		if yes {
			*f.dest = 1
		}
	}

	line, err := GetSimpleText(a.reader, "Статусы для уведомлений (через запятую, пусто — все)", a.out)
	if err != nil {
		return
	}
	for _, s := range strings.Split(line, ",") {
		if s = strings.TrimSpace(s); s != "" {
			settings.StatusNotifications = append(settings.StatusNotifications, s)
		}
	}

	a.notifications.Push(ctx, settings, a.config.DeviceType)
	printlnFn("Настройки отправлены.")
}

func (a *App) RegisterDevice(ctx context.Context, token string) {
	a.notifications.RegisterDevice(ctx, token, a.config.DeviceType)
	printlnFn("Устройство зарегистрировано.")
}

func (a *App) Comment(ctx context.Context) {
	inn, err := GetSimpleText(a.reader, "ИНН клиента", a.out)
	if err != nil {
		return
	}
	text, err := GetSimpleText(a.reader, "Комментарий", a.out)
	if err != nil {
		return
	}
	if err := a.comments.Post(ctx, inn, text); err != nil {
		a.log.Error(ctx, "error posting comment", "inn", inn, "error", err)
		printlnFn(msgNetworkError)
		return
	}
	printlnFn("Комментарий отправлен.")
}

func (a *App) ChangePin(ctx context.Context) {
	if err := a.gate.RequestPinChange(ctx); err != nil {
		a.log.Error(ctx, "error requesting pin change", "error", err)
		printlnFn(msgUnknownError)
	}
}

func (a *App) DisablePin(ctx context.Context) {
	if err := a.gate.DisablePin(ctx); err != nil {
		a.log.Error(ctx, "error disabling pin", "error", err)
		printlnFn(msgUnknownError)
		return
	}
	printlnFn("ПИН-код отключен.")
}

func (a *App) Logout(ctx context.Context) {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Error(ctx, "error logging out", "error", err)
		printlnFn(msgUnknownError)
		return
	}
	printlnFn("Вы вышли из системы.")
}
