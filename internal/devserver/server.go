// Package devserver is a self-contained stand-in for the production backend.
// It serves the legacy /swift/ endpoints from memory so the terminal client
// can be developed and demonstrated without access to the real servers.
package devserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fintechdocs/creditapp/internal/client/models"
	"github.com/fintechdocs/creditapp/internal/common"
)

// account is a seeded login the dev server accepts.
type account struct {
	password string
	user     models.User
}

// Server serves the /swift/ API from in-memory state.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger

	mu       sync.Mutex
	accounts []account
	devices  []models.DeviceRegistration
	settings map[int]models.NotificationSettings
	comments []models.Comment
	statuses []string
}

// New creates a dev server listening on addr, pre-seeded with the demo
// account and one regular manager account (ivanov / ivanov@example.ru /
// password).
func New(addr string, logger *slog.Logger) *Server {
	s := &Server{
		logger:   logger,
		settings: make(map[int]models.NotificationSettings),
		statuses: []string{"Новая заявка", "В работе", "Одобрено", "Отказ"},
		accounts: []account{
			{
				password: common.DemoPassword,
				user: models.User{
					ID:        1,
					Email:     common.DemoEmail,
					Username:  common.DemoUsername,
					FirstName: "Демо",
					LastName:  "Пользователь",
				},
			},
			{
				password: "password",
				user: models.User{
					ID:         42,
					Email:      "ivanov@example.ru",
					Username:   "ivanov",
					FirstName:  "Иван",
					LastName:   "Иванов",
					Otdel:      "Отдел продаж",
					DirectorID: 7,
					Department: "Москва",
					UserGroup:  "managers",
				},
			},
		},
	}

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	router := chi.NewRouter()
	router.Use(s.logRequests)

	router.Route("/swift", func(r chi.Router) {
		r.Post("/api_login_swift", s.handleLogin)
		r.Post("/api_logout_swift", s.handleLogout)
		r.Post("/register_device/", s.handleRegisterDevice)
		r.Post("/notification_settings", s.handlePushSettings)
		r.Get("/share_preferences/{userID}/{email}/{platform}", s.handleFetchSettings)
		r.Get("/statuses_list", s.handleStatuses)
		r.Post("/api_comment", s.handleComment)
	})
	return router
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", r.Header.Get("X-Request-Id")),
		)
		next.ServeHTTP(w, r)
	})
}

// Run starts the server and blocks until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *Server) Run() error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("dev server started", slog.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		s.logger.Info("shutting down", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
