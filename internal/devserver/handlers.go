package devserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fintechdocs/creditapp/internal/client/models"
)

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("error encoding response", slog.Any("error", err))
	}
}

// handleLogin matches the credentials against the seeded accounts. The
// returned profile's api_url points back at this server, so statuses and
// comments loop through the same instance.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if req.Email == a.user.Email && req.Password == a.password {
			u := a.user
			u.APIURL = "http://" + r.Host + "/"
			s.writeJSON(w, http.StatusOK, u)
			return
		}
	}
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleRegisterDevice(w http.ResponseWriter, r *http.Request) {
	var reg models.DeviceRegistration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.devices = append(s.devices, reg)
	s.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

func (s *Server) handlePushSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.NotificationSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.settings[settings.UserID] = settings
	s.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

// handleFetchSettings returns the stored settings for the user, or a zeroed
// object when nothing was pushed yet.
func (s *Server) handleFetchSettings(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	settings, ok := s.settings[userID]
	s.mu.Unlock()

	if !ok {
		settings = models.NotificationSettings{
			UserID:     userID,
			Email:      chi.URLParam(r, "email"),
			DeviceType: chi.URLParam(r, "platform"),
		}
	}
	s.writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleStatuses(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	statuses := append([]string(nil), s.statuses...)
	s.mu.Unlock()

	s.writeJSON(w, http.StatusOK, statuses)
}

func (s *Server) handleComment(w http.ResponseWriter, r *http.Request) {
	var c models.Comment
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if c.ClientINN == "" || c.Comment == "" {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.comments = append(s.comments, c)
	s.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}
