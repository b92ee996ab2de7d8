package login

import (
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// Handler serves the public account-registration endpoint. It only ever
// calls Register; nothing on this surface can reach the ad-hoc executor or
// any other privileged gateway entry point.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/register", s.handleRegister)
	return mux
}

func (s *Service) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	name := r.PostFormValue("account")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	if password == "" {
		http.Error(w, "password is required", http.StatusBadRequest)
		return
	}

	err := s.Register(r.Context(), name, email, password)
	switch {
	case errors.Is(err, ErrInvalidAccountName):
		http.Error(w, "account name must be 2-20 letters, digits, or underscores", http.StatusBadRequest)
	case errors.Is(err, ErrAccountRejected):
		http.Error(w, "account name is taken", http.StatusConflict)
	case err != nil:
		s.log.Error("registration failed", zap.String("name", name), zap.Error(err))
		http.Error(w, "registration failed", http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusCreated)
	}
}
