package rest

import (
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/citykeeper/internal/server/dto"
	"github.com/dmitrijs2005/citykeeper/internal/server/models"
)

// signInCookie carries the access token for browser clients. API clients use
// the Authorization header instead.
const signInCookie = "citykeeper_signin"

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// clientIP extracts the caller's address without the port. The service falls
// back to a placeholder when it is empty.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (s *Server) setSignInCookie(w http.ResponseWriter, resp *models.AuthenticationResponse) {
	http.SetCookie(w, &http.Cookie{
		Name:     signInCookie,
		Value:    resp.Token,
		Path:     "/",
		Expires:  resp.Expiration,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSignInCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     signInCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := s.accounts.Register(r.Context(), req, clientIP(r))
	if err != nil {
		s.logger.Error(r.Context(), "registration failed", "error", err.Error())
		writeError(w, err)
		return
	}

	s.logger.Info(r.Context(), "Registered", "email", resp.Email)
	s.setSignInCookie(w, resp)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := s.accounts.Login(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	s.setSignInCookie(w, resp)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearSignInCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ChangePasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := s.accounts.ChangePassword(r.Context(), req); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.DeleteAccountRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := s.accounts.DeleteAccount(r.Context(), req); err != nil {
		writeError(w, err)
		return
	}

	s.logger.Info(r.Context(), "Account deleted", "email", req.Email)
	s.clearSignInCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRegisterEmailCheck(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeMessage(w, http.StatusBadRequest, "email address can't be null or empty")
		return
	}

	available, err := s.accounts.IsEmailAvailableForRegister(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, available)
}

func (s *Server) handleLoginEmailCheck(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeMessage(w, http.StatusBadRequest, "email address can't be null or empty")
		return
	}

	known, err := s.accounts.IsEmailKnownForLogin(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, known)
}

func (s *Server) handleRegisterNumberCheck(w http.ResponseWriter, r *http.Request) {
	phoneNumber := r.URL.Query().Get("phoneNumber")
	if phoneNumber == "" {
		writeMessage(w, http.StatusBadRequest, "phone number can't be null or empty")
		return
	}

	available, err := s.accounts.IsPhoneAvailableForRegister(r.Context(), phoneNumber)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, available)
}
