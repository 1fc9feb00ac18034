// Package rest exposes the account and city operations over HTTP JSON,
// routed with gorilla/mux. Account endpoints are public, city endpoints
// require a bearer token.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/citykeeper/internal/logging"
	"github.com/dmitrijs2005/citykeeper/internal/server/auth"
	"github.com/dmitrijs2005/citykeeper/internal/server/config"
	"github.com/dmitrijs2005/citykeeper/internal/server/dto"
	"github.com/dmitrijs2005/citykeeper/internal/server/models"
)

// shutdownTimeout bounds how long in-flight requests may run once the
// server is asked to stop.
const shutdownTimeout = 5 * time.Second

// AccountService is the account surface the HTTP layer depends on.
type AccountService interface {
	Register(ctx context.Context, req dto.RegisterRequest, ipAddress string) (*models.AuthenticationResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*models.AuthenticationResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
	DeleteAccount(ctx context.Context, req dto.DeleteAccountRequest) error
	IsEmailAvailableForRegister(ctx context.Context, email string) (bool, error)
	IsEmailKnownForLogin(ctx context.Context, email string) (bool, error)
	IsPhoneAvailableForRegister(ctx context.Context, phoneNumber string) (bool, error)
}

// CityService is the city surface the HTTP layer depends on.
type CityService interface {
	List(ctx context.Context) ([]models.City, error)
	Get(ctx context.Context, cityID uuid.UUID) (*models.City, error)
	Create(ctx context.Context, req dto.CityRequest) (*models.City, error)
	Update(ctx context.Context, cityID uuid.UUID, req dto.CityRequest) error
	Delete(ctx context.Context, cityID uuid.UUID) error
}

// TokenValidator checks bearer tokens on protected endpoints.
type TokenValidator interface {
	ValidateToken(tokenString string, checkExpiry bool) (*auth.Claims, error)
}

type Server struct {
	cfg      config.HTTPServer
	logger   logging.Logger
	accounts AccountService
	cities   CityService
	tokens   TokenValidator
}

func NewServer(cfg config.HTTPServer, l logging.Logger, accounts AccountService, cities CityService, tokens TokenValidator) *Server {
	return &Server{
		cfg:      cfg,
		logger:   l.With("module", "rest_server"),
		accounts: accounts,
		cities:   cities,
		tokens:   tokens,
	}
}

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/logout", s.handleLogout).Methods(http.MethodGet)
	r.HandleFunc("/change-password", s.handleChangePassword).Methods(http.MethodPut)
	r.HandleFunc("/delete-account", s.handleDeleteAccount).Methods(http.MethodDelete)

	r.HandleFunc("/register-email-check", s.ajaxOnly(s.handleRegisterEmailCheck)).Methods(http.MethodGet)
	r.HandleFunc("/login-email-check", s.ajaxOnly(s.handleLoginEmailCheck)).Methods(http.MethodGet)
	r.HandleFunc("/register-number-check", s.ajaxOnly(s.handleRegisterNumberCheck)).Methods(http.MethodGet)

	v1 := r.PathPrefix("/api/v1/cities").Subrouter()
	v1.Use(s.bearerAuth)
	v1.HandleFunc("", s.handleCityList).Methods(http.MethodGet)
	v1.HandleFunc("", s.handleCityCreate).Methods(http.MethodPost)
	v1.HandleFunc("/{cityId}", s.handleCityGet).Methods(http.MethodGet)
	v1.HandleFunc("/{cityId}", s.handleCityUpdate).Methods(http.MethodPut)
	v1.HandleFunc("/{cityId}", s.handleCityDelete).Methods(http.MethodDelete)

	v2 := r.PathPrefix("/api/v2/cities").Subrouter()
	v2.Use(s.bearerAuth)
	v2.HandleFunc("", s.handleCityNames).Methods(http.MethodGet)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:         s.cfg.Address,
		Handler:      s.router(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.cfg.Address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
