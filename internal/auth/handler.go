package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/phuong-practice-projects/healthy-system/internal/middleware"
	"github.com/phuong-practice-projects/healthy-system/internal/telemetry/metrics"
	"github.com/phuong-practice-projects/healthy-system/internal/telemetry/tracing"
	"github.com/phuong-practice-projects/healthy-system/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type usersRepo interface {
	Add(ctx context.Context, user User) (*User, error)
	Get(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type sessionService interface {
	Login(ctx context.Context, userID uuid.UUID, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type tokenEvicter interface {
	Evict(token string)
}

type LoginResponse struct {
	Token string `json:"token"`
}

type Handler struct {
	usersRepo      usersRepo
	sessionService sessionService
	tokenEvicter   tokenEvicter
}

func NewHandler(
	usersRepo usersRepo,
	sessionService sessionService,
	tokenEvicter tokenEvicter,
) *Handler {
	return &Handler{
		usersRepo:      usersRepo,
		sessionService: sessionService,
		tokenEvicter:   tokenEvicter,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	allowedPerMin int,
) {
	authRouter := mainRouter.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/register", handler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	authRouter.HandleFunc("/login", handler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	authRouter.HandleFunc("/logout", handler.HandleLogout).Methods("GET", "OPTIONS").Name("logout")
	authRouter.HandleFunc("/me", handler.HandleMe).Methods("GET", "OPTIONS").Name("me")

	// brute force protection
	authRouter.Use(middleware.RateLimit(rateLimiter, "auth", allowedPerMin, metricsManager))
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var reg Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		log.Tracef("register, unmarshal json params: %s", err)
		http.Error(w, "invalid registration", http.StatusBadRequest)
		return
	}

	if err := reg.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	passwordHash, err := pkg.HashPassword(reg.Password)
	if err != nil {
		log.Errorf("register, hash password: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	user, err := handler.usersRepo.Add(ctx, User{
		Email:        reg.Email,
		DisplayName:  strings.TrimSpace(reg.DisplayName),
		PasswordHash: passwordHash,
	})
	if errors.Is(err, ErrEmailTaken) {
		http.Error(w, "email already registered", http.StatusConflict)
		return
	}
	if err != nil {
		log.Errorf("register, add user: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	log.Debugf("new user registered: %s", user.ID)
	pkg.WriteJSON(w, user, http.StatusCreated)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var creds Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "error, login failed", http.StatusBadRequest)
		return
	}
	if creds.Email == "" || creds.Password == "" {
		http.Error(w, "error, login failed", http.StatusBadRequest)
		return
	}

	user, err := handler.usersRepo.GetByEmail(ctx, creds.Email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		log.Errorf("login, get user: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if user == nil || !pkg.CheckPasswordHash(creds.Password, user.PasswordHash) {
		log.Tracef("login failed for [%s]", creds.Email)
		http.Error(w, "error, login failed", http.StatusBadRequest)
		return
	}

	token, err := handler.sessionService.Login(ctx, user.ID, time.Now())
	if err != nil {
		log.Errorf("login, create session: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, LoginResponse{Token: token}, http.StatusOK)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	token := middleware.BearerToken(r)
	if token == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	handler.tokenEvicter.Evict(token)
	loggedOut, err := handler.sessionService.Logout(ctx, token)
	if err != nil {
		log.Errorf("logout: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}
	if !loggedOut {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.me")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	user, err := handler.usersRepo.Get(ctx, userID)
	if errors.Is(err, ErrUserNotFound) {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("me, get user %s: %s", userID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, user, http.StatusOK)
}
