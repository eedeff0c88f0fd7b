package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/phuong-practice-projects/healthy-system/internal/middleware"
	"github.com/phuong-practice-projects/healthy-system/internal/records"
	"github.com/phuong-practice-projects/healthy-system/internal/telemetry/tracing"
	"github.com/phuong-practice-projects/healthy-system/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type dashboardService interface {
	Today() time.Time
	Streak(ctx context.Context, userID uuid.UUID) (Streak, error)
	Achievement(ctx context.Context, userID uuid.UUID, day time.Time) (Achievement, error)
}

type Summary struct {
	Streak
	Achievement Achievement `json:"achievement"`
}

type Handler struct {
	service dashboardService
}

func NewHandler(service dashboardService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	dashboardRouter := r.PathPrefix("/dashboard").Subrouter()
	dashboardRouter.HandleFunc("/streak", handler.HandleStreak).Methods("GET", "OPTIONS").Name("dashboard-streak")
	dashboardRouter.HandleFunc("/achievement", handler.HandleAchievement).Methods("GET", "OPTIONS").Name("dashboard-achievement")
	dashboardRouter.HandleFunc("/summary", handler.HandleSummary).Methods("GET", "OPTIONS").Name("dashboard-summary")
}

func (handler *Handler) HandleStreak(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.streak")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	streak, err := handler.service.Streak(ctx, userID)
	if err != nil {
		writeComputationError(w, "streak", err)
		return
	}

	pkg.WriteJSON(w, streak, http.StatusOK)
}

func (handler *Handler) HandleAchievement(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.achievement")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	day := handler.service.Today()
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		parsed, err := records.ParseDay(dateParam)
		if err != nil {
			log.Tracef("achievement, bad date param: %s", err)
			http.Error(w, "error, invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		day = parsed
	}

	achievement, err := handler.service.Achievement(ctx, userID, day)
	if err != nil {
		writeComputationError(w, "achievement", err)
		return
	}

	pkg.WriteJSON(w, achievement, http.StatusOK)
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.summary")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	streak, err := handler.service.Streak(ctx, userID)
	if err != nil {
		writeComputationError(w, "summary", err)
		return
	}
	achievement, err := handler.service.Achievement(ctx, userID, handler.service.Today())
	if err != nil {
		writeComputationError(w, "summary", err)
		return
	}

	pkg.WriteJSON(w, Summary{Streak: streak, Achievement: achievement}, http.StatusOK)
}

func writeComputationError(w http.ResponseWriter, computation string, err error) {
	if IsCancellation(err) {
		log.Debugf("dashboard %s abandoned: %s", computation, err)
		http.Error(w, "request cancelled", http.StatusServiceUnavailable)
		return
	}
	log.Errorf("dashboard %s: %s", computation, err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
