package meals

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/phuong-practice-projects/healthy-system/internal/middleware"
	"github.com/phuong-practice-projects/healthy-system/internal/records"
	"github.com/phuong-practice-projects/healthy-system/internal/telemetry/metrics"
	"github.com/phuong-practice-projects/healthy-system/internal/telemetry/tracing"
	"github.com/phuong-practice-projects/healthy-system/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=meals_test

type mealsRepo interface {
	Add(ctx context.Context, meal Meal) (*Meal, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*Meal, error)
	Update(ctx context.Context, meal Meal) (*Meal, error)
	Delete(ctx context.Context, userID, id uuid.UUID, at time.Time) error
	List(ctx context.Context, params ListParams) (_ []Meal, total int, err error)
}

type DeleteMealResponse struct {
	DeletedID uuid.UUID `json:"deletedId"`
}

type Handler struct {
	repo           mealsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo mealsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/meals", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-meal")
	r.HandleFunc("/meals/list/page/{page}/size/{size}", handler.HandleList).Methods("GET", "OPTIONS").Name("list-meals")
	r.HandleFunc("/meals/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-meal")
	r.HandleFunc("/meals/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-meal")
	r.HandleFunc("/meals/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-meal")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.add")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	meal, ok := decodeMeal(w, r)
	if !ok {
		return
	}
	meal.UserID = userID
	if meal.EatenAt.IsZero() {
		meal.EatenAt = time.Now()
	}

	if err := meal.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	added, err := handler.repo.Add(ctx, meal)
	if err != nil {
		log.Errorf("failed to add new meal for user %s: %s", userID, err)
		http.Error(w, "error, failed to add new meal", http.StatusInternalServerError)
		return
	}
	handler.metricsManager.RecordAdded(Kind)

	log.Debugf("new meal added: %s", added.ID)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.get")
	defer span.End()

	userID, id, ok := records.UserAndID(w, r)
	if !ok {
		return
	}

	meal, err := handler.repo.Get(ctx, userID, id)
	if errors.Is(err, ErrMealNotFound) {
		http.Error(w, "meal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get meal %s: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, meal, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.update")
	defer span.End()

	userID, id, ok := records.UserAndID(w, r)
	if !ok {
		return
	}

	meal, ok := decodeMeal(w, r)
	if !ok {
		return
	}
	meal.ID = id
	meal.UserID = userID
	if meal.EatenAt.IsZero() {
		http.Error(w, "error, eatenAt missing", http.StatusBadRequest)
		return
	}
	if err := meal.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := handler.repo.Update(ctx, meal)
	if errors.Is(err, ErrMealNotFound) {
		http.Error(w, "meal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to update meal %s: %s", id, err)
		http.Error(w, "error, meal not updated", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.delete")
	defer span.End()

	userID, id, ok := records.UserAndID(w, r)
	if !ok {
		return
	}

	err := handler.repo.Delete(ctx, userID, id, time.Now())
	if errors.Is(err, ErrMealNotFound) {
		http.Error(w, "meal not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to delete meal %s: %s", id, err)
		http.Error(w, "meal not deleted", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, DeleteMealResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.meals.list")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	listParams, err := records.ParseListParams(r, userID)
	if err != nil {
		log.Tracef("list meals, parse params: %s", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	mealType := Type(r.URL.Query().Get("type"))
	if mealType != "" && !mealType.Valid() {
		http.Error(w, "unknown meal type", http.StatusBadRequest)
		return
	}

	meals, total, err := handler.repo.List(ctx, ListParams{
		ListParams: listParams,
		Type:       mealType,
	})
	if err != nil {
		log.Errorf("list meals error: %s", err)
		http.Error(w, "failed to get meals", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, records.NewPageResult(meals, total, listParams.Page), http.StatusOK)
}

func decodeMeal(w http.ResponseWriter, r *http.Request) (Meal, bool) {
	var meal Meal
	if err := records.DecodeJSON(r, &meal); err != nil {
		log.Tracef("decode meal: %s", err)
		http.Error(w, "invalid meal", http.StatusBadRequest)
		return Meal{}, false
	}
	return meal, true
}
