package exercises

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	Add(ctx context.Context, exercise Exercise) (*Exercise, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*Exercise, error)
	Update(ctx context.Context, exercise Exercise) (*Exercise, error)
	Delete(ctx context.Context, userID, id uuid.UUID, at time.Time) error
	List(ctx context.Context, params ListParams) (_ []Exercise, total int, err error)
}

type Handler struct {
	repo           exercisesRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo exercisesRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/exercises", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/exercises/list/page/{page}/size/{size}", handler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/exercises/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/exercises/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.add")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var exercise Exercise
	if err := records.DecodeJSON(r, &exercise); err != nil {
		log.Tracef("add exercise, decode: %s", err)
		http.Error(w, "invalid exercise", http.StatusBadRequest)
		return
	}
	exercise.UserID = userID
	if exercise.PerformedAt.IsZero() {
		exercise.PerformedAt = time.Now()
	}
	if err := exercise.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	added, err := handler.repo.Add(ctx, exercise)
	if err != nil {
		log.Errorf("add exercise for %s: %s", userID, err)
		http.Error(w, "error, failed to add exercise", http.StatusInternalServerError)
		return
	}
	handler.metricsManager.RecordAdded(Kind)

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.get")
	defer span.End()

	userID, id, ok := records.UserAndID(w, r)
	if !ok {
		return
	}

	exercise, err := handler.repo.Get(ctx, userID, id)
	switch {
	case errors.Is(err, ErrExerciseNotFound):
		http.Error(w, "exercise not found", http.StatusNotFound)
	case err != nil:
		log.Errorf("get exercise %s: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		pkg.WriteJSON(w, exercise, http.StatusOK)
	}
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	userID, id, ok := records.UserAndID(w, r)
	if !ok {
		return
	}

	var exercise Exercise
	if err := records.DecodeJSON(r, &exercise); err != nil {
		log.Tracef("update exercise, decode: %s", err)
		http.Error(w, "invalid exercise", http.StatusBadRequest)
		return
	}
	exercise.ID = id
	exercise.UserID = userID
	if exercise.PerformedAt.IsZero() {
		http.Error(w, "error, performedAt missing", http.StatusBadRequest)
		return
	}
	if err := exercise.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := handler.repo.Update(ctx, exercise)
	switch {
	case errors.Is(err, ErrExerciseNotFound):
		http.Error(w, "exercise not found", http.StatusNotFound)
	case err != nil:
		log.Errorf("update exercise %s: %s", id, err)
		http.Error(w, "error, exercise not updated", http.StatusInternalServerError)
	default:
		pkg.WriteJSON(w, updated, http.StatusOK)
	}
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	userID, id, ok := records.UserAndID(w, r)
	if !ok {
		return
	}

	err := handler.repo.Delete(ctx, userID, id, time.Now())
	switch {
	case errors.Is(err, ErrExerciseNotFound):
		http.Error(w, "exercise not found", http.StatusNotFound)
	case err != nil:
		log.Errorf("delete exercise %s: %s", id, err)
		http.Error(w, "exercise not deleted", http.StatusInternalServerError)
	default:
		pkg.WriteJSON(w, map[string]uuid.UUID{"deletedId": id}, http.StatusOK)
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	listParams, err := records.ParseListParams(r, userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	exercises, total, err := handler.repo.List(ctx, ListParams{
		ListParams: listParams,
		Name:       r.URL.Query().Get("name"),
	})
	if err != nil {
		log.Errorf("list exercises: %s", err)
		http.Error(w, "failed to get exercises", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, records.NewPageResult(exercises, total, listParams.Page), http.StatusOK)
}
