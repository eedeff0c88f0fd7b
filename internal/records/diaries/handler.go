package diaries

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=diaries_test

type diariesRepo interface {
	Add(ctx context.Context, diary Diary) (*Diary, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*Diary, error)
	Update(ctx context.Context, diary Diary) (*Diary, error)
	Delete(ctx context.Context, userID, id uuid.UUID, at time.Time) error
	List(ctx context.Context, params ListParams) (_ []Diary, total int, err error)
}

type Handler struct {
	repo           diariesRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo diariesRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/diaries", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-diary")
	r.HandleFunc("/diaries/list/page/{page}/size/{size}", handler.HandleList).Methods("GET", "OPTIONS").Name("list-diaries")
	r.HandleFunc("/diaries/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-diary")
	r.HandleFunc("/diaries/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-diary")
	r.HandleFunc("/diaries/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-diary")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diaries.add")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var diary Diary
	if err := records.DecodeJSON(r, &diary); err != nil {
		log.Tracef("add diary, decode: %s", err)
		http.Error(w, "invalid diary", http.StatusBadRequest)
		return
	}
	diary.UserID = userID
	if diary.WrittenAt.IsZero() {
		diary.WrittenAt = time.Now()
	}
	if err := diary.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	added, err := handler.repo.Add(ctx, diary)
	if err != nil {
		log.Errorf("add diary for %s: %s", userID, err)
		http.Error(w, "error, failed to add diary", http.StatusInternalServerError)
		return
	}
	handler.metricsManager.RecordAdded(Kind)

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diaries.get")
	defer span.End()

	userID, id, ok := records.UserAndID(w, r)
	if !ok {
		return
	}

	diary, err := handler.repo.Get(ctx, userID, id)
	if err != nil {
		handler.writeRepoError(w, "get", id, err)
		return
	}

	pkg.WriteJSON(w, diary, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diaries.update")
	defer span.End()

	userID, id, ok := records.UserAndID(w, r)
	if !ok {
		return
	}

	var diary Diary
	if err := records.DecodeJSON(r, &diary); err != nil {
		log.Tracef("update diary, decode: %s", err)
		http.Error(w, "invalid diary", http.StatusBadRequest)
		return
	}
	diary.ID = id
	diary.UserID = userID
	if diary.WrittenAt.IsZero() {
		http.Error(w, "error, writtenAt missing", http.StatusBadRequest)
		return
	}
	if err := diary.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := handler.repo.Update(ctx, diary)
	if err != nil {
		handler.writeRepoError(w, "update", id, err)
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diaries.delete")
	defer span.End()

	userID, id, ok := records.UserAndID(w, r)
	if !ok {
		return
	}

	if err := handler.repo.Delete(ctx, userID, id, time.Now()); err != nil {
		handler.writeRepoError(w, "delete", id, err)
		return
	}

	pkg.WriteJSON(w, map[string]uuid.UUID{"deletedId": id}, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.diaries.list")
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

	diaries, total, err := handler.repo.List(ctx, ListParams{
		ListParams: listParams,
		Keyword:    r.URL.Query().Get("keyword"),
	})
	if err != nil {
		log.Errorf("list diaries: %s", err)
		http.Error(w, "failed to get diaries", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, records.NewPageResult(diaries, total, listParams.Page), http.StatusOK)
}

func (handler *Handler) writeRepoError(w http.ResponseWriter, op string, id uuid.UUID, err error) {
	if errors.Is(err, ErrDiaryNotFound) {
		http.Error(w, "diary not found", http.StatusNotFound)
		return
	}
	log.Errorf("%s diary %s: %s", op, id, err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
