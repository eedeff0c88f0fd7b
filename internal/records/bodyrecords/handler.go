package bodyrecords

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=bodyrecords_test

type bodyRecordsRepo interface {
	Add(ctx context.Context, record BodyRecord) (*BodyRecord, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*BodyRecord, error)
	Update(ctx context.Context, record BodyRecord) (*BodyRecord, error)
	Delete(ctx context.Context, userID, id uuid.UUID, at time.Time) error
	List(ctx context.Context, params records.ListParams) (_ []BodyRecord, total int, err error)
}

type Handler struct {
	repo           bodyRecordsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo bodyRecordsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/bodyrecords", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-body-record")
	r.HandleFunc("/bodyrecords/list/page/{page}/size/{size}", handler.HandleList).Methods("GET", "OPTIONS").Name("list-body-records")
	r.HandleFunc("/bodyrecords/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-body-record")
	r.HandleFunc("/bodyrecords/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-body-record")
	r.HandleFunc("/bodyrecords/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-body-record")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodyrecords.add")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var record BodyRecord
	if err := records.DecodeJSON(r, &record); err != nil {
		log.Tracef("add body record, decode: %s", err)
		http.Error(w, "invalid body record", http.StatusBadRequest)
		return
	}
	record.UserID = userID
	if record.RecordedAt.IsZero() {
		record.RecordedAt = time.Now()
	}
	if err := record.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	added, err := handler.repo.Add(ctx, record)
	if err != nil {
		log.Errorf("add body record for %s: %s", userID, err)
		http.Error(w, "error, failed to add body record", http.StatusInternalServerError)
		return
	}
	handler.metricsManager.RecordAdded(Kind)

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodyrecords.get")
	defer span.End()

	userID, id, ok := records.UserAndID(w, r)
	if !ok {
		return
	}

	record, err := handler.repo.Get(ctx, userID, id)
	if errors.Is(err, ErrBodyRecordNotFound) {
		http.Error(w, "body record not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("get body record %s: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, record, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodyrecords.update")
	defer span.End()

	userID, id, ok := records.UserAndID(w, r)
	if !ok {
		return
	}

	var record BodyRecord
	if err := records.DecodeJSON(r, &record); err != nil {
		log.Tracef("update body record, decode: %s", err)
		http.Error(w, "invalid body record", http.StatusBadRequest)
		return
	}
	record.ID = id
	record.UserID = userID
	if record.RecordedAt.IsZero() {
		http.Error(w, "error, recordedAt missing", http.StatusBadRequest)
		return
	}
	if err := record.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := handler.repo.Update(ctx, record)
	if errors.Is(err, ErrBodyRecordNotFound) {
		http.Error(w, "body record not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("update body record %s: %s", id, err)
		http.Error(w, "error, body record not updated", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodyrecords.delete")
	defer span.End()

	userID, id, ok := records.UserAndID(w, r)
	if !ok {
		return
	}

	if err := handler.repo.Delete(ctx, userID, id, time.Now()); errors.Is(err, ErrBodyRecordNotFound) {
		http.Error(w, "body record not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("delete body record %s: %s", id, err)
		http.Error(w, "body record not deleted", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, map[string]uuid.UUID{"deletedId": id}, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.bodyrecords.list")
	defer span.End()

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	params, err := records.ParseListParams(r, userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	bodyRecords, total, err := handler.repo.List(ctx, params)
	if err != nil {
		log.Errorf("list body records: %s", err)
		http.Error(w, "failed to get body records", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, records.NewPageResult(bodyRecords, total, params.Page), http.StatusOK)
}
