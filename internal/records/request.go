package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/phuong-practice-projects/healthy-system/internal/middleware"
	"github.com/phuong-practice-projects/healthy-system/pkg"
)

var ErrInvalidContentType = errors.New("invalid content type")

// DecodeJSON reads a JSON request body into v.
func DecodeJSON(r *http.Request, v any) error {
	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		return ErrInvalidContentType
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("unmarshal json body: %w", err)
	}
	return nil
}

// UserAndID returns the authenticated user and the {id} route var. On failure
// the error response is already written and ok is false.
func UserAndID(w http.ResponseWriter, r *http.Request) (userID, id uuid.UUID, ok bool) {
	userID, ok = middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return uuid.Nil, uuid.Nil, false
	}

	id, err := ParseID(r)
	if err != nil {
		log.Tracef("parse record id: %s", err)
		http.Error(w, "error, invalid id", http.StatusBadRequest)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, id, true
}
