package records

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// ListParams are the list filters shared by all record kinds.
type ListParams struct {
	UserID     uuid.UUID
	Page       Page
	Range      DateRange
	Visibility Visibility
}

func ParseListParams(r *http.Request, userID uuid.UUID) (ListParams, error) {
	page, err := ParsePage(mux.Vars(r))
	if err != nil {
		return ListParams{}, err
	}

	q := r.URL.Query()
	dateRange, err := ParseDateRange(q)
	if err != nil {
		return ListParams{}, err
	}
	visibility, err := ParseVisibility(q)
	if err != nil {
		return ListParams{}, err
	}

	return ListParams{
		UserID:     userID,
		Page:       page,
		Range:      dateRange,
		Visibility: visibility,
	}, nil
}

// ParseID reads the {id} route var.
func ParseID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}
