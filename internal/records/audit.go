package records

import (
	"time"

	"github.com/google/uuid"
)

// Deletion marks a soft-deleted record. A nil *Deletion means the record is active.
type Deletion struct {
	At time.Time `json:"at"`
	By uuid.UUID `json:"by"`
}

type Audit struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Deleted   *Deletion `json:"deleted,omitempty"`
}

func NewAudit(now time.Time) Audit {
	now = now.UTC()
	return Audit{
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (a Audit) IsDeleted() bool {
	return a.Deleted != nil
}

// DeletionFromColumns builds the deletion state from the nullable
// deleted_at / deleted_by columns.
func DeletionFromColumns(at *time.Time, by *uuid.UUID) *Deletion {
	if at == nil {
		return nil
	}
	d := &Deletion{At: at.UTC()}
	if by != nil {
		d.By = *by
	}
	return d
}

// Visibility selects whether soft-deleted rows take part in a query.
type Visibility int

const (
	OnlyActive Visibility = iota
	IncludeDeleted
)

func (v Visibility) IncludesDeleted() bool {
	return v == IncludeDeleted
}
