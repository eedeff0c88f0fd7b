package bodyrecords

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/phuong-practice-projects/healthy-system/internal/records"
)

const Kind = "body_record"

var (
	ErrBodyRecordNotFound = errors.New("body record not found")
	ErrInvalidBodyRecord  = errors.New("invalid body record")
)

// BodyRecord is one body metrics measurement. BodyFatPercent is optional.
type BodyRecord struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	WeightKg       float64   `json:"weightKg"`
	BodyFatPercent *float64  `json:"bodyFatPercent,omitempty"`
	RecordedAt     time.Time `json:"recordedAt"`
	records.Audit
}

func (b BodyRecord) Validate() error {
	if b.WeightKg <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrInvalidBodyRecord)
	}
	if b.BodyFatPercent != nil && (*b.BodyFatPercent <= 0 || *b.BodyFatPercent >= 100) {
		return fmt.Errorf("%w: body fat percent out of range", ErrInvalidBodyRecord)
	}
	return nil
}
