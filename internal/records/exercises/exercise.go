package exercises

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/phuong-practice-projects/healthy-system/internal/records"
)

const Kind = "exercise"

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrInvalidExercise  = errors.New("invalid exercise")
)

type Exercise struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"durationMinutes"`
	CaloriesBurned  int       `json:"caloriesBurned"`
	PerformedAt     time.Time `json:"performedAt"`
	records.Audit
}

func (e Exercise) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: name missing", ErrInvalidExercise)
	}
	if e.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidExercise)
	}
	if e.CaloriesBurned < 0 {
		return fmt.Errorf("%w: burned calories must not be negative", ErrInvalidExercise)
	}
	return nil
}

type ListParams struct {
	records.ListParams
	// Name matches exercise names containing it, case insensitive.
	Name string
}
