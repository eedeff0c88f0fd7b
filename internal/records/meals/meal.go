package meals

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/phuong-practice-projects/healthy-system/internal/records"
)

const Kind = "meal"

type Type string

const (
	TypeMorning Type = "Morning"
	TypeLunch   Type = "Lunch"
	TypeDinner  Type = "Dinner"
	TypeSnack   Type = "Snack"
)

func (t Type) Valid() bool {
	switch t {
	case TypeMorning, TypeLunch, TypeDinner, TypeSnack:
		return true
	}
	return false
}

var (
	ErrMealNotFound = errors.New("meal not found")
	ErrInvalidMeal  = errors.New("invalid meal")
)

type Meal struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Type        Type      `json:"type"`
	Description string    `json:"description"`
	Calories    int       `json:"calories"`
	EatenAt     time.Time `json:"eatenAt"`
	records.Audit
}

func (m Meal) Validate() error {
	if !m.Type.Valid() {
		return fmt.Errorf("%w: unknown meal type %q", ErrInvalidMeal, m.Type)
	}
	if m.Calories < 0 {
		return fmt.Errorf("%w: calories must not be negative", ErrInvalidMeal)
	}
	return nil
}

type ListParams struct {
	records.ListParams
	Type Type
}
