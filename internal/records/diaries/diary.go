package diaries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/phuong-practice-projects/healthy-system/internal/records"
)

const Kind = "diary"

const maxTitleLength = 200

var (
	ErrDiaryNotFound = errors.New("diary not found")
	ErrInvalidDiary  = errors.New("invalid diary")
)

type Diary struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	WrittenAt time.Time `json:"writtenAt"`
	records.Audit
}

func (d Diary) Validate() error {
	if strings.TrimSpace(d.Content) == "" {
		return fmt.Errorf("%w: content missing", ErrInvalidDiary)
	}
	if len(d.Title) > maxTitleLength {
		return fmt.Errorf("%w: title longer than %d", ErrInvalidDiary, maxTitleLength)
	}
	return nil
}

type ListParams struct {
	records.ListParams
	// Keyword matches title or content, case insensitive.
	Keyword string
}
