package records

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

const DayLayout = "2006-01-02"

var ErrInvalidDateRange = errors.New("invalid date range")

// Day truncates t to midnight of its UTC calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDay(s string) (time.Time, error) {
	day, err := time.ParseInLocation(DayLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return day, nil
}

// DateRange bounds record timestamps, both ends inclusive. Nil means unbounded.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// ParseDateRange reads the "from" and "to" query params (YYYY-MM-DD).
// "to" covers the whole given day.
func ParseDateRange(q url.Values) (DateRange, error) {
	var dr DateRange
	if fromStr := q.Get("from"); fromStr != "" {
		from, err := ParseDay(fromStr)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: %w", ErrInvalidDateRange, err)
		}
		dr.From = &from
	}
	if toStr := q.Get("to"); toStr != "" {
		to, err := ParseDay(toStr)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: %w", ErrInvalidDateRange, err)
		}
		endOfDay := to.Add(24*time.Hour - time.Nanosecond)
		dr.To = &endOfDay
	}
	if dr.From != nil && dr.To != nil && dr.From.After(*dr.To) {
		return DateRange{}, fmt.Errorf("%w: from is after to", ErrInvalidDateRange)
	}
	return dr, nil
}

// ParseVisibility reads the include_deleted query param.
func ParseVisibility(q url.Values) (Visibility, error) {
	raw := q.Get("include_deleted")
	if raw == "" {
		return OnlyActive, nil
	}
	include, err := strconv.ParseBool(raw)
	if err != nil {
		return OnlyActive, fmt.Errorf("parse include_deleted: %w", err)
	}
	if include {
		return IncludeDeleted, nil
	}
	return OnlyActive, nil
}
