package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/phuong-practice-projects/healthy-system/internal/records"
	"github.com/phuong-practice-projects/healthy-system/internal/records/bodyrecords"
	"github.com/phuong-practice-projects/healthy-system/internal/records/diaries"
	"github.com/phuong-practice-projects/healthy-system/internal/records/exercises"
	"github.com/phuong-practice-projects/healthy-system/internal/records/meals"
	"github.com/phuong-practice-projects/healthy-system/internal/telemetry/tracing"
)

// table and timestamp column per countable record kind
var dailyCountSources = map[string]struct {
	table    string
	tsColumn string
}{
	exercises.Kind:   {table: "exercise", tsColumn: "performed_at"},
	bodyrecords.Kind: {table: "body_record", tsColumn: "recorded_at"},
	diaries.Kind:     {table: "diary", tsColumn: "written_at"},
}

// Repo reads the activity of a user across all record kinds. Soft deleted
// records never count.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// ActivityDates returns the distinct UTC calendar days with at least one record, oldest first.
func (r *Repo) ActivityDates(ctx context.Context, userID uuid.UUID) (_ []time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dashboard.activity_dates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT (eaten_at AT TIME ZONE 'UTC')::date AS day FROM meal WHERE user_id = $1 AND deleted_at IS NULL
		UNION
		SELECT (performed_at AT TIME ZONE 'UTC')::date FROM exercise WHERE user_id = $1 AND deleted_at IS NULL
		UNION
		SELECT (recorded_at AT TIME ZONE 'UTC')::date FROM body_record WHERE user_id = $1 AND deleted_at IS NULL
		UNION
		SELECT (written_at AT TIME ZONE 'UTC')::date FROM diary WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY day;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query activity dates: %w", err)
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("scan activity date: %w", err)
		}
		days = append(days, records.Day(day))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("days", len(days)))
	return days, nil
}

func (r *Repo) DailyMealCount(ctx context.Context, userID uuid.UUID, day time.Time, mealType meals.Type) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dashboard.daily_meal_count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("meal.type", string(mealType)))

	from, to := dayBounds(day)
	var count int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM meal
			WHERE user_id = $1 AND deleted_at IS NULL AND type = $2
				AND eaten_at >= $3 AND eaten_at < $4;`,
		userID, string(mealType), from, to,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s meals: %w", mealType, err)
	}

	return count, nil
}

// DailyCount counts the records of kind (exercise, body record or diary) on the given day.
func (r *Repo) DailyCount(ctx context.Context, userID uuid.UUID, day time.Time, kind string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dashboard.daily_count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("kind", kind))

	source, ok := dailyCountSources[kind]
	if !ok {
		return 0, fmt.Errorf("unknown record kind: %s", kind)
	}

	from, to := dayBounds(day)
	var count int
	if err := r.db.QueryRow(
		ctx,
		fmt.Sprintf(
			`SELECT COUNT(*) FROM %s WHERE user_id = $1 AND deleted_at IS NULL AND %s >= $2 AND %s < $3;`,
			source.table, source.tsColumn, source.tsColumn,
		),
		userID, from, to,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s records: %w", kind, err)
	}

	return count, nil
}

// dayBounds returns the half open [from, to) UTC interval of the day.
func dayBounds(day time.Time) (from, to time.Time) {
	from = records.Day(day)
	return from, from.AddDate(0, 0, 1)
}
