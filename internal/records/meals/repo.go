package meals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/phuong-practice-projects/healthy-system/internal/records"
	"github.com/phuong-practice-projects/healthy-system/internal/telemetry/tracing"
)

const mealColumns = `id, user_id, type, description, calories, eaten_at, created_at, updated_at, deleted_at, deleted_by`

// filters shared by List and Count, $1..$5
const mealFilter = `
	WHERE user_id = $1
		AND ($2::timestamptz IS NULL OR eaten_at >= $2)
		AND ($3::timestamptz IS NULL OR eaten_at <= $3)
		AND ($4::boolean OR deleted_at IS NULL)
		AND ($5::text = '' OR type = $5)`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, meal Meal) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	meal.ID = uuid.New()
	meal.Audit = records.NewAudit(time.Now())
	meal.EatenAt = meal.EatenAt.UTC()
	span.SetAttributes(attribute.String("meal.id", meal.ID.String()))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO meal (id, user_id, type, description, calories, eaten_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		meal.ID, meal.UserID, meal.Type, meal.Description, meal.Calories, meal.EatenAt,
		meal.CreatedAt, meal.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert meal: %w", err)
	}

	return &meal, nil
}

func (r *Repo) Get(ctx context.Context, userID, id uuid.UUID) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+mealColumns+` FROM meal WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}

	meals, err := rows2meals(rows)
	if err != nil {
		return nil, err
	}
	if len(meals) != 1 {
		return nil, ErrMealNotFound
	}

	return &meals[0], nil
}

// Update overwrites the mutable fields of an active meal and returns the stored row.
func (r *Repo) Update(ctx context.Context, meal Meal) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", meal.ID.String()))

	rows, err := r.db.Query(
		ctx,
		`UPDATE meal SET type = $3, description = $4, calories = $5, eaten_at = $6, updated_at = $7
			WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
			RETURNING `+mealColumns+`;`,
		meal.ID, meal.UserID, meal.Type, meal.Description, meal.Calories, meal.EatenAt.UTC(), time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	meals, err := rows2meals(rows)
	if err != nil {
		return nil, err
	}
	if len(meals) != 1 {
		return nil, ErrMealNotFound
	}

	return &meals[0], nil
}

// Delete soft deletes the meal, recording who deleted it and when.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID, at time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE meal SET deleted_at = $3, deleted_by = $2, updated_at = $3
			WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL;`,
		id, userID, at.UTC(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMealNotFound
	}

	return nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Meal, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page.Number))
	span.SetAttributes(attribute.Int("size", params.Page.Size))
	span.SetAttributes(attribute.String("type", string(params.Type)))
	span.SetAttributes(attribute.Bool("include-deleted", params.Visibility.IncludesDeleted()))

	if err := params.Page.Validate(); err != nil {
		return nil, -1, err
	}

	countAll, err := r.Count(ctx, params)
	if err != nil {
		return nil, -1, err
	}

	limit, offset := params.Page.Window(countAll)
	span.SetAttributes(attribute.Int("count_all", countAll))
	span.SetAttributes(attribute.Int("limit", limit))
	span.SetAttributes(attribute.Int("offset", offset))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+mealColumns+` FROM meal`+mealFilter+`
			ORDER BY eaten_at DESC
			LIMIT $6
			OFFSET $7;`,
		params.UserID, params.Range.From, params.Range.To,
		params.Visibility.IncludesDeleted(), string(params.Type),
		limit, offset,
	)
	if err != nil {
		return nil, -1, err
	}

	meals, err := rows2meals(rows)
	if err != nil {
		return nil, -1, err
	}

	return meals, countAll, nil
}

func (r *Repo) Count(ctx context.Context, params ListParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.meals.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM meal`+mealFilter+`;`,
		params.UserID, params.Range.From, params.Range.To,
		params.Visibility.IncludesDeleted(), string(params.Type),
	).Scan(&count); err != nil {
		return -1, fmt.Errorf("count meals: %w", err)
	}

	return count, nil
}

func rows2meals(rows pgx.Rows) ([]Meal, error) {
	defer rows.Close()

	var meals []Meal
	for rows.Next() {
		var (
			m         Meal
			mealType  string
			deletedAt *time.Time
			deletedBy *uuid.UUID
		)
		if err := rows.Scan(
			&m.ID, &m.UserID, &mealType, &m.Description, &m.Calories, &m.EatenAt,
			&m.CreatedAt, &m.UpdatedAt, &deletedAt, &deletedBy,
		); err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		m.Type = Type(mealType)
		m.Deleted = records.DeletionFromColumns(deletedAt, deletedBy)
		meals = append(meals, m)
	}

	if err := rows.Err(); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return meals, nil
}
