package exercises

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/phuong-practice-projects/healthy-system/internal/records"
	"github.com/phuong-practice-projects/healthy-system/internal/telemetry/tracing"
)

const exerciseColumns = `id, user_id, name, duration_minutes, calories_burned, performed_at, created_at, updated_at, deleted_at, deleted_by`

const exerciseFilter = `
	WHERE user_id = $1
		AND ($2::timestamptz IS NULL OR performed_at >= $2)
		AND ($3::timestamptz IS NULL OR performed_at <= $3)
		AND ($4::boolean OR deleted_at IS NULL)
		AND ($5::text = '' OR name ILIKE '%' || $5 || '%')`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	exercise.ID = uuid.New()
	exercise.Name = strings.TrimSpace(exercise.Name)
	exercise.Audit = records.NewAudit(time.Now())
	exercise.PerformedAt = exercise.PerformedAt.UTC()
	span.SetAttributes(attribute.String("exercise.id", exercise.ID.String()))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO exercise (id, user_id, name, duration_minutes, calories_burned, performed_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		exercise.ID, exercise.UserID, exercise.Name, exercise.DurationMinutes, exercise.CaloriesBurned,
		exercise.PerformedAt, exercise.CreatedAt, exercise.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	return &exercise, nil
}

func (r *Repo) Get(ctx context.Context, userID, id uuid.UUID) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercise WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}

	exercises, err := rows2exercises(rows)
	if err != nil {
		return nil, err
	}
	if len(exercises) != 1 {
		return nil, ErrExerciseNotFound
	}

	return &exercises[0], nil
}

func (r *Repo) Update(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", exercise.ID.String()))

	rows, err := r.db.Query(
		ctx,
		`UPDATE exercise
			SET name = $3, duration_minutes = $4, calories_burned = $5, performed_at = $6, updated_at = $7
			WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
			RETURNING `+exerciseColumns+`;`,
		exercise.ID, exercise.UserID, strings.TrimSpace(exercise.Name), exercise.DurationMinutes,
		exercise.CaloriesBurned, exercise.PerformedAt.UTC(), time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	exercises, err := rows2exercises(rows)
	if err != nil {
		return nil, err
	}
	if len(exercises) != 1 {
		return nil, ErrExerciseNotFound
	}

	return &exercises[0], nil
}

func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID, at time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercise SET deleted_at = $3, deleted_by = $2, updated_at = $3
			WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL;`,
		id, userID, at.UTC(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}

	return nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Exercise, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page.Number))
	span.SetAttributes(attribute.Int("size", params.Page.Size))
	span.SetAttributes(attribute.String("name", params.Name))

	if err := params.Page.Validate(); err != nil {
		return nil, -1, err
	}

	countAll, err := r.Count(ctx, params)
	if err != nil {
		return nil, -1, err
	}

	limit, offset := params.Page.Window(countAll)
	span.SetAttributes(attribute.Int("count_all", countAll))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercise`+exerciseFilter+`
			ORDER BY performed_at DESC
			LIMIT $6
			OFFSET $7;`,
		params.UserID, params.Range.From, params.Range.To,
		params.Visibility.IncludesDeleted(), params.Name,
		limit, offset,
	)
	if err != nil {
		return nil, -1, err
	}

	exercises, err := rows2exercises(rows)
	if err != nil {
		return nil, -1, err
	}

	return exercises, countAll, nil
}

func (r *Repo) Count(ctx context.Context, params ListParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM exercise`+exerciseFilter+`;`,
		params.UserID, params.Range.From, params.Range.To,
		params.Visibility.IncludesDeleted(), params.Name,
	).Scan(&count); err != nil {
		return -1, fmt.Errorf("count exercises: %w", err)
	}

	return count, nil
}

func rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	defer rows.Close()

	var exercises []Exercise
	for rows.Next() {
		var (
			e         Exercise
			deletedAt *time.Time
			deletedBy *uuid.UUID
		)
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Name, &e.DurationMinutes, &e.CaloriesBurned, &e.PerformedAt,
			&e.CreatedAt, &e.UpdatedAt, &deletedAt, &deletedBy,
		); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		e.Deleted = records.DeletionFromColumns(deletedAt, deletedBy)
		exercises = append(exercises, e)
	}

	if err := rows.Err(); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return exercises, nil
}
