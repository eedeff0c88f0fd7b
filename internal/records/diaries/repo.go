package diaries

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/phuong-practice-projects/healthy-system/internal/records"
	"github.com/phuong-practice-projects/healthy-system/internal/telemetry/tracing"
)

const diaryColumns = `id, user_id, title, content, written_at, created_at, updated_at, deleted_at, deleted_by`

const diaryFilter = `
	WHERE user_id = $1
		AND ($2::timestamptz IS NULL OR written_at >= $2)
		AND ($3::timestamptz IS NULL OR written_at <= $3)
		AND ($4::boolean OR deleted_at IS NULL)
		AND ($5::text = '' OR title ILIKE '%' || $5 || '%' OR content ILIKE '%' || $5 || '%')`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, diary Diary) (_ *Diary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diaries.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	diary.ID = uuid.New()
	diary.Audit = records.NewAudit(time.Now())
	diary.WrittenAt = diary.WrittenAt.UTC()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO diary (id, user_id, title, content, written_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		diary.ID, diary.UserID, diary.Title, diary.Content, diary.WrittenAt, diary.CreatedAt, diary.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert diary: %w", err)
	}

	return &diary, nil
}

func (r *Repo) Get(ctx context.Context, userID, id uuid.UUID) (_ *Diary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diaries.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+diaryColumns+` FROM diary WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}

	diaries, err := rows2diaries(rows)
	if err != nil {
		return nil, err
	}
	if len(diaries) != 1 {
		return nil, ErrDiaryNotFound
	}

	return &diaries[0], nil
}

func (r *Repo) Update(ctx context.Context, diary Diary) (_ *Diary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diaries.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", diary.ID.String()))

	rows, err := r.db.Query(
		ctx,
		`UPDATE diary SET title = $3, content = $4, written_at = $5, updated_at = $6
			WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
			RETURNING `+diaryColumns+`;`,
		diary.ID, diary.UserID, diary.Title, diary.Content, diary.WrittenAt.UTC(), time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	diaries, err := rows2diaries(rows)
	if err != nil {
		return nil, err
	}
	if len(diaries) != 1 {
		return nil, ErrDiaryNotFound
	}

	return &diaries[0], nil
}

func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID, at time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diaries.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE diary SET deleted_at = $3, deleted_by = $2, updated_at = $3
			WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL;`,
		id, userID, at.UTC(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDiaryNotFound
	}

	return nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Diary, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diaries.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page.Number))
	span.SetAttributes(attribute.Int("size", params.Page.Size))

	if err := params.Page.Validate(); err != nil {
		return nil, -1, err
	}

	args := []any{
		params.UserID, params.Range.From, params.Range.To,
		params.Visibility.IncludesDeleted(), params.Keyword,
	}

	var countAll int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM diary`+diaryFilter+`;`, args...).Scan(&countAll); err != nil {
		return nil, -1, fmt.Errorf("count diaries: %w", err)
	}

	limit, offset := params.Page.Window(countAll)
	rows, err := r.db.Query(
		ctx,
		`SELECT `+diaryColumns+` FROM diary`+diaryFilter+`
			ORDER BY written_at DESC
			LIMIT $6
			OFFSET $7;`,
		append(args, limit, offset)...,
	)
	if err != nil {
		return nil, -1, err
	}

	diaries, err := rows2diaries(rows)
	if err != nil {
		return nil, -1, err
	}

	return diaries, countAll, nil
}

func rows2diaries(rows pgx.Rows) ([]Diary, error) {
	defer rows.Close()

	var diaries []Diary
	for rows.Next() {
		var (
			d         Diary
			deletedAt *time.Time
			deletedBy *uuid.UUID
		)
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.Title, &d.Content, &d.WrittenAt,
			&d.CreatedAt, &d.UpdatedAt, &deletedAt, &deletedBy,
		); err != nil {
			return nil, fmt.Errorf("scan diary: %w", err)
		}
		d.Deleted = records.DeletionFromColumns(deletedAt, deletedBy)
		diaries = append(diaries, d)
	}

	return diaries, rows.Err()
}
