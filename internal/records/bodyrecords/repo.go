package bodyrecords

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

const bodyRecordColumns = `id, user_id, weight_kg, body_fat_percent, recorded_at, created_at, updated_at, deleted_at, deleted_by`

const bodyRecordFilter = `
	WHERE user_id = $1
		AND ($2::timestamptz IS NULL OR recorded_at >= $2)
		AND ($3::timestamptz IS NULL OR recorded_at <= $3)
		AND ($4::boolean OR deleted_at IS NULL)`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, record BodyRecord) (_ *BodyRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyrecords.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	record.ID = uuid.New()
	record.Audit = records.NewAudit(time.Now())
	record.RecordedAt = record.RecordedAt.UTC()

	if _, err := r.db.Exec(
		ctx,
		`INSERT INTO body_record (id, user_id, weight_kg, body_fat_percent, recorded_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		record.ID, record.UserID, record.WeightKg, record.BodyFatPercent, record.RecordedAt,
		record.CreatedAt, record.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert body record: %w", err)
	}

	return &record, nil
}

func (r *Repo) Get(ctx context.Context, userID, id uuid.UUID) (_ *BodyRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyrecords.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+bodyRecordColumns+` FROM body_record WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}

	bodyRecords, err := rows2bodyRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(bodyRecords) != 1 {
		return nil, ErrBodyRecordNotFound
	}

	return &bodyRecords[0], nil
}

func (r *Repo) Update(ctx context.Context, record BodyRecord) (_ *BodyRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyrecords.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", record.ID.String()))

	rows, err := r.db.Query(
		ctx,
		`UPDATE body_record SET weight_kg = $3, body_fat_percent = $4, recorded_at = $5, updated_at = $6
			WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
			RETURNING `+bodyRecordColumns+`;`,
		record.ID, record.UserID, record.WeightKg, record.BodyFatPercent, record.RecordedAt.UTC(), time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	bodyRecords, err := rows2bodyRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(bodyRecords) != 1 {
		return nil, ErrBodyRecordNotFound
	}

	return &bodyRecords[0], nil
}

func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID, at time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyrecords.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id.String()))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE body_record SET deleted_at = $3, deleted_by = $2, updated_at = $3
			WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL;`,
		id, userID, at.UTC(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBodyRecordNotFound
	}

	return nil
}

func (r *Repo) List(ctx context.Context, params records.ListParams) (_ []BodyRecord, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyrecords.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page.Number))
	span.SetAttributes(attribute.Int("size", params.Page.Size))

	if err := params.Page.Validate(); err != nil {
		return nil, -1, err
	}

	var countAll int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM body_record`+bodyRecordFilter+`;`,
		params.UserID, params.Range.From, params.Range.To, params.Visibility.IncludesDeleted(),
	).Scan(&countAll); err != nil {
		return nil, -1, fmt.Errorf("count body records: %w", err)
	}

	limit, offset := params.Page.Window(countAll)
	rows, err := r.db.Query(
		ctx,
		`SELECT `+bodyRecordColumns+` FROM body_record`+bodyRecordFilter+`
			ORDER BY recorded_at DESC
			LIMIT $5
			OFFSET $6;`,
		params.UserID, params.Range.From, params.Range.To, params.Visibility.IncludesDeleted(),
		limit, offset,
	)
	if err != nil {
		return nil, -1, err
	}

	bodyRecords, err := rows2bodyRecords(rows)
	if err != nil {
		return nil, -1, err
	}

	return bodyRecords, countAll, nil
}

func rows2bodyRecords(rows pgx.Rows) ([]BodyRecord, error) {
	defer rows.Close()

	var bodyRecords []BodyRecord
	for rows.Next() {
		var (
			b         BodyRecord
			deletedAt *time.Time
			deletedBy *uuid.UUID
		)
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.WeightKg, &b.BodyFatPercent, &b.RecordedAt,
			&b.CreatedAt, &b.UpdatedAt, &deletedAt, &deletedBy,
		); err != nil {
			return nil, fmt.Errorf("scan body record: %w", err)
		}
		b.Deleted = records.DeletionFromColumns(deletedAt, deletedBy)
		bodyRecords = append(bodyRecords, b)
	}

	return bodyRecords, rows.Err()
}
