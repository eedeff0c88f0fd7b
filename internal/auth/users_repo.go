package auth

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
	"github.com/phuong-practice-projects/healthy-system/pkg"
)

type UsersRepo struct {
	db *pgxpool.Pool
}

func NewUsersRepo(db *pgxpool.Pool) *UsersRepo {
	return &UsersRepo{
		db: db,
	}
}

func (r *UsersRepo) Add(ctx context.Context, user User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.Audit = records.NewAudit(time.Now())
	}
	user.Email = NormalizeEmail(user.Email)
	span.SetAttributes(attribute.String("user.id", user.ID.String()))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO app_user (id, email, display_name, password_hash, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6);`,
		user.ID, user.Email, user.DisplayName, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return &user, nil
}

func (r *UsersRepo) Get(ctx context.Context, id uuid.UUID) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", id.String()))

	return r.getOne(ctx, `WHERE id = $1 AND deleted_at IS NULL`, id)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.getOne(ctx, `WHERE email = $1 AND deleted_at IS NULL`, NormalizeEmail(email))
}

func (r *UsersRepo) getOne(ctx context.Context, where string, arg any) (*User, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT id, email, display_name, password_hash, created_at, updated_at, deleted_at, deleted_by
			FROM app_user `+where,
		arg,
	)

	var (
		u         User
		deletedAt *time.Time
		deletedBy *uuid.UUID
	)
	if err := row.Scan(
		&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash,
		&u.CreatedAt, &u.UpdatedAt, &deletedAt, &deletedBy,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.Deleted = records.DeletionFromColumns(deletedAt, deletedBy)

	return &u, nil
}
