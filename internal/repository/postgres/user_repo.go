package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/mlvd/authgate/internal/errs"
	"github.com/mlvd/authgate/internal/model"
)

// UserRepo implements UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

// insertVariant pairs an INSERT statement with the projection of user fields
// it binds.
type insertVariant struct {
	sql  string
	args func(u *model.User) []any
}

// insertVariants is ordered most complete first. Deployed schemas differ in
// which optional columns exist; a variant naming an absent column is skipped
// in favor of the next one.
var insertVariants = []insertVariant{
	{
		sql: `INSERT INTO users (id, tenant_id, name, email, password, status, role, phone, country_code)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		args: func(u *model.User) []any {
			return []any{u.ID, u.TenantID, u.Name, u.Email, u.Password, u.Status, u.Role, u.Phone, u.CountryCode}
		},
	},
	{
		sql: `INSERT INTO users (id, tenant_id, name, email, password, status, role, phone)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		args: func(u *model.User) []any {
			return []any{u.ID, u.TenantID, u.Name, u.Email, u.Password, u.Status, u.Role, u.Phone}
		},
	},
	{
		sql: `INSERT INTO users (id, tenant_id, name, email, password, status, role)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		args: func(u *model.User) []any {
			return []any{u.ID, u.TenantID, u.Name, u.Email, u.Password, u.Status, u.Role}
		},
	},
	{
		sql: `INSERT INTO users (id, email, password, status, role)
VALUES ($1, $2, $3, $4, $5)`,
		args: func(u *model.User) []any {
			return []any{u.ID, u.Email, u.Password, u.Status, u.Role}
		},
	},
}

// Insert tries each statement variant in order. An undefined-column error
// advances to the next variant; a unique violation maps to ErrAlreadyExists;
// any other error aborts immediately. Exhausting the list fails with
// ErrNoCompatibleSchema. Each attempt is a fresh statement, so at most one
// variant commits a row.
func (r *UserRepo) Insert(ctx context.Context, u *model.User) error {
	for _, v := range insertVariants {
		_, err := r.db.Pool.Exec(ctx, v.sql, v.args(u)...)
		if err == nil {
			return nil
		}
		if isUndefinedColumn(err) {
			continue
		}
		if isUniqueViolation(err) {
			return errs.ErrAlreadyExists
		}
		return err
	}
	return errs.ErrNoCompatibleSchema
}

// GetByTenantAndEmail selects a user scoped to a tenant by lowercased email.
// The tenant match is case-sensitive. Optional columns are not selected so
// the lookup works against narrow schemas too.
func (r *UserRepo) GetByTenantAndEmail(ctx context.Context, tenantID, email string) (*model.User, error) {
	const q = `
SELECT id, tenant_id, COALESCE(name, ''), email, COALESCE(password, ''), COALESCE(status, ''), COALESCE(role, '')
FROM users WHERE tenant_id=$1 AND email=$2`
	row := r.db.Pool.QueryRow(ctx, q, tenantID, email)
	var u model.User
	if err := row.Scan(&u.ID, &u.TenantID, &u.Name, &u.Email, &u.Password, &u.Status, &u.Role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Exists reports whether a (tenant, email) pair is already registered.
func (r *UserRepo) Exists(ctx context.Context, tenantID, email string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE tenant_id=$1 AND email=$2)`
	var taken bool
	if err := r.db.Pool.QueryRow(ctx, q, tenantID, email).Scan(&taken); err != nil {
		return false, err
	}
	return taken, nil
}

// TouchLastLogin stamps last_login_at on the user row.
func (r *UserRepo) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	const q = `UPDATE users SET last_login_at = now() WHERE id = $1`
	_, err := r.db.Pool.Exec(ctx, q, id)
	return err
}
