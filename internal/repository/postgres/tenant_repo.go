package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mlvd/authgate/internal/errs"
	"github.com/mlvd/authgate/internal/model"
)

// TenantRepo implements TenantRepository using PostgreSQL.
type TenantRepo struct{ db *DB }

// NewTenantRepo constructs a tenant repository.
func NewTenantRepo(db *DB) *TenantRepo { return &TenantRepo{db: db} }

// Get selects a tenant by its identifier.
func (r *TenantRepo) Get(ctx context.Context, id string) (*model.Tenant, error) {
	const q = `SELECT id, COALESCE(name, ''), COALESCE(status, '') FROM tenants WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, id)
	var t model.Tenant
	if err := row.Scan(&t.ID, &t.Name, &t.Status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}
