// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/mlvd/authgate/internal/model"
)

// UserRepository provides account lookups and schema-adaptive persistence.
type UserRepository interface {
	// GetByTenantAndEmail loads a user scoped to a tenant. The email must
	// already be lowercased by the caller.
	GetByTenantAndEmail(ctx context.Context, tenantID, email string) (*model.User, error)
	// Exists reports whether a (tenant, email) pair is taken.
	Exists(ctx context.Context, tenantID, email string) (bool, error)
	// Insert persists a new user, falling back across statement variants when
	// the live schema lacks optional columns.
	Insert(ctx context.Context, u *model.User) error
	// TouchLastLogin stamps the user's last login time. Callers treat
	// failures as non-fatal.
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}

// TenantRepository provides tenant lookups.
type TenantRepository interface {
	// Get loads a tenant by its identifier.
	Get(ctx context.Context, id string) (*model.Tenant, error)
}
