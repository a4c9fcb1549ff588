// Package service contains the authentication gate orchestrating lookups,
// status checks, and credential verification.
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/mlvd/authgate/internal/crypto"
	"github.com/mlvd/authgate/internal/errs"
	"github.com/mlvd/authgate/internal/model"
	"github.com/mlvd/authgate/internal/repository"
	"github.com/mlvd/authgate/internal/status"
)

// Defaults applied to newly registered users.
const (
	defaultRole   = "user"
	defaultStatus = "active"
)

// AuthService defines the login and registration operations.
type AuthService interface {
	// Login authenticates a (tenant, email, password) triple.
	Login(ctx context.Context, tenantID, email, password string) (*model.AuthenticatedUser, error)
	// Register creates a new user under an existing active tenant.
	Register(ctx context.Context, in RegisterInput) error
}

// RegisterInput carries the registration form fields. Phone and CountryCode
// are optional; the persister drops them when the schema has no columns for
// them.
type RegisterInput struct {
	TenantID    string
	Name        string
	Email       string
	Phone       string
	CountryCode string
	Password    string
}

// AuthServiceImpl implements AuthService against injected repositories.
type AuthServiceImpl struct {
	users   repository.UserRepository
	tenants repository.TenantRepository
	codec   *crypto.Codec
	log     *zap.Logger
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, tenants repository.TenantRepository, codec *crypto.Codec, log *zap.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, tenants: tenants, codec: codec, log: log}
}

// Login checks credentials for an active tenant and user. A missing user, a
// missing tenant, and a wrong password all surface as ErrUnauthorized so the
// response never reveals which part failed. The last-login stamp is best
// effort and never fails the login.
func (s *AuthServiceImpl) Login(ctx context.Context, tenantID, email, password string) (*model.AuthenticatedUser, error) {
	tenantID = strings.TrimSpace(tenantID)
	email = strings.ToLower(strings.TrimSpace(email))
	if tenantID == "" || email == "" || password == "" {
		return nil, errs.ErrValidation
	}

	u, err := s.users.GetByTenantAndEmail(ctx, tenantID, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrUnauthorized
		}
		return nil, err
	}

	t, err := s.tenants.Get(ctx, tenantID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			// user row without a tenant row: mask as bad credentials
			return nil, errs.ErrUnauthorized
		}
		return nil, err
	}
	if !status.Active(t.Status) || !status.Active(u.Status) {
		return nil, errs.ErrDisabled
	}

	if !s.codec.Verify(password, u.Password) {
		return nil, errs.ErrUnauthorized
	}

	if err := s.users.TouchLastLogin(ctx, u.ID); err != nil {
		s.log.Warn("touch last login", zap.String("user_id", u.ID.String()), zap.Error(err))
	}

	return &model.AuthenticatedUser{
		ID:       u.ID.String(),
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		TenantID: u.TenantID,
	}, nil
}

// Register validates input, gates on tenant status, rejects duplicates, and
// persists the user with an encrypted credential.
func (s *AuthServiceImpl) Register(ctx context.Context, in RegisterInput) error {
	in.TenantID = strings.TrimSpace(in.TenantID)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.TenantID == "" || in.Name == "" || in.Email == "" || in.Password == "" {
		return errs.ErrValidation
	}
	if !strings.Contains(in.Email, "@") {
		return errs.ErrValidation
	}

	t, err := s.tenants.Get(ctx, in.TenantID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.ErrTenantNotFound
		}
		return err
	}
	if !status.Active(t.Status) {
		return errs.ErrDisabled
	}

	taken, err := s.users.Exists(ctx, in.TenantID, in.Email)
	if err != nil {
		return err
	}
	if taken {
		return errs.ErrAlreadyExists
	}

	enc, err := s.codec.Encrypt(in.Password)
	if err != nil {
		return err
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return err
	}
	u := &model.User{
		ID:          uid,
		TenantID:    in.TenantID,
		Name:        in.Name,
		Email:       in.Email,
		Password:    enc,
		Role:        defaultRole,
		Status:      defaultStatus,
		Phone:       in.Phone,
		CountryCode: in.CountryCode,
	}
	// The duplicate check above is not atomic with this insert; two racing
	// registrations rely on the store's unique constraint, surfaced by the
	// repository as ErrAlreadyExists.
	return s.users.Insert(ctx, u)
}
