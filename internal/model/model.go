// Package model defines domain entities used by services and repositories.
package model

import (
	"github.com/gofrs/uuid/v5"
)

// Tenant is a customer/organization boundary. Users are unique per (tenant, email).
type Tenant struct {
	ID     string
	Name   string
	Status string // raw flag, classified by the status package
}

// User represents an account scoped to a tenant. Password holds either an
// AES-256-GCM envelope (iv:tag:ciphertext, hex-encoded) or a legacy plaintext
// credential created before encryption at rest was introduced.
type User struct {
	ID          uuid.UUID // PK
	TenantID    string
	Name        string
	Email       string // stored lowercase, unique within tenant
	Password    string // stored credential, never returned to clients
	Role        string
	Status      string
	Phone       string
	CountryCode string
}

// AuthenticatedUser is the login response view. It never carries the credential.
type AuthenticatedUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	TenantID string `json:"tenantId"`
}
