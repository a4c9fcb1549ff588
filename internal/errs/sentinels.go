// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrValidation indicates malformed or missing request fields; storage is never touched.
	ErrValidation = errors.New("missing fields")

	// ErrUnauthorized indicates failed authentication. It deliberately covers
	// both "no such user" and "wrong password" so responses cannot be used to
	// enumerate accounts.
	ErrUnauthorized = errors.New("invalid credentials")

	// ErrDisabled indicates an inactive tenant or user account.
	ErrDisabled = errors.New("disabled")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrTenantNotFound indicates the tenant does not exist (registration path).
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrAlreadyExists indicates the (tenant, email) pair is already registered.
	ErrAlreadyExists = errors.New("already registered")

	// ErrCipherKey indicates cipher key material is absent or not 32 bytes.
	ErrCipherKey = errors.New("cipher key missing or invalid")

	// ErrNoCompatibleSchema indicates every insert variant was rejected with
	// an unknown-column error.
	ErrNoCompatibleSchema = errors.New("no compatible schema")
)
