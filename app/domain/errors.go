package domain

import "errors"

// Domain errors
var (
	// Validation errors
	ErrValidation      = errors.New("validation failed")
	ErrInvalidCategory = errors.New("invalid category")

	// Article errors
	ErrArticleNotFound = errors.New("article not found")
	ErrDuplicateTitle  = errors.New("article with this title already exists")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUser      = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Credential verification errors, distinct so the transport layer can
	// report the exact failure kind
	ErrCredentialMissing          = errors.New("no credential supplied")
	ErrCredentialExpired          = errors.New("credential expired")
	ErrCredentialMalformed        = errors.New("credential malformed")
	ErrCredentialInvalidSignature = errors.New("credential signature invalid")

	// Ingestion errors
	ErrUnmappedCategory = errors.New("category has no provider mapping")
)
