package errors

import "fmt"

var (
	// Core delivery failures.
	ErrEmptyIdentity      = fmt.Errorf("sender and recipient identities must be non-empty")
	ErrInvalidIdentity    = fmt.Errorf("identities must not contain ':'")
	ErrStorageUnavailable = fmt.Errorf("message storage unavailable")
	ErrNotAllowed         = fmt.Errorf("sender is not allowed to message this recipient")

	// Identity collaborator failures.
	ErrNotAuthenticated   = fmt.Errorf("no resolved identity for this call")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity requirements")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrTokenGeneration    = fmt.Errorf("failed to generate token")

	// Subscription failures.
	ErrInvalidSubscription = fmt.Errorf("subscription is missing an endpoint")

	ErrWorkerPanic  = fmt.Errorf("worker panic")
	ErrSlowConsumer = fmt.Errorf("connection buffer full, event dropped")
)
