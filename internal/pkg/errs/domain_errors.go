package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Profile / dashboard access errors
	ErrProfileNotFound    = errors.New("profile not found")
	ErrProfileUnavailable = errors.New("profile temporarily unavailable")

	// Order errors
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderNotEditable = errors.New("order can no longer be edited")

	// Loyalty errors
	ErrLoyaltyAccountNotFound = errors.New("loyalty account not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
