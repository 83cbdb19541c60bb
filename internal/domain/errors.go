package domain

import "errors"

// Sentinel errors shared across services and repositories. Handlers map
// these to HTTP statuses in one place.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a unique-constraint violation (duplicate
	// email, slug, page key, ...).
	ErrConflict = errors.New("already exists")

	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSelfDelete indicates a user tried to delete their own account.
	ErrSelfDelete = errors.New("you cannot delete your own account")

	// ErrAlreadySubscribed indicates the email is already on the
	// newsletter list with an active subscription.
	ErrAlreadySubscribed = errors.New("email is already subscribed")
)
