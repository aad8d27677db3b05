package repositories

import "errors"

// Sentinel errors returned by repository implementations. Handlers match on
// these with errors.Is to pick the HTTP status code.
var (
	// ErrMovieNotFound is returned when no movie matches the given ID.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrDuplicateTitle is returned when an insert or update would violate
	// the unique index on the movie title.
	ErrDuplicateTitle = errors.New("movie title already exists")
	// ErrUserNotFound is returned when no user matches the given email or ID.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when a registration would violate the
	// unique index on the user email.
	ErrDuplicateEmail = errors.New("email already in use")
)
