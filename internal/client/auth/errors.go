package auth

import "errors"

// Authentication failure modes. Both are local validation errors: the user
// corrects the input and retries, nothing needs to be rolled back.
var (
	// ErrDuplicateUser indicates that the username is already registered
	ErrDuplicateUser = errors.New("username already exists")

	// ErrInvalidCredentials indicates a wrong username/password pair
	ErrInvalidCredentials = errors.New("invalid credentials")
)
