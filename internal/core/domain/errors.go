package domain

import "errors"

var (
	// ErrInvalidCredentials covers both unknown username and wrong
	// password at login; the two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken is returned by the token codec when a presented
	// token fails to parse or its signature does not verify.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnauthorized is the single rejection kind for every bearer-token
	// failure: bad token, token referencing a missing user, or a repeat
	// verification attempt.
	ErrUnauthorized = errors.New("user not authorized, or invalid token")

	// ErrForbidden rejects a mutation attempted by a valid user who does
	// not own the targeted resource.
	ErrForbidden = errors.New("not allowed to perform this action")

	// ErrInvalidInput rejects structurally bad input that survived
	// transport-level validation.
	ErrInvalidInput = errors.New("invalid input")

	ErrUserExists       = errors.New("user already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrBusinessNotFound = errors.New("business not found")
	ErrProductNotFound  = errors.New("product not found")
)
