package session

import "errors"

// ErrPostLoginProfileFetch means the credential exchange succeeded but the
// immediate profile fetch with the new token failed. The session has been
// torn down to anonymous. Surfaced as a distinct failure instead of being
// masked as a successful login.
var ErrPostLoginProfileFetch = errors.New("post-login profile fetch failed")

// ErrNotAuthenticated is returned by operations that need a current user.
var ErrNotAuthenticated = errors.New("not authenticated")

// AuthError is a failed credential exchange. Reason is user-displayable:
// the server's detail message when it sent one, a generic fallback
// otherwise. The session state is untouched when this is returned.
type AuthError struct {
	Reason string
	cause  error
}

func (e *AuthError) Error() string { return e.Reason }

func (e *AuthError) Unwrap() error { return e.cause }
