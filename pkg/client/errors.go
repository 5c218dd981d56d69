package client

import (
	"errors"
	"fmt"
)

var (
	// ErrCredentialExpired reports that the remote rejected the access
	// token. The invoker refreshes once and retries once on this error;
	// a second occurrence is terminal.
	ErrCredentialExpired = errors.New("client: credential expired")

	// ErrNoCurrentUser reports that no caller identity is available, so
	// no remote lookup was attempted.
	ErrNoCurrentUser = errors.New("client: no current user")

	// ErrUserNotFound reports that the user directory has no record for
	// the requested subject.
	ErrUserNotFound = errors.New("client: user not found")
)

// RefreshFailedError wraps the error that aborted a credential refresh.
// Callers seeing this must re-authenticate.
type RefreshFailedError struct {
	Cause error
}

func (e *RefreshFailedError) Error() string {
	return fmt.Sprintf("client: credential refresh failed: %v", e.Cause)
}

func (e *RefreshFailedError) Unwrap() error {
	return e.Cause
}
