// Package guard gates navigation to protected console views.
package guard

// Decision is the outcome of evaluating a navigation attempt.
type Decision int

const (
	// Allow lets the navigation through.
	Allow Decision = iota
	// RedirectLogin sends the user to the login view. The login view itself
	// is never guarded, so a redirect can never loop.
	RedirectLogin
)

// SessionState is the one bit of session the guard depends on.
type SessionState interface {
	IsAuthenticated() bool
}

// Check is a pure function of session state, evaluated on every navigation
// to a protected view. No side effects, no caching.
func Check(s SessionState) Decision {
	if s.IsAuthenticated() {
		return Allow
	}
	return RedirectLogin
}
