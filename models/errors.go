package models

// ValidationError reports missing or mismatched input detected before any
// external call.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// AuthError reports a rejection by the auth provider, or a failed profile
// write during registration.
type AuthError struct {
	Msg string
	Err error
}

func (e *AuthError) Error() string { return e.Msg }
func (e *AuthError) Unwrap() error { return e.Err }

// SubmitError reports a failed order write. Msg is the store's message.
type SubmitError struct {
	Msg string
	Err error
}

func (e *SubmitError) Error() string { return e.Msg }
func (e *SubmitError) Unwrap() error { return e.Err }

// FetchError reports a failed catalog or profile read.
type FetchError struct {
	Msg string
	Err error
}

func (e *FetchError) Error() string { return e.Msg }
func (e *FetchError) Unwrap() error { return e.Err }
