package session

import "errors"

// Category sentinels for flow errors. Match with errors.Is; the concrete
// error's message is what the UI shows inline.
var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("account not found")
	ErrAuth          = errors.New("authentication failed")
	ErrAccountExists = errors.New("account already exists")
)

// User-facing messages. The wording is part of the UI contract; screens show
// these strings verbatim.
const (
	msgFillAllFields   = "Please fill in all fields."
	msgInvalidEmail    = "Please enter a valid email address."
	msgLoginPassword   = "Password must be at least 6 characters."
	msgNoAccount       = "No account found with this email."
	msgWrongPassword   = "Incorrect password. Please try again."
	msgShortName       = "Please enter your full name."
	msgInvalidPhone    = "Please enter a valid phone number."
	msgSignupPassword  = "Password must be at least 8 characters."
	msgNeedUppercase   = "Password must contain at least one uppercase letter."
	msgNeedDigit       = "Password must contain at least one number."
	msgDuplicateSignup = "An account with this email already exists. Please sign in."
)

// FlowError is a recoverable login/register failure. It is always returned,
// never panicked, so callers need no recovery logic; Error() is the exact
// string to display.
type FlowError struct {
	kind    error
	message string
}

func newFlowError(kind error, message string) *FlowError {
	return &FlowError{kind: kind, message: message}
}

func (e *FlowError) Error() string { return e.message }

// Is lets errors.Is match the category sentinel.
func (e *FlowError) Is(target error) bool { return target == e.kind }
