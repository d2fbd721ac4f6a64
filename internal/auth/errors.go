package auth

// Error is an authentication failure. Message is safe to show to users.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrInvalidEmail       = &Error{Code: "auth/invalid-email", Message: "the email address is badly formatted"}
	ErrWeakPassword       = &Error{Code: "auth/weak-password", Message: "the password must be at least 6 characters long"}
	ErrNameRequired       = &Error{Code: "auth/missing-name", Message: "please enter your name"}
	ErrEmailInUse         = &Error{Code: "auth/email-already-in-use", Message: "the email address is already in use by another account"}
	ErrInvalidCredentials = &Error{Code: "auth/invalid-credential", Message: "the email address or password is wrong"}
	ErrInvalidSession     = &Error{Code: "auth/invalid-session", Message: "you are not signed in or your session has expired"}
)
