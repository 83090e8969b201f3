package service

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserAlreadyExists    = errors.New("user with this email or username already exists")
	ErrUsernameOrEmailTaken = errors.New("username or email already exists")
	ErrSignupDisabled       = errors.New("signup is disabled")
	ErrNotFound             = errors.New("not found")
	ErrCannotDeleteSelf     = errors.New("cannot delete your own account")
	ErrAlreadySubscribed    = errors.New("email is already subscribed")
	ErrInvalidFileFormat    = errors.New("invalid file format. only jpeg, png, gif, webp are allowed")
	ErrFileSizeExceeded     = errors.New("file size exceeds limit")
	ErrNoPreview            = errors.New("could not generate preview")
)

// ValidationError carries the message shown to the client for a rejected request.
// It matches ErrInvalidInput with errors.Is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}
