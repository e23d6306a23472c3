package services

import "errors"

// Domain errors surfaced to handlers, which translate them into HTTP
// status codes. Plain "record not found" conditions come through as
// gorm.ErrRecordNotFound.
var (
	ErrQuotaExceeded      = errors.New("maximum guest limit reached")
	ErrIntroLimitReached  = errors.New("maximum invitation limit reached")
	ErrDemoGuest          = errors.New("cannot delete demo guest")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidSubdomain   = errors.New("invalid subdomain")
	ErrSubdomainTaken     = errors.New("subdomain already in use")
	ErrInvalidCredentials = errors.New("incorrect username or password")
)
