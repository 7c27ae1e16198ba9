package domain

import "errors"

// Sentinel errors for the landing page. Handlers map them to HTTP status codes.
var (
	ErrUnknownView      = errors.New("page view is unknown or already unmounted")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrUnknownSection   = errors.New("unknown reveal section")
	ErrTooManyViews     = errors.New("too many mounted page views")
	ErrInvalidParameter = errors.New("invalid request parameter")
)
