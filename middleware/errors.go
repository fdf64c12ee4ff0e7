package middleware

import "errors"

var (
	errNoClaims      = errors.New("user claims not found in context or invalid type")
	errMissingUserID = errors.New("missing 'user_id' claim in token")
	errInvalidUserID = errors.New("invalid 'user_id' claim in token")
	errMissingRole   = errors.New("missing 'role' claim in token")
	errInvalidRole   = errors.New("invalid 'role' claim in token")
)
