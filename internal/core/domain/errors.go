package domain

import "errors"

// Not found errors
var (
	ErrBuildNotFound = errors.New("build not found")
)

// Conflict errors
var (
	ErrBuildActive = errors.New("cannot delete the active build")
)

// Validation errors
var (
	ErrInvalidVersion = errors.New("build version is required")
	ErrInvalidEmail   = errors.New("a valid email address is required")
)

// Infrastructure errors
var (
	ErrWaitlistUnavailable = errors.New("waitlist storage is not available")
)
