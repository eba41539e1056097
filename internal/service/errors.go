package service

import "errors"

var (
	// ErrAnalyticsMissing means a Link exists without its companion Analytics.
	// It signals a data-integrity fault, not a user error.
	ErrAnalyticsMissing = errors.New("analytics record missing for existing link")
	// ErrLinkNotFound is returned when no link exists for a short code
	ErrLinkNotFound = errors.New("link not found")
	// ErrInvalidURL is returned when the destination is not an absolute http(s) URL
	ErrInvalidURL = errors.New("invalid URL")
	// ErrInvalidCode is returned when a custom short code has the wrong format
	ErrInvalidCode = errors.New("invalid short code")
	// ErrCodeTaken is returned when a custom short code is already registered
	ErrCodeTaken = errors.New("short code already taken")
	// ErrInvalidWorkspace is returned when no workspace is given
	ErrInvalidWorkspace = errors.New("workspace_id is required")
	// ErrInvalidSchedule is returned for unparsable or inverted schedule windows
	ErrInvalidSchedule = errors.New("invalid schedule")
	// ErrInvalidTransferLimit is returned for a negative transfer limit
	ErrInvalidTransferLimit = errors.New("invalid transfer limit")
	// ErrInvalidPassword is returned for passwords bcrypt cannot hash
	ErrInvalidPassword = errors.New("password must be at most 72 bytes")
	// ErrMaxCapacityReached is returned when no free generated code is left
	ErrMaxCapacityReached = errors.New("maximum capacity reached")
)
