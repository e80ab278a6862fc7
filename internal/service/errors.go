package service

import "errors"

var (
	// ErrNotFound is returned when the short code does not name a link
	ErrNotFound = errors.New("link not found")
	// ErrGone is returned when the link expired or reached its click cap
	ErrGone = errors.New("link is no longer available")
	// ErrUnauthorized is returned when the link password is missing or wrong
	ErrUnauthorized = errors.New("password required or incorrect")
	// ErrUnavailable is returned when the link store cannot be reached
	ErrUnavailable = errors.New("link store unavailable")
	// ErrForbidden is returned when the caller does not own the link
	ErrForbidden = errors.New("link belongs to another owner")
	// ErrInvalidURL is returned when the destination URL is invalid
	ErrInvalidURL = errors.New("invalid URL")
	// ErrInvalidLinkType is returned when the link type is neither redirect nor bio
	ErrInvalidLinkType = errors.New("invalid link type")
	// ErrInvalidSettings is returned when a link setting is out of range
	ErrInvalidSettings = errors.New("invalid link settings")
	// ErrInvalidExpiry is returned when expires_at cannot be parsed or is past
	ErrInvalidExpiry = errors.New("invalid expires_at")
	// ErrLinkLimitReached is returned when the owner holds the maximum number of links
	ErrLinkLimitReached = errors.New("link limit reached")
	// ErrMaxCapacityReached is returned when no free short code could be found
	ErrMaxCapacityReached = errors.New("maximum capacity reached")
	// ErrLinkGone is returned by the processor when the link of an event was deleted.
	// The event can never succeed and must not be retried.
	ErrLinkGone = errors.New("link of click event no longer exists")
	// ErrRepairUntracked accompanies an aggregation failure whose bucket could
	// not be recorded for repair
	ErrRepairUntracked = errors.New("rollup repair not tracked")
)
