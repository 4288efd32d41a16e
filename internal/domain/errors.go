package domain

import "errors"

var (
	// ErrUnknownSource is returned for a market without a sync pipeline
	ErrUnknownSource = errors.New("unknown source")

	// ErrRunInProgress is returned when a source already has a running sync
	ErrRunInProgress = errors.New("sync already running for source")

	// ErrCleanupInProgress is returned when an image cleanup is already running
	ErrCleanupInProgress = errors.New("image cleanup already running")

	// ErrUnauthorized is returned when an upstream rejects our credentials
	ErrUnauthorized = errors.New("upstream rejected credentials")

	// ErrNotFound is returned when an upstream has no such offer
	ErrNotFound = errors.New("offer not found")

	// ErrMalformedResponse is returned when an upstream body cannot be decoded
	ErrMalformedResponse = errors.New("malformed upstream response")

	// ErrInvalidRecord is returned when a raw offer cannot be normalized
	ErrInvalidRecord = errors.New("invalid vehicle record")

	// ErrDomainNotAllowed is returned when an image host is not on the proxy allowlist
	ErrDomainNotAllowed = errors.New("image domain not allowed")

	// ErrImageExpired is returned for a signed image URL past its expiry
	ErrImageExpired = errors.New("image url expired")

	// ErrInvalidURL is returned for image URLs that cannot be parsed
	ErrInvalidURL = errors.New("invalid image url")
)
