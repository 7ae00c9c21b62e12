// ABOUTME: Custom error types for feed resolution failures
// ABOUTME: Lets callers tell transport, parse, discovery and redirect failures apart

package errors

import (
	"errors"
	"fmt"
)

// ErrMissingRedirectLocation is returned when a 3xx response carries no Location header
var ErrMissingRedirectLocation = errors.New("missing redirect location")

// ErrUnsupportedDiscovery is matched by every DiscoveryError
var ErrUnsupportedDiscovery = errors.New("unsupported discovery result")

// TransportError wraps a failure of the HTTP transport itself
type TransportError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError wraps a failure to read or parse fetched content
type ParseError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying parser error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidURLError is returned when a URL cannot be normalized for fetching
type InvalidURLError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid url %q: %v", e.URL, e.Err)
}

// Unwrap returns the underlying parse error
func (e *InvalidURLError) Unwrap() error {
	return e.Err
}

// DiscoveryReason says why HTML-based feed discovery failed
type DiscoveryReason string

const (
	// DiscoveryNoLink means the page had no feed <link> tag
	DiscoveryNoLink DiscoveryReason = "no feed link found"

	// DiscoveryInvalidLink means a link was found but did not resolve to an absolute URL
	DiscoveryInvalidLink DiscoveryReason = "feed link could not be resolved"
)

// DiscoveryError reports a failed attempt to find a feed inside an HTML page
type DiscoveryError struct {
	// URL is the page that was scanned
	URL string

	Reason DiscoveryReason

	// Link is the raw href when Reason is DiscoveryInvalidLink
	Link string
}

// Error implements the error interface
func (e *DiscoveryError) Error() string {
	if e.Link != "" {
		return fmt.Sprintf("%s: %s on %s (href %q)", ErrUnsupportedDiscovery, e.Reason, e.URL, e.Link)
	}
	return fmt.Sprintf("%s: %s on %s", ErrUnsupportedDiscovery, e.Reason, e.URL)
}

// Is makes every DiscoveryError match ErrUnsupportedDiscovery
func (e *DiscoveryError) Is(target error) bool {
	return target == ErrUnsupportedDiscovery
}

// ValidationError represents a validation error on caller input
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsTransport checks if an error is a TransportError
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsInvalidURL checks if an error is an InvalidURLError
func IsInvalidURL(err error) bool {
	var urlErr *InvalidURLError
	return errors.As(err, &urlErr)
}

// IsDiscovery checks if an error is a DiscoveryError
func IsDiscovery(err error) bool {
	var discoveryErr *DiscoveryError
	return errors.As(err, &discoveryErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// Reason returns a short, stable label for a failure cause, suitable for
// metrics and API responses.
func Reason(err error) string {
	var discoveryErr *DiscoveryError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &discoveryErr):
		if discoveryErr.Reason == DiscoveryInvalidLink {
			return "discovery_invalid_link"
		}
		return "discovery_no_link"
	case errors.Is(err, ErrMissingRedirectLocation):
		return "missing_redirect_location"
	case IsInvalidURL(err):
		return "invalid_url"
	case IsParse(err):
		return "parse"
	case IsTransport(err):
		return "transport"
	default:
		return "unknown"
	}
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
