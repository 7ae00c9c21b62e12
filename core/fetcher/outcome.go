// ABOUTME: Outcome is the closed result taxonomy of one feed resolution
// ABOUTME: Exactly one of success, HTTP status error, too many redirects or error holds

package fetcher

import (
	"fmt"

	"feed-resolver/core/domain"
)

// OutcomeKind identifies which case of Outcome holds
type OutcomeKind int

const (
	// OutcomeSuccess carries a parsed feed
	OutcomeSuccess OutcomeKind = iota

	// OutcomeHTTPStatusError carries a terminal non-200, non-redirect status code
	OutcomeHTTPStatusError

	// OutcomeTooManyRedirects means the hop budget ran out
	OutcomeTooManyRedirects

	// OutcomeError carries any other failure
	OutcomeError
)

// String returns the stable name used in logs, metrics and API responses
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeHTTPStatusError:
		return "http_status_error"
	case OutcomeTooManyRedirects:
		return "too_many_redirects"
	case OutcomeError:
		return "error"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Outcome is the result of Fetcher.Resolve. Only the field matching Kind is set:
// Feed for OutcomeSuccess, StatusCode for OutcomeHTTPStatusError and Err for
// OutcomeError.
type Outcome struct {
	Kind       OutcomeKind
	Feed       *domain.Feed
	StatusCode int
	Err        error

	// URL is the last URL requested, or the URL that failed to normalize
	URL string

	// Hops is how many redirects and rediscoveries were consumed
	Hops int
}

// Success returns an outcome carrying a parsed feed
func Success(feed *domain.Feed) Outcome {
	return Outcome{Kind: OutcomeSuccess, Feed: feed}
}

// HTTPStatusError returns an outcome for a terminal HTTP status
func HTTPStatusError(code int) Outcome {
	return Outcome{Kind: OutcomeHTTPStatusError, StatusCode: code}
}

// TooManyRedirects returns an outcome for an exhausted hop budget
func TooManyRedirects() Outcome {
	return Outcome{Kind: OutcomeTooManyRedirects}
}

// Failure returns an outcome carrying any other error
func Failure(err error) Outcome {
	return Outcome{Kind: OutcomeError, Err: err}
}

// IsSuccess returns true if a feed was resolved
func (o Outcome) IsSuccess() bool {
	return o.Kind == OutcomeSuccess
}

// AsError describes a failed outcome. It returns nil for OutcomeSuccess, so an
// Outcome can be turned into a plain error at API boundaries.
func (o Outcome) AsError() error {
	switch o.Kind {
	case OutcomeSuccess:
		return nil
	case OutcomeHTTPStatusError:
		return fmt.Errorf("feed request returned HTTP %d", o.StatusCode)
	case OutcomeTooManyRedirects:
		return fmt.Errorf("too many redirects (more than %d hops)", MaxHops)
	default:
		if o.Err == nil {
			return fmt.Errorf("feed resolution failed")
		}
		return o.Err
	}
}

// String implements fmt.Stringer
func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeSuccess:
		return fmt.Sprintf("success(%s, %d posts)", o.URL, o.Feed.PostCount())
	case OutcomeHTTPStatusError:
		return fmt.Sprintf("http_status_error(%d)", o.StatusCode)
	case OutcomeError:
		return fmt.Sprintf("error(%v)", o.Err)
	default:
		return o.Kind.String()
	}
}

// at records where the resolution ended
func (o Outcome) at(url string, hops int) Outcome {
	o.URL = url
	o.Hops = hops
	return o
}
