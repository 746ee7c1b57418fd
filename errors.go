package finmarket

import (
	"errors"
	"fmt"
	"net"
)

// TransportError reports a failed HTTP exchange: the request never completed
// or its body could not be read.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Timeout reports whether the failure was the client timeout elapsing.
func (e *TransportError) Timeout() bool {
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// HTTPError reports a non-success status (>= 400) from the upstream service.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("GET %s: %d %s", e.URL, e.StatusCode, statusDetail(e.StatusCode))
}

// ParseError reports an upstream payload the client could not decode. Index
// is the position of the offending point or search item, -1 when the document
// as a whole is at fault. Field names the offending field.
type ParseError struct {
	Index int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("parse %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("parse %s at %d: %v", e.Field, e.Index, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrFrameUnavailable is returned by [ChartData.Frame] when no frame builder
// has been registered. Importing the finframe package registers one.
var ErrFrameUnavailable = errors.New("no frame builder registered: import github.com/rfuenzalida/finmarket-go/finframe")
