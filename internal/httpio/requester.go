package httpio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fieldbotics/robowire/internal/wire"
)

// Requester issues text-query requests against a device's HTTP interface.
// It owns the base URL and maps network, timeout, and HTTP-level failures
// onto the wire error taxonomy so codecs see the same error classes as
// over a serial channel.
type Requester struct {
	base   string
	client Client
}

// NewRequester creates a Requester for the device at base (scheme + host,
// no trailing slash), using the given client.
func NewRequester(base string, client Client) *Requester {
	if client == nil {
		client = NewStandardClient(nil)
	}
	return &Requester{base: base, client: client}
}

// Query issues GET base+path?query and returns the body text. A network
// failure is a *wire.TransportError, a deadline expiry is a
// *wire.TimeoutError, and a non-200 status is a *wire.FormatError (the
// device's CGI layer replies 200 even for command failures, so anything
// else means we are not talking to the expected firmware).
func (r *Requester) Query(path string, values url.Values, timeout time.Duration) (string, error) {
	u := r.base + path
	if encoded := values.Encode(); encoded != "" {
		u += "?" + encoded
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", &wire.TransportError{Op: "send", Err: err}
	}

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isURLTimeout(err) {
			return "", &wire.TimeoutError{Op: "query", Elapsed: time.Since(start)}
		}
		return "", &wire.TransportError{Op: "send", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", wire.Formatf("unexpected HTTP status %d for %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &wire.TransportError{Op: "receive", Err: err}
	}
	return string(body), nil
}

// isURLTimeout reports whether err is a url.Error with its timeout flag
// set, which the http client returns instead of context.DeadlineExceeded
// on some paths.
func isURLTimeout(err error) bool {
	var uerr *url.Error
	return errors.As(err, &uerr) && uerr.Timeout()
}

// String describes the requester target for logs.
func (r *Requester) String() string {
	return fmt.Sprintf("httpio.Requester(%s)", r.base)
}
