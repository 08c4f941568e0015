// Package extapi holds shared plumbing for the upstream HTTP API clients:
// one GET per logical call, JSON decode, and mapping of failures onto the
// apperrors taxonomy.
package extapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"syscall"

	"github.com/pocketfin/pocket_finance_app/internal/apperrors"
)

// GetJSON performs an HTTP GET and unmarshals the JSON response body into v.
// Transport failures map to ErrNetwork (or ErrCancelled for a cancelled
// context), non-2xx statuses to ErrServer, and unmarshal failures to ErrDecode.
func GetJSON(ctx context.Context, client *http.Client, addr string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return ClassifyTransportErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %s", apperrors.ErrServer, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ClassifyTransportErr(err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrDecode, err)
	}
	return nil
}

// ClassifyTransportErr maps a transport-layer error onto the apperrors
// taxonomy. "not connected" and "timed out" get distinguished messages; every
// other transport failure falls back to a generic network error carrying the
// underlying description.
func ClassifyTransportErr(err error) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", apperrors.ErrCancelled, err)
	}

	var nerr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &nerr) && nerr.Timeout()) {
		return fmt.Errorf("%w: request timed out", apperrors.ErrNetwork)
	}

	var dnsErr *net.DNSError
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ENETUNREACH) || errors.As(err, &dnsErr) {
		return fmt.Errorf("%w: no internet connection", apperrors.ErrNetwork)
	}

	return fmt.Errorf("%w: %v", apperrors.ErrNetwork, err)
}
