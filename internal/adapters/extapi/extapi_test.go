package extapi_test

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketfin/pocket_finance_app/internal/adapters/extapi"
	"github.com/pocketfin/pocket_finance_app/internal/apperrors"
)

func TestGetJSON_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"value": 42}`))
	}))
	defer srv.Close()

	var out struct {
		Value int `json:"value"`
	}
	err := extapi.GetJSON(context.Background(), srv.Client(), srv.URL, &out)

	require.NoError(t, err)
	assert.Equal(t, 42, out.Value)
}

func TestGetJSON_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	var out struct{}
	err := extapi.GetJSON(context.Background(), srv.Client(), srv.URL, &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrServer)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestGetJSON_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"value": `))
	}))
	defer srv.Close()

	var out struct{}
	err := extapi.GetJSON(context.Background(), srv.Client(), srv.URL, &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDecode)
}

func TestGetJSON_ConnectionRefused(t *testing.T) {
	// Reserve a port, then close it so the connection is refused.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := "http://" + ln.Addr().String()
	ln.Close()

	var out struct{}
	err = extapi.GetJSON(context.Background(), http.DefaultClient, addr, &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNetwork)
	assert.Contains(t, err.Error(), "no internet connection")
}

func TestGetJSON_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := &http.Client{Timeout: 50 * time.Millisecond}
	var out struct{}
	err := extapi.GetJSON(context.Background(), client, srv.URL, &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNetwork)
	assert.Contains(t, err.Error(), "request timed out")
}

func TestGetJSON_Cancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	var out struct{}
	err := extapi.GetJSON(ctx, srv.Client(), srv.URL, &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrCancelled)
}

func TestClassifyTransportErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantIs   error
		contains string
	}{
		{"cancelled", context.Canceled, apperrors.ErrCancelled, ""},
		{"deadline", context.DeadlineExceeded, apperrors.ErrNetwork, "request timed out"},
		{"refused", syscall.ECONNREFUSED, apperrors.ErrNetwork, "no internet connection"},
		{"unreachable", syscall.ENETUNREACH, apperrors.ErrNetwork, "no internet connection"},
		{"dns", &net.DNSError{Err: "no such host", Name: "nope.invalid"}, apperrors.ErrNetwork, "no internet connection"},
		{"generic", assertErr{}, apperrors.ErrNetwork, "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extapi.ClassifyTransportErr(tt.err)
			assert.ErrorIs(t, got, tt.wantIs)
			if tt.contains != "" {
				assert.Contains(t, got.Error(), tt.contains)
			}
		})
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "boom" }
