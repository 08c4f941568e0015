package exchangerate_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketfin/pocket_finance_app/internal/adapters/extapi/exchangerate"
	"github.com/pocketfin/pocket_finance_app/internal/apperrors"
)

func TestConvert_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/convert", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("from"))
		assert.Equal(t, "EUR", r.URL.Query().Get("to"))
		assert.Equal(t, "100", r.URL.Query().Get("amount"))
		w.Write([]byte(`{"success": true, "result": 92.5}`))
	}))
	defer srv.Close()

	client := exchangerate.NewClient(srv.URL, "test-key", srv.Client())
	result, err := client.Convert(context.Background(), "USD", "EUR", 100)

	require.NoError(t, err)
	assert.Equal(t, 92.5, result)
}

// success:false with error info surfaces the info string as a server error.
func TestConvert_SuccessFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "error": {"info": "You have exceeded your request allowance."}}`))
	}))
	defer srv.Close()

	client := exchangerate.NewClient(srv.URL, "test-key", srv.Client())
	_, err := client.Convert(context.Background(), "USD", "EUR", 100)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrServer)
	assert.Contains(t, err.Error(), "You have exceeded your request allowance.")
}

func TestConvert_SuccessFalseWithoutInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false}`))
	}))
	defer srv.Close()

	client := exchangerate.NewClient(srv.URL, "test-key", srv.Client())
	_, err := client.Convert(context.Background(), "USD", "EUR", 100)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrServer)
	assert.Contains(t, err.Error(), "conversion failed")
}

// success:true but no numeric result is a decode error, not a server one.
func TestConvert_MissingResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	client := exchangerate.NewClient(srv.URL, "test-key", srv.Client())
	_, err := client.Convert(context.Background(), "USD", "EUR", 100)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDecode)
}

// Pair keys like "USDEUR" come back as bare target codes.
func TestFetchLiveRates_NormalizesPairKeys(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/live", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("source"))
		w.Write([]byte(`{"success": true, "source": "USD", "quotes": {"USDEUR": 0.92, "USDUAH": 41.3, "USDGBP": 0.79}}`))
	}))
	defer srv.Close()

	client := exchangerate.NewClient(srv.URL, "test-key", srv.Client())
	rates, err := client.FetchLiveRates(context.Background(), "USD")

	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"EUR": 0.92, "UAH": 41.3, "GBP": 0.79}, rates)
}

func TestFetchLiveRates_SuccessFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "error": {"info": "invalid access key"}}`))
	}))
	defer srv.Close()

	client := exchangerate.NewClient(srv.URL, "test-key", srv.Client())
	_, err := client.FetchLiveRates(context.Background(), "USD")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrServer)
	assert.Contains(t, err.Error(), "invalid access key")
}
