package alphavantage_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketfin/pocket_finance_app/internal/adapters/extapi/alphavantage"
)

var tickers = []string{"AAPL", "MSFT", "GOOG", "TSLA"}

func TestFetchNewsSentiment_Feed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/query", r.URL.Path)
		assert.Equal(t, "NEWS_SENTIMENT", r.URL.Query().Get("function"))
		assert.Equal(t, "AAPL,MSFT,GOOG,TSLA", r.URL.Query().Get("tickers"))
		w.Write([]byte(`{"feed": [
			{"title": "Apple launches new chip", "url": "https://example.com/a", "overall_sentiment_label": "Bullish", "source": "Example", "time_published": "20260827T120000"},
			{"title": "Markets flat", "summary": "Quiet day", "banner_image": "https://example.com/b.png"}
		]}`))
	}))
	defer srv.Close()

	client := alphavantage.NewClient(srv.URL, "test-key", tickers, srv.Client())
	payload, err := client.FetchNewsSentiment(context.Background())

	require.NoError(t, err)
	assert.True(t, payload.HasFeed)
	require.Len(t, payload.Feed, 2)
	assert.Equal(t, "Apple launches new chip", payload.Feed[0].Title)
	assert.Equal(t, "Bullish", payload.Feed[0].Sentiment)
	assert.Equal(t, "Quiet day", payload.Feed[1].Summary)
	// Sentiment defaulting happens downstream, not in the adapter.
	assert.Empty(t, payload.Feed[1].Sentiment)
}

// "feed": [] and a missing feed key are different payload shapes.
func TestFetchNewsSentiment_EmptyVersusAbsentFeed(t *testing.T) {
	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"feed": []}`))
	}))
	defer empty.Close()

	client := alphavantage.NewClient(empty.URL, "test-key", tickers, empty.Client())
	payload, err := client.FetchNewsSentiment(context.Background())
	require.NoError(t, err)
	assert.True(t, payload.HasFeed)
	assert.Empty(t, payload.Feed)

	absent := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer absent.Close()

	client = alphavantage.NewClient(absent.URL, "test-key", tickers, absent.Client())
	payload, err = client.FetchNewsSentiment(context.Background())
	require.NoError(t, err)
	assert.False(t, payload.HasFeed)
	assert.Nil(t, payload.Feed)
}

func TestFetchNewsSentiment_Note(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Note": "Thank you for using Alpha Vantage!"}`))
	}))
	defer srv.Close()

	client := alphavantage.NewClient(srv.URL, "test-key", tickers, srv.Client())
	payload, err := client.FetchNewsSentiment(context.Background())

	require.NoError(t, err)
	assert.False(t, payload.HasFeed)
	assert.Equal(t, "Thank you for using Alpha Vantage!", payload.Note)
}

func TestFetchNewsSentiment_Information(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Information": "API rate limit reached."}`))
	}))
	defer srv.Close()

	client := alphavantage.NewClient(srv.URL, "test-key", tickers, srv.Client())
	payload, err := client.FetchNewsSentiment(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "API rate limit reached.", payload.Information)
}
