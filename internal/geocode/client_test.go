package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupResolvesBestMatch(t *testing.T) {
	var gotAgent, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotQuery = r.URL.Query().Get("q")
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		w.Write([]byte(`[{"display_name":"San Francisco, California","lat":"37.7790","lon":"-122.4194"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "tablewise-test/1.0", 5*time.Second)

	result, err := client.Lookup(context.Background(), "san francisco")

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "tablewise-test/1.0", gotAgent)
	assert.Equal(t, "san francisco", gotQuery)
	assert.Equal(t, "San Francisco, California", result.DisplayName)
	assert.InDelta(t, 37.779, result.Latitude, 0.001)
	assert.InDelta(t, -122.4194, result.Longitude, 0.001)
}

func TestLookupNoMatchReturnsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "tablewise-test/1.0", 5*time.Second)

	result, err := client.Lookup(context.Background(), "nowhere at all")

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestLookupRetriesRateLimiting(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`[{"display_name":"Somewhere","lat":"1.0","lon":"2.0"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "tablewise-test/1.0", 5*time.Second)

	result, err := client.Lookup(context.Background(), "somewhere")

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 2, calls)
}

func TestLookupBadCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"display_name":"Broken","lat":"not-a-number","lon":"2.0"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "tablewise-test/1.0", 5*time.Second)

	_, err := client.Lookup(context.Background(), "broken")

	assert.Error(t, err)
}
