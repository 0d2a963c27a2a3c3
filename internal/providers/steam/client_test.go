package steam

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(baseURL string) *Client {
	return New(baseURL, zap.NewNop().Sugar())
}

func TestGetJSONRetriesTransientStatus(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	result, err := client.GlobalAchievementPercentages(context.Background(), 620)

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, true, result["ok"])
}

func TestGetJSONTransientStatusTwice(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GlobalAchievementPercentages(context.Background(), 620)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, 2, calls)
}

func TestGetJSONNonRetryableStatus(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("access denied"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GameSchema(context.Background(), 620, "bad-key", "english")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "access denied")
	assert.Equal(t, 1, calls, "non-transient status must not be retried")
}

func TestGetJSONBodyExcerptTruncated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(strings.Repeat("x", 500)))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GlobalAchievementPercentages(context.Background(), 620)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Len(t, apiErr.Body, 200)
}

func TestGetJSONMalformedJSON(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GlobalAchievementPercentages(context.Background(), 620)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.NotEmpty(t, apiErr.ParseErr)
	assert.Contains(t, err.Error(), "failed to parse response")
	assert.Equal(t, 1, calls, "a parse failure must not be retried")
}

func TestGetJSONNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listens on the URL anymore

	client := newTestClient(server.URL)
	_, err := client.GlobalAchievementPercentages(context.Background(), 620)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.NotEmpty(t, netErr.Reason)
}

func TestGetJSONCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(server.URL)
	_, err := client.GlobalAchievementPercentages(ctx, 620)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestEndpointQueries(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GlobalAchievementPercentages(context.Background(), 620)
	require.NoError(t, err)
	assert.Equal(t, "/ISteamUserStats/GetGlobalAchievementPercentagesForApp/v2/", gotPath)
	assert.Equal(t, []string{"620"}, gotQuery["gameid"])

	_, err = client.GameSchema(context.Background(), 620, "secret", "french")
	require.NoError(t, err)
	assert.Equal(t, "/ISteamUserStats/GetSchemaForGame/v2/", gotPath)
	assert.Equal(t, []string{"secret"}, gotQuery["key"])
	assert.Equal(t, []string{"620"}, gotQuery["appid"])
	assert.Equal(t, []string{"french"}, gotQuery["l"])
}
