package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	globalPercentagesPath = "/ISteamUserStats/GetGlobalAchievementPercentagesForApp/v2/"
	gameSchemaPath        = "/ISteamUserStats/GetSchemaForGame/v2/"

	requestTimeout  = 20 * time.Second
	maxAttempts     = 2
	bodyExcerptSize = 200
)

// Transient statuses eligible for the single immediate retry.
var retryStatus = map[int]bool{
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// Client handles Steam Web API requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	log        *zap.SugaredLogger
}

// New creates a Steam Web API client rooted at baseURL.
func New(baseURL string, log *zap.SugaredLogger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: "steam-achievements/1.0",
		log:       log,
	}
}

// GlobalAchievementPercentages fetches global unlock percentages for appID.
// The endpoint needs no API key.
func (c *Client) GlobalAchievementPercentages(ctx context.Context, appID int) (map[string]interface{}, error) {
	params := url.Values{}
	params.Set("gameid", strconv.Itoa(appID))

	return c.getJSON(ctx, globalPercentagesPath, params)
}

// GameSchema fetches the achievement schema for appID in the given language.
func (c *Client) GameSchema(ctx context.Context, appID int, apiKey, lang string) (map[string]interface{}, error) {
	params := url.Values{}
	params.Set("key", apiKey)
	params.Set("appid", strconv.Itoa(appID))
	params.Set("l", lang)

	return c.getJSON(ctx, gameSchemaPath, params)
}

// getJSON makes an HTTP GET request and returns the parsed JSON body. A
// transport failure or a transient status gets one immediate retry; any other
// failure is terminal. The loop mirrors the attempt budget exactly: two
// requests, worst case.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values) (map[string]interface{}, error) {
	endpoint := c.baseURL + path + "?" + params.Encode()

	var lastErr string
	for attempt := 0; attempt < maxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			// An interrupted run must not burn the retry on a dead context.
			if ctx.Err() != nil {
				return nil, fmt.Errorf("request canceled: %w", ctx.Err())
			}
			lastErr = err.Error()
			c.log.Debugw("transport failure", "path", path, "attempt", attempt+1, "error", err)
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = readErr.Error()
			c.log.Debugw("failed to read response body", "path", path, "attempt", attempt+1, "error", readErr)
			continue
		}

		if retryStatus[resp.StatusCode] && attempt == 0 {
			lastErr = fmt.Sprintf("HTTP %d", resp.StatusCode)
			c.log.Debugw("transient status, retrying", "path", path, "status", resp.StatusCode)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return nil, &APIError{StatusCode: resp.StatusCode, Body: excerpt(body)}
		}

		var result map[string]interface{}
		if err := json.Unmarshal(body, &result); err != nil {
			return nil, &APIError{StatusCode: resp.StatusCode, ParseErr: err.Error()}
		}
		return result, nil
	}

	if lastErr == "" {
		lastErr = "unknown error"
	}
	return nil, &NetworkError{Reason: lastErr}
}

// excerpt truncates a response body for error messages.
func excerpt(body []byte) string {
	if len(body) > bodyExcerptSize {
		body = body[:bodyExcerptSize]
	}
	return string(body)
}
