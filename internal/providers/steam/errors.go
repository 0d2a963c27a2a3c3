package steam

import "fmt"

// APIError is returned when the Steam API answers with a non-200 status, or
// with a 200 body that is not valid JSON.
type APIError struct {
	StatusCode int
	Body       string // truncated body excerpt for non-200 responses
	ParseErr   string // set when a 200 body could not be parsed as JSON
}

func (e *APIError) Error() string {
	if e.ParseErr != "" {
		return fmt.Sprintf("failed to parse response: %s", e.ParseErr)
	}
	return fmt.Sprintf("Steam API request failed with status %d: %s", e.StatusCode, e.Body)
}

// NetworkError is returned when the retry budget is spent without ever
// getting a response; Reason carries the last transport failure.
type NetworkError struct {
	Reason string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error contacting Steam API: %s", e.Reason)
}
