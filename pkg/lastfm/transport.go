package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// errorBody is the JSON error envelope Last.fm returns when a call
// fails. Failures can arrive with a non-2xx status or, for some error
// codes, with a 200 and this body.
type errorBody struct {
	Code    int    `json:"error"`
	Message string `json:"message"`
}

// call makes an HTTP GET request to the Last.fm API.
//
// It handles:
// - Query string construction (caller params + method + api_key + format)
// - Error envelope detection
// - Context cancellation
//
// The raw JSON body is returned for the service layer to decode.
// Calls are not retried; the caller is expected to be an idempotent
// batch job that can simply be re-run.
func (c *Client) call(ctx context.Context, method string, params map[string]string) ([]byte, error) {
	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}
	query.Set("method", method)
	query.Set("api_key", c.apiKey)
	query.Set("format", "json")

	c.logDebugf("lastfm: calling %s", method)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "musicdata/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// Prefer the API's own error envelope over the bare status code.
	var apiErr errorBody
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code != 0 {
		return nil, &Error{
			Code:    apiErr.Code,
			Message: apiErr.Message,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	c.logDebugf("lastfm: %s succeeded", method)
	return body, nil
}
