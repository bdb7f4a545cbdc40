// Package healthchecksio pings a healthchecks.io check after
// each update cycle.
package healthchecksio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// New creates a new healthchecks.io client.
// If passed an empty uuid string, it acts as no-op implementation.
func New(httpClient *http.Client, baseURL, uuid string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		uuid:       uuid,
	}
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	uuid       string
}

var ErrStatusCode = errors.New("bad status code")

type State string

const (
	Ok    State = "ok"
	Start State = "start"
	Fail  State = "fail"
	Exit0 State = "0"
	Exit1 State = "1"
)

// maxBodySize is the maximum request body size healthchecks.io stores.
const maxBodySize = 100000

// Ping signals the state to healthchecks.io. The log, if not empty,
// is sent as request body and shows in the check events.
func (c *Client) Ping(ctx context.Context, state State, log string) (err error) {
	if c.uuid == "" {
		return nil
	}

	url := c.baseURL + "/" + c.uuid
	if state != Ok {
		url += "/" + string(state)
	}

	method := http.MethodGet
	var body io.Reader
	if log != "" {
		method = http.MethodPost
		if len(log) > maxBodySize {
			log = log[:maxBodySize]
		}
		body = strings.NewReader(log)
	}

	request, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		request.Header.Set("Content-Type", "text/plain; charset=utf-8")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("doing http request: %w", err)
	}

	err = response.Body.Close()
	if err != nil {
		return fmt.Errorf("closing response body: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrStatusCode, response.Status)
	}

	return nil
}
