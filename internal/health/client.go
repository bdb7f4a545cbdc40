package health

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
)

var ErrUnhealthy = errors.New("unhealthy")

// Query sends an HTTP request to the health server of another
// instance of the program listening on address, and returns an
// error if it is not healthy.
func Query(ctx context.Context, client *http.Client, address string) (err error) {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("splitting health server address: %w", err)
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "127.0.0.1"
	}
	url := "http://" + net.JoinHostPort(host, port)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	response, err := client.Do(request)
	if err != nil {
		return fmt.Errorf("doing request: %w", err)
	}

	if response.StatusCode == http.StatusOK {
		_ = response.Body.Close()
		return nil
	}

	b, err := io.ReadAll(response.Body)
	_ = response.Body.Close()
	if err != nil {
		return fmt.Errorf("%w: %s: reading body: %w", ErrUnhealthy, response.Status, err)
	}
	return fmt.Errorf("%w: %s", ErrUnhealthy, strings.TrimSpace(string(b)))
}
