package update

import (
	"bytes"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/qdm12/dynners/internal/provider/utils"
)

type DebugLogger interface {
	Debug(s string)
}

// newLogClient returns a copy of the client which logs each request
// and response at the debug level, with credentials redacted.
func newLogClient(client *http.Client, logger DebugLogger) *http.Client {
	transport := client.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &http.Client{
		Timeout:       client.Timeout,
		CheckRedirect: client.CheckRedirect,
		Jar:           client.Jar,
		Transport: &loggingRoundTripper{
			proxied: transport,
			logger:  logger,
		},
	}
}

type loggingRoundTripper struct {
	proxied http.RoundTripper
	logger  DebugLogger
}

func (lrt *loggingRoundTripper) RoundTrip(request *http.Request) (
	response *http.Response, err error) {
	lrt.logger.Debug(requestToString(request))

	response, err = lrt.proxied.RoundTrip(request)
	if err != nil {
		return response, err
	}

	lrt.logger.Debug(responseToString(response))

	return response, nil
}

func requestToString(request *http.Request) (s string) {
	u := *request.URL
	if u.User != nil {
		u.User = nil
	}
	s = request.Method + " " + u.String()

	if len(request.Header) > 0 {
		s += " | headers: " + headerToString(request.Header)
	}

	if request.Body != nil && request.Body != http.NoBody {
		var bodyString string
		request.Body, bodyString = readAndResetBody(request.Body)
		s += " | body: " + bodyString
	}

	return s
}

func responseToString(response *http.Response) (s string) {
	s = response.Status

	if len(response.Header) > 0 {
		s += " | headers: " + headerToString(response.Header)
	}

	if response.Body != nil {
		var bodyString string
		response.Body, bodyString = readAndResetBody(response.Body)
		s += " | body: " + bodyString
	}

	return s
}

// headerToString returns the header keys sorted alphabetically
// with their values, redacting the authorization header.
func headerToString(header http.Header) (s string) {
	keys := make([]string, 0, len(header))
	for key := range header {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	headers := make([]string, len(keys))
	for i, key := range keys {
		value := strings.Join(header[key], ",")
		if http.CanonicalHeaderKey(key) == "Authorization" {
			value = "[redacted]"
		}
		headers[i] = key + ": " + value
	}
	return strings.Join(headers, "; ")
}

func readAndResetBody(body io.ReadCloser) (
	newBody io.ReadCloser, bodyString string) {
	b, err := io.ReadAll(body)
	_ = body.Close()
	if err != nil {
		return io.NopCloser(bytes.NewReader(b)),
			"error reading body: " + err.Error()
	}
	return io.NopCloser(bytes.NewReader(b)), utils.ToSingleLine(string(b))
}
