package duckdns

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/netip"
	"strings"
	"testing"

	ddnserrors "github.com/qdm12/dynners/internal/provider/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(r *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func Test_New(t *testing.T) {
	t.Parallel()

	_, err := New(json.RawMessage(`{"domains":"home"}`), "")
	assert.ErrorIs(t, err, ddnserrors.ErrTokenNotSet)

	provider, err := New(json.RawMessage(`{"token":"abc","domains":["home","work"]}`), "")
	require.NoError(t, err)
	assert.Equal(t, "DuckDNS for home,work", provider.String())
}

func Test_Provider_Update(t *testing.T) {
	t.Parallel()

	ipv4 := netip.MustParseAddr("203.0.113.1")
	ipv6 := netip.MustParseAddr("2001:db8::1")

	testCases := map[string]struct {
		ipv4         netip.Addr
		ipv6         netip.Addr
		query        string
		body         string
		transportErr error
		updated      []netip.Addr
		errWrapped   error
		errMessage   string
	}{
		"ok_both": {
			ipv4:    ipv4,
			ipv6:    ipv6,
			query:   "domains=home&ip=203.0.113.1&ipv6=2001%3Adb8%3A%3A1&token=s3cret",
			body:    "OK",
			updated: []netip.Addr{ipv4, ipv6},
		},
		"ok_ipv6_only": {
			ipv6:    ipv6,
			query:   "domains=home&ipv6=2001%3Adb8%3A%3A1&token=s3cret",
			body:    "OK",
			updated: []netip.Addr{ipv6},
		},
		"ko": {
			ipv4:       ipv4,
			query:      "domains=home&ip=203.0.113.1&token=s3cret",
			body:       "KO",
			errWrapped: ddnserrors.ErrUnsuccessfulResponse,
			errMessage: "unsuccessful response: KO",
		},
		"transport_error_redacted": {
			ipv4:         ipv4,
			query:        "domains=home&ip=203.0.113.1&token=s3cret",
			transportErr: errors.New("test error"),
			errWrapped:   ddnserrors.ErrTransport,
			errMessage: `HTTP transport error: Get "https://www.duckdns.org/update?` +
				`domains=home&ip=203.0.113.1&token=[redacted]": test error`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			client := &http.Client{
				Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
					assert.Equal(t, "www.duckdns.org", r.URL.Host)
					assert.Equal(t, "/update", r.URL.Path)
					assert.Equal(t, testCase.query, r.URL.RawQuery)
					if testCase.transportErr != nil {
						return nil, testCase.transportErr
					}
					return &http.Response{
						StatusCode: http.StatusOK,
						Body:       io.NopCloser(strings.NewReader(testCase.body)),
					}, nil
				}),
			}

			provider := &Provider{
				token:   "s3cret",
				domains: []string{"home"},
			}

			updated, err := provider.Update(context.Background(), client,
				testCase.ipv4, testCase.ipv6)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
			assert.Equal(t, testCase.updated, updated)
		})
	}
}
