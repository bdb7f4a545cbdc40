package ip

import (
	"net/http"
	"testing"

	"github.com/qdm12/dynners/internal/ipversion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_New(t *testing.T) {
	t.Parallel()

	environment := Environment{
		Shell:      "/bin/sh",
		UserAgent:  "agent",
		Client:     http.DefaultClient,
		Commander:  NewShellCommander(),
		Enumerator: NewOSEnumerator(),
	}

	testCases := map[string]struct {
		settings   Settings
		sourceStr  string
		errWrapped error
		errMessage string
	}{
		"unknown_method": {
			settings:   Settings{Version: ipversion.IP4, Method: "carrier-pigeon"},
			errWrapped: ErrMethodUnknown,
			errMessage: `IP method is unknown: "carrier-pigeon"`,
		},
		"exec": {
			settings:  Settings{Version: ipversion.IP4, Method: MethodExec, Command: "echo 1.2.3.4"},
			sourceStr: `ipv4 from command "echo 1.2.3.4"`,
		},
		"interface_default_mask": {
			settings:  Settings{Version: ipversion.IP6, Method: MethodInterface, Interface: "eth0"},
			sourceStr: "ipv6 from interface eth0 matching ::/0",
		},
		"interface_bad_mask": {
			settings: Settings{Version: ipversion.IP4, Method: MethodInterface,
				Interface: "eth0", Matches: "10.0.0.0"},
			errWrapped: ErrNetworkNotValid,
			errMessage: `network mask is not valid: mask is not specified: in "10.0.0.0"`,
		},
		"http_bad_regex": {
			settings: Settings{Version: ipversion.IP4, Method: MethodHTTP,
				URL: "https://example.com", Regex: "(("},
			errWrapped: ErrRegexNotValid,
			errMessage: "regex is not valid: error parsing regexp: missing closing ): `((`",
		},
		"http": {
			settings: Settings{Version: ipversion.IP4, Method: MethodHTTP,
				URL: "https://example.com", Regex: "(.*)"},
			sourceStr: "ipv4 from https://example.com",
		},
		"dns_unknown_provider": {
			settings:   Settings{Version: ipversion.IP4, Method: MethodDNS, DNSProvider: "google"},
			errWrapped: ErrDNSProviderUnset,
			errMessage: `DNS provider is unknown: "google"`,
		},
		"dns": {
			settings:  Settings{Version: ipversion.IP6, Method: MethodDNS, DNSProvider: DNSProviderCloudflare},
			sourceStr: "ipv6 from DNS provider cloudflare",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			source, err := New(testCase.settings, environment)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
				return
			}
			require.NotNil(t, source)
			assert.Equal(t, testCase.sourceStr, source.String())
			assert.Equal(t, testCase.settings.Version, source.Version())
		})
	}
}
