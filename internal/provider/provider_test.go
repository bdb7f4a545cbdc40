package provider

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/qdm12/dynners/internal/models"
	"github.com/qdm12/dynners/internal/provider/constants"
	"github.com/qdm12/dynners/internal/provider/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(string) {}

func Test_New(t *testing.T) {
	t.Parallel()

	environment := Environment{
		UserAgent:  "agent",
		UpdateRate: time.Minute,
		Logger:     noopLogger{},
	}

	testCases := map[string]struct {
		service    models.Provider
		data       string
		text       string
		errWrapped error
		errMessage string
	}{
		"unknown": {
			service:    "router_1",
			data:       `{}`,
			errWrapped: ErrProviderUnknown,
			errMessage: "unknown provider: router_1",
		},
		"invalid_settings": {
			service:    constants.Cloudflare,
			data:       `{"domains":"a.example.com"}`,
			errWrapped: errors.ErrTokenNotSet,
			errMessage: "token is not set",
		},
		"dummy": {
			service: constants.Dummy,
			data:    `{"domains":["a.example.com","b.example.com"]}`,
			text:    "dummy for a.example.com,b.example.com",
		},
		"dyndns": {
			service: constants.DNSOMatic,
			data:    `{"username":"user","password":"pass","domains":"a.example.com"}`,
			text:    "DNS-O-Matic for a.example.com",
		},
		"linode": {
			service: constants.Linode,
			data:    `{"token":"secret","domains":"a.example.com"}`,
			text:    "Linode for a.example.com",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			provider, err := New(testCase.service,
				json.RawMessage(testCase.data), environment)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
				return
			}
			require.NotNil(t, provider)
			assert.Equal(t, testCase.text, provider.String())
		})
	}
}

func Test_ProviderChoices(t *testing.T) {
	t.Parallel()

	environment := Environment{Logger: noopLogger{}}
	for _, service := range constants.ProviderChoices() {
		_, err := New(service, json.RawMessage(`{}`), environment)
		assert.NotErrorIs(t, err, ErrProviderUnknown, service)
	}
}
