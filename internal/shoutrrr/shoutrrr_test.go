package shoutrrr

import (
	"errors"
	"testing"

	"github.com/containrrr/shoutrrr/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_withDefaultTitle(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		address      string
		defaultTitle string
		updated      string
		errMessage   string
	}{
		"empty_title_kept": {
			address:      "generic://example.com?title=",
			defaultTitle: "dynners",
			updated:      "generic://example.com?title=",
		},
		"title_kept": {
			address:      "generic://example.com?title=MyTitle",
			defaultTitle: "dynners",
			updated:      "generic://example.com?title=MyTitle",
		},
		"title_added": {
			address:      "generic://example.com",
			defaultTitle: "dynners",
			updated:      "generic://example.com?title=dynners",
		},
		"malformed": {
			address:    "generic://example.com/%zz",
			errMessage: `parsing address as URL: parse "generic://example.com/%zz": invalid URL escape "%zz"`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			updated, err := withDefaultTitle(testCase.address, testCase.defaultTitle)

			if testCase.errMessage != "" {
				assert.EqualError(t, err, testCase.errMessage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.updated, updated)
		})
	}
}

func Test_New(t *testing.T) {
	t.Parallel()

	client, err := New(Settings{})
	require.NoError(t, err)
	assert.Empty(t, client.serviceNames)
	assert.Equal(t, "dynners", client.title)

	// No service configured so these are no-ops.
	client.Launched(1)
	client.ServiceFailed("main", errors.New("test error"))

	_, err = New(Settings{Addresses: []string{"unknown://host"}})
	assert.ErrorContains(t, err, "validating settings: shoutrrr addresses: ")

	client, err = New(Settings{
		Addresses:    []string{"generic://example.com/path"},
		DefaultTitle: "title",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"generic"}, client.serviceNames)
}

type sent struct {
	message string
	title   string
}

type fakeSender struct {
	sent []sent
	errs []error
}

func (f *fakeSender) Send(message string, params *types.Params) []error {
	f.sent = append(f.sent, sent{message: message, title: (*params)["title"]})
	return f.errs
}

type errorLogs []string

func (e *errorLogs) Error(s string) { *e = append(*e, s) }

func Test_Client_events(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	var logs errorLogs
	client := &Client{
		sender:       sender,
		serviceNames: []string{"discord", "generic"},
		title:        "dynners",
		logger:       &logs,
	}

	client.Launched(2)
	client.ServiceFailed("main", errors.New("bad auth"))
	sender.errs = []error{nil, errors.New("connection refused")}
	client.Fatal(errors.New("no IPs were configured"))

	expected := []sent{
		{title: "dynners", message: "Launched with 2 DDNS services to update"},
		{title: "dynners: main failed", message: "DDNS service main failed, reason: bad auth"},
		{title: "dynners: fatal error", message: "no IPs were configured"},
	}
	assert.Equal(t, expected, sender.sent)
	assert.Equal(t, errorLogs{"generic: connection refused"}, logs)
}
