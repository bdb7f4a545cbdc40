package dummy

import (
	"context"
	"encoding/json"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logRecorder struct {
	messages []string
}

func (l *logRecorder) Info(message string) {
	l.messages = append(l.messages, message)
}

func Test_Provider_Update(t *testing.T) {
	t.Parallel()

	logger := &logRecorder{}
	provider, err := New(json.RawMessage(`{"domains":["a.example.com","b.example.com"]}`), logger)
	require.NoError(t, err)

	ipv4 := netip.MustParseAddr("203.0.113.1")
	ipv6 := netip.MustParseAddr("2001:db8::1")

	updated, err := provider.Update(context.Background(), nil, ipv4, ipv6)

	require.NoError(t, err)
	assert.Equal(t, []netip.Addr{ipv4, ipv6}, updated)
	assert.Equal(t, []string{
		"simulating update of a.example.com, b.example.com with IP addresses 203.0.113.1 2001:db8::1",
	}, logger.messages)
}
