package ip

import (
	"context"
	"errors"
	"net/netip"
	"testing"

	"github.com/qdm12/dynners/internal/ipversion"
	"github.com/qdm12/dynners/internal/netmask"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type enumeratorFunc func(iface string) ([]InterfaceAddress, error)

func (f enumeratorFunc) Addresses(iface string) ([]InterfaceAddress, error) {
	return f(iface)
}

func Test_interfaceSource_Resolve(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test error")

	addresses := []InterfaceAddress{
		{Address: netip.MustParseAddr("127.0.0.1")},
		{Address: netip.MustParseAddr("192.168.1.10")},
		{Address: netip.MustParseAddr("fe80::1")},
		{Address: netip.MustParseAddr("2001:db8::1")},
		{Address: netip.MustParseAddr("10.0.0.5")},
		{Address: netip.MustParseAddr("2001:db8::2"), Deprecated: true},
	}

	testCases := map[string]struct {
		version       ipversion.IPVersion
		mask          string
		addresses     []InterfaceAddress
		enumeratorErr error
		address       netip.Addr
		errWrapped    error
		errMessage    string
	}{
		"enumerator_error": {
			version:       ipversion.IP4,
			mask:          "0.0.0.0/0",
			enumeratorErr: errTest,
			errWrapped:    ErrInterface,
			errMessage:    "unable to obtain matching IP from interface: test error",
		},
		"last_ipv4_wins": {
			version:   ipversion.IP4,
			mask:      "0.0.0.0/0",
			addresses: addresses,
			address:   netip.MustParseAddr("10.0.0.5"),
		},
		"ipv4_within_network": {
			version:   ipversion.IP4,
			mask:      "192.168.0.0/16",
			addresses: addresses,
			address:   netip.MustParseAddr("192.168.1.10"),
		},
		"deprecated_ipv6_excluded": {
			version:   ipversion.IP6,
			mask:      "2000::/3",
			addresses: addresses,
			address:   netip.MustParseAddr("2001:db8::1"),
		},
		"no_match": {
			version:    ipversion.IP4,
			mask:       "172.16.0.0/12",
			addresses:  addresses,
			errWrapped: ErrInterface,
			errMessage: "unable to obtain matching IP from interface: " +
				"no ipv4 address matching 172.16.0.0/12 on interface eth0",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			matcher, err := netmask.Parse(testCase.mask, testCase.version)
			require.NoError(t, err)

			source := &interfaceSource{
				version: testCase.version,
				iface:   "eth0",
				matcher: matcher,
				enumerator: enumeratorFunc(func(iface string) ([]InterfaceAddress, error) {
					assert.Equal(t, "eth0", iface)
					return testCase.addresses, testCase.enumeratorErr
				}),
			}

			address, err := source.Resolve(context.Background())

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
			assert.Equal(t, testCase.address, address)
		})
	}
}
