package netmask

import (
	"net/netip"
	"testing"

	"github.com/qdm12/dynners/internal/ipversion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		s          string
		version    ipversion.IPVersion
		matcher    Matcher
		errWrapped error
		errMessage string
	}{
		"ipv4_prefix": {
			s:       "198.51.100.2/24",
			version: ipversion.IP4,
			matcher: Matcher{
				base: netip.MustParseAddr("198.51.100.2"),
				mask: netip.MustParseAddr("255.255.255.0"),
			},
		},
		"ipv4_mask": {
			s:       " 10.0.0.0/255.0.255.0 ",
			version: ipversion.IP4,
			matcher: Matcher{
				base: netip.MustParseAddr("10.0.0.0"),
				mask: netip.MustParseAddr("255.0.255.0"),
			},
		},
		"ipv6_prefix": {
			s:       "2001:db8::/32",
			version: ipversion.IP6,
			matcher: Matcher{
				base: netip.MustParseAddr("2001:db8::"),
				mask: netip.MustParseAddr("ffff:ffff::"),
			},
		},
		"mask_unspecified": {
			s:          "1.2.3.4",
			version:    ipversion.IP4,
			errWrapped: ErrMaskUnspecified,
			errMessage: `mask is not specified: in "1.2.3.4"`,
		},
		"bad_address": {
			s:          "1.2.3/24",
			version:    ipversion.IP4,
			errWrapped: ErrAddressNotValid,
			errMessage: `address is not valid: ParseAddr("1.2.3"): IPv4 address too short`,
		},
		"address_of_other_family": {
			s:          "::1/64",
			version:    ipversion.IP4,
			errWrapped: ErrAddressNotValid,
			errMessage: "address is not valid: ::1 is not an ipv4 address",
		},
		"ipv4_prefix_too_large": {
			s:          "1.2.3.4/33",
			version:    ipversion.IP4,
			errWrapped: ErrMaskTooLarge,
			errMessage: "mask prefix length is too large: 33 exceeds 32 bits",
		},
		"ipv6_prefix_too_large": {
			s:          "::/129",
			version:    ipversion.IP6,
			errWrapped: ErrMaskTooLarge,
			errMessage: "mask prefix length is too large: 129 exceeds 128 bits",
		},
		"mask_not_valid": {
			s:          "1.2.3.4/abc",
			version:    ipversion.IP4,
			errWrapped: ErrMaskNotValid,
			errMessage: `mask is not valid: "abc" is neither a prefix length nor an ipv4 mask`,
		},
		"mask_of_other_family": {
			s:          "1.2.3.4/ffff::",
			version:    ipversion.IP4,
			errWrapped: ErrMaskNotValid,
			errMessage: `mask is not valid: "ffff::" is neither a prefix length nor an ipv4 mask`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			matcher, err := Parse(testCase.s, testCase.version)

			assert.Equal(t, testCase.matcher, matcher)
			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}

func Test_Parse_containsItself(t *testing.T) {
	t.Parallel()

	testCases := map[string]ipversion.IPVersion{
		"0.0.0.0/0":                   ipversion.IP4,
		"192.168.1.1/32":              ipversion.IP4,
		"192.168.1.1/255.255.255.255": ipversion.IP4,
		"10.1.2.3/255.0.255.0":        ipversion.IP4,
		"172.16.5.4/12":               ipversion.IP4,
		"::/0":                        ipversion.IP6,
		"2001:db8::1/128":             ipversion.IP6,
		"2001:db8::1/ffff:0:ffff::":   ipversion.IP6,
		"fe80::1234/10":               ipversion.IP6,
	}

	for s, version := range testCases {
		s, version := s, version
		t.Run(s, func(t *testing.T) {
			t.Parallel()

			matcher, err := Parse(s, version)
			require.NoError(t, err)

			assert.True(t, matcher.Contains(matcher.base))
		})
	}
}

func Test_Matcher_Contains(t *testing.T) {
	t.Parallel()

	prefix24, err := FromPrefix(netip.MustParseAddr("198.51.100.2"), 24)
	require.NoError(t, err)
	prefix0v4, err := FromPrefix(netip.MustParseAddr("198.51.100.2"), 0)
	require.NoError(t, err)
	prefix0v6, err := FromPrefix(netip.MustParseAddr("2001:db8::1"), 0)
	require.NoError(t, err)
	prefix128, err := FromPrefix(netip.MustParseAddr("2001:db8::1"), 128)
	require.NoError(t, err)
	sparseMask, err := FromMask(netip.MustParseAddr("10.0.0.0"),
		netip.MustParseAddr("255.0.255.0"))
	require.NoError(t, err)

	testCases := map[string]struct {
		matcher   Matcher
		candidate string
		contains  bool
	}{
		"prefix_24_network": {
			matcher:   prefix24,
			candidate: "198.51.100.0",
			contains:  true,
		},
		"prefix_24_first": {
			matcher:   prefix24,
			candidate: "198.51.100.1",
			contains:  true,
		},
		"prefix_24_middle": {
			matcher:   prefix24,
			candidate: "198.51.100.98",
			contains:  true,
		},
		"prefix_24_broadcast": {
			matcher:   prefix24,
			candidate: "198.51.100.255",
			contains:  true,
		},
		"prefix_24_next_network": {
			matcher:   prefix24,
			candidate: "198.51.101.0",
		},
		"prefix_24_far_network": {
			matcher:   prefix24,
			candidate: "198.52.101.132",
		},
		"prefix_24_ipv6_candidate": {
			matcher:   prefix24,
			candidate: "::ffff:198.51.100.1",
		},
		"prefix_0_ipv4_any": {
			matcher:   prefix0v4,
			candidate: "255.255.255.255",
			contains:  true,
		},
		"prefix_0_ipv4_zero": {
			matcher:   prefix0v4,
			candidate: "0.0.0.0",
			contains:  true,
		},
		"prefix_0_ipv6_any": {
			matcher:   prefix0v6,
			candidate: "ffff::ffff",
			contains:  true,
		},
		"prefix_128_exact": {
			matcher:   prefix128,
			candidate: "2001:db8::1",
			contains:  true,
		},
		"prefix_128_other": {
			matcher:   prefix128,
			candidate: "2001:db8::2",
		},
		"sparse_mask_match": {
			matcher:   sparseMask,
			candidate: "10.99.0.42",
			contains:  true,
		},
		"sparse_mask_mismatch": {
			matcher:   sparseMask,
			candidate: "10.99.1.42",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			candidate := netip.MustParseAddr(testCase.candidate)

			contains := testCase.matcher.Contains(candidate)

			assert.Equal(t, testCase.contains, contains)
		})
	}
}

func Test_FromMask(t *testing.T) {
	t.Parallel()

	_, err := FromMask(netip.MustParseAddr("1.2.3.4"), netip.MustParseAddr("ffff::"))

	assert.ErrorIs(t, err, ErrMaskNotValid)
	assert.EqualError(t, err, "mask is not valid: mask ffff:: and address 1.2.3.4 are not of the same family")
}

func Test_Matcher_String(t *testing.T) {
	t.Parallel()

	prefix, err := Parse("192.168.0.0/255.255.0.0", ipversion.IP4)
	require.NoError(t, err)
	assert.Equal(t, "192.168.0.0/16", prefix.String())

	sparse, err := Parse("10.0.0.0/255.0.255.0", ipversion.IP4)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.0/255.0.255.0", sparse.String())

	ipv6, err := Parse("2001:db8::/33", ipversion.IP6)
	require.NoError(t, err)
	assert.Equal(t, "2001:db8::/33", ipv6.String())
}
