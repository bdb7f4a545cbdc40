package ipversion

import (
	"errors"
	"fmt"
	"net/netip"
)

type IPVersion uint8

const (
	IP4 IPVersion = 4
	IP6 IPVersion = 6
)

func (v IPVersion) String() string {
	switch v {
	case IP4:
		return "ipv4"
	case IP6:
		return "ipv6"
	default:
		return "ip?"
	}
}

var ErrVersionNotValid = errors.New("IP version is not valid")

// Parse converts the numeric version found in the configuration
// file to an IPVersion.
func Parse(version int64) (ipVersion IPVersion, err error) {
	switch version {
	case int64(IP4):
		return IP4, nil
	case int64(IP6):
		return IP6, nil
	default:
		return 0, fmt.Errorf("%w: %d must be 4 or 6", ErrVersionNotValid, version)
	}
}

// Matches returns true if the address is valid and of the IP version.
// IPv4-mapped IPv6 addresses are considered IPv6 addresses.
func (v IPVersion) Matches(ip netip.Addr) bool {
	switch v {
	case IP4:
		return ip.Is4()
	case IP6:
		return ip.Is6()
	default:
		return false
	}
}

// Bits returns the number of bits of an address of this IP version.
func (v IPVersion) Bits() int {
	if v == IP4 {
		return 32 //nolint:gomnd
	}
	return 128 //nolint:gomnd
}
