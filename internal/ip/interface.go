package ip

import (
	"context"
	"fmt"
	"net/netip"

	"github.com/qdm12/dynners/internal/ipversion"
	"github.com/qdm12/dynners/internal/netmask"
)

// InterfaceAddress is an address assigned to a network interface.
type InterfaceAddress struct {
	Address netip.Addr
	// Deprecated is only set for IPv6 addresses past their
	// preferred lifetime.
	Deprecated bool
}

type interfaceSource struct {
	version    ipversion.IPVersion
	iface      string
	matcher    netmask.Matcher
	enumerator Enumerator
}

func (s *interfaceSource) Version() ipversion.IPVersion { return s.version }

func (s *interfaceSource) String() string {
	return fmt.Sprintf("%s from interface %s matching %s", s.version, s.iface, s.matcher)
}

// Resolve returns the last non deprecated address of the interface
// of the right IP version within the configured network.
func (s *interfaceSource) Resolve(_ context.Context) (address netip.Addr, err error) {
	addresses, err := s.enumerator.Addresses(s.iface)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %w", ErrInterface, err)
	}

	for _, candidate := range addresses {
		switch {
		case !s.version.Matches(candidate.Address),
			candidate.Deprecated && candidate.Address.Is6(),
			!s.matcher.Contains(candidate.Address):
			continue
		}
		address = candidate.Address
	}

	if !address.IsValid() {
		return netip.Addr{}, fmt.Errorf("%w: no %s address matching %s on interface %s",
			ErrInterface, s.version, s.matcher, s.iface)
	}
	return address, nil
}
