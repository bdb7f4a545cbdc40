package ip

import (
	"fmt"
	"net/netip"

	"github.com/qdm12/dynners/internal/ipversion"
)

func parseAddress(s string, version ipversion.IPVersion) (address netip.Addr, err error) {
	address, err = netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %w", ErrAddressMalformed, err)
	}
	if !version.Matches(address) {
		return netip.Addr{}, fmt.Errorf("%w: %s is not an %s address",
			ErrAddressVersion, address, version)
	}
	return address, nil
}
