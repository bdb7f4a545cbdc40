package ip

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"net"
	"net/netip"
	"strconv"
	"strings"
)

// OSEnumerator lists interface addresses using the operating system.
type OSEnumerator struct {
	ifInet6Path string
}

func NewOSEnumerator() *OSEnumerator {
	return &OSEnumerator{
		ifInet6Path: "/proc/net/if_inet6",
	}
}

func (e *OSEnumerator) Addresses(name string) (addresses []InterfaceAddress, err error) {
	iface, err := net.InterfaceByName(name)
	if err != nil {
		return nil, err
	}

	interfaceAddresses, err := iface.Addrs()
	if err != nil {
		return nil, fmt.Errorf("listing addresses of interface %s: %w", name, err)
	}

	deprecated, err := deprecatedIPv6(e.ifInet6Path, name)
	if err != nil {
		return nil, fmt.Errorf("listing deprecated IPv6 addresses: %w", err)
	}

	addresses = make([]InterfaceAddress, 0, len(interfaceAddresses))
	for _, interfaceAddress := range interfaceAddresses {
		prefix, err := netip.ParsePrefix(interfaceAddress.String())
		if err != nil {
			continue
		}
		address := prefix.Addr()
		_, isDeprecated := deprecated[address]
		addresses = append(addresses, InterfaceAddress{
			Address:    address,
			Deprecated: isDeprecated,
		})
	}
	return addresses, nil
}

// ifaFlagDeprecated is IFA_F_DEPRECATED from linux/if_addr.h.
const ifaFlagDeprecated = 0x20

// parseIfInet6 parses the content of /proc/net/if_inet6 and returns
// the deprecated addresses of the given interface. Each line has the
// form "<address hex> <index> <prefix length> <scope> <flags> <name>".
func parseIfInet6(reader io.Reader, iface string) (
	deprecated map[netip.Addr]struct{}, err error) {
	deprecated = make(map[netip.Addr]struct{})
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		const expectedFields = 6
		if len(fields) != expectedFields || fields[5] != iface {
			continue
		}

		flags, err := strconv.ParseUint(fields[4], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("parsing flags %q: %w", fields[4], err)
		} else if flags&ifaFlagDeprecated == 0 {
			continue
		}

		raw, err := hex.DecodeString(fields[0])
		if err != nil {
			return nil, fmt.Errorf("parsing address %q: %w", fields[0], err)
		}
		address, ok := netip.AddrFromSlice(raw)
		if !ok || !address.Is6() {
			return nil, fmt.Errorf("address %q is not an IPv6 address", fields[0])
		}
		deprecated[address] = struct{}{}
	}
	return deprecated, scanner.Err()
}
