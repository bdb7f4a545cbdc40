//go:build !linux

package ip

import "net/netip"

func deprecatedIPv6(_, _ string) (deprecated map[netip.Addr]struct{}, err error) {
	return nil, nil
}
