package utils

import "net/netip"

// Addresses returns the valid addresses among the IPv4 and IPv6
// addresses given, in this order.
func Addresses(ipv4, ipv6 netip.Addr) (addresses []netip.Addr) {
	const maxAddresses = 2
	addresses = make([]netip.Addr, 0, maxAddresses)
	if ipv4.IsValid() {
		addresses = append(addresses, ipv4)
	}
	if ipv6.IsValid() {
		addresses = append(addresses, ipv6)
	}
	return addresses
}
