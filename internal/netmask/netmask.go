// Package netmask implements address range matching for IPv4 and IPv6
// addresses using a base address and a mask, which does not need to be
// contiguous.
package netmask

import (
	"errors"
	"fmt"
	"math/bits"
	"net/netip"
	"strconv"
	"strings"

	"github.com/qdm12/dynners/internal/ipversion"
)

var (
	ErrMaskUnspecified = errors.New("mask is not specified")
	ErrAddressNotValid = errors.New("address is not valid")
	ErrMaskNotValid    = errors.New("mask is not valid")
	ErrMaskTooLarge    = errors.New("mask prefix length is too large")
)

// Matcher matches addresses within the range defined by
// its base address and its mask.
type Matcher struct {
	base netip.Addr
	mask netip.Addr
}

// FromPrefix creates a matcher from a base address and a prefix length.
func FromPrefix(address netip.Addr, prefixLength int) (matcher Matcher, err error) {
	if !address.IsValid() {
		return matcher, fmt.Errorf("%w: %s", ErrAddressNotValid, address)
	}
	width := address.BitLen()
	if prefixLength < 0 || prefixLength > width {
		return matcher, fmt.Errorf("%w: %d exceeds %d bits",
			ErrMaskTooLarge, prefixLength, width)
	}

	maskBytes := make([]byte, width/8) //nolint:gomnd
	for i := 0; i < prefixLength; i++ {
		maskBytes[i/8] |= 0x80 >> (i % 8) //nolint:gomnd
	}
	mask, _ := netip.AddrFromSlice(maskBytes)

	return Matcher{
		base: address,
		mask: mask,
	}, nil
}

// FromMask creates a matcher from a base address and a mask address,
// both of the same IP family.
func FromMask(address, mask netip.Addr) (matcher Matcher, err error) {
	switch {
	case !address.IsValid():
		return matcher, fmt.Errorf("%w: %s", ErrAddressNotValid, address)
	case !mask.IsValid():
		return matcher, fmt.Errorf("%w: %s", ErrMaskNotValid, mask)
	case address.BitLen() != mask.BitLen():
		return matcher, fmt.Errorf("%w: mask %s and address %s are not of the same family",
			ErrMaskNotValid, mask, address)
	}

	return Matcher{
		base: address,
		mask: mask,
	}, nil
}

// Parse parses a string of the form "address/prefix" or "address/mask"
// for the given IP version.
func Parse(s string, version ipversion.IPVersion) (matcher Matcher, err error) {
	s = strings.TrimSpace(s)
	addressString, maskString, found := strings.Cut(s, "/")
	if !found {
		return matcher, fmt.Errorf("%w: in %q", ErrMaskUnspecified, s)
	}

	address, err := netip.ParseAddr(addressString)
	if err != nil {
		return matcher, fmt.Errorf("%w: %w", ErrAddressNotValid, err)
	} else if !version.Matches(address) {
		return matcher, fmt.Errorf("%w: %s is not an %s address",
			ErrAddressNotValid, address, version)
	}

	prefixLength, err := strconv.ParseUint(maskString, 10, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		if err != nil || prefixLength > uint64(version.Bits()) {
			return matcher, fmt.Errorf("%w: %s exceeds %d bits",
				ErrMaskTooLarge, maskString, version.Bits())
		}
		return FromPrefix(address, int(prefixLength))
	}

	mask, err := netip.ParseAddr(maskString)
	if err != nil || !version.Matches(mask) {
		return matcher, fmt.Errorf("%w: %q is neither a prefix length nor an %s mask",
			ErrMaskNotValid, maskString, version)
	}
	return FromMask(address, mask)
}

// Contains returns true if the candidate address is in the
// range of the matcher. Addresses of another family never match.
func (m Matcher) Contains(candidate netip.Addr) bool {
	if !candidate.IsValid() || candidate.BitLen() != m.base.BitLen() {
		return false
	}

	candidateBytes := candidate.AsSlice()
	baseBytes := m.base.AsSlice()
	maskBytes := m.mask.AsSlice()
	for i := range maskBytes {
		if candidateBytes[i]&maskBytes[i] != baseBytes[i]&maskBytes[i] {
			return false
		}
	}
	return true
}

func (m Matcher) String() string {
	prefixLength, ok := m.prefixLength()
	if ok {
		return m.base.String() + "/" + strconv.Itoa(prefixLength)
	}
	return m.base.String() + "/" + m.mask.String()
}

// prefixLength returns the prefix length of the mask if the
// mask is made of contiguous leading one bits.
func (m Matcher) prefixLength() (length int, ok bool) {
	ended := false
	for _, b := range m.mask.AsSlice() {
		ones := bits.LeadingZeros8(^b)
		switch {
		case ended && b != 0:
			return 0, false
		case ones < 8 && b<<ones != 0: //nolint:gomnd
			return 0, false
		case ones < 8: //nolint:gomnd
			ended = true
		}
		length += ones
	}
	return length, true
}
