package ip

import (
	"errors"
	"fmt"
	"net/netip"
	"os"
)

func deprecatedIPv6(path, iface string) (deprecated map[netip.Addr]struct{}, err error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	deprecated, err = parseIfInet6(file, iface)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	err = file.Close()
	if err != nil {
		return nil, err
	}
	return deprecated, nil
}
