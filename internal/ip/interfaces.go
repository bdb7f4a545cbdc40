package ip

import (
	"context"
	"net/netip"
	"time"

	"github.com/miekg/dns"
	"github.com/qdm12/dynners/internal/ipversion"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Source,Commander,DNSClient

// Source resolves the current IP address of a single IP version.
type Source interface {
	Resolve(ctx context.Context) (address netip.Addr, err error)
	Version() ipversion.IPVersion
	String() string
}

// Commander runs a command through a shell and returns its standard output.
type Commander interface {
	Run(ctx context.Context, shell, command string) (stdout []byte, err error)
}

// Enumerator lists the addresses bound to a network interface.
type Enumerator interface {
	Addresses(iface string) (addresses []InterfaceAddress, err error)
}

type DNSClient interface {
	ExchangeContext(ctx context.Context, m *dns.Msg, address string) (
		r *dns.Msg, rtt time.Duration, err error)
}
