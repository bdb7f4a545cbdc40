package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/netip"
	"time"

	"github.com/qdm12/dynners/internal/models"
	"github.com/qdm12/dynners/internal/provider/constants"
	"github.com/qdm12/dynners/internal/provider/providers/cloudflare"
	"github.com/qdm12/dynners/internal/provider/providers/dnsomatic"
	"github.com/qdm12/dynners/internal/provider/providers/duckdns"
	"github.com/qdm12/dynners/internal/provider/providers/dummy"
	"github.com/qdm12/dynners/internal/provider/providers/dynu"
	"github.com/qdm12/dynners/internal/provider/providers/ipv64"
	"github.com/qdm12/dynners/internal/provider/providers/linode"
	"github.com/qdm12/dynners/internal/provider/providers/noip"
	"github.com/qdm12/dynners/internal/provider/providers/porkbun"
	"github.com/qdm12/dynners/internal/provider/providers/selfhost"
)

// Provider is a dynamic DNS service which can be updated
// with an IPv4 address, an IPv6 address or both.
type Provider interface {
	String() string
	// Update sends the valid addresses among ipv4 and ipv6 to the service.
	// It returns the addresses the service confirmed were updated, which
	// is empty if nothing changed on the service side.
	Update(ctx context.Context, client *http.Client,
		ipv4, ipv6 netip.Addr) (updated []netip.Addr, err error)
}

type Logger interface {
	Info(message string)
}

// Environment contains the process wide values some providers need.
type Environment struct {
	UserAgent string
	// UpdateRate is the period between update cycles, and is zero
	// if the program runs a single cycle.
	UpdateRate time.Duration
	Logger     Logger
}

var ErrProviderUnknown = errors.New("unknown provider")

//nolint:ireturn
func New(service models.Provider, data json.RawMessage,
	environment Environment) (provider Provider, err error) {
	userAgent := environment.UserAgent
	updateRate := environment.UpdateRate
	switch service {
	case constants.Cloudflare:
		return cloudflare.New(data, userAgent)
	case constants.DNSOMatic:
		return dnsomatic.New(data, userAgent, updateRate)
	case constants.DuckDNS:
		return duckdns.New(data, userAgent)
	case constants.Dummy:
		return dummy.New(data, environment.Logger)
	case constants.Dynu:
		return dynu.New(data, userAgent, updateRate)
	case constants.IPv64:
		return ipv64.New(data, userAgent, updateRate)
	case constants.Linode:
		return linode.New(data, userAgent)
	case constants.NoIP:
		return noip.New(data, userAgent)
	case constants.Porkbun:
		return porkbun.New(data, userAgent)
	case constants.Selfhost:
		return selfhost.New(data, userAgent, updateRate)
	default:
		return nil, fmt.Errorf("%w: %s", ErrProviderUnknown, service)
	}
}
