package update

import (
	"context"
	"net/http"
	"net/netip"

	"github.com/qdm12/dynners/internal/healthchecksio"
	"github.com/qdm12/dynners/internal/persistence"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . DynamicIP,Provider,StateSaver,HealthchecksIOClient,ShoutrrrClient,Logger,DebugLogger

type DynamicIP interface {
	Refresh(ctx context.Context) (err error)
	Address() netip.Addr
	Dirty() bool
}

type Provider interface {
	String() string
	Update(ctx context.Context, client *http.Client,
		ipv4, ipv6 netip.Addr) (updated []netip.Addr, err error)
}

type StateSaver interface {
	Save(state *persistence.State) (err error)
}

type HealthchecksIOClient interface {
	Ping(ctx context.Context, state healthchecksio.State, log string) (err error)
}

type ShoutrrrClient interface {
	ServiceFailed(service string, err error)
}

type Logger interface {
	DebugLogger
	Info(s string)
	Warn(s string)
	Error(s string)
}
