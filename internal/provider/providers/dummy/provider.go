// Package dummy implements a service which only logs the
// updates it would do, to try out a configuration.
package dummy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/netip"
	"strings"

	"github.com/qdm12/dynners/internal/provider/errors"
	"github.com/qdm12/dynners/internal/provider/utils"
)

type Logger interface {
	Info(message string)
}

type Provider struct {
	domains utils.Domains
	logger  Logger
}

func New(data json.RawMessage, logger Logger) (p *Provider, err error) {
	extraSettings := struct {
		Domains utils.Domains `json:"domains"`
	}{}
	err = json.Unmarshal(data, &extraSettings)
	if err != nil {
		return nil, err
	}
	err = extraSettings.Domains.Validate()
	if err != nil {
		return nil, err
	}
	return &Provider{
		domains: extraSettings.Domains,
		logger:  logger,
	}, nil
}

func (p *Provider) String() string {
	return "dummy for " + p.domains.String()
}

func (p *Provider) Update(_ context.Context, _ *http.Client,
	ipv4, ipv6 netip.Addr) (updated []netip.Addr, err error) {
	updated = utils.Addresses(ipv4, ipv6)
	if len(updated) == 0 {
		return nil, fmt.Errorf("%w", errors.ErrNoAddress)
	}

	addresses := make([]string, len(updated))
	for i, address := range updated {
		addresses[i] = address.String()
	}
	p.logger.Info("simulating update of " + strings.Join(p.domains, ", ") +
		" with IP addresses " + strings.Join(addresses, " "))
	return updated, nil
}
