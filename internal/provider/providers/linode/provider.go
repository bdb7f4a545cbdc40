package linode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/netip"

	"github.com/qdm12/dynners/internal/provider/constants"
	"github.com/qdm12/dynners/internal/provider/errors"
	"github.com/qdm12/dynners/internal/provider/utils"
)

type Provider struct {
	token     string
	domains   utils.Domains
	ttl       uint32
	userAgent string
	records   []record
}

type record struct {
	domainID   int
	id         int
	fqdn       string
	recordType string
}

func New(data json.RawMessage, userAgent string) (p *Provider, err error) {
	extraSettings := struct {
		Token   string        `json:"token"`
		Domains utils.Domains `json:"domains"`
		TTL     uint32        `json:"ttl"`
	}{}
	err = json.Unmarshal(data, &extraSettings)
	if err != nil {
		return nil, err
	}

	p = &Provider{
		token:     extraSettings.Token,
		domains:   extraSettings.Domains,
		ttl:       extraSettings.TTL,
		userAgent: userAgent,
	}
	err = p.isValid()
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Provider) isValid() error {
	if p.token == "" {
		return fmt.Errorf("%w", errors.ErrTokenNotSet)
	}
	return p.domains.Validate()
}

func (p *Provider) String() string {
	return "Linode for " + p.domains.String()
}

// Update sets the target of the A records to the IPv4 address and
// the target of the AAAA records to the IPv6 address.
func (p *Provider) Update(ctx context.Context, client *http.Client,
	ipv4, ipv6 netip.Addr) (updated []netip.Addr, err error) {
	updated = utils.Addresses(ipv4, ipv6)
	if len(updated) == 0 {
		return nil, fmt.Errorf("%w", errors.ErrNoAddress)
	}

	if len(p.records) == 0 {
		p.records, err = p.listRecords(ctx, client)
		if err != nil {
			return nil, fmt.Errorf("listing records: %w", err)
		}
	}

	for _, record := range p.records {
		var ip netip.Addr
		switch record.recordType {
		case constants.A:
			ip = ipv4
		case constants.AAAA:
			ip = ipv6
		}
		if !ip.IsValid() {
			continue
		}

		err = p.updateRecord(ctx, client, record, ip)
		if err != nil {
			return nil, fmt.Errorf("updating %s record of %s: %w",
				record.recordType, record.fqdn, err)
		}
	}

	return updated, nil
}
