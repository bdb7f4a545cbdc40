package cloudflare

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"

	cloudflare "github.com/cloudflare/cloudflare-go"
	"github.com/qdm12/dynners/internal/provider/constants"
	"github.com/qdm12/dynners/internal/provider/errors"
)

// listRecords lists the A and AAAA records named after one of the
// domains, in all the zones the token can read and edit DNS records of.
func (p *Provider) listRecords(ctx context.Context, client *http.Client) (
	records []record, err error) {
	options := []cloudflare.Option{cloudflare.HTTPClient(client)}
	if p.userAgent != "" {
		options = append(options, cloudflare.UserAgent(p.userAgent))
	}
	api, err := cloudflare.NewWithAPIToken(p.token, options...)
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}

	zones, err := api.ListZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing zones: %w", err)
	}

	for _, zone := range zones {
		if !canEditDNSRecords(zone.Permissions) {
			continue
		}

		dnsRecords, _, err := api.ListDNSRecords(ctx,
			cloudflare.ZoneIdentifier(zone.ID), cloudflare.ListDNSRecordsParams{})
		if err != nil {
			return nil, fmt.Errorf("listing DNS records of zone %s: %w", zone.Name, err)
		}

		for _, dnsRecord := range dnsRecords {
			switch {
			case dnsRecord.Type != constants.A && dnsRecord.Type != constants.AAAA,
				!slices.Contains(p.domains, dnsRecord.Name):
				continue
			}
			records = append(records, record{
				zoneID:     zone.ID,
				id:         dnsRecord.ID,
				name:       dnsRecord.Name,
				recordType: dnsRecord.Type,
			})
		}
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: for %s", errors.ErrRecordNotFound, p.domains)
	}
	return records, nil
}

// canEditDNSRecords returns true if the zone permissions
// allow to both read and edit DNS records.
func canEditDNSRecords(permissions []string) bool {
	var canRead, canEdit bool
	for _, permission := range permissions {
		if !strings.HasPrefix(permission, "#dns_records") {
			continue
		}
		canRead = canRead || strings.Contains(permission, "read")
		canEdit = canEdit || strings.Contains(permission, "edit")
	}
	return canRead && canEdit
}
