package porkbun

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/netip"
	"net/url"

	"github.com/qdm12/dynners/internal/provider/constants"
	"github.com/qdm12/dynners/internal/provider/errors"
	"github.com/qdm12/dynners/internal/provider/headers"
	"github.com/qdm12/dynners/internal/provider/utils"
)

type Provider struct {
	apiKey       string
	secretAPIKey string
	domains      utils.Domains
	userAgent    string
}

func New(data json.RawMessage, userAgent string) (p *Provider, err error) {
	extraSettings := struct {
		APIKey       string        `json:"api_key"`
		SecretAPIKey string        `json:"secret_api_key"`
		Domains      utils.Domains `json:"domains"`
	}{}
	err = json.Unmarshal(data, &extraSettings)
	if err != nil {
		return nil, err
	}
	p = &Provider{
		apiKey:       extraSettings.APIKey,
		secretAPIKey: extraSettings.SecretAPIKey,
		domains:      extraSettings.Domains,
		userAgent:    userAgent,
	}
	err = p.isValid()
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Provider) isValid() error {
	switch {
	case p.apiKey == "":
		return fmt.Errorf("%w", errors.ErrAPIKeyNotSet)
	case p.secretAPIKey == "":
		return fmt.Errorf("%w", errors.ErrSecretAPIKeyNotSet)
	}
	return p.domains.Validate()
}

func (p *Provider) String() string {
	return "Porkbun for " + p.domains.String()
}

// Update edits the A and AAAA records of every domain. An address is
// reported as updated if at least one of the domains succeeded with it.
func (p *Provider) Update(ctx context.Context, client *http.Client,
	ipv4, ipv6 netip.Addr) (updated []netip.Addr, err error) {
	if !ipv4.IsValid() && !ipv6.IsValid() {
		return nil, fmt.Errorf("%w", errors.ErrNoAddress)
	}

	var ipv4Succeeded, ipv6Succeeded bool
	for _, fqdn := range p.domains {
		subdomain, domain := utils.SplitSubdomain(fqdn)

		if ipv4.IsValid() {
			success, err := p.editRecord(ctx, client, domain, subdomain, constants.A, ipv4)
			if err != nil {
				return nil, fmt.Errorf("editing A record of %s: %w", fqdn, err)
			}
			ipv4Succeeded = ipv4Succeeded || success
		}

		if ipv6.IsValid() {
			success, err := p.editRecord(ctx, client, domain, subdomain, constants.AAAA, ipv6)
			if err != nil {
				return nil, fmt.Errorf("editing AAAA record of %s: %w", fqdn, err)
			}
			ipv6Succeeded = ipv6Succeeded || success
		}
	}

	if ipv4Succeeded {
		updated = append(updated, ipv4)
	}
	if ipv6Succeeded {
		updated = append(updated, ipv6)
	}
	return updated, nil
}

// See https://porkbun.com/api/json/v3/documentation#DNS%20Edit%20Record%20by%20Domain,%20Subdomain%20and%20Type
func (p *Provider) editRecord(ctx context.Context, client *http.Client,
	domain, subdomain, recordType string, ip netip.Addr) (success bool, err error) {
	u := url.URL{
		Scheme: "https",
		Host:   "api.porkbun.com",
		Path:   "/api/json/v3/dns/editByNameType/" + domain + "/" + recordType + "/" + subdomain,
	}

	requestData := struct {
		SecretAPIKey string `json:"secretapikey"`
		APIKey       string `json:"apikey"`
		Content      string `json:"content"`
	}{
		SecretAPIKey: p.secretAPIKey,
		APIKey:       p.apiKey,
		Content:      ip.String(),
	}
	buffer := bytes.NewBuffer(nil)
	encoder := json.NewEncoder(buffer)
	err = encoder.Encode(requestData)
	if err != nil {
		return false, fmt.Errorf("%w: %w", errors.ErrRequestMarshal, err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), buffer)
	if err != nil {
		return false, fmt.Errorf("creating http request: %w", err)
	}
	headers.SetUserAgent(request, p.userAgent)
	headers.SetContentType(request, "application/json")
	headers.SetAccept(request, "application/json")

	response, err := client.Do(request)
	if err != nil {
		return false, fmt.Errorf("%w: %w", errors.ErrTransport, err)
	}

	data, err := utils.ReadBody(response.Body)
	if err != nil {
		return false, fmt.Errorf("%w: %w", errors.ErrUnmarshalResponse, err)
	}

	if response.StatusCode >= http.StatusBadRequest {
		return false, makeError(response.StatusCode, data)
	}

	var responseData struct {
		Status string `json:"status"`
	}
	err = json.Unmarshal(data, &responseData)
	if err != nil {
		return false, fmt.Errorf("%w: %w", errors.ErrUnmarshalResponse, err)
	}

	return responseData.Status == "SUCCESS", nil
}
