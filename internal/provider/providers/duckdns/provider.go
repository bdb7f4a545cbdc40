package duckdns

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/netip"
	"net/url"
	"strings"

	"github.com/qdm12/dynners/internal/provider/errors"
	"github.com/qdm12/dynners/internal/provider/headers"
	"github.com/qdm12/dynners/internal/provider/utils"
)

type Provider struct {
	token     string
	domains   utils.Domains
	userAgent string
}

func New(data json.RawMessage, userAgent string) (p *Provider, err error) {
	extraSettings := struct {
		Token   string        `json:"token"`
		Domains utils.Domains `json:"domains"`
	}{}
	err = json.Unmarshal(data, &extraSettings)
	if err != nil {
		return nil, err
	}
	p = &Provider{
		token:     extraSettings.Token,
		domains:   extraSettings.Domains,
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
	return "DuckDNS for " + p.domains.String()
}

// Update uses https://www.duckdns.org/spec.jsp which only
// answers with OK or KO without the verbose parameter.
func (p *Provider) Update(ctx context.Context, client *http.Client,
	ipv4, ipv6 netip.Addr) (updated []netip.Addr, err error) {
	submitted := utils.Addresses(ipv4, ipv6)
	if len(submitted) == 0 {
		return nil, fmt.Errorf("%w", errors.ErrNoAddress)
	}

	u := url.URL{
		Scheme: "https",
		Host:   "www.duckdns.org",
		Path:   "/update",
	}
	values := url.Values{}
	values.Set("domains", p.domains.String())
	values.Set("token", p.token)
	if ipv4.IsValid() {
		values.Set("ip", ipv4.String())
	}
	if ipv6.IsValid() {
		values.Set("ipv6", ipv6.String())
	}
	u.RawQuery = values.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}
	headers.SetUserAgent(request, p.userAgent)

	response, err := client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrTransport, redactToken(err, p.token))
	}

	data, err := utils.ReadBody(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrUnmarshalResponse, err)
	}
	s := string(data)

	switch {
	case strings.HasPrefix(s, "OK"), strings.HasPrefix(s, "good"):
		return submitted, nil
	case strings.HasPrefix(s, "KO"):
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsuccessfulResponse, utils.ToSingleLine(s))
	default:
		return nil, fmt.Errorf("%w: %d: %s", errors.ErrUnknownResponse,
			response.StatusCode, utils.ToSingleLine(s))
	}
}

// redactToken removes the token from the URL of the url.Error
// returned by the HTTP client.
func redactToken(err error, token string) error {
	urlErr, ok := err.(*url.Error) //nolint:errorlint
	if !ok {
		return err
	}
	redacted := *urlErr
	redacted.URL = strings.ReplaceAll(redacted.URL, url.QueryEscape(token), "[redacted]")
	return &redacted
}
