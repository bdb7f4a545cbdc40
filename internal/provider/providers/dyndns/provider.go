// Package dyndns implements the DynDNS v2 update protocol shared
// by several services, with a suspension of the service after
// server side or client side errors.
package dyndns

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/netip"
	"net/url"
	"strings"
	"time"

	"github.com/qdm12/dynners/internal/provider/errors"
	"github.com/qdm12/dynners/internal/provider/headers"
	"github.com/qdm12/dynners/internal/provider/utils"
)

// Server identifies a DynDNS v2 compatible service.
type Server struct {
	// Name is the human readable name of the service.
	Name string
	// URL is the update endpoint, usually ending with /nic/update.
	URL string
}

type Provider struct {
	server     Server
	username   string
	password   string
	domains    utils.Domains
	userAgent  string
	updateRate time.Duration
	suspension Suspension
}

func New(data json.RawMessage, server Server, userAgent string,
	updateRate time.Duration) (p *Provider, err error) {
	extraSettings := struct {
		Username string        `json:"username"`
		Password string        `json:"password"`
		Domains  utils.Domains `json:"domains"`
	}{}
	err = json.Unmarshal(data, &extraSettings)
	if err != nil {
		return nil, err
	}
	p = &Provider{
		server:     server,
		username:   extraSettings.Username,
		password:   extraSettings.Password,
		domains:    extraSettings.Domains,
		userAgent:  userAgent,
		updateRate: updateRate,
	}
	err = p.isValid()
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Provider) isValid() error {
	switch {
	case p.username == "":
		return fmt.Errorf("%w", errors.ErrUsernameNotSet)
	case p.password == "":
		return fmt.Errorf("%w", errors.ErrPasswordNotSet)
	}
	return p.domains.Validate()
}

func (p *Provider) String() string {
	return p.server.Name + " for " + p.domains.String()
}

func (p *Provider) Suspension() Suspension {
	return p.suspension
}

// Update sends the addresses to the server, unless the service is
// suspended. The returned addresses are the ones confirmed by the server,
// or all the addresses sent if the server does not specify them.
// A server side failure suspends the service for 30 minutes worth of
// update cycles, and any other unexpected response suspends it
// for the rest of the program lifetime.
func (p *Provider) Update(ctx context.Context, client *http.Client,
	ipv4, ipv6 netip.Addr) (updated []netip.Addr, err error) {
	if p.suspension.Check() {
		return nil, fmt.Errorf("%w: %s", errors.ErrSuspended, p.suspension)
	}

	submitted := utils.Addresses(ipv4, ipv6)
	if len(submitted) == 0 {
		return nil, fmt.Errorf("%w", errors.ErrNoAddress)
	}
	myIP := make([]string, len(submitted))
	for i, address := range submitted {
		myIP[i] = address.String()
	}

	u, err := url.Parse(p.server.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing server url: %w", err)
	}
	values := url.Values{}
	values.Set("hostname", p.domains.String())
	values.Set("myip", strings.Join(myIP, ","))
	u.RawQuery = values.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}
	request.SetBasicAuth(p.username, p.password)
	headers.SetUserAgent(request, p.userAgent)

	response, err := client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrTransport, err)
	}

	// The status code is not checked since servers answer
	// with the same response grammar on errors.
	data, err := utils.ReadBody(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrUnmarshalResponse, err)
	}
	body := string(data)

	switch {
	case strings.HasPrefix(body, "good"):
		return parseGood(strings.TrimPrefix(body, "good"), submitted), nil
	case strings.HasPrefix(body, "nochg"):
		return nil, nil
	case strings.HasPrefix(body, "911"), strings.HasPrefix(body, "dnserr"):
		cycles := p.suspension.SuspendFor(serverDownCooldown, p.updateRate)
		if cycles == 0 {
			return nil, fmt.Errorf("%w", errors.ErrDNSServerSide)
		}
		return nil, fmt.Errorf("%w, suspending for %d cycles", errors.ErrDNSServerSide, cycles)
	default:
		p.suspension.SuspendIndefinitely()
		return nil, makeClientError(body)
	}
}

// parseGood parses the up to two comma separated addresses following
// "good". If none is valid, all the submitted addresses are returned.
func parseGood(s string, submitted []netip.Addr) (updated []netip.Addr) {
	const maxAddresses = 2
	fields := strings.SplitN(s, ",", maxAddresses+1)
	for i := 0; i < len(fields) && i < maxAddresses; i++ {
		address, err := netip.ParseAddr(strings.TrimSpace(fields[i]))
		if err != nil {
			continue
		}
		updated = append(updated, address)
	}
	if len(updated) == 0 {
		return submitted
	}
	return updated
}

func makeClientError(body string) error {
	responseErrors := []struct {
		prefix string
		err    error
	}{
		{prefix: "!donator", err: errors.ErrFeatureUnavailable},
		{prefix: "badauth", err: errors.ErrAuth},
		{prefix: "notfqdn", err: errors.ErrDomainNotFQDN},
		{prefix: "nohost", err: errors.ErrHostnameNotExists},
		{prefix: "abuse", err: errors.ErrAbuse},
		{prefix: "numhost", err: errors.ErrNumberOfHosts},
	}
	for _, responseError := range responseErrors {
		if strings.HasPrefix(body, responseError.prefix) {
			return fmt.Errorf("%w", responseError.err)
		}
	}

	if strings.HasPrefix(body, "badagent") {
		return fmt.Errorf("%w: configure your user_agent properly in the config file",
			errors.ErrBannedUserAgent)
	}

	return fmt.Errorf("%w: %s", errors.ErrUnknownResponse, utils.ToSingleLine(body))
}
