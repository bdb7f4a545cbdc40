package noip

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
	username  string
	password  string
	domains   utils.Domains
	userAgent string
}

func New(data json.RawMessage, userAgent string) (p *Provider, err error) {
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
		username:  extraSettings.Username,
		password:  extraSettings.Password,
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
	switch {
	case p.username == "":
		return fmt.Errorf("%w", errors.ErrUsernameNotSet)
	case p.password == "":
		return fmt.Errorf("%w", errors.ErrPasswordNotSet)
	}
	return p.domains.Validate()
}

func (p *Provider) String() string {
	return "No-IP for " + p.domains.String()
}

// Update uses https://www.noip.com/integrate/request
func (p *Provider) Update(ctx context.Context, client *http.Client,
	ipv4, ipv6 netip.Addr) (updated []netip.Addr, err error) {
	submitted := utils.Addresses(ipv4, ipv6)
	if len(submitted) == 0 {
		return nil, fmt.Errorf("%w", errors.ErrNoAddress)
	}
	myIP := make([]string, len(submitted))
	for i, address := range submitted {
		myIP[i] = address.String()
	}

	u := url.URL{
		Scheme: "https",
		Host:   "dynupdate.no-ip.com",
		Path:   "/nic/update",
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

	data, err := utils.ReadBody(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrUnmarshalResponse, err)
	}
	s := string(data)

	switch {
	case response.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: %d", errors.ErrDNSServerSide, response.StatusCode)
	case response.StatusCode >= http.StatusBadRequest:
		return nil, fmt.Errorf("%w: %d: %s", errors.ErrBadHTTPStatus,
			response.StatusCode, utils.ToSingleLine(s))
	case strings.HasPrefix(s, "good"):
		return submitted, nil
	case strings.HasPrefix(s, "nochg"):
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownResponse, utils.ToSingleLine(s))
	}
}
