package linode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"net/url"
	"slices"
	"strconv"

	"github.com/qdm12/dynners/internal/provider/constants"
	"github.com/qdm12/dynners/internal/provider/errors"
	"github.com/qdm12/dynners/internal/provider/headers"
	"github.com/qdm12/dynners/internal/provider/utils"
)

// See https://www.linode.com/docs/api/domains/

func makeURL(path string) string {
	u := url.URL{
		Scheme: "https",
		Host:   "api.linode.com",
		Path:   "/v4/domains" + path,
	}
	return u.String()
}

// listRecords lists the A and AAAA records of all the domains
// of the account, keeping only the ones matching a configured domain.
func (p *Provider) listRecords(ctx context.Context, client *http.Client) (
	records []record, err error) {
	var domainsResponse struct {
		Data []struct {
			ID     int    `json:"id"`
			Domain string `json:"domain"`
		} `json:"data"`
	}
	err = p.doJSON(ctx, client, http.MethodGet, makeURL(""), nil, &domainsResponse)
	if err != nil {
		return nil, fmt.Errorf("getting domains: %w", err)
	}

	for _, domain := range domainsResponse.Data {
		var recordsResponse struct {
			Data []struct {
				ID   int    `json:"id"`
				Name string `json:"name"`
				Type string `json:"type"`
			} `json:"data"`
		}
		path := "/" + strconv.Itoa(domain.ID) + "/records"
		err = p.doJSON(ctx, client, http.MethodGet, makeURL(path), nil, &recordsResponse)
		if err != nil {
			return nil, fmt.Errorf("getting records of domain %s: %w", domain.Domain, err)
		}

		for _, domainRecord := range recordsResponse.Data {
			fqdn := domain.Domain
			if domainRecord.Name != "" {
				fqdn = domainRecord.Name + "." + domain.Domain
			}

			switch {
			case domainRecord.Type != constants.A && domainRecord.Type != constants.AAAA,
				!slices.Contains(p.domains, fqdn):
				continue
			}
			records = append(records, record{
				domainID:   domain.ID,
				id:         domainRecord.ID,
				fqdn:       fqdn,
				recordType: domainRecord.Type,
			})
		}
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: for %s", errors.ErrRecordNotFound, p.domains)
	}
	return records, nil
}

func (p *Provider) updateRecord(ctx context.Context, client *http.Client,
	record record, ip netip.Addr) (err error) {
	requestData := struct {
		Target string `json:"target"`
		TTL    uint32 `json:"ttl_sec"`
	}{
		Target: ip.String(),
		TTL:    p.ttl,
	}
	buffer := bytes.NewBuffer(nil)
	encoder := json.NewEncoder(buffer)
	err = encoder.Encode(requestData)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrRequestMarshal, err)
	}

	path := "/" + strconv.Itoa(record.domainID) + "/records/" + strconv.Itoa(record.id)
	return p.doJSON(ctx, client, http.MethodPut, makeURL(path), buffer, nil)
}

// doJSON sends an authenticated request and decodes the JSON response
// body into output, if output is not nil.
func (p *Provider) doJSON(ctx context.Context, client *http.Client,
	method, url string, body io.Reader, output any) (err error) {
	request, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("creating http request: %w", err)
	}
	headers.SetUserAgent(request, p.userAgent)
	headers.SetAuthBearer(request, p.token)
	headers.SetAccept(request, "application/json")
	if body != nil {
		headers.SetContentType(request, "application/json")
	}

	response, err := client.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrTransport, err)
	}

	data, err := utils.ReadBody(response.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrUnmarshalResponse, err)
	}

	if response.StatusCode >= http.StatusBadRequest {
		return makeError(response.StatusCode, data)
	}

	if output == nil {
		return nil
	}

	err = json.Unmarshal(data, output)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrUnmarshalResponse, err)
	}
	return nil
}

func makeError(statusCode int, body []byte) error {
	var errorResponse struct {
		Errors []struct {
			Field  string `json:"field"`
			Reason string `json:"reason"`
		} `json:"errors"`
	}
	err := json.Unmarshal(body, &errorResponse)
	if err != nil || len(errorResponse.Errors) == 0 {
		return fmt.Errorf("%w: %d: %s", errors.ErrBadHTTPStatus,
			statusCode, utils.ToSingleLine(string(body)))
	}

	first := errorResponse.Errors[0]
	message := first.Reason
	if first.Field != "" {
		message += " (field = " + first.Field + ")"
	}
	return fmt.Errorf("%w: %d: %s", errors.ErrBadHTTPStatus, statusCode, message)
}
