package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/netip"
	"net/url"

	"github.com/qdm12/dynners/internal/provider/errors"
	"github.com/qdm12/dynners/internal/provider/headers"
	"github.com/qdm12/dynners/internal/provider/utils"
)

// See https://developers.cloudflare.com/api/operations/dns-records-for-a-zone-update-dns-record
func (p *Provider) updateRecord(ctx context.Context, client *http.Client,
	record record, ip netip.Addr) (err error) {
	u := url.URL{
		Scheme: "https",
		Host:   "api.cloudflare.com",
		Path:   "/client/v4/zones/" + record.zoneID + "/dns_records/" + record.id,
	}

	requestData := struct {
		Content string `json:"content"`
		Name    string `json:"name"`
		Proxied bool   `json:"proxied"`
		Type    string `json:"type"`
		TTL     uint32 `json:"ttl"`
	}{
		Content: ip.String(),
		Name:    record.name,
		Proxied: p.proxied,
		Type:    record.recordType,
		TTL:     p.ttl,
	}
	buffer := bytes.NewBuffer(nil)
	encoder := json.NewEncoder(buffer)
	err = encoder.Encode(requestData)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrRequestMarshal, err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPut, u.String(), buffer)
	if err != nil {
		return fmt.Errorf("creating http request: %w", err)
	}
	headers.SetUserAgent(request, p.userAgent)
	headers.SetContentType(request, "application/json")
	headers.SetAuthBearer(request, p.token)

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

	var responseData struct {
		Success bool `json:"success"`
	}
	err = json.Unmarshal(data, &responseData)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrUnmarshalResponse, err)
	} else if !responseData.Success {
		return fmt.Errorf("%w: success is false: %s",
			errors.ErrUnsuccessfulResponse, utils.ToSingleLine(string(data)))
	}
	return nil
}

func makeError(statusCode int, body []byte) error {
	var errorResponse struct {
		Errors []struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	err := json.Unmarshal(body, &errorResponse)
	if err != nil || len(errorResponse.Errors) == 0 {
		return fmt.Errorf("%w: %d: %s", errors.ErrBadHTTPStatus,
			statusCode, utils.ToSingleLine(string(body)))
	}

	first := errorResponse.Errors[0]
	return fmt.Errorf("%w: %d: error code %d: %s", errors.ErrBadHTTPStatus,
		statusCode, first.Code, first.Message)
}
