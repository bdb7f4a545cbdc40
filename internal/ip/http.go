package ip

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/qdm12/dynners/internal/ipversion"
)

type httpSource struct {
	version   ipversion.IPVersion
	client    *http.Client
	url       string
	regex     *regexp.Regexp
	userAgent string
}

func (s *httpSource) Version() ipversion.IPVersion { return s.version }

func (s *httpSource) String() string {
	return fmt.Sprintf("%s from %s", s.version, s.url)
}

// maxBodySize is the maximum number of bytes read from a response body.
const maxBodySize = 2 * 1024 * 1024

func (s *httpSource) Resolve(ctx context.Context) (address netip.Addr, err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: creating request: %w", ErrHTTP, err)
	}
	if s.userAgent != "" {
		request.Header.Set("User-Agent", s.userAgent)
	}

	response, err := s.client.Do(request)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %w", ErrHTTP, err)
	}

	b, err := io.ReadAll(io.LimitReader(response.Body, maxBodySize))
	if err != nil {
		_ = response.Body.Close()
		return netip.Addr{}, fmt.Errorf("%w: reading body: %w", ErrHTTP, err)
	}

	err = response.Body.Close()
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: closing body: %w", ErrHTTP, err)
	}

	if !utf8.Valid(b) {
		return netip.Addr{}, fmt.Errorf("%w: response body is not valid UTF-8", ErrHTTP)
	}
	body := string(b)

	if response.StatusCode >= http.StatusBadRequest {
		return netip.Addr{}, fmt.Errorf("%w: %d %s: %s", ErrHTTP, response.StatusCode,
			http.StatusText(response.StatusCode), toSingleLine(body))
	}

	text := body
	if s.regex != nil {
		submatches := s.regex.FindStringSubmatch(body)
		const minSubmatches = 2
		if len(submatches) < minSubmatches {
			return netip.Addr{}, fmt.Errorf("%w: regex %s does not match response %q",
				ErrHTTP, s.regex, toSingleLine(body))
		}
		text = submatches[1]
	}

	address, err = parseAddress(strings.TrimSpace(text), s.version)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %w", ErrHTTP, err)
	}
	return address, nil
}

func toSingleLine(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
