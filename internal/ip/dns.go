package ip

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"strings"

	"github.com/miekg/dns"
	"github.com/qdm12/dynners/internal/ipversion"
)

// DNSProvider is a DNS server echoing back the address of the client.
type DNSProvider string

const (
	DNSProviderOpenDNS    DNSProvider = "opendns"
	DNSProviderCloudflare DNSProvider = "cloudflare"
)

func DNSProviderChoices() []DNSProvider {
	return []DNSProvider{DNSProviderOpenDNS, DNSProviderCloudflare}
}

func (p DNSProvider) validate() error {
	switch p {
	case DNSProviderOpenDNS, DNSProviderCloudflare:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrDNSProviderUnset, string(p))
	}
}

type dnsQuery struct {
	fqdn   string
	class  uint16
	qType  uint16
	server string
}

func (p DNSProvider) query(version ipversion.IPVersion) dnsQuery {
	switch p {
	case DNSProviderCloudflare:
		server := "1.1.1.1"
		if version == ipversion.IP6 {
			server = "2606:4700:4700::1111"
		}
		return dnsQuery{
			fqdn:   "whoami.cloudflare.",
			class:  dns.ClassCHAOS,
			qType:  dns.TypeTXT,
			server: net.JoinHostPort(server, "53"),
		}
	default: // OpenDNS
		server, qType := "208.67.222.222", dns.TypeA
		if version == ipversion.IP6 {
			server, qType = "2620:119:35::35", dns.TypeAAAA
		}
		return dnsQuery{
			fqdn:   "myip.opendns.com.",
			class:  dns.ClassINET,
			qType:  qType,
			server: net.JoinHostPort(server, "53"),
		}
	}
}

func udpNetwork(version ipversion.IPVersion) string {
	if version == ipversion.IP6 {
		return "udp6"
	}
	return "udp4"
}

type dnsSource struct {
	version  ipversion.IPVersion
	provider DNSProvider
	client   DNSClient
}

func (s *dnsSource) Version() ipversion.IPVersion { return s.version }

func (s *dnsSource) String() string {
	return fmt.Sprintf("%s from DNS provider %s", s.version, s.provider)
}

func (s *dnsSource) Resolve(ctx context.Context) (address netip.Addr, err error) {
	query := s.provider.query(s.version)
	request := new(dns.Msg)
	request.SetQuestion(query.fqdn, query.qType)
	request.Question[0].Qclass = query.class

	response, _, err := s.client.ExchangeContext(ctx, request, query.server)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %w", ErrDNS, err)
	} else if response.Rcode != dns.RcodeSuccess {
		return netip.Addr{}, fmt.Errorf("%w: response code is %s",
			ErrDNS, dns.RcodeToString[response.Rcode])
	}

	for _, answer := range response.Answer {
		var text string
		switch record := answer.(type) {
		case *dns.A:
			text = record.A.String()
		case *dns.AAAA:
			text = record.AAAA.String()
		case *dns.TXT:
			text = strings.Join(record.Txt, "")
		default:
			continue
		}

		address, err = parseAddress(strings.TrimSpace(text), s.version)
		if err != nil {
			return netip.Addr{}, fmt.Errorf("%w: %w", ErrDNS, err)
		}
		return address, nil
	}

	return netip.Addr{}, fmt.Errorf("%w: no answer for %s from %s",
		ErrDNS, query.fqdn, query.server)
}
