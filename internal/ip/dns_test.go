package ip

import (
	"context"
	"errors"
	"net"
	"net/netip"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/miekg/dns"
	"github.com/qdm12/dynners/internal/ip/mock_ip"
	"github.com/qdm12/dynners/internal/ipversion"
	"github.com/stretchr/testify/assert"
)

func Test_dnsSource_Resolve(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test error")

	testCases := map[string]struct {
		version     ipversion.IPVersion
		provider    DNSProvider
		server      string
		question    dns.Question
		response    *dns.Msg
		exchangeErr error
		address     netip.Addr
		errWrapped  error
		errMessage  string
	}{
		"exchange_error": {
			version:     ipversion.IP4,
			provider:    DNSProviderOpenDNS,
			server:      "208.67.222.222:53",
			question:    dns.Question{Name: "myip.opendns.com.", Qtype: dns.TypeA, Qclass: dns.ClassINET},
			exchangeErr: errTest,
			errWrapped:  ErrDNS,
			errMessage:  "unable to obtain IP using DNS: test error",
		},
		"bad_rcode": {
			version:    ipversion.IP4,
			provider:   DNSProviderOpenDNS,
			server:     "208.67.222.222:53",
			question:   dns.Question{Name: "myip.opendns.com.", Qtype: dns.TypeA, Qclass: dns.ClassINET},
			response:   &dns.Msg{MsgHdr: dns.MsgHdr{Rcode: dns.RcodeServerFailure}},
			errWrapped: ErrDNS,
			errMessage: "unable to obtain IP using DNS: response code is SERVFAIL",
		},
		"no_answer": {
			version:    ipversion.IP6,
			provider:   DNSProviderOpenDNS,
			server:     "[2620:119:35::35]:53",
			question:   dns.Question{Name: "myip.opendns.com.", Qtype: dns.TypeAAAA, Qclass: dns.ClassINET},
			response:   &dns.Msg{},
			errWrapped: ErrDNS,
			errMessage: "unable to obtain IP using DNS: " +
				"no answer for myip.opendns.com. from [2620:119:35::35]:53",
		},
		"opendns_ipv4": {
			version:  ipversion.IP4,
			provider: DNSProviderOpenDNS,
			server:   "208.67.222.222:53",
			question: dns.Question{Name: "myip.opendns.com.", Qtype: dns.TypeA, Qclass: dns.ClassINET},
			response: &dns.Msg{Answer: []dns.RR{
				&dns.A{A: net.IPv4(203, 0, 113, 9)},
			}},
			address: netip.MustParseAddr("203.0.113.9"),
		},
		"cloudflare_ipv6": {
			version:  ipversion.IP6,
			provider: DNSProviderCloudflare,
			server:   "[2606:4700:4700::1111]:53",
			question: dns.Question{Name: "whoami.cloudflare.", Qtype: dns.TypeTXT, Qclass: dns.ClassCHAOS},
			response: &dns.Msg{Answer: []dns.RR{
				&dns.TXT{Txt: []string{"2001:db8::9"}},
			}},
			address: netip.MustParseAddr("2001:db8::9"),
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			ctx := context.Background()
			client := mock_ip.NewMockDNSClient(ctrl)
			client.EXPECT().ExchangeContext(ctx, gomock.Any(), testCase.server).
				DoAndReturn(func(_ context.Context, m *dns.Msg, _ string) (*dns.Msg, time.Duration, error) {
					assert.Equal(t, []dns.Question{testCase.question}, m.Question)
					return testCase.response, 0, testCase.exchangeErr
				})

			source := &dnsSource{
				version:  testCase.version,
				provider: testCase.provider,
				client:   client,
			}

			address, err := source.Resolve(ctx)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
			assert.Equal(t, testCase.address, address)
		})
	}
}
