package ip

import (
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/miekg/dns"
	"github.com/qdm12/dynners/internal/ipversion"
	"github.com/qdm12/dynners/internal/netmask"
)

type Method string

const (
	MethodExec      Method = "exec"
	MethodInterface Method = "interface"
	MethodHTTP      Method = "http"
	MethodDNS       Method = "dns"
)

func MethodChoices() []Method {
	return []Method{MethodExec, MethodInterface, MethodHTTP, MethodDNS}
}

// Settings describe how to obtain one IP address.
type Settings struct {
	Version ipversion.IPVersion
	Method  Method
	// Command is the shell command for the exec method.
	Command string
	// Interface and Matches are used by the interface method.
	// Matches defaults to the match-all network of the IP version.
	Interface string
	Matches   string
	// URL and Regex are used by the http method. An empty regex
	// uses the whole trimmed response body.
	URL   string
	Regex string
	// DNSProvider is used by the dns method.
	DNSProvider DNSProvider
}

// Environment holds the process wide collaborators and values
// the sources depend on.
type Environment struct {
	Shell      string
	UserAgent  string
	Client     *http.Client
	Commander  Commander
	Enumerator Enumerator
	// DNSClient is optional and a UDP client is created
	// for the IP version if left unset.
	DNSClient DNSClient
}

// New creates the address source described by the settings.
func New(settings Settings, environment Environment) (source Source, err error) {
	switch settings.Method {
	case MethodExec:
		return &execSource{
			version:   settings.Version,
			shell:     environment.Shell,
			command:   settings.Command,
			commander: environment.Commander,
		}, nil
	case MethodInterface:
		matches := settings.Matches
		if matches == "" {
			matches = "0.0.0.0/0"
			if settings.Version == ipversion.IP6 {
				matches = "::/0"
			}
		}
		matcher, err := netmask.Parse(matches, settings.Version)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNetworkNotValid, err)
		}
		return &interfaceSource{
			version:    settings.Version,
			iface:      settings.Interface,
			matcher:    matcher,
			enumerator: environment.Enumerator,
		}, nil
	case MethodHTTP:
		var regex *regexp.Regexp
		if settings.Regex != "" {
			regex, err = regexp.Compile(settings.Regex)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrRegexNotValid, err)
			}
		}
		return &httpSource{
			version:   settings.Version,
			client:    environment.Client,
			url:       settings.URL,
			regex:     regex,
			userAgent: environment.UserAgent,
		}, nil
	case MethodDNS:
		err = settings.DNSProvider.validate()
		if err != nil {
			return nil, err
		}
		client := environment.DNSClient
		if client == nil {
			const timeout = 5 * time.Second
			client = &dns.Client{
				Net:     udpNetwork(settings.Version),
				Timeout: timeout,
			}
		}
		return &dnsSource{
			version:  settings.Version,
			provider: settings.DNSProvider,
			client:   client,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrMethodUnknown, settings.Method)
	}
}
