package params

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/qdm12/dynners/internal/ip"
	"github.com/qdm12/dynners/internal/models"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gotree"
)

// Config is the parsed configuration file.
type Config struct {
	// Path is the path of the file read.
	Path string
	// Raw is the verbatim file content, used to fingerprint
	// the configuration in the persistent state.
	Raw     []byte
	General General
	// IPs maps each IP name to its settings.
	IPs map[string]ip.Settings
	// DDNS contains the DDNS entries sorted by name.
	DDNS []DDNS
}

type General struct {
	// UpdateRate is zero to run a single update cycle.
	UpdateRate      time.Duration
	Shell           *string
	UserAgent       *string
	PersistentState *string
}

func (g *General) setDefaults(version string) {
	g.Shell = gosettings.DefaultPointer(g.Shell, "/bin/bash")
	g.UserAgent = gosettings.DefaultPointer(g.UserAgent,
		"github.com/qdm12/dynners "+version)
	g.PersistentState = gosettings.DefaultPointer(g.PersistentState,
		"/var/lib/dynners/persistence")
}

// DDNS is a DDNS service entry.
type DDNS struct {
	Name    string
	IPs     []string
	Service models.Provider
	// Data holds the service specific fields encoded as JSON.
	Data json.RawMessage
}

func (c Config) validate() (err error) {
	if len(c.IPs) == 0 {
		return fmt.Errorf("%w", ErrNoIP)
	}

	var errs []error
	for _, ddns := range c.DDNS {
		switch {
		case ddns.Service == "":
			errs = append(errs, fmt.Errorf("%w: for service %s", ErrServiceNotSet, ddns.Name))
		case len(ddns.IPs) == 0:
			errs = append(errs, fmt.Errorf("%w: %s", ErrServiceNoIP, ddns.Name))
		}

		for _, ipName := range ddns.IPs {
			_, ok := c.IPs[ipName]
			if !ok {
				errs = append(errs, fmt.Errorf("service %s: the IP %s is %w",
					ddns.Name, ipName, ErrIPNotSpecified))
			}
		}
	}

	return errors.Join(errs...)
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Configuration file %s:", c.Path)

	generalNode := node.Appendf("General")
	if c.General.UpdateRate == 0 {
		generalNode.Appendf("Update rate: fire once")
	} else {
		generalNode.Appendf("Update rate: %s", c.General.UpdateRate)
	}
	generalNode.Appendf("Shell: %s", *c.General.Shell)
	generalNode.Appendf("User agent: %s", *c.General.UserAgent)
	if *c.General.PersistentState == "" {
		generalNode.Appendf("Persistent state: disabled")
	} else {
		generalNode.Appendf("Persistent state: %s", *c.General.PersistentState)
	}

	ipNames := make([]string, 0, len(c.IPs))
	for name := range c.IPs {
		ipNames = append(ipNames, name)
	}
	slices.Sort(ipNames)

	ipsNode := node.Appendf("IPs")
	for _, name := range ipNames {
		settings := c.IPs[name]
		ipNode := ipsNode.Appendf("%s: %s using %s", name, settings.Version, settings.Method)
		switch settings.Method {
		case ip.MethodExec:
			ipNode.Appendf("Command: %s", settings.Command)
		case ip.MethodInterface:
			ipNode.Appendf("Interface: %s", settings.Interface)
			if settings.Matches != "" {
				ipNode.Appendf("Matches: %s", settings.Matches)
			}
		case ip.MethodHTTP:
			ipNode.Appendf("URL: %s", settings.URL)
			ipNode.Appendf("Regex: %s", settings.Regex)
		case ip.MethodDNS:
			ipNode.Appendf("Provider: %s", settings.DNSProvider)
		}
	}

	if len(c.DDNS) > 0 {
		ddnsNode := node.Appendf("DDNS services")
		for _, ddns := range c.DDNS {
			ddnsNode.Appendf("%s: %s with %v", ddns.Name, ddns.Service, ddns.IPs)
		}
	}

	return node
}
