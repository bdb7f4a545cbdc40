package params

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/qdm12/dynners/internal/ip"
	"github.com/qdm12/dynners/internal/ipversion"
	"github.com/qdm12/dynners/internal/models"
)

type fileSettings struct {
	General struct {
		UpdateRate      uint32  `toml:"update_rate"`
		Shell           *string `toml:"shell"`
		UserAgent       *string `toml:"user_agent"`
		PersistentState *string `toml:"persistent_state"`
	} `toml:"general"`
	IP   map[string]ipSettings     `toml:"ip"`
	DDNS map[string]map[string]any `toml:"ddns"`
}

type ipSettings struct {
	Version  int64   `toml:"version"`
	Method   string  `toml:"method"`
	Command  string  `toml:"command"`
	Iface    string  `toml:"iface"`
	Matches  string  `toml:"matches"`
	URL      string  `toml:"url"`
	Regex    *string `toml:"regex"`
	Provider string  `toml:"provider"`
}

const defaultRegex = "(.*)"

func parse(data []byte, warner Warner) (config Config, err error) {
	var settings fileSettings
	metadata, err := toml.Decode(string(data), &settings)
	if err != nil {
		return config, fmt.Errorf("decoding TOML: %w", err)
	}

	for _, key := range metadata.Undecoded() {
		if len(key) > 0 && key[0] == "ddns" {
			continue
		}
		warner.Warn("configuration key " + key.String() + " is unknown and ignored")
	}

	config.General = General{
		UpdateRate:      time.Duration(settings.General.UpdateRate) * time.Second,
		Shell:           settings.General.Shell,
		UserAgent:       settings.General.UserAgent,
		PersistentState: settings.General.PersistentState,
	}

	config.IPs = make(map[string]ip.Settings, len(settings.IP))
	for name, ipSettings := range settings.IP {
		config.IPs[name], err = ipSettings.toSettings()
		if err != nil {
			return config, fmt.Errorf("IP %s: %w", name, err)
		}
	}

	ddnsNames := make([]string, 0, len(settings.DDNS))
	for name := range settings.DDNS {
		ddnsNames = append(ddnsNames, name)
	}
	slices.Sort(ddnsNames)

	config.DDNS = make([]DDNS, len(ddnsNames))
	for i, name := range ddnsNames {
		config.DDNS[i], err = parseDDNS(name, settings.DDNS[name])
		if err != nil {
			return config, fmt.Errorf("service %s: %w", name, err)
		}
	}

	return config, nil
}

func (s ipSettings) toSettings() (settings ip.Settings, err error) {
	settings.Version, err = ipversion.Parse(s.Version)
	if err != nil {
		return settings, err
	}

	settings.Method = ip.Method(s.Method)
	switch settings.Method {
	case ip.MethodExec:
		settings.Command = s.Command
	case ip.MethodInterface:
		settings.Interface = s.Iface
		settings.Matches = s.Matches
	case ip.MethodHTTP:
		settings.URL = s.URL
		settings.Regex = defaultRegex
		if s.Regex != nil {
			settings.Regex = *s.Regex
		}
	case ip.MethodDNS:
		if s.Provider == "" {
			return settings, fmt.Errorf("%w", ErrDNSProviderUnset)
		}
		settings.DNSProvider = ip.DNSProvider(s.Provider)
	default:
		return settings, fmt.Errorf("%w: %q must be one of %s",
			ErrIPMethodUnknown, s.Method, joinMethods(ip.MethodChoices()))
	}

	return settings, nil
}

func joinMethods(methods []ip.Method) string {
	s := make([]string, len(methods))
	for i, method := range methods {
		s[i] = string(method)
	}
	return strings.Join(s, ", ")
}

// parseDDNS extracts the ip and service fields of a DDNS entry and
// encodes its remaining fields as JSON for the service to decode.
func parseDDNS(name string, fields map[string]any) (ddns DDNS, err error) {
	ddns.Name = name

	switch value := fields["ip"].(type) {
	case nil:
	case string:
		ddns.IPs = []string{value}
	case []any:
		ddns.IPs = make([]string, len(value))
		for i, element := range value {
			s, ok := element.(string)
			if !ok {
				return ddns, fmt.Errorf("%w: element %d is %T", ErrIPListNotValid, i, element)
			}
			ddns.IPs[i] = s
		}
	default:
		return ddns, fmt.Errorf("%w: got %T", ErrIPListNotValid, value)
	}

	service, _ := fields["service"].(string)
	ddns.Service = models.Provider(service)

	data := make(map[string]any, len(fields))
	for key, value := range fields {
		switch key {
		case "ip", "service":
			continue
		}
		data[key] = value
	}
	ddns.Data, err = json.Marshal(data)
	if err != nil {
		return ddns, fmt.Errorf("encoding service fields: %w", err)
	}

	return ddns, nil
}
