package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/qdm12/dynners/internal/provider/errors"
)

// Domains is a list of domains which can be decoded
// from either a single JSON string or a list of strings.
type Domains []string

func (d *Domains) UnmarshalJSON(data []byte) (err error) {
	var single string
	err = json.Unmarshal(data, &single)
	if err == nil {
		*d = Domains{single}
		return nil
	}

	var list []string
	err = json.Unmarshal(data, &list)
	if err != nil {
		return fmt.Errorf("domains must be a string or a list of strings: %w", err)
	}
	*d = list
	return nil
}

// Validate returns an error if there is no domain or if one of them is empty.
func (d Domains) Validate() error {
	if len(d) == 0 {
		return fmt.Errorf("%w", errors.ErrDomainsNotSet)
	}
	for i, domain := range d {
		if strings.TrimSpace(domain) == "" {
			return fmt.Errorf("%w: domain %d of %d", errors.ErrDomainEmpty, i+1, len(d))
		}
	}
	return nil
}

func (d Domains) String() string {
	return strings.Join(d, ",")
}

// SplitSubdomain splits a fully qualified domain name into its
// subdomain and its registered domain made of the last two labels.
// For example "a.b.example.com" gives "a.b" and "example.com".
func SplitSubdomain(fqdn string) (subdomain, domain string) {
	labels := strings.Split(fqdn, ".")
	const registeredLabels = 2
	if len(labels) <= registeredLabels {
		return "", fqdn
	}
	split := len(labels) - registeredLabels
	return strings.Join(labels[:split], "."), strings.Join(labels[split:], ".")
}
