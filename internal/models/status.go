package models

import (
	"net/netip"
	"strings"
	"time"
)

// ServiceStatus is the outcome of the last update of a DDNS service.
type ServiceStatus struct {
	Name      string       `json:"name"`
	Service   string       `json:"service"`
	Status    Status       `json:"status"`
	Message   string       `json:"message,omitempty"`
	Addresses []netip.Addr `json:"addresses,omitempty"`
	Time      time.Time    `json:"time"`
}

func (s ServiceStatus) String() string {
	parts := []string{s.Name + ": " + string(s.Status)}
	if len(s.Addresses) > 0 {
		addresses := make([]string, len(s.Addresses))
		for i, address := range s.Addresses {
			addresses[i] = address.String()
		}
		parts = append(parts, "with "+strings.Join(addresses, ", "))
	}
	if s.Message != "" {
		parts = append(parts, "("+s.Message+")")
	}
	parts = append(parts, "at "+s.Time.Format("2006-01-02 15:04:05 MST"))
	return strings.Join(parts, " ")
}
