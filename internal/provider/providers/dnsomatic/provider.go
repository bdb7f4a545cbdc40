package dnsomatic

import (
	"encoding/json"
	"time"

	"github.com/qdm12/dynners/internal/provider/providers/dyndns"
)

// See https://www.dnsomatic.com/docs/api
var server = dyndns.Server{
	Name: "DNS-O-Matic",
	URL:  "https://updates.dnsomatic.com/nic/update",
}

func New(data json.RawMessage, userAgent string,
	updateRate time.Duration) (p *dyndns.Provider, err error) {
	return dyndns.New(data, server, userAgent, updateRate)
}
