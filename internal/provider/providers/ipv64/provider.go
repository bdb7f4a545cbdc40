package ipv64

import (
	"encoding/json"
	"time"

	"github.com/qdm12/dynners/internal/provider/providers/dyndns"
)

var server = dyndns.Server{
	Name: "IPv64",
	URL:  "https://ipv64.net/nic/update",
}

func New(data json.RawMessage, userAgent string,
	updateRate time.Duration) (p *dyndns.Provider, err error) {
	return dyndns.New(data, server, userAgent, updateRate)
}
