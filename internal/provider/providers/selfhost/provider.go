package selfhost

import (
	"encoding/json"
	"time"

	"github.com/qdm12/dynners/internal/provider/providers/dyndns"
)

var server = dyndns.Server{
	Name: "selfHOST",
	URL:  "https://carol.selfhost.de/nic/update",
}

func New(data json.RawMessage, userAgent string,
	updateRate time.Duration) (p *dyndns.Provider, err error) {
	return dyndns.New(data, server, userAgent, updateRate)
}
