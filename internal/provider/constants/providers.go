package constants

import "github.com/qdm12/dynners/internal/models"

// All possible service values.
const (
	Cloudflare models.Provider = "cloudflare-v4"
	DNSOMatic  models.Provider = "dns-o-matic"
	DuckDNS    models.Provider = "duckdns"
	Dummy      models.Provider = "dummy"
	Dynu       models.Provider = "dynu"
	IPv64      models.Provider = "ipv64"
	Linode     models.Provider = "linode"
	NoIP       models.Provider = "no-ip"
	Porkbun    models.Provider = "porkbun-v3"
	Selfhost   models.Provider = "selfhost"
)

func ProviderChoices() []models.Provider {
	return []models.Provider{
		Cloudflare,
		DNSOMatic,
		DuckDNS,
		Dummy,
		Dynu,
		IPv64,
		Linode,
		NoIP,
		Porkbun,
		Selfhost,
	}
}
