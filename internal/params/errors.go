package params

import "errors"

var (
	ErrConfigNotFound   = errors.New("no configuration found")
	ErrConfigNotValid   = errors.New("configuration file is not valid")
	ErrNoIP             = errors.New("no IPs were configured")
	ErrIPNotSpecified   = errors.New("not specified anywhere in config")
	ErrIPMethodUnknown  = errors.New("IP method is unknown")
	ErrServiceNotSet    = errors.New("service is not set")
	ErrServiceNoIP      = errors.New("no IP is set for service")
	ErrIPListNotValid   = errors.New("ip must be a string or a list of strings")
	ErrDNSProviderUnset = errors.New("DNS provider is not set")
)
