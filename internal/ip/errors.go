package ip

import "errors"

var (
	ErrExecution        = errors.New("unable to obtain IP from child process")
	ErrInterface        = errors.New("unable to obtain matching IP from interface")
	ErrHTTP             = errors.New("unable to obtain matching IP using HTTP")
	ErrDNS              = errors.New("unable to obtain IP using DNS")
	ErrRegexNotValid    = errors.New("regex is not valid")
	ErrNetworkNotValid  = errors.New("network mask is not valid")
	ErrMethodUnknown    = errors.New("IP method is unknown")
	ErrDNSProviderUnset = errors.New("DNS provider is unknown")
	ErrAddressMalformed = errors.New("address is malformed")
	ErrAddressVersion   = errors.New("address is not of the expected IP version")
)
