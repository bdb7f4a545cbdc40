package errors

import "errors"

var (
	ErrAbuse                = errors.New("domain is blocked because of abuse")
	ErrAuth                 = errors.New("bad authentication details were provided")
	ErrBadHTTPStatus        = errors.New("bad HTTP status")
	ErrBannedUserAgent      = errors.New("bad user agent was provided")
	ErrDNSServerSide        = errors.New("the server is down")
	ErrDomainNotFQDN        = errors.New("domain must be fully-qualified")
	ErrFeatureUnavailable   = errors.New("only credited users are allowed")
	ErrHostnameNotExists    = errors.New("hostname does not exist in the user account")
	ErrNoAddress            = errors.New("no IP address to update")
	ErrNumberOfHosts        = errors.New("too many hosts are specified")
	ErrRecordNotFound       = errors.New("record not found")
	ErrRequestMarshal       = errors.New("cannot marshal request body")
	ErrSuspended            = errors.New("service is suspended")
	ErrTransport            = errors.New("HTTP transport error")
	ErrUnknownResponse      = errors.New("unknown response received")
	ErrUnmarshalResponse    = errors.New("cannot unmarshal update response")
	ErrUnsuccessfulResponse = errors.New("unsuccessful response")
)
