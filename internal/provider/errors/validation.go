package errors

import "errors"

var (
	ErrAPIKeyNotSet       = errors.New("API key is not set")
	ErrDomainsNotSet      = errors.New("no domain is set")
	ErrDomainEmpty        = errors.New("domain is empty")
	ErrPasswordNotSet     = errors.New("password is not set")
	ErrSecretAPIKeyNotSet = errors.New("secret API key is not set")
	ErrTokenNotSet        = errors.New("token is not set")
	ErrTTLNotValid        = errors.New("TTL is not valid")
	ErrUsernameNotSet     = errors.New("username is not set")
)
