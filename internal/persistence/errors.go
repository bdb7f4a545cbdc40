package persistence

import "errors"

var (
	ErrMagicNotValid  = errors.New("unexpected file format: magic is not valid")
	ErrVersionTooNew  = errors.New("persistent state file is too new")
	ErrUnexpectedEOF  = errors.New("unexpected end of persistent state file")
	ErrNameNotUTF8    = errors.New("IP name is not valid UTF-8")
	ErrNameTooLong    = errors.New("IP name is too long")
	ErrIPTypeUnknown  = errors.New("IP type is unknown")
	ErrAddressInvalid = errors.New("address is not valid")
)
