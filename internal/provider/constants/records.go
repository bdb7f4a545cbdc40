package constants

const (
	A    = "A"
	AAAA = "AAAA"
)
