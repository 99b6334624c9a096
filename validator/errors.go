package validator

import "errors"

var (
	ErrNXDomain                = errors.New("domain does not exist")
	ErrNoNameservers           = errors.New("no nameserver could be reached or answer for the domain")
	ErrNoMXRecords             = errors.New("no MX records found")
	ErrNullMX                  = errors.New("domain publishes a null MX record")
	ErrInvalidDomain           = errors.New("invalid domain name")
	ErrLookupTimeout           = errors.New("MX lookup timed out")
	ErrNoNameserversConfigured = errors.New("no nameservers configured")
)
