package validator

import (
	"context"
)

// LookupMX resolves the mail exchangers of a domain. Implementations return the sentinel errors of this package, so
// that Classify can tell a missing domain apart from a missing MX record.
type LookupMX interface {
	LookupMX(ctx context.Context, domain string) ([]string, error)
}
