package validator

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sort"
	"strings"
	"time"

	"github.com/miekg/dns"
	"golang.org/x/net/idna"
)

// Reading an external source, limiting to a liberal amount
const maxMXHosts = 10

// getEarliestDeadlineCTX returns a context that expires after ttl, or earlier when the parent's deadline comes first.
func getEarliestDeadlineCTX(parent context.Context, ttl time.Duration) (context.Context, context.CancelFunc) {
	deadline := time.Now().Add(ttl)
	if d, ok := parent.Deadline(); ok && d.Before(deadline) {
		return context.WithCancel(parent)
	}

	return context.WithDeadline(parent, deadline)
}

// toQueryName converts a (possibly internationalised) domain to a fully qualified ASCII name usable in a DNS question.
func toQueryName(domain string) (string, error) {
	if domain == "" {
		return "", fmt.Errorf("%w: empty domain", ErrInvalidDomain)
	}

	ascii, err := idna.ToASCII(strings.ToLower(domain))
	if err != nil {
		return "", fmt.Errorf("%w: %q %s", ErrInvalidDomain, domain, err)
	}

	name := dns.Fqdn(ascii)
	if _, ok := dns.IsDomainName(name); !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidDomain, domain)
	}

	return name, nil
}

// collectMXHosts extracts up to maxMXHosts MX hosts from an answer section, ordered by preference.
func collectMXHosts(answer []dns.RR) ([]string, error) {
	mxs := make([]*dns.MX, 0, len(answer))
	for _, rr := range answer {
		if mx, ok := rr.(*dns.MX); ok {
			mxs = append(mxs, mx)
		}
	}

	if len(mxs) == 0 {
		return []string{}, ErrNoMXRecords
	}

	sort.SliceStable(mxs, func(i, j int) bool {
		return mxs[i].Preference < mxs[j].Preference
	})

	allocateMax := maxMXHosts
	if l := len(mxs); l < allocateMax {
		allocateMax = l
	}

	collected := make([]string, 0, allocateMax)
	for _, mx := range mxs[:allocateMax] {

		// A host consisting solely out of a "." is a null MX (RFC 7505), the domain explicitly accepts no mail
		host := strings.TrimSuffix(mx.Mx, ".")
		if host != "" {
			collected = append(collected, host)
		}
	}

	if len(collected) == 0 {
		return collected, fmt.Errorf("tried %d MX host(s) %w", len(mxs), ErrNullMX)
	}

	return collected, nil
}

// normalizeNameserver appends the default DNS port when none is given
func normalizeNameserver(s string) string {
	if _, _, err := net.SplitHostPort(s); err == nil {
		return s
	}

	return net.JoinHostPort(strings.Trim(s, "[]"), "53")
}

// isExpired is true when ctx's deadline has passed, even if ctx.Err() hasn't caught up yet
func isExpired(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}

	deadline, ok := ctx.Deadline()
	return ok && !time.Now().Before(deadline)
}

// isTimeout reports whether err is a network timeout, as opposed to an unreachable or refusing nameserver
func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
