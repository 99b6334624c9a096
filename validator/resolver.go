package validator

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultTimeout bounds a single LookupMX call, across all nameservers
	DefaultTimeout = 5 * time.Second

	DefaultResolvConf = "/etc/resolv.conf"
)

// ResolverOption configures a Resolver
type ResolverOption func(r *Resolver)

// WithNameservers overrides the nameservers from resolv.conf. Entries without a port use port 53.
func WithNameservers(servers ...string) ResolverOption {
	return func(r *Resolver) {
		r.servers = r.servers[:0]
		for _, s := range servers {
			if s != "" {
				r.servers = append(r.servers, normalizeNameserver(s))
			}
		}
	}
}

// WithTimeout sets the upper bound of a single LookupMX call
func WithTimeout(ttl time.Duration) ResolverOption {
	return func(r *Resolver) {
		r.timeout = ttl
	}
}

// WithResolvConf sets the resolv.conf style file to read nameservers from, when none are set explicitly
func WithResolvConf(path string) ResolverOption {
	return func(r *Resolver) {
		r.resolvConf = path
	}
}

func WithResolverLogger(logger logrus.FieldLogger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver creates a Resolver. Without WithNameservers, the nameservers are read from resolv.conf.
func NewResolver(options ...ResolverOption) (*Resolver, error) {
	r := &Resolver{
		timeout:    DefaultTimeout,
		resolvConf: DefaultResolvConf,
		logger:     discardLogger(),
	}

	for _, o := range options {
		o(r)
	}

	if r.timeout <= 0 {
		return nil, fmt.Errorf("invalid timeout %s, expecting a positive duration", r.timeout)
	}

	if len(r.servers) == 0 {
		conf, err := dns.ClientConfigFromFile(r.resolvConf)
		if err != nil {
			return nil, fmt.Errorf("unable to read nameservers from %q, reason: %w", r.resolvConf, err)
		}

		for _, s := range conf.Servers {
			r.servers = append(r.servers, net.JoinHostPort(s, conf.Port))
		}
	}

	if len(r.servers) == 0 {
		return nil, ErrNoNameserversConfigured
	}

	r.udp = &dns.Client{Net: "udp", Timeout: r.timeout}
	r.tcp = &dns.Client{Net: "tcp", Timeout: r.timeout}

	return r, nil
}

// Resolver queries MX records directly from the configured nameservers, so that the response code is available for
// classification and the timeout is enforced regardless of the system resolver's settings.
type Resolver struct {
	servers    []string
	timeout    time.Duration
	resolvConf string
	logger     logrus.FieldLogger

	udp *dns.Client
	tcp *dns.Client
}

// Nameservers returns the host:port pairs queried, in order
func (r *Resolver) Nameservers() []string {
	return append([]string(nil), r.servers...)
}

// LookupMX fetches the MX hosts of domain. The whole call, including fail-over to other nameservers, is bounded by
// the configured timeout.
func (r *Resolver) LookupMX(ctx context.Context, domain string) ([]string, error) {
	name, err := toQueryName(domain)
	if err != nil {
		return nil, err
	}

	ctx, cancel := getEarliestDeadlineCTX(ctx, r.timeout)
	defer cancel()

	msg := new(dns.Msg)
	msg.SetQuestion(name, dns.TypeMX)

	// Nameservers that can't be reached or answer with a failure code are skipped. When none are left the domain is
	// considered unresolvable, unless one of them timed out.
	var lastErr, timeoutErr error
	var failed int
	for _, server := range r.servers {
		in, err := r.exchange(ctx, msg, server)
		if err != nil {
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil, ctx.Err()
			}

			if isExpired(ctx) {
				return nil, fmt.Errorf("%w after %s: %w", ErrLookupTimeout, r.timeout, err)
			}

			if isTimeout(err) {
				timeoutErr = err
			}

			r.logger.WithFields(logrus.Fields{
				"nameserver": server,
				"domain":     name,
			}).WithError(err).Debug("Nameserver unreachable, trying next")

			lastErr = err
			failed++
			continue
		}

		switch in.Rcode {
		case dns.RcodeSuccess:
			return collectMXHosts(in.Answer)
		case dns.RcodeNameError:
			return nil, ErrNXDomain
		}

		rcode := dns.RcodeToString[in.Rcode]
		r.logger.WithFields(logrus.Fields{
			"nameserver": server,
			"domain":     name,
			"rcode":      rcode,
		}).Debug("Nameserver refused to answer, trying next")

		lastErr = fmt.Errorf("%s answered %s", server, rcode)
		failed++
	}

	if timeoutErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrLookupTimeout, timeoutErr)
	}

	return nil, fmt.Errorf("%w: %d nameserver(s) failed for %s, last: %w", ErrNoNameservers, failed, name, lastErr)
}

// exchange sends msg to a single server, retrying over TCP when the UDP answer was truncated
func (r *Resolver) exchange(ctx context.Context, msg *dns.Msg, server string) (*dns.Msg, error) {
	in, _, err := r.udp.ExchangeContext(ctx, msg, server)
	if err != nil {
		return nil, err
	}

	if in.Truncated {
		in, _, err = r.tcp.ExchangeContext(ctx, msg, server)
		if err != nil {
			return nil, err
		}
	}

	return in, nil
}
