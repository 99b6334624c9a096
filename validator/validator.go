package validator

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/Dynom/listkit/types"
	"github.com/sirupsen/logrus"
)

// Option configures a Validator
type Option func(v *Validator)

// WithLogger sets the logger used for per address diagnostics
func WithLogger(logger logrus.FieldLogger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

// New creates a Validator that resolves MX records through lookup
func New(lookup LookupMX, options ...Option) Validator {
	v := Validator{
		lookup: lookup,
		logger: discardLogger(),
	}

	for _, o := range options {
		o(&v)
	}

	return v
}

type Validator struct {
	lookup LookupMX
	logger logrus.FieldLogger
}

// Check classifies a single raw input line. It returns false for blank lines, in which case no lookup is performed and
// nothing should be reported. Lookup failures never surface as errors, they are folded into the Status.
func (v Validator) Check(ctx context.Context, line string) (Result, bool) {
	email := strings.TrimSpace(line)
	if email == "" {
		return Result{}, false
	}

	result := Result{
		Email:   email,
		Timings: make(Timings, 0, 1),
	}

	parts, err := types.NewEmailParts(email)
	if err != nil {
		result.Status = StatusDomainMissing
		result.Err = err

		v.logger.WithFields(logrus.Fields{
			"email":  email,
			"status": result.Status.String(),
		}).Debug("Address can't be decomposed, skipping lookup")

		return result, true
	}

	result.Domain = parts.Domain

	start := time.Now()
	result.MX, result.Err = v.lookup.LookupMX(ctx, parts.Domain)
	result.Timings.Add("LookupMX", time.Since(start))
	result.Status = Classify(result.MX, result.Err)

	logger := v.logger.WithFields(logrus.Fields{
		"email":     email,
		"domain":    parts.Domain,
		"status":    result.Status.String(),
		"mx":        result.MX,
		"lookup_ms": result.Timings.Total().Milliseconds(),
	})

	switch {
	case errors.Is(result.Err, ErrInvalidDomain):
		logger.WithError(result.Err).Warn("Domain can't be used in a DNS query")
	case result.Err != nil:
		logger.WithError(result.Err).Debug("MX lookup failed")
	default:
		logger.Debug("MX lookup done")
	}

	return result, true
}

// Classify maps the outcome of an MX lookup on one of the three statuses. A domain that doesn't exist, or for which no
// nameserver would answer, is missing. Any other failure, including timeouts and an empty answer, means the MX records
// are missing or unusable.
func Classify(mx []string, err error) Status {
	switch {
	case errors.Is(err, ErrNXDomain), errors.Is(err, ErrNoNameservers):
		return StatusDomainMissing
	case err != nil:
		return StatusMXMissingOrInvalid
	case len(mx) == 0:
		return StatusMXMissingOrInvalid
	}

	return StatusDomainValid
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Out = io.Discard

	return l
}
