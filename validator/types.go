package validator

// Status is the outcome of checking a single e-mail address. The zero value means no check was performed.
type Status uint8

const (
	StatusDomainMissing Status = iota + 1
	StatusMXMissingOrInvalid
	StatusDomainValid
)

func (s Status) String() string {
	switch s {
	case StatusDomainMissing:
		return "domain-missing"
	case StatusMXMissingOrInvalid:
		return "mx-missing-or-invalid"
	case StatusDomainValid:
		return "domain-valid"
	}

	return "unknown"
}

// Result holds the outcome of Validator.Check for one input line
type Result struct {
	Email  string
	Domain string
	Status Status
	MX     []string

	// Err is the reason behind a failed classification, it's informational only
	Err error
	Timings
}
