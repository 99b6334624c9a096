package types

import (
	"errors"
	"strings"
)

// NewEmailParts splits an address on its single "@". It is not a syntax validator, anything with zero or more than one
// "@" is rejected and everything else is accepted.
func NewEmailParts(emailAddress string) (EmailParts, error) {
	p, err := splitLocalAndDomain(emailAddress)
	if err != nil {
		return EmailParts{}, err
	}

	return p, nil
}

type EmailParts struct {
	Address string
	Local   string
	Domain  string
}

func splitLocalAndDomain(input string) (EmailParts, error) {
	if strings.Count(input, "@") != 1 {
		return EmailParts{}, ErrInvalidEmailAddress
	}

	i := strings.Index(input, "@")

	return EmailParts{
		Address: input,
		Local:   input[:i],
		Domain:  strings.TrimSpace(input[i+1:]),
	}, nil
}

var (
	ErrInvalidEmailAddress = errors.New("invalid e-mail address, expecting exactly one @")
)
