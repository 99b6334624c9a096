package commands

import "github.com/Dynom/listkit/validator"

// Downstream tooling parses these, they must not change
var phrases = map[validator.Status]string{
	validator.StatusDomainMissing:      "домен отсутствует",
	validator.StatusMXMissingOrInvalid: "MX-записи отсутствуют или некорректны",
	validator.StatusDomainValid:        "домен валиден",
}

// Phrase returns the report phrase of a status
func Phrase(s validator.Status) string {
	if p, ok := phrases[s]; ok {
		return p
	}

	return s.String()
}
