package types

import (
	"errors"
	"testing"
)

func TestNewEmailParts(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    EmailParts
		wantErr error
	}{
		{name: "plain", input: "john@example.org", want: EmailParts{Address: "john@example.org", Local: "john", Domain: "example.org"}},
		{name: "dotted local", input: "john.doe@example.org", want: EmailParts{Address: "john.doe@example.org", Local: "john.doe", Domain: "example.org"}},
		{name: "domain is trimmed", input: "john@ example.org\t", want: EmailParts{Address: "john@ example.org\t", Local: "john", Domain: "example.org"}},
		{name: "domain keeps case", input: "john@Example.ORG", want: EmailParts{Address: "john@Example.ORG", Local: "john", Domain: "Example.ORG"}},
		{name: "empty local", input: "@example.org", want: EmailParts{Address: "@example.org", Local: "", Domain: "example.org"}},
		{name: "empty domain", input: "john@", want: EmailParts{Address: "john@", Local: "john", Domain: ""}},

		{name: "no @", input: "bad-email", wantErr: ErrInvalidEmailAddress},
		{name: "two @", input: "john@doe@example.org", wantErr: ErrInvalidEmailAddress},
		{name: "only @@", input: "@@", wantErr: ErrInvalidEmailAddress},
		{name: "empty", input: "", wantErr: ErrInvalidEmailAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewEmailParts(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewEmailParts(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}

			if got != tt.want {
				t.Errorf("NewEmailParts(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
