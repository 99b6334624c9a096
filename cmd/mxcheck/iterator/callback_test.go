package iterator

import (
	"bufio"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestNewLineIterator(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "trailing newline", input: "a@b.com\n\nbad-email\n", want: []string{"a@b.com", "", "bad-email"}},
		{name: "no trailing newline", input: "a@b.com\nc@d.org", want: []string{"a@b.com", "c@d.org"}},
		{name: "crlf", input: "a@b.com\r\nc@d.org\r\n", want: []string{"a@b.com", "c@d.org"}},
		{name: "empty", input: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := NewLineIterator(strings.NewReader(tt.input), DefaultMaxLineBytes)

			var got []string
			for it.Next() {
				v, err := it.Value()
				if err != nil {
					t.Fatalf("Value() error = %s", err)
				}

				got = append(got, v)
			}

			if err := it.Close(); err != nil {
				t.Errorf("Close() error = %s", err)
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Got lines %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewLineIteratorLongLine(t *testing.T) {
	it := NewLineIterator(strings.NewReader(strings.Repeat("a", 128)+"\n"), 64)

	for it.Next() {
		t.Error("Expected no lines when the first line exceeds the limit")
	}

	if err := it.Close(); !errors.Is(err, bufio.ErrTooLong) {
		t.Errorf("Expected %v, instead I got %v", bufio.ErrTooLong, err)
	}
}
