package telegram

import (
	"encoding/json"
	"testing"
)

func TestTruthy_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: `true`, want: true},
		{in: `false`, want: false},
		{in: `null`, want: false},
		{in: `1`, want: true},
		{in: `0`, want: false},
		{in: `-0.5`, want: true},
		{in: `"ok"`, want: true},
		{in: `""`, want: false},
		{in: `[0]`, want: true},
		{in: `[]`, want: false},
		{in: `{"a":1}`, want: true},
		{in: `{}`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got truthy
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.in, err)
			}

			if bool(got) != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
