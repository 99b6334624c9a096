package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestNewConfig(t *testing.T) {
	path := writeFile(t, "config.toml", `
[log]
level = "debug"
format = "text"

[validator]
resolver = "1.1.1.1"
timeout = "2s"

[notifier]
apiURL = "http://localhost:8081"
timeout = "3s"
`)

	c, err := NewConfig(path)
	if err != nil {
		t.Fatalf("NewConfig() error = %s", err)
	}

	if c.Log.Level != "debug" || c.Log.Format != LFText {
		t.Errorf("Unexpected log config %+v", c.Log)
	}

	if c.Validator.Resolver != "1.1.1.1" || c.Validator.Timeout.AsDuration() != 2*time.Second {
		t.Errorf("Unexpected validator config %+v", c.Validator)
	}

	if c.Notifier.APIURL != "http://localhost:8081" || c.Notifier.Timeout.AsDuration() != 3*time.Second {
		t.Errorf("Unexpected notifier config %+v", c.Notifier)
	}
}

func TestNewConfigKeepsDefaults(t *testing.T) {
	path := writeFile(t, "config.toml", "[log]\nlevel = \"info\"\n")

	c, err := NewConfig(path)
	if err != nil {
		t.Fatalf("NewConfig() error = %s", err)
	}

	if c.Validator.Timeout.AsDuration() != DefaultLookupTimeout {
		t.Errorf("Expected the default lookup timeout, instead I got %s", c.Validator.Timeout)
	}

	if c.Notifier.APIURL != DefaultAPIURL {
		t.Errorf("Expected the default API URL, instead I got %q", c.Notifier.APIURL)
	}
}

func TestNewConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed", content: "[log"},
		{name: "bad duration", content: "[validator]\ntimeout = \"soon\"\n"},
		{name: "negative duration", content: "[validator]\ntimeout = \"-1s\"\n"},
		{name: "bad log format", content: "[log]\nformat = \"xml\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewConfig(writeFile(t, "config.toml", tt.content)); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "config.toml")

	t.Run("implicit and missing", func(t *testing.T) {
		c, err := Load(missing, false)
		if err != nil {
			t.Fatalf("Expected a missing default file to be ignored, instead I got %s", err)
		}

		if c != Default() {
			t.Errorf("Expected the defaults, instead I got %+v", c)
		}
	})

	t.Run("explicit and missing", func(t *testing.T) {
		if _, err := Load(missing, true); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Expected a not exist error, instead I got %v", err)
		}
	})

	t.Run("implicit and malformed", func(t *testing.T) {
		if _, err := Load(writeFile(t, "config.toml", "[log"), false); err == nil {
			t.Error("Expected a malformed file to be reported, even when not explicit")
		}
	})
}

func TestDuration_Set(t *testing.T) {
	tests := []struct {
		v       string
		want    time.Duration
		wantErr bool
	}{
		{v: "5s", want: 5 * time.Second},
		{v: "250ms", want: 250 * time.Millisecond},
		{v: "0s", wantErr: true},
		{v: "-1s", wantErr: true},
		{v: "five", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.v, func(t *testing.T) {
			var d Duration
			if err := d.Set(tt.v); (err != nil) != tt.wantErr {
				t.Fatalf("Set(%q) error = %v, wantErr %v", tt.v, err, tt.wantErr)
			}

			if d.AsDuration() != tt.want {
				t.Errorf("Set(%q) = %s, want %s", tt.v, d, tt.want)
			}
		})
	}
}

func TestLogFormat_Set(t *testing.T) {
	for _, v := range []string{"json", "text", "auto"} {
		var f LogFormat
		if err := f.Set(v); err != nil || f.String() != v {
			t.Errorf("Set(%q) = %q, %v", v, f, err)
		}
	}

	var f LogFormat
	if err := f.Set("xml"); err == nil {
		t.Error("Expected an error on an unsupported format")
	}
}

func TestLog_NewLogger(t *testing.T) {
	tests := []struct {
		name    string
		log     Log
		want    logrus.Formatter
		wantErr bool
	}{
		{name: "json", log: Log{Level: "info", Format: LFJSON}, want: &logrus.JSONFormatter{}},
		{name: "text", log: Log{Level: "info", Format: LFText}, want: &logrus.TextFormatter{}},
		{name: "auto on a buffer", log: Log{Level: "info", Format: LFAuto}, want: &logrus.JSONFormatter{}},
		{name: "bad level", log: Log{Level: "loud", Format: LFJSON}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := tt.log.NewLogger(&buf)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewLogger() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				return
			}

			switch tt.want.(type) {
			case *logrus.JSONFormatter:
				if _, ok := logger.Formatter.(*logrus.JSONFormatter); !ok {
					t.Errorf("Expected a JSON formatter, instead I got %T", logger.Formatter)
				}
			case *logrus.TextFormatter:
				if _, ok := logger.Formatter.(*logrus.TextFormatter); !ok {
					t.Errorf("Expected a text formatter, instead I got %T", logger.Formatter)
				}
			}

			logger.Info("hello")
			if buf.Len() == 0 {
				t.Error("Expected the logger to write to the given writer")
			}
		})
	}
}
