package config

import (
	"encoding"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

const (
	DefaultLookupTimeout  = 5 * time.Second
	DefaultRequestTimeout = 10 * time.Second
	DefaultAPIURL         = "https://api.telegram.org"
)

var (
	LFJSON LogFormat = "json"
	LFText LogFormat = "text"
	LFAuto LogFormat = "auto"
)

var (
	_ encoding.TextUnmarshaler = (*Duration)(nil)
	_ encoding.TextUnmarshaler = (*LogFormat)(nil)
	_ pflag.Value              = (*Duration)(nil)
	_ pflag.Value              = (*LogFormat)(nil)
)

func NewDuration(d time.Duration) Duration {
	return Duration{duration: d}
}

type Duration struct {
	duration time.Duration
}

func (d Duration) String() string {
	return d.duration.String()
}

func (d *Duration) Set(v string) error {
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return err
	}

	if parsed <= 0 {
		return fmt.Errorf("duration %q must be positive", v)
	}

	d.duration = parsed
	return nil
}

func (d Duration) Type() string {
	return "duration"
}

func (d Duration) AsDuration() time.Duration {
	return d.duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	return d.Set(string(text))
}

type LogFormat string

func (vt LogFormat) String() string {
	return string(vt)
}

func (vt *LogFormat) Set(v string) error {
	return vt.UnmarshalText([]byte(v))
}

func (vt LogFormat) Type() string {
	return "format"
}

func (vt *LogFormat) UnmarshalText(value []byte) error {
	validTypes := []string{string(LFJSON), string(LFText), string(LFAuto)}
	v := string(value)
	for _, t := range validTypes {
		if t == v {
			*vt = LogFormat(v)
			return nil
		}
	}

	expected := strings.Join(validTypes, ", ")
	return fmt.Errorf("unsupported value %q for log format. Expected one of: %q", value, expected)
}
