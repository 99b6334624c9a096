package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

const DefaultFileName = "config.toml"

// NewConfig returns the defaults, overlaid with the TOML file fileName.
func NewConfig(fileName string) (Config, error) {
	c := Default()

	b, err := os.ReadFile(fileName)
	if err != nil {
		return c, fmt.Errorf("unable to open %q, reason: %w", fileName, err)
	}

	_, err = toml.Decode(string(b), &c)
	if err != nil {
		return c, fmt.Errorf("unable to unmarshal %q, reason: %w", fileName, err)
	}

	return c, nil
}

// Load behaves like NewConfig, except that a missing file is not an error unless it was explicitly asked for
func Load(fileName string, explicit bool) (Config, error) {
	c, err := NewConfig(fileName)
	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	return c, err
}

// Default returns the configuration used when no file is present
func Default() Config {
	var c Config

	c.Log.Level = "warn"
	c.Log.Format = LFAuto
	c.Validator.Timeout = NewDuration(DefaultLookupTimeout)
	c.Notifier.APIURL = DefaultAPIURL
	c.Notifier.Timeout = NewDuration(DefaultRequestTimeout)

	return c
}

// Config holds the parameters shared by both tools, each tool only reads its own section
type Config struct {
	Log       Log `toml:"log"`
	Validator struct {
		Resolver   string   `toml:"resolver" usage:"Nameserver to query, ip[:port]. Defaults to the ones from resolvConf"`
		ResolvConf string   `toml:"resolvConf"`
		Timeout    Duration `toml:"timeout" usage:"Upper bound of a single MX lookup"`
	} `toml:"validator"`
	Notifier struct {
		APIURL  string   `toml:"apiURL"`
		EnvFile string   `toml:"envFile"`
		Timeout Duration `toml:"timeout" usage:"Upper bound of the sendMessage request"`
	} `toml:"notifier"`
}

type Log struct {
	Level  string    `toml:"level"`
	Format LogFormat `toml:"format" usage:"The log output format \"json\", \"text\" or \"auto\""`
}
