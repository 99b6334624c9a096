package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/Dynom/listkit/telegram"
	"github.com/joho/godotenv"
)

const DefaultEnvFile = ".env"

// LookupEnv has the signature of os.LookupEnv
type LookupEnv func(key string) (string, bool)

// ReadEnvFile parses a .env style file. A missing file yields no values and no error.
func ReadEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}

	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}

	if err != nil {
		return map[string]string{}, fmt.Errorf("unable to parse %q, reason: %w", path, err)
	}

	return values, nil
}

// Credentials resolves the bot credentials. Variables present in the environment, even when empty, take precedence
// over the values from the env file.
func Credentials(lookup LookupEnv, fileValues map[string]string) telegram.Credentials {
	get := func(key string) string {
		if v, ok := lookup(key); ok {
			return v
		}

		return fileValues[key]
	}

	return telegram.Credentials{
		Token:  get(telegram.EnvBotToken),
		ChatID: get(telegram.EnvChatID),
	}
}
