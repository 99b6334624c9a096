package config

import (
	"path/filepath"
	"testing"

	"github.com/Dynom/listkit/telegram"
)

func lookupFrom(env map[string]string) LookupEnv {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestReadEnvFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		values, err := ReadEnvFile(filepath.Join(t.TempDir(), ".env"))
		if err != nil || len(values) != 0 {
			t.Errorf("Expected no values and no error, instead I got %v, %v", values, err)
		}
	})

	t.Run("no file", func(t *testing.T) {
		values, err := ReadEnvFile("")
		if err != nil || len(values) != 0 {
			t.Errorf("Expected no values and no error, instead I got %v, %v", values, err)
		}
	})

	t.Run("values", func(t *testing.T) {
		path := writeFile(t, ".env", "# local development\nTELEGRAM_BOT_TOKEN=123:abc\nTELEGRAM_CHAT_ID=\"42\"\n")

		values, err := ReadEnvFile(path)
		if err != nil {
			t.Fatalf("ReadEnvFile() error = %s", err)
		}

		if values[telegram.EnvBotToken] != "123:abc" || values[telegram.EnvChatID] != "42" {
			t.Errorf("Unexpected values %v", values)
		}
	})
}

func TestCredentials(t *testing.T) {
	file := map[string]string{
		telegram.EnvBotToken: "file-token",
		telegram.EnvChatID:   "file-chat",
	}

	tests := []struct {
		name string
		env  map[string]string
		file map[string]string
		want telegram.Credentials
	}{
		{name: "file only", file: file, want: telegram.Credentials{Token: "file-token", ChatID: "file-chat"}},
		{name: "environment wins", env: map[string]string{telegram.EnvBotToken: "env-token"}, file: file, want: telegram.Credentials{Token: "env-token", ChatID: "file-chat"}},
		{name: "empty environment wins", env: map[string]string{telegram.EnvChatID: ""}, file: file, want: telegram.Credentials{Token: "file-token", ChatID: ""}},
		{name: "nothing", want: telegram.Credentials{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Credentials(lookupFrom(tt.env), tt.file); got != tt.want {
				t.Errorf("Credentials() = %#v, want %#v", got.Token+"/"+got.ChatID, tt.want.Token+"/"+tt.want.ChatID)
			}
		})
	}
}
