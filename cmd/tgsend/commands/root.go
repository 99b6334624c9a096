package commands

import (
	"os"

	"github.com/Dynom/listkit/cli"
	"github.com/Dynom/listkit/config"
	"github.com/spf13/cobra"
)

const defaultInput = "message_example.txt"

type SendSettings struct {
	cli.Flags
	Input   string
	EnvFile string
	APIURL  string
	Timeout config.Duration
}

// NewRootCmd builds the tgsend command, reading the process environment
func NewRootCmd() *cobra.Command {
	return newRootCmd(os.LookupEnv)
}

func newRootCmd(lookup config.LookupEnv) *cobra.Command {
	settings := &SendSettings{
		EnvFile: config.DefaultEnvFile,
		APIURL:  config.DefaultAPIURL,
		Timeout: config.NewDuration(config.DefaultRequestTimeout),
	}

	cmd := &cobra.Command{
		Use:   "tgsend",
		Short: "Send a message to a Telegram chat",
		Long: `Sends the contents of a file as a single Telegram message, using the Bot API.

The bot token and chat are read from TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID. Values missing from the environment
are taken from the env file, when present.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSend(cmd, settings, lookup)
		},
	}

	settings.Register(cmd)
	cmd.Flags().StringVarP(&settings.Input, "input", "i", defaultInput, "Path to the file holding the message")
	cmd.Flags().StringVar(&settings.EnvFile, "env-file", settings.EnvFile, "File to pre-load TELEGRAM_* variables from, ignored when absent")
	cmd.Flags().StringVar(&settings.APIURL, "api-url", settings.APIURL, "Base URL of the Bot API")
	cmd.Flags().Var(&settings.Timeout, "timeout", "Upper bound of the request")

	cmd.AddCommand(newVersionCmd())

	return cmd
}
