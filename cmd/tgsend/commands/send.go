package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Dynom/listkit/cli"
	"github.com/Dynom/listkit/config"
	"github.com/Dynom/listkit/telegram"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	msgConfigError = "Configuration Error: 'TELEGRAM_BOT_TOKEN' and 'TELEGRAM_CHAT_ID' must be set in environment."
	msgSuccess     = "Message sent successfully"
)

// runSend validates its prerequisites in order, each step gating the next: configuration, the message file and
// finally the request.
func runSend(cmd *cobra.Command, settings *SendSettings, lookup config.LookupEnv) error {
	out := cmd.OutOrStdout()

	conf, logger, err := settings.Load(cmd)
	if err != nil {
		_, _ = fmt.Fprintf(out, "Configuration Error: %s\n", err)
		return cli.ExitWithCode(cli.ExitFailure, err)
	}

	applySendFlags(cmd, settings, &conf)

	values, err := config.ReadEnvFile(conf.Notifier.EnvFile)
	if err != nil {
		logger.WithError(err).Warn("Ignoring env file")
	}

	creds := config.Credentials(lookup, values)
	if err := creds.Validate(); err != nil {
		_, _ = fmt.Fprintln(out, msgConfigError)
		return cli.ExitWithCode(cli.ExitFailure, err)
	}

	message, err := os.ReadFile(settings.Input)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			_, _ = fmt.Fprintf(out, "Error: Input file '%s' not found.\n", settings.Input)
		} else {
			_, _ = fmt.Fprintf(out, "Error: Unable to read input file '%s': %s\n", settings.Input, err)
		}

		return cli.ExitWithCode(cli.ExitFailure, err)
	}

	client := telegram.New(
		telegram.WithBaseURL(conf.Notifier.APIURL),
		telegram.WithTimeout(conf.Notifier.Timeout.AsDuration()),
		telegram.WithLogger(logger),
	)

	logger.WithFields(logrus.Fields{
		"input":   settings.Input,
		"timeout": conf.Notifier.Timeout.String(),
	}).Debug("Sending message")

	err = client.SendMessage(cmd.Context(), creds, string(message))
	if err != nil {
		_, _ = fmt.Fprintln(out, describeSendError(err))
		return cli.ExitWithCode(cli.ExitFailure, err)
	}

	_, _ = fmt.Fprintln(out, msgSuccess)
	return nil
}

func describeSendError(err error) string {
	var (
		httpErr *telegram.HTTPError
		apiErr  *telegram.APIError
		netErr  *telegram.NetworkError
	)

	switch {
	case errors.As(err, &httpErr):
		return fmt.Sprintf("HTTP Error %d: %s", httpErr.StatusCode, httpErr.Body)
	case errors.As(err, &apiErr):
		return fmt.Sprintf("API Error: %s", apiErr.Body)
	case errors.As(err, &netErr):
		return fmt.Sprintf("Network Error: Failed to send message. Details: %s", netErr)
	}

	return fmt.Sprintf("Error: %s", err)
}

// applySendFlags lets explicitly set flags override the configuration file
func applySendFlags(cmd *cobra.Command, settings *SendSettings, conf *config.Config) {
	if conf.Notifier.EnvFile == "" || cmd.Flags().Changed("env-file") {
		conf.Notifier.EnvFile = settings.EnvFile
	}

	if cmd.Flags().Changed("api-url") {
		conf.Notifier.APIURL = settings.APIURL
	}

	if cmd.Flags().Changed("timeout") {
		conf.Notifier.Timeout = settings.Timeout
	}
}
