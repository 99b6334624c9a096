package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Dynom/listkit/cli"
	"github.com/Dynom/listkit/cmd/mxcheck/iterator"
	"github.com/Dynom/listkit/config"
	"github.com/Dynom/listkit/validator"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errInterrupted = errors.New("interrupted")

func runCheck(cmd *cobra.Command, settings *CheckSettings) error {
	out := cmd.OutOrStdout()

	conf, logger, err := settings.Load(cmd)
	if err != nil {
		_, _ = fmt.Fprintf(out, "Error: %s\n", err)
		return cli.ExitWithCode(cli.ExitFailure, err)
	}

	applyCheckFlags(cmd, settings, &conf)

	f, err := os.Open(settings.Input)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			_, _ = fmt.Fprintf(out, "Error: Input file '%s' not found. Please ensure the file exists.\n", settings.Input)
		} else {
			_, _ = fmt.Fprintf(out, "Error: Unable to open input file '%s': %s\n", settings.Input, err)
		}

		return cli.ExitWithCode(cli.ExitFailure, err)
	}

	defer func() {
		_ = f.Close()
	}()

	resolver, err := newResolver(conf, logger)
	if err != nil {
		_, _ = fmt.Fprintf(out, "Error: %s\n", err)
		return cli.ExitWithCode(cli.ExitFailure, err)
	}

	logger.WithFields(logrus.Fields{
		"input":       settings.Input,
		"nameservers": resolver.Nameservers(),
		"timeout":     conf.Validator.Timeout.String(),
	}).Debug("Starting checks")

	v := validator.New(resolver, validator.WithLogger(logger))
	ctx := cmd.Context()

	var checked int
	it := iterator.NewLineIterator(f, iterator.DefaultMaxLineBytes)
	for it.Next() {
		if ctx.Err() != nil {
			break
		}

		line, err := it.Value()
		if err != nil {
			logger.WithError(err).Warn("Skipping unreadable line")
			continue
		}

		result, ok := v.Check(ctx, line)
		if !ok {
			continue
		}

		// A lookup cut short by an interrupt says nothing about the domain
		if ctx.Err() != nil {
			break
		}

		checked++
		_, _ = fmt.Fprintf(out, "%s: %s\n", result.Email, Phrase(result.Status))
	}

	if ctx.Err() != nil {
		logger.WithField("checked", checked).Warn("Interrupted, stopping")
		cmd.PrintErrln("Interrupted")
		return cli.ExitWithCode(cli.ExitFailure, errInterrupted)
	}

	if err := it.Close(); err != nil {
		_, _ = fmt.Fprintf(out, "Error: Unable to read input file '%s': %s\n", settings.Input, err)
		return cli.ExitWithCode(cli.ExitFailure, err)
	}

	logger.WithField("checked", checked).Debug("Done")
	return nil
}

// applyCheckFlags lets explicitly set flags override the configuration file
func applyCheckFlags(cmd *cobra.Command, settings *CheckSettings, conf *config.Config) {
	if cmd.Flags().Changed("resolver") {
		conf.Validator.Resolver = settings.Resolver
	}

	if cmd.Flags().Changed("resolv-conf") {
		conf.Validator.ResolvConf = settings.ResolvConf
	}

	if cmd.Flags().Changed("timeout") {
		conf.Validator.Timeout = settings.Timeout
	}
}

func newResolver(conf config.Config, logger logrus.FieldLogger) (*validator.Resolver, error) {
	options := []validator.ResolverOption{
		validator.WithTimeout(conf.Validator.Timeout.AsDuration()),
		validator.WithResolverLogger(logger),
	}

	if conf.Validator.Resolver != "" {
		options = append(options, validator.WithNameservers(conf.Validator.Resolver))
	}

	if conf.Validator.ResolvConf != "" {
		options = append(options, validator.WithResolvConf(conf.Validator.ResolvConf))
	}

	return validator.NewResolver(options...)
}
