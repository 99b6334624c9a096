package commands

import (
	"github.com/Dynom/listkit/cli"
	"github.com/Dynom/listkit/config"
	"github.com/spf13/cobra"
)

const defaultInput = "emails_example.txt"

type CheckSettings struct {
	cli.Flags
	Input      string
	Resolver   string
	ResolvConf string
	Timeout    config.Duration
}

// NewRootCmd builds the mxcheck command
func NewRootCmd() *cobra.Command {
	settings := &CheckSettings{
		Timeout: config.NewDuration(config.DefaultLookupTimeout),
	}

	cmd := &cobra.Command{
		Use:   "mxcheck",
		Short: "Check the MX records of e-mail address domains",
		Long: `Reads e-mail addresses from a file, one per line, and reports for each address whether its domain exists
and publishes MX records. Blank lines are skipped.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, settings)
		},
	}

	settings.Register(cmd)
	cmd.Flags().StringVarP(&settings.Input, "input", "i", defaultInput, "Path to input file, one e-mail address per line")
	cmd.Flags().StringVar(&settings.Resolver, "resolver", "", "Nameserver to query, ip[:port]. Otherwise the system's nameservers are used")
	cmd.Flags().StringVar(&settings.ResolvConf, "resolv-conf", "", "resolv.conf file to read the system's nameservers from")
	cmd.Flags().Var(&settings.Timeout, "timeout", "Upper bound of a single MX lookup")

	cmd.AddCommand(newVersionCmd())

	return cmd
}
