// Package cli implements the salinity command-line front end.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guttosm/salinity-service/internal/logger"
	"github.com/guttosm/salinity-service/internal/thermo"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Strategy string
	LogLevel string
}

// NewRootCommand creates the root command for the salinity CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "salinity",
		Short: "Salinity calculator (TEOS-10)",
		Long: `Estimates Practical Salinity (SP) and Absolute Salinity (SA) from measured
major-ion concentrations, with density and specific gravity at 20 and 25 °C.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := thermo.New(opts.Strategy); err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid --thermo %q", opts.Strategy), err)
			}
			// Logs go to stderr so --json output stays parseable.
			logger.InitWriter(opts.LogLevel, cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Strategy, "thermo", thermo.StrategyReduced, "thermodynamic strategy (reduced|approx)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug|info|warn|error|disabled)")

	cmd.AddCommand(NewCalcCommand(opts))
	cmd.AddCommand(NewReferenceCommand())

	return cmd
}
