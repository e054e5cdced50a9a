package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/guttosm/salinity-service/internal/domain/dto"
)

// NewReferenceCommand creates the reference command.
func NewReferenceCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:           "reference",
		Short:         "Print the reference seawater composition at SP 35",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := dto.NewReferenceCompositionResponse()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), ref)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "Ion\tg/mol\tmmol/kg\tg/kg\tratio to Cl")
			for _, r := range ref.Ions {
				fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.4f\t%.6f\n",
					r.Symbol, r.MolarMass, r.MmolPerKg, r.GramsPerKg, r.RatioToChloride)
			}
			fmt.Fprintf(tw, "Total\t\t\t%.4f\t\n", ref.TotalGPerKg)
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the table as JSON")

	return cmd
}
