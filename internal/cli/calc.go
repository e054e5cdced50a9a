package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/guttosm/salinity-service/internal/domain/dto"
	"github.com/guttosm/salinity-service/internal/domain/model"
	"github.com/guttosm/salinity-service/internal/service"
	"github.com/guttosm/salinity-service/internal/thermo"
)

// CalcOptions holds the calc command flags.
type CalcOptions struct {
	JSON      bool
	Detailed  bool
	MaxIter   int
	Tolerance float64
	inputSource
}

// NewCalcCommand creates the calc command.
func NewCalcCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CalcOptions{}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate salinity from measured ions",
		Long: `Calculate SP, SA, density and specific gravity from a measurement.

The measurement is read from --inputs-json, or from a document
{"inputs": {...}, "assumptions": {...}} given with --input (a file path, or
'-' for stdin). Assumptions not supplied keep their built-in defaults.`,
		Example: `  salinity calc --inputs-json '{"na": 11980, "cl": 19570, "mg": 1246}'
  salinity calc --json --input sample.json
  cat sample.json | salinity calc --input - --detailed`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "run the full solver and include per-species tables")
	cmd.Flags().StringVar(&opts.Path, "input", "", "JSON file with inputs and optional assumptions; '-' reads from stdin")
	cmd.Flags().StringVar(&opts.InputsJSON, "inputs-json", "", "inline JSON for inputs (overrides --input)")
	cmd.Flags().StringVar(&opts.AssumptionsJSON, "assumptions-json", "", "inline JSON for assumptions, applied last")
	cmd.Flags().IntVar(&opts.MaxIter, "max-iter", model.DefaultSolverMaxIter, "solver iteration cap (with --detailed)")
	cmd.Flags().Float64Var(&opts.Tolerance, "tolerance", model.DefaultSolverTolerance, "solver convergence tolerance on SP (with --detailed)")

	return cmd
}

func runCalc(rootOpts *RootOptions, opts *CalcOptions, cmd *cobra.Command) error {
	if opts.MaxIter < 1 || opts.MaxIter > dto.MaxSolverIterations {
		return NewExitError(ExitCommandError, fmt.Sprintf("--max-iter must be between 1 and %d", dto.MaxSolverIterations))
	}
	if !(opts.Tolerance > 0 && opts.Tolerance < 1) {
		return NewExitError(ExitCommandError, "--tolerance must be in (0, 1)")
	}

	ions, assumptions, err := opts.load(cmd.InOrStdin(), model.DefaultAssumptions())
	if err != nil {
		return err
	}

	provider, err := thermo.New(rootOpts.Strategy)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --thermo", err)
	}
	calculator := service.NewSalinityCalculatorService(service.WithProvider(provider))
	calc := model.NewCalculation(ions, assumptions)

	out := cmd.OutOrStdout()
	if opts.Detailed {
		result := calculator.Calculate(calc, model.SolverOptions{
			MaxIter:   opts.MaxIter,
			Tolerance: opts.Tolerance,
			Detailed:  true,
		})
		if opts.JSON {
			return writeJSON(out, result)
		}
		return writeDetailed(out, result)
	}

	summary := calculator.Summarize(calc)
	if opts.JSON {
		return writeJSON(out, summary)
	}
	return writeSummary(out, summary)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return WrapExitError(ExitFailure, "Could not serialize output to JSON", err)
	}
	return nil
}

func writeSummary(w io.Writer, s model.CalculationSummary) error {
	_, err := fmt.Fprintf(w, "SP: %.4f\nSA: %.4f g/kg\nDensity: %.3f kg/m^3\nSG 20/20: %.5f\nSG 25/25: %.5f\n",
		s.SP, s.SA, s.DensityKgM3, s.SG2020, s.SG2525)
	if err == nil && !s.Converged {
		_, err = fmt.Fprintln(w, "Warning: solver did not converge")
	}
	return err
}

func writeDetailed(w io.Writer, r model.SalinityResult) error {
	chloride := "measured"
	if r.ChlorideEstimated {
		chloride = "estimated"
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "SP:\t%.4f\n", r.SP)
	fmt.Fprintf(tw, "SA:\t%.4f g/kg\n", r.SA)
	fmt.Fprintf(tw, "Density:\t%.3f kg/m^3\n", r.DensityKgM3)
	fmt.Fprintf(tw, "Iterations:\t%d (converged: %t)\n", r.Iterations, r.Converged)
	fmt.Fprintf(tw, "Chloride:\t%.2f mg/L (%s)\n", r.ChlorideMgL, chloride)

	if c := r.Components; c != nil {
		fmt.Fprintln(tw, "\nSpecies\tmg/L\tmg/kg\tmg/L norm\tmg/kg norm")
		for i, row := range c.MgL {
			fmt.Fprintf(tw, "%s\t%.3f\t%.3f\t%.3f\t%.3f\n",
				row.Species, row.Value, c.MgKg[i].Value, c.MgLNorm[i].Value, c.MgKgNorm[i].Value)
		}
		fmt.Fprintf(tw, "\nNorm factor:\t%.6f\n", c.NormFactor)
		fmt.Fprintf(tw, "Reference total:\t%.4f g/kg\n", c.ReferenceGkg)
		fmt.Fprintf(tw, "Measured total:\t%.4f g/L\n", c.MeasuredTotal)
	}
	return tw.Flush()
}
