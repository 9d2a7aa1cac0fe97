package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wildfunctions/lazy_series/pkg/series"
)

// CalcOptions holds flags for the calc command.
type CalcOptions struct {
	*RootOptions
	Terms int
	LaTeX bool
}

// CalcResult is the JSON payload of the calc command.
type CalcResult struct {
	Op    string    `json:"op"`
	Terms []float64 `json:"terms"`
	Text  string    `json:"text"`
	LaTeX string    `json:"latex,omitempty"`
}

// NewCalcCommand creates the calc command.
func NewCalcCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CalcOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "calc <add|sub|mul> <coeffs> <coeffs> | calc pow <coeffs> <n>",
		Short: "Combine polynomials given as comma-separated coefficients",
		Example: `  lazyseries calc mul 1,1 1,1
  lazyseries calc pow 1,-1 3 --terms 5`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd, opts, args)
		},
	}

	cmd.Flags().IntVar(&opts.Terms, "terms", series.DefaultTerms, "number of terms to print")
	cmd.Flags().BoolVar(&opts.LaTeX, "latex", false, "also render LaTeX")

	return cmd
}

func runCalc(cmd *cobra.Command, opts *CalcOptions, args []string) error {
	if opts.Terms < 1 {
		return NewExitError(ExitCommandError, fmt.Sprintf("terms must be at least 1, got %d", opts.Terms))
	}

	op := args[0]
	left, err := parseCoefficients(args[1])
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid left operand", err)
	}

	var result *series.Series
	switch op {
	case "add", "sub", "mul":
		right, err := parseCoefficients(args[2])
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid right operand", err)
		}
		result = combine(op, left, right)
	case "pow":
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid exponent", err)
		}
		result, err = left.Pow(n)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid exponent", err)
		}
	default:
		return NewExitError(ExitCommandError, fmt.Sprintf("unknown operation %q: must be one of add, sub, mul, pow", op))
	}

	terms, err := result.Terms(opts.Terms)
	if err != nil {
		return WrapExitError(ExitFailure, "evaluation failed", err)
	}

	res := CalcResult{
		Op:    op,
		Terms: terms,
		Text:  series.Format(result, opts.Terms),
	}
	if opts.LaTeX {
		res.LaTeX = series.FormatLaTeX(result, opts.Terms)
	}

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	fmt.Fprintln(out, res.Text)
	if res.LaTeX != "" {
		fmt.Fprintln(out, res.LaTeX)
	}
	return nil
}

func combine(op string, a, b *series.Series) *series.Series {
	switch op {
	case "add":
		return a.Plus(b)
	case "sub":
		return a.Minus(b)
	default:
		return a.Times(b)
	}
}

// parseCoefficients parses "c0,c1,c2" into the polynomial c0 + c1x + c2x^2.
func parseCoefficients(s string) (*series.Series, error) {
	fields := strings.Split(s, ",")
	cs := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("coefficient %q: %w", f, err)
		}
		cs = append(cs, v)
	}
	return series.FromCoefficients(cs...), nil
}
