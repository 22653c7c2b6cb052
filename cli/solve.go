package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chaitanyabirla/transportcost/problem"
	"github.com/chaitanyabirla/transportcost/report"
	"github.com/chaitanyabirla/transportcost/vam"
)

func newSolveCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Compute a basic feasible solution",
		Long: `Solve a balanced transportation problem with Vogel's Approximation Method.

The problem comes from a YAML, JSON or CSV file ("-" reads stdin), or, when
no file is given, from the --supply, --demand and --costs text flags. Write
x, - or inf in a cost cell to close that route.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, args)
			if err != nil {
				return err
			}
			log := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			ctx := logr.NewContext(cmd.Context(), log)

			return Solve(ctx, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringP(keyFormat, "o", DefaultFormat, "output format: text, json, yaml, csv")
	f.String(keyInputFormat, "", "input format: yaml, json, csv (default: from the file extension, yaml for stdin)")
	f.String(keySupply, DefaultSupply, "comma-separated supply amounts")
	f.String(keyDemand, DefaultDemand, "comma-separated demand amounts")
	f.String(keyCosts, DefaultCosts, "cost matrix, rows separated by newlines, values by commas")
	f.Int(keySupplyPoints, 0, "declared number of supply points (0 skips the check)")
	f.Int(keyDemandPoints, 0, "declared number of demand points (0 skips the check)")
	f.Bool(keyBalance, false, "add a zero-cost dummy point when totals differ")
	f.String(keyCurrency, DefaultCurrency, "currency symbol for the text report")
	f.String(keyFlow, DefaultFlow, "max-flow routine for the closed-route check: dinic, edmonds-karp")
	bindFlags(v, f)

	return cmd
}

// Solve reads the problem described by cfg, solves it and renders the
// report to out. The logger is taken from ctx.
func Solve(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	log := logr.FromContextOrDiscard(ctx).WithName("solve")

	p, err := readProblem(cfg, in)
	if err != nil {
		return err
	}
	if err = p.CheckCounts(cfg.SupplyPoints, cfg.DemandPoints); err != nil {
		return err
	}
	if cfg.Balance {
		added, err := p.Balance()
		if err != nil {
			return err
		}
		if added {
			log.Info("added dummy point to balance the problem", "sources", p.Rows(), "destinations", p.Cols())
		}
	}

	res, err := p.Solve(vam.WithLogger(log), vam.WithFlowAlgorithm(cfg.Flow))
	if err != nil {
		return err
	}
	log.V(1).Info("solved", "totalCost", res.TotalCost, "allocations", len(res.Allocations))

	return report.Render(out, p, res, cfg.Format, report.WithCurrency(cfg.Currency))
}

func readProblem(cfg Config, in io.Reader) (*problem.Problem, error) {
	switch cfg.Input {
	case "":
		return problem.ParseText(cfg.Supply, cfg.Demand, cfg.Costs)
	case "-":
		f := cfg.InputFormat
		if f == "" {
			f = problem.FormatYAML
		}
		p, err := problem.Decode(in, f)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}

		return p, nil
	default:
		if cfg.InputFormat == "" {
			return problem.Load(cfg.Input)
		}

		return problem.LoadAs(cfg.Input, cfg.InputFormat)
	}
}
