package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"
	"tradesim/cmd"
	"tradesim/internal/app"
	"tradesim/internal/domain"
	"tradesim/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tradesim",
		Short:        "day-by-day stock trading simulator over historical prices",
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newExportCmd(), newRunsCmd())
	return root
}

// withApp wires dependencies for one command and tears them down after
func withApp(fn func(ctx context.Context, simApp app.SimulationApp) error) error {
	lg := logger.New()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logger.WithLogger(ctx, lg)

	deps, err := cmd.InitializeDependencies()
	if err != nil {
		return err
	}
	defer func() {
		if err := cmd.CloseDependencies(deps); err != nil {
			lg.Error(err)
		}
	}()

	return fn(ctx, deps.SimulationApp)
}

type runOptions struct {
	days       int
	strategies []string
	trades     []string
}

func newRunCmd() *cobra.Command {
	opts := runOptions{}
	c := &cobra.Command{
		Use:   "run",
		Short: "create a simulation, apply trades and strategies, then run it",
		Example: `  tradesim run --days 365 --trade AAPL:10 --strategy AAPL:take_profit:threshold=0.25
  tradesim run --days 90 --strategy MSFT:dollar_cost_average:shares=2,interval=5`,
		RunE: func(c *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, simApp app.SimulationApp) error {
				return runSimulation(ctx, simApp, opts, c.OutOrStdout())
			})
		},
	}
	c.Flags().IntVar(&opts.days, "days", 30, "calendar days to simulate")
	c.Flags().StringArrayVar(&opts.strategies, "strategy", nil, "TICKER:KIND[:key=value,...] strategy to activate before running")
	c.Flags().StringArrayVar(&opts.trades, "trade", nil, "TICKER:AMOUNT trade to place before running, negative to sell")
	return c
}

func runSimulation(ctx context.Context, simApp app.SimulationApp, opts runOptions, out io.Writer) error {
	log := logger.FromContext(ctx)

	runID, err := simApp.NewSimulation(ctx)
	if err != nil {
		return err
	}
	id := runID.String()
	log = log.With(zap.String("runID", id))

	if err := simApp.SetTimeframe(ctx, id, opts.days); err != nil {
		return err
	}

	for _, t := range opts.trades {
		ticker, amount, err := parseTrade(t)
		if err != nil {
			return err
		}
		outcome, err := simApp.Trade(ctx, id, ticker, amount)
		if err != nil {
			return err
		}
		log.Infof("trade %s %d: %s", ticker, amount, outcome)
	}

	for _, s := range opts.strategies {
		ticker, kind, params, err := parseStrategy(s)
		if err != nil {
			return err
		}
		if err := simApp.ActivateStrategy(ctx, id, ticker, kind, params); err != nil {
			return err
		}
	}

	result, err := simApp.Run(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "run:           %s\n", id)
	fmt.Fprintf(out, "state:         %s\n", result.State)
	if !result.FirstDate.IsZero() {
		fmt.Fprintf(out, "dates:         %s to %s\n", result.FirstDate.Format(time.DateOnly), result.LastDate.Format(time.DateOnly))
	}
	fmt.Fprintf(out, "trading days:  %d\n", result.TradingDaysSimulated)
	fmt.Fprintf(out, "loop restarts: %d\n", result.LoopRestarts)
	if result.DaysRemaining > 0 {
		fmt.Fprintf(out, "days left:     %d\n", result.DaysRemaining)
	}
	fmt.Fprintf(out, "total value:   %s\n", result.TotalValue.StringFixed(2))

	metrics, err := simApp.Summary(ctx, id)
	if err != nil {
		log.Warnf("no summary available: %v", err)
		return nil
	}
	fmt.Fprintf(out, "total return:  %.2f%%\n", metrics.TotalReturn)
	fmt.Fprintf(out, "annualized:    %.2f%% (stdev %.2f%%)\n", metrics.AnnualizedReturn, metrics.AnnualizedStdev)
	fmt.Fprintf(out, "max drawdown:  %.2f%%\n", metrics.MaxDrawdown)

	return nil
}

func parseTrade(s string) (string, int64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || parts[0] == "" {
		return "", 0, fmt.Errorf("%w: trade %q must be TICKER:AMOUNT", domain.ErrInvalidValue, s)
	}
	amount, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: trade amount %q: %v", domain.ErrInvalidValue, parts[1], err)
	}
	return strings.ToUpper(parts[0]), amount, nil
}

func parseStrategy(s string) (string, domain.StrategyKind, domain.StrategyParams, error) {
	params := domain.StrategyParams{}
	parts := strings.SplitN(s, ":", 3)
	if len(parts) < 2 || parts[0] == "" {
		return "", "", params, fmt.Errorf("%w: strategy %q must be TICKER:KIND[:key=value,...]", domain.ErrInvalidStrategy, s)
	}

	if len(parts) == 3 {
		for _, kv := range strings.Split(parts[2], ",") {
			key, value, ok := strings.Cut(kv, "=")
			if !ok {
				return "", "", params, fmt.Errorf("%w: strategy param %q must be key=value", domain.ErrInvalidStrategy, kv)
			}
			var err error
			switch key {
			case "threshold":
				params.Threshold, err = strconv.ParseFloat(value, 64)
			case "shares":
				params.Shares, err = strconv.ParseInt(value, 10, 64)
			case "interval":
				params.IntervalDays, err = strconv.Atoi(value)
			default:
				err = fmt.Errorf("unknown key")
			}
			if err != nil {
				return "", "", params, fmt.Errorf("%w: strategy param %q: %v", domain.ErrInvalidStrategy, kv, err)
			}
		}
	}

	return strings.ToUpper(parts[0]), domain.StrategyKind(parts[1]), params, nil
}

func newExportCmd() *cobra.Command {
	var outPath string
	c := &cobra.Command{
		Use:   "export RUN_ID",
		Short: "write a run's snapshot history as csv",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, simApp app.SimulationApp) error {
				out := c.OutOrStdout()
				if outPath != "" {
					f, err := os.Create(outPath)
					if err != nil {
						return fmt.Errorf("failed to create %s: %w", outPath, err)
					}
					defer f.Close()
					out = f
				}
				return simApp.ExportCSV(ctx, args[0], out)
			})
		},
	}
	c.Flags().StringVarP(&outPath, "out", "o", "", "file to write, defaults to stdout")
	return c
}

func newRunsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "list persisted simulation runs",
		RunE: func(c *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, simApp app.SimulationApp) error {
				runs, err := simApp.ListRuns(ctx)
				if err != nil {
					return err
				}
				out := c.OutOrStdout()
				for _, r := range runs {
					fmt.Fprintf(out, "%s\t%s\t%s\n", r.RunID, r.StartBalance.StringFixed(2), r.CreatedAt.Format(time.RFC3339))
				}
				return nil
			})
		},
	}
}
