package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/sanmei-api/internal/api"
	"github.com/phrazzld/sanmei-api/internal/app"
	"github.com/phrazzld/sanmei-api/internal/config"
	"github.com/phrazzld/sanmei-api/internal/platform/logger"
	"github.com/spf13/cobra"
)

// rootOptions are flags shared by every subcommand.
type rootOptions struct {
	configFile string
	now        func() time.Time
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{now: time.Now}

	root := &cobra.Command{
		Use:   "sanmei",
		Short: "Sanmei destiny-chart calculator",
		Long: `sanmei derives the three natal pillars of a birth date and the chart
built on them: hidden stems, main and sub stars, energy, aspects, void
periods and the decade and annual fortune cycles.

Configuration is read from config.yaml (or --config) and SANMEI_ environment
variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default ./config.yaml if present)")

	root.AddCommand(newChartCmd(opts), newServeCmd(opts))
	return root
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.configFile != "" {
		return config.LoadFile(o.configFile)
	}
	return config.Load()
}

type chartOptions struct {
	date       string
	clock      string
	gender     string
	daiunSteps int
	nenunYears int
}

func newChartCmd(root *rootOptions) *cobra.Command {
	opts := &chartOptions{}

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Print the chart of a birth date as JSON",
		Example: `  sanmei chart --date 1988-03-21 --gender M
  sanmei chart --date 1988/03/21 --time 10:30 --gender female --nenun-years 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChart(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.date, "date", "", "birth date, YYYY-MM-DD or YYYY/MM/DD")
	f.StringVar(&opts.clock, "time", "", "birth time, HH:MM")
	f.StringVar(&opts.gender, "gender", "", "M or F")
	f.IntVar(&opts.daiunSteps, "daiun-steps", 0, "number of decade steps (default from config)")
	f.IntVar(&opts.nenunYears, "nenun-years", 0, "number of annual steps (default from config)")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("gender")

	return cmd
}

func runChart(cmd *cobra.Command, root *rootOptions, opts *chartOptions) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if opts.daiunSteps != 0 {
		cfg.Engine.DaiunSteps = opts.daiunSteps
	}
	if opts.nenunYears != 0 {
		cfg.Engine.NenunYears = opts.nenunYears
	}
	// A single computation gains nothing from the cache.
	cfg.Cache.Size = 0

	in, err := api.ChartRequest{Birthday: opts.date, Time: opts.clock, Gender: opts.gender}.ToBirthInput()
	if err != nil {
		return err
	}

	// The JSON report owns stdout; logs go to stderr.
	l := logger.New(cmd.ErrOrStderr(), cmd.ErrOrStderr(), "warn")
	svc, err := app.NewReadingService(cfg, nil, l)
	if err != nil {
		return err
	}

	report, err := svc.Compute(cmd.Context(), in, root.now())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

func newServeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			l, err := logger.Setup(cfg.Server)
			if err != nil {
				return fmt.Errorf("failed to set up logger: %w", err)
			}
			slog.Info("Server configuration loaded",
				"port", cfg.Server.Port,
				"log_level", cfg.Server.LogLevel)

			application, err := app.New(cfg, l)
			if err != nil {
				return err
			}
			return application.Run(cmd.Context())
		},
	}
}
