// Package main provides the CLI entry point for cronograma-go.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/inventario26/cronograma-go/pkg/cache"
	"github.com/inventario26/cronograma-go/pkg/config"
	"github.com/inventario26/cronograma-go/pkg/cronograma"
	"github.com/inventario26/cronograma-go/pkg/export"
	"github.com/inventario26/cronograma-go/pkg/fetch"
	"github.com/inventario26/cronograma-go/pkg/handlers/schedule"
	"github.com/inventario26/cronograma-go/pkg/server"
)

var (
	cfgPath    string
	sheetName  string
	ignorePast bool
	listenAddr string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cronograma",
		Short: "Inventory panel over xlsx schedule workbooks",
		Long: `cronograma reads an inventory schedule workbook, classifies each
position cell by its fill color and derives per-day progress plus a
uniform daily completion target.`,
	}
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Path to a YAML config file")

	reportCmd := &cobra.Command{
		Use:   "report [path-or-url]",
		Short: "Print the per-day schedule report",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runReport,
	}
	reportCmd.Flags().StringVar(&sheetName, "sheet", "", "Schedule sheet name (default CRONOGRAMA)")
	reportCmd.Flags().BoolVar(&ignorePast, "ignore-past", false, "Plan the daily target over days from today onward only")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the schedule report over HTTP",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&listenAddr, "addr", "", "Listen address (default :8080)")

	rootCmd.AddCommand(reportCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the optional .env file, the optional config file and
// the INVENTARIO_* environment.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()
	return config.Load(cfgPath)
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if sheetName != "" {
		cfg.Sheet = sheetName
	}
	if cmd.Flags().Changed("ignore-past") {
		cfg.IgnorePast = ignorePast
	}

	source := cfg.Source
	if len(args) > 0 {
		source = args[0]
	}
	if source == "" {
		return fmt.Errorf("no workbook source: pass a path or URL, or set source in the config")
	}

	data, err := fetch.NewClient().Bytes(cmd.Context(), source)
	if err != nil {
		return err
	}

	report, err := cronograma.Load(data, cronograma.Options{SheetName: cfg.Sheet})
	if err != nil {
		return fmt.Errorf("failed to process workbook: %w", err)
	}
	if report.Empty() {
		fmt.Println("Nenhuma posição encontrada. Verifique a aba e o layout da planilha.")
		return nil
	}

	summary := cronograma.Summarize(report, cronograma.SummaryOptions{IgnorePastDays: cfg.IgnorePast})
	return export.NewReporter(os.Stdout).Handle(report, summary)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if listenAddr != "" {
		cfg.Addr = listenAddr
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger().Level(level)

	api := server.NewWebAPI(logger, server.Config{
		Addr: cfg.Addr,
		Dependencies: server.Dependencies{
			Fetcher: fetch.NewClient(),
			Reports: cache.New(0),
			Defaults: schedule.Defaults{
				Source: cfg.Source,
				Sheet:  cfg.Sheet,
			},
		},
	})

	logger.Info().Str("addr", cfg.Addr).Str("sheet", cfg.Sheet).Msg("inventory panel configured")
	return api.Start()
}
