// Package main is the entry point for the lysate-impact service and CLI.
//
// @title           Lysate Impact API
// @version         1.0.0
// @description     Scenario calculator for antibiotic courses avoided in children
// @description     with recurrent respiratory tract infections treated with bacterial lysates.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/lysate-impact
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Scenarios
// @tag.description Adoption scenarios, intervals and sensitivity sweeps
//
// @tag.name        Export
// @tag.description Tabular and chart-ready exports
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/lysate-impact/config"
	"github.com/guttosm/lysate-impact/internal/app"
	"github.com/guttosm/lysate-impact/internal/export"
	"github.com/guttosm/lysate-impact/internal/logger"
	"github.com/spf13/cobra"
)

// shutdownGrace is added to the request timeout for the server write timeout.
const shutdownGrace = 5 * time.Second

func main() {
	var paramsFile string

	rootCmd := &cobra.Command{
		Use:           "lysate-impact",
		Short:         "Estimate antibiotic courses avoided with bacterial lysates",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&paramsFile, "params", "", "YAML parameter set (defaults to the published values)")

	serve := serveCmd(&paramsFile)
	rootCmd.RunE = serve.RunE

	rootCmd.AddCommand(serve)
	rootCmd.AddCommand(summaryCmd(&paramsFile))
	rootCmd.AddCommand(exportCmd(&paramsFile))

	if err := rootCmd.Execute(); err != nil {
		logger.Logger().Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies the --params override.
func loadConfig(paramsFile string) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if paramsFile != "" {
		cfg.Model.ParametersFile = paramsFile
	}
	return cfg, nil
}

func serveCmd(paramsFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*paramsFile)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			application, err := app.InitializeApp(cfg)
			if err != nil {
				return err
			}
			defer application.Close()

			server := app.NewServer(application.Router, cfg.Server.Port, cfg.Server.RequestTimeout+shutdownGrace)
			return server.Run(ctx)
		},
	}
}

func summaryCmd(paramsFile *string) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the scenario report as a formatted summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*paramsFile)
			if err != nil {
				return err
			}
			app.InitializeLogger(cfg.Log)

			services, err := app.InitializeServices(cfg)
			if err != nil {
				return err
			}
			defer services.Close()

			report, err := services.Calculator.Report(cmd.Context())
			if err != nil {
				return err
			}
			return export.WriteSummary(cmd.OutOrStdout(), report, lang)
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "en", "Summary language (en, pt, nl)")
	return cmd
}

func exportCmd(paramsFile *string) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every report table as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*paramsFile)
			if err != nil {
				return err
			}
			app.InitializeLogger(cfg.Log)

			if dir == "" {
				dir = cfg.Export.Dir
			}

			services, err := app.InitializeServices(cfg)
			if err != nil {
				return err
			}
			defer services.Close()

			report, err := services.Calculator.Report(cmd.Context())
			if err != nil {
				return err
			}

			paths, err := export.WriteAll(dir, report)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Output directory (defaults to EXPORT_DIR)")
	return cmd
}
