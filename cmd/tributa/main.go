package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/mribeiro/tributa/internal/calculation"
	"github.com/mribeiro/tributa/internal/config"
	"github.com/mribeiro/tributa/internal/domain"
	"github.com/mribeiro/tributa/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// zapEngineLogger adapts a zap sugared logger to calculation.Logger.
type zapEngineLogger struct {
	sugar *zap.SugaredLogger
}

func (l zapEngineLogger) Debugf(format string, args ...any) { l.sugar.Debugf(format, args...) }
func (l zapEngineLogger) Infof(format string, args ...any)  { l.sugar.Infof(format, args...) }
func (l zapEngineLogger) Warnf(format string, args ...any)  { l.sugar.Warnf(format, args...) }
func (l zapEngineLogger) Errorf(format string, args ...any) { l.sugar.Errorf(format, args...) }

// initializeLogger creates a zap logger from the settings and CLI override.
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "console"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
	case "json":
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
			}
		}
		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

var rootCmd = &cobra.Command{
	Use:   "tributa",
	Short: "Brazilian tax regime calculator",
	Long:  "Computes Simples Nacional, Lucro Presumido and Lucro Real tax loads, forecasts bracket transitions and recommends the cheapest regime",
}

// appContext bundles what every command needs after the shared setup.
type appContext struct {
	engine   *calculation.Engine
	settings *config.Settings
	logger   *zap.Logger
}

// setup loads settings, initializes logging and builds the engine, applying
// the optional rates override file.
func setup(cmd *cobra.Command) (*appContext, error) {
	settingsPath, _ := cmd.Flags().GetString("settings")
	logLevel, _ := cmd.Flags().GetString("log-level")
	ratesPath, _ := cmd.Flags().GetString("rates")

	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return nil, err
	}

	logger, err := initializeLogger(settings.Logging, logLevel)
	if err != nil {
		return nil, err
	}

	engineConfig := calculation.DefaultEngineConfig()
	if ratesPath != "" {
		schedules, err := config.LoadSchedules(ratesPath)
		if err != nil {
			return nil, err
		}
		engineConfig.Schedules = schedules
		logger.Info("loaded schedule overrides", zap.String("file", ratesPath))
	}
	if settings.Thresholds.CriticalMonthlyDelta > 0 {
		engineConfig.CriticalMonthlyDelta = decimal.NewFromFloat(settings.Thresholds.CriticalMonthlyDelta)
	}
	if settings.Thresholds.RegimeSpread > 0 {
		engineConfig.RegimeSpreadThreshold = decimal.NewFromFloat(settings.Thresholds.RegimeSpread)
	}
	if settings.Thresholds.ForecastMonths > 0 {
		engineConfig.ForecastMonths = settings.Thresholds.ForecastMonths
	}

	engine := calculation.NewEngineWithConfig(engineConfig)
	engine.SetLogger(zapEngineLogger{sugar: logger.Sugar()})

	return &appContext{engine: engine, settings: settings, logger: logger}, nil
}

// loadInput parses and validates the input file named by the first argument.
func loadInput(filename string) (*domain.FinancialInput, error) {
	return config.NewInputParser().LoadFromFile(filename)
}

// parseRegimes maps a comma-joined regime list to regime types. An empty
// list selects all regimes.
func parseRegimes(names []string) ([]domain.RegimeType, error) {
	var regimes []domain.RegimeType
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "simples", "simples_nacional":
			regimes = append(regimes, domain.RegimeSimples)
		case "presumido", "lucro_presumido":
			regimes = append(regimes, domain.RegimePresumido)
		case "real", "lucro_real":
			regimes = append(regimes, domain.RegimeReal)
		default:
			return nil, fmt.Errorf("unknown regime %q (expected simples, presumido or real)", name)
		}
	}
	return regimes, nil
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Compute the selected tax regimes and recommend the cheapest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = app.logger.Sync() }()

		input, err := loadInput(args[0])
		if err != nil {
			return err
		}

		regimeNames, _ := cmd.Flags().GetStringSlice("regimes")
		regimes, err := parseRegimes(regimeNames)
		if err != nil {
			return err
		}

		report, err := app.engine.BuildReport(input, regimes...)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		if format == "" {
			format = app.settings.Output.Format
		}
		rendered, err := output.NewReportGenerator().Render(report, format)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tributa %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(cmd.OutOrStdout(), bi.Main.Path)
			}
		},
	}
}

func init() {
	rootCmd.PersistentFlags().String("settings", "", "path to application settings file")
	rootCmd.PersistentFlags().String("rates", "", "path to schedule override file")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	calculateCmd.Flags().String("format", "", "output format: console, json, csv")
	calculateCmd.Flags().StringSlice("regimes", nil, "regimes to compute (simples, presumido, real); all when empty")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(forecastCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
