package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwvelando/resistor-divider/internal/config"
	"github.com/iwvelando/resistor-divider/internal/solver"
	"github.com/iwvelando/resistor-divider/pkg/constants"
	"github.com/iwvelando/resistor-divider/pkg/output"
	"github.com/iwvelando/resistor-divider/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
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
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	vin := flag.Float64("vin", 0, "input voltage in volts")
	vout := flag.Float64("vout", 0, "target output voltage in volts")
	pmax := flag.Float64("pmax", 0, "maximum total divider dissipation in watts")
	seriesFlag := flag.String("series", "", "resistor series override: E3, E6, E12, E24, E48, E96, E192")
	decades := flag.String("decades", "", "decade exponent range override as min:max, e.g. 0:6")
	maxResults := flag.Int("max-results", 0, "maximum number of candidate pairs to report")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	xlsxFile := flag.String("xlsx", "", "optional path for an XLSX export of the results")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	err = conf.ApplyOverrides(config.Overrides{
		Vin:          *vin,
		Vout:         *vout,
		Pmax:         *pmax,
		Series:       *seriesFlag,
		Decades:      *decades,
		MaxResults:   *maxResults,
		OutputFormat: *outputFormatFlag,
		XLSXFile:     *xlsxFile,
	})
	if err != nil {
		logger.Error(err.Error(),
			zap.String("op", "main"),
		)
		_ = logger.Sync()
		os.Exit(constants.ExitInvalidInput)
	}

	// Determine output format (CLI override was already merged)
	outputFormat := conf.Output.Format
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	minExp, maxExp := conf.DecadeRange()
	req := solver.Request{
		Vin:         conf.Divider.Vin,
		VoutTarget:  conf.Divider.Vout,
		Pmax:        conf.Divider.Pmax,
		Series:      conf.Divider.Series,
		MinExponent: minExp,
		MaxExponent: maxExp,
		MaxResults:  conf.Search.MaxResults,
	}

	// Run the search.
	results, err := solver.Solve(logger, req)
	if err != nil {
		var invalidInput *solver.InvalidInputError
		var noSolution *solver.NoSolutionError
		switch {
		case errors.As(err, &invalidInput):
			logger.Error(err.Error(),
				zap.String("op", "main"),
			)
			_ = logger.Sync()
			os.Exit(constants.ExitInvalidInput)
		case errors.As(err, &noSolution):
			logger.Error(err.Error(),
				zap.String("op", "main"),
			)
			_ = logger.Sync()
			os.Exit(constants.ExitNoSolution)
		default:
			logger.Fatal("failed to run divider search",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(req, results)
	case constants.OutputFormatCSV:
		if err := output.CsvFormat(results); err != nil {
			logger.Fatal("failed to write csv output",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	if conf.Output.XLSXFile != "" {
		if err := output.SaveToXLSX(conf.Output.XLSXFile, req, results); err != nil {
			logger.Fatal("failed to write xlsx export",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		logger.Info("xlsx export written",
			zap.String("op", "main"),
			zap.String("file", conf.Output.XLSXFile),
		)
	}
}
