package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iwvelando/home-analysis/internal/config"
	"github.com/iwvelando/home-analysis/internal/logging"
	"github.com/iwvelando/home-analysis/internal/matrix"
	"github.com/iwvelando/home-analysis/pkg/constants"
	"github.com/iwvelando/home-analysis/pkg/output"
	"go.uber.org/zap"
)

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputPath := flag.String("output", constants.DefaultMatrixOutputFile, "output CSV filename")
	summaryFlag := flag.Bool("summary", false, "show summary statistics")
	workers := flag.Int("workers", 0, "number of sweep workers (0 = GOMAXPROCS)")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	baseline, err := conf.BuildBaseline(logger)
	if err != nil {
		logger.Fatal("failed to build baseline finances",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Advisory warnings never abort the run.
	for _, warning := range conf.ValidateConfiguration(baseline) {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	output.PrettyBaseline(baseline)
	fmt.Printf("\n")

	cells, err := matrix.Run(logger, conf.ScenarioParams(), baseline, conf.MatrixConfig(*workers))
	if err != nil {
		logger.Fatal("failed to run analysis matrix",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	file, err := os.Create(*outputPath)
	if err != nil {
		logger.Fatal("failed to create output file",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	defer func() {
		_ = file.Close()
	}()
	if err := output.MatrixCsv(file, cells); err != nil {
		logger.Fatal("failed to write matrix CSV",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	logger.Info("analysis complete",
		zap.String("op", "main"),
		zap.Int("cells", len(cells)),
		zap.String("output", *outputPath),
	)

	if *summaryFlag || conf.Output.Format == constants.OutputFormatPretty {
		fmt.Printf("\n")
		output.PrettySummary(matrix.Summarize(cells))
	}
}
