package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iwvelando/mortgage-calculator/internal/config"
	"github.com/iwvelando/mortgage-calculator/internal/logging"
	"github.com/iwvelando/mortgage-calculator/internal/quote"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/output"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")

	// A single quote from flags replaces the configured batch.
	price := flag.Float64("price", 0, "property price for a single quote")
	downPayment := flag.Float64("down-payment", 0, "down payment for a single quote")
	rate := flag.Float64("rate", 0, "annual interest rate percentage for a single quote")
	amortization := flag.Int("amortization", 25, "amortization period in years for a single quote")
	schedule := flag.String("schedule", "monthly", "pay schedule for a single quote: monthly, bi-weekly, accelerated bi-weekly")
	flag.Parse()

	singleQuote := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "price" {
			singleQuote = true
		}
	})

	var conf *config.Configuration
	if singleQuote {
		conf = &config.Configuration{
			Mortgages: []config.Mortgage{{
				Name:               "quote",
				PropertyPrice:      *price,
				DownPayment:        *downPayment,
				InterestRate:       *rate,
				AmortizationPeriod: *amortization,
				PaySchedule:        *schedule,
			}},
			Logging: logging.Config{Format: "console"},
		}
	} else {
		loaded, err := config.LoadConfiguration(*configLocation)
		if err != nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
			os.Exit(1)
		}
		conf = loaded
	}

	logger, err := logging.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	results := quote.GetQuotes(logger, *conf)

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(os.Stdout, results)
	case constants.OutputFormatCSV:
		if err := output.CsvFormat(os.Stdout, results); err != nil {
			logger.Fatal("failed to write csv output",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}
