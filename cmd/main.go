// Package main provides the CLI entrypoint for the QR generator.
// It wires subcommands (generate, validate, decode, serve, config), loads
// configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"qrgen/internal/config"
	"qrgen/internal/generator"
	"qrgen/pkg/logger"
	"qrgen/pkg/qrencoder/skip2qr"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// getGenerator builds a generator backed by the skip2 encoder using the
// QR settings of cfg. A nil mp disables metrics.
func getGenerator(ctx context.Context, cfg *config.Config, mp metric.MeterProvider) generator.Generator {
	opts, err := generator.NewOptions(cfg)
	if err != nil {
		logger.Fatal(ctx, "invalid QR options", zap.Error(err))
	}

	gen, err := generator.New(skip2qr.New(), opts, mp)
	if err != nil {
		logger.Fatal(ctx, "could not create generator", zap.Error(err))
	}

	return gen
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:          "qrgen",
		Short:        "Validates URLs and renders them as QR codes",
		SilenceUsage: true,
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	fs := flag.NewFlagSet("qrgen", flag.ContinueOnError)
	configPath := fs.String("config", "config.yml", "The config file path")
	_ = fs.Parse(configArgs(os.Args[1:]))

	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	err = logger.SetupWithOptions(logger.Options{
		Environment: cfg.Environment,
		Level:       cfg.Log.Level,
		File:        cfg.Log.File,
		MaxSizeMB:   cfg.Log.MaxSizeMB,
		MaxBackups:  cfg.Log.MaxBackups,
		MaxAgeDays:  cfg.Log.MaxAgeDays,
	})
	if err != nil {
		log.Fatal("could not set up logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		generateCommand(cfg),
		validateCommand(cfg),
		decodeCommand(),
		serveCommand(cfg),
		configCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs keeps only the config flag and its value so the standard flag
// package does not stop at subcommand names or reject subcommand flags.
func configArgs(args []string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		name, value, hasValue := strings.Cut(strings.TrimLeft(args[i], "-"), "=")
		if !strings.HasPrefix(args[i], "-") || (name != "c" && name != "config") {
			continue
		}

		if !hasValue && i+1 < len(args) {
			i++
			value, hasValue = args[i], true
		}
		if hasValue {
			out = append(out, "-config="+value)
		}
	}

	return out
}
