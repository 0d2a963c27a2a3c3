// Package main provides the CLI entrypoint for the Steam achievement exporter.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bnskaggs/PSN-and-Steam-Achievement-Data-Scraper/internal/achievements"
	"github.com/bnskaggs/PSN-and-Steam-Achievement-Data-Scraper/internal/config"
	"github.com/bnskaggs/PSN-and-Steam-Achievement-Data-Scraper/internal/export"
	"github.com/bnskaggs/PSN-and-Steam-Achievement-Data-Scraper/internal/providers/steam"
)

// Exit codes are a compatibility surface: scripts built around the original
// tool branch on them.
const (
	exitOK          = 0
	exitInterrupted = 1
	exitConfig      = 2
	exitFailure     = 3
)

var (
	flagAppID   int
	flagLang    string
	flagOut     string
	flagVerbose bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	if err == nil {
		os.Exit(exitOK)
	}

	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "Aborted by user.")
		os.Exit(exitInterrupted)
	}
	fmt.Fprintln(os.Stderr, err)
	if errors.Is(err, config.ErrMissingAPIKey) {
		os.Exit(exitConfig)
	}
	os.Exit(exitFailure)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steam-achievements",
		Short: "Fetch global Steam achievement stats and merge with schema metadata",
		Example: "  steam-achievements --appid 620\n" +
			"  steam-achievements --appid 620 --lang french --out portal2_fr.csv",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runExport,
	}

	cmd.Flags().IntVar(&flagAppID, "appid", 0, "Steam AppID of the game")
	cmd.Flags().StringVar(&flagLang, "lang", "english", "language for schema metadata")
	cmd.Flags().StringVar(&flagOut, "out", "", "output CSV path (default steam_<appid>_achievements.csv)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
	cmd.MarkFlagRequired("appid")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	logger, err := newLogger(flagVerbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	// Credential check happens before any network call; a missing key must
	// fail without touching the API or creating the output file.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	outPath := flagOut
	if outPath == "" {
		outPath = fmt.Sprintf("steam_%d_achievements.csv", flagAppID)
	}

	client := steam.New(cfg.BaseURL, log)

	log.Debugw("fetching global achievement percentages", "appid", flagAppID)
	percentagesPayload, err := client.GlobalAchievementPercentages(ctx, flagAppID)
	if err != nil {
		return err
	}

	log.Debugw("fetching game schema", "appid", flagAppID, "lang", flagLang)
	schemaPayload, err := client.GameSchema(ctx, flagAppID, cfg.APIKey, flagLang)
	if err != nil {
		return err
	}

	percentages := achievements.ParsePercentages(percentagesPayload)
	schema := achievements.ParseSchema(schemaPayload)
	log.Debugw("parsed payloads", "percentages", percentages.Len(), "schema", schema.Len())

	if schema.Len() == 0 && percentages.Len() == 0 {
		if err := export.WriteCSV(outPath, nil); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No achievements found for this title. Wrote header-only CSV.")
		return nil
	}

	rows := achievements.BuildRows(schema, percentages)
	if err := export.WriteCSV(outPath, rows); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d achievements to %s.\n", len(rows), outPath)
	return nil
}

// newLogger builds a stderr logger so stdout stays reserved for the
// user-facing result line.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
