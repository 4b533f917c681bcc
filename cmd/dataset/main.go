package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/dataset"
	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/infrastructure/config"
	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/infrastructure/logger"
)

var (
	buildDataDir      string
	buildOutCSV       string
	buildUnlabeledCSV string
	buildMinWords     int

	prepareCSV    string
	prepareOutDir string
	prepareSeed   int64
)

// rootCmd is the offline dataset pipeline
var rootCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Build and prepare review sentiment datasets",
	Long: `Offline pipeline for the review sentiment service.

Available subcommands:
  build   - Extract labeled reviews from raw .review dumps into CSV
  prepare - Convert a labeled CSV into JSONL fine-tuning splits`,
}

// buildCmd extracts raw .review dumps into CSV tables
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Extract labeled reviews from raw .review dumps into CSV",
	RunE:  runBuild,
}

// prepareCmd converts a labeled CSV into fine-tuning JSONL splits
var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Convert a labeled CSV into JSONL fine-tuning splits",
	RunE:  runPrepare,
}

func init() {
	buildCmd.Flags().StringVar(&buildDataDir, "data-dir", "data", "directory of per-category .review dumps")
	buildCmd.Flags().StringVar(&buildOutCSV, "out", "reviews.csv", "labeled output CSV")
	buildCmd.Flags().StringVar(&buildUnlabeledCSV, "unlabeled-out", "unlabeled_reviews.csv", "unlabeled output CSV (empty to skip)")
	buildCmd.Flags().IntVar(&buildMinWords, "min-words", dataset.DefaultMinWords, "drop reviews with fewer words")

	prepareCmd.Flags().StringVar(&prepareCSV, "csv", "reviews.csv", "labeled input CSV")
	prepareCmd.Flags().StringVar(&prepareOutDir, "out-dir", "artifacts", "output directory for JSONL splits")
	prepareCmd.Flags().Int64Var(&prepareSeed, "seed", 1, "shuffle seed for the 80/10/10 split")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(prepareCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	return logger.NewLogger(&config.LogConfig{Level: "info", Format: "console"})
}

func runBuild(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	builder := dataset.NewBuilder(buildDataDir, buildMinWords)
	labeled, unlabeled, err := builder.Build()
	if err != nil {
		return err
	}

	if len(labeled) == 0 {
		log.Warn("No labeled reviews found", zap.String("data_dir", buildDataDir))
	} else {
		if err := dataset.WriteCSV(buildOutCSV, labeled); err != nil {
			return err
		}
		log.Info("Wrote labeled reviews",
			zap.Int("rows", len(labeled)),
			zap.String("path", buildOutCSV),
		)
	}

	if buildUnlabeledCSV != "" && len(unlabeled) > 0 {
		if err := dataset.WriteCSV(buildUnlabeledCSV, unlabeled); err != nil {
			return err
		}
		log.Info("Wrote unlabeled reviews",
			zap.Int("rows", len(unlabeled)),
			zap.String("path", buildUnlabeledCSV),
		)
	}

	return nil
}

func runPrepare(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	records, err := dataset.ReadCSV(prepareCSV)
	if err != nil {
		return err
	}

	cleaned := dataset.CleanRecords(records)
	if len(cleaned) == 0 {
		return fmt.Errorf("no usable examples in %s after cleaning", prepareCSV)
	}

	train, val, test := dataset.Split(cleaned, prepareSeed)
	if err := dataset.WriteSplits(prepareOutDir, train, val, test); err != nil {
		return err
	}

	log.Info("Wrote fine-tuning splits",
		zap.Int("train", len(train)),
		zap.Int("val", len(val)),
		zap.Int("test", len(test)),
		zap.String("out_dir", prepareOutDir),
	)
	return nil
}
