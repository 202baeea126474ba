// cmd/standardize/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dataprep-go/standardize/pkg/apply"
	"github.com/dataprep-go/standardize/pkg/audit"
	"github.com/dataprep-go/standardize/pkg/config"
	"github.com/dataprep-go/standardize/pkg/detect"
	"github.com/dataprep-go/standardize/pkg/model"
	"github.com/dataprep-go/standardize/pkg/source"
	"github.com/dataprep-go/standardize/pkg/task"
)

func main() {
	table := flag.String("table", "", "table holding the dataset to analyze")
	column := flag.String("column", "", "column to analyze for inconsistent formats")
	limit := flag.Int("limit", 0, "maximum rows to fetch (0 = all)")
	applyFlag := flag.String("apply", "", "comma-separated original=standardized pairs to apply")
	applyAll := flag.Bool("apply-all", false, "apply every detected candidate")
	auditFlag := flag.Bool("audit", false, "record applied replacements in the tracking table")
	flag.Parse()

	if *table == "" || *column == "" {
		fmt.Fprintln(os.Stderr, "usage: standardize -table <table> -column <column> [-limit n] [-apply pairs | -apply-all] [-audit]")
		os.Exit(2)
	}

	// Load .env if present; environment variables win
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := run(cfg, logger, *table, *column, *limit, *applyFlag, *applyAll, *auditFlag); err != nil {
		logger.Error("Run failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(
	cfg *config.Config,
	logger *zap.Logger,
	table, column string,
	limit int,
	applyPairs string,
	applyAll, recordAudit bool,
) error {
	ctx := context.Background()

	src, err := source.NewFactory(cfg, logger).Create(ctx)
	if err != nil {
		return err
	}
	defer src.Close()

	if err := src.Validate(); err != nil {
		return err
	}

	values, err := src.FetchColumn(ctx, table, column, limit)
	if err != nil {
		return err
	}

	detector, err := detect.NewDetector(cfg.Engine, logger.Named("detector"))
	if err != nil {
		return err
	}

	runner, err := task.NewRunner(detector, logger.Named("runner"))
	if err != nil {
		return err
	}

	key := fmt.Sprintf("%s.%s", table, column)
	outcome := <-runner.Start(ctx, key, column, values)
	if outcome.Err != nil {
		var insufficient *detect.InsufficientDataError
		if errors.As(outcome.Err, &insufficient) {
			fmt.Println("No inconsistencies detectable:", insufficient.Error())
			return nil
		}
		return outcome.Err
	}

	result := outcome.Result
	printCandidates(result)

	replacements := buildReplacements(result, applyPairs, applyAll)
	if len(replacements) == 0 {
		return nil
	}

	dataset, err := src.FetchDataset(ctx, table, limit)
	if err != nil {
		return err
	}

	transformed, err := apply.Replacements(dataset, column, replacements)
	if err != nil {
		return err
	}

	changed := 0
	for i := range dataset.Rows {
		if model.CellString(dataset.Rows[i][column]) != model.CellString(transformed.Rows[i][column]) {
			changed++
		}
	}
	fmt.Printf("\nApplied %d replacement(s) to %d of %d rows\n",
		len(replacements), changed, len(transformed.Rows))

	if recordAudit {
		if cfg.SourceDriver != "postgres" {
			logger.Warn("Audit trail requires the postgres source; skipping")
			return nil
		}

		recorder, err := audit.NewRecorder(src.DB(), logger.Named("audit"))
		if err != nil {
			return err
		}

		ops := model.OperationsForReplacements(dataset, column, replacements, result.Candidates, result.RunID)
		if err := recorder.RecordOperations(ctx, ops); err != nil {
			return err
		}
	}

	return nil
}

// buildReplacements turns CLI selections into an operator replacement map
func buildReplacements(result *model.AnalysisResult, pairs string, all bool) model.ReplacementMap {
	replacements := make(model.ReplacementMap)

	if all {
		for _, c := range result.Candidates {
			replacements[c.OriginalValue] = c.StandardizedValue
		}
		return replacements
	}

	for _, pair := range strings.Split(pairs, ",") {
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			continue
		}
		replacements[parts[0]] = parts[1]
	}

	return replacements
}

func printCandidates(result *model.AnalysisResult) {
	for _, warning := range result.Warnings {
		fmt.Println("warning:", warning)
	}

	if len(result.Candidates) == 0 {
		fmt.Printf("No inconsistencies found in column %q (%d values, %d distinct)\n",
			result.Column, result.Stats.ValuesAnalyzed, result.Stats.DistinctValues)
		return
	}

	fmt.Printf("Found %d candidate(s) in column %q:\n", len(result.Candidates), result.Column)
	for _, c := range result.Candidates {
		fmt.Printf("  %-30q -> %-30q  x%-5d [%s]\n",
			c.OriginalValue, c.StandardizedValue, c.OccurrenceCount, c.PatternFamily)
	}
}

// newLogger builds a zap logger from the configured level and format
func newLogger(level, format string) (*zap.Logger, error) {
	var zapCfg zap.Config
	if format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		parsed = zapcore.InfoLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(parsed)

	return zapCfg.Build()
}
