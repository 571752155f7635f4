// Package main provides the CLI entry point for the ETL pipeline.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/DanCas03/IA-Proyecto-Final/pkg/etl"
	"github.com/DanCas03/IA-Proyecto-Final/pkg/etl/models"
	"github.com/DanCas03/IA-Proyecto-Final/pkg/etl/store"
)

var (
	clearExisting     bool
	dryRun            bool
	catalogPath       string
	categoryThreshold int
	columnThreshold   int
	titleThreshold    int
	logLevel          string
	logFormat         string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "etl [dataset-dir]",
		Short: "Extract labeled text records from heterogeneous Excel files",
		Long: `etl scans a directory of Excel workbooks whose sheet names, header rows,
and table layout vary across files, fuzzy-matches them against the
canonical categories and columns, and loads the extracted records into
MongoDB.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().BoolVar(&clearExisting, "clear", true, "Clear existing records before inserting")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Extract without writing to MongoDB")
	rootCmd.Flags().StringVar(&catalogPath, "catalog", "", "JSON file overriding the category/field pattern catalog")
	rootCmd.Flags().IntVar(&categoryThreshold, "category-threshold", 0, "Sheet-name similarity threshold (0-100)")
	rootCmd.Flags().IntVar(&columnThreshold, "column-threshold", 0, "Column-header similarity threshold (0-100)")
	rootCmd.Flags().IntVar(&titleThreshold, "title-threshold", 0, "Multi-table title similarity threshold (0-100)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "text", "Log format: text, json")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	setupLogging(logLevel, logFormat)

	// .env carries MONGO_URI and MONGO_DB_NAME; absence is fine when
	// they are exported directly.
	_ = godotenv.Load()

	opts := etl.DefaultOptions()
	if catalogPath != "" {
		catalog, err := models.LoadCatalog(catalogPath)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
		opts.Catalog = catalog
	}
	if categoryThreshold > 0 {
		opts.CategoryThreshold = categoryThreshold
	}
	if columnThreshold > 0 {
		opts.Header.Threshold = columnThreshold
	}
	if titleThreshold > 0 {
		opts.Layout.TitleThreshold = titleThreshold
	}

	ctx := context.Background()

	var st store.Store
	if dryRun {
		st = &store.Memory{}
	} else {
		uri := os.Getenv("MONGO_URI")
		if uri == "" {
			return fmt.Errorf("MONGO_URI is not set; create a .env file with your connection string")
		}
		mongoStore, err := store.ConnectMongo(ctx, uri, os.Getenv("MONGO_DB_NAME"))
		if err != nil {
			return fmt.Errorf("connecting to MongoDB: %w", err)
		}
		defer mongoStore.Close(ctx)
		st = mongoStore
	}

	result, err := etl.Run(ctx, args[0], st, clearExisting && !dryRun, opts)
	if err != nil {
		return err
	}

	printSummary(result.Stats)
	return nil
}

// setupLogging configures the process-wide slog logger.
func setupLogging(level, format string) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// printSummary renders the run statistics in deterministic order.
func printSummary(stats models.Stats) {
	fmt.Printf("Total records: %d\n", stats.TotalInserted)

	fmt.Println("\nBy category:")
	for _, key := range sortedKeys(stats.ByCategory) {
		fmt.Printf("  %s: %d\n", key, stats.ByCategory[key])
	}

	fmt.Println("\nBy file:")
	for _, key := range sortedKeys(stats.ByFile) {
		fmt.Printf("  %s: %d\n", key, stats.ByFile[key])
	}

	if len(stats.SkippedSheets) > 0 {
		fmt.Println("\nSkipped sheets:")
		for _, s := range stats.SkippedSheets {
			fmt.Printf("  %s\n", s)
		}
	}
	if len(stats.FileErrors) > 0 {
		fmt.Println("\nFailed files:")
		for _, key := range sortedStringKeys(stats.FileErrors) {
			fmt.Printf("  %s: %s\n", key, stats.FileErrors[key])
		}
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedStringKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
