// Command importer parses a spreadsheet export of a fossil collection,
// maps its columns onto specimen fields, validates every row, and either
// prints the resulting report (default) or commits the selected rows to
// PostgreSQL with -commit.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/paleodesk/fossilimport/internal/config"
	"github.com/paleodesk/fossilimport/internal/core"
	"github.com/paleodesk/fossilimport/internal/logging"
	"github.com/paleodesk/fossilimport/internal/mapping"
	"github.com/paleodesk/fossilimport/internal/parser"
	"github.com/paleodesk/fossilimport/internal/store"
)

func main() {
	filePath := flag.String("file", "", "path to the CSV or XLSX export to import")
	ownerID := flag.String("owner", "", "collection owner id the specimens belong to")
	commit := flag.Bool("commit", false, "persist selected rows to PostgreSQL (default is a dry run)")
	showMapping := flag.Bool("show-mapping", false, "print the proposed column mapping and exit")
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "usage: importer -file <export.csv|export.xlsx> [-owner id] [-commit] [-show-mapping]")
		os.Exit(2)
	}

	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Import.Timeout)
	defer cancel()

	sessionID := uuid.New().String()
	ctx = logging.WithSession(ctx, sessionID)
	log := logging.FromContext(ctx)

	if err := run(ctx, cfg, *filePath, *ownerID, *commit, *showMapping); err != nil {
		log.Error("import failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, filePath, ownerID string, commit, showMapping bool) error {
	log := logging.FromContext(ctx)

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	if int64(len(data)) > cfg.Import.MaxFileSize {
		return fmt.Errorf("file exceeds %d byte limit", cfg.Import.MaxFileSize)
	}

	var table *parser.ParsedTable
	if parser.IsWorkbook(filePath) {
		table, err = parser.ParseWorkbook(data, filePath)
	} else {
		table, err = parser.Parse(data, filePath)
	}
	if err != nil {
		return err
	}
	log.Info("parsed source",
		"source", table.SourceName,
		"delimiter", table.DelimiterLabel,
		"columns", len(table.Headers),
		"rows", table.RowCount,
	)

	mapCfg := mapping.AutoMap(table)
	if showMapping {
		printMapping(mapCfg)
		return nil
	}
	if !mapCfg.RequiredSatisfied() {
		log.Warn("required fields are unmapped; every row will fail validation")
	}

	validator := core.NewValidator(cfg.FallbackCurrency())
	drafts := validator.BuildDrafts(mapCfg)

	if !commit {
		printReport(drafts)
		return nil
	}

	if cfg.Database.URL == "" {
		return fmt.Errorf("-commit requires DATABASE_URL to be set")
	}
	if ownerID == "" {
		return fmt.Errorf("-commit requires -owner")
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("parse database URL: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)
	poolConfig.MaxConnLifetime = cfg.Database.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.Database.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	st := store.New(pool)
	if err := st.EnsureSchema(ctx); err != nil {
		return err
	}

	// One transaction for the whole run; failed rows roll back to their
	// savepoint, everything else lands on Commit.
	session, err := st.BeginImport(ctx)
	if err != nil {
		return err
	}
	defer session.Close(ctx)

	driver := core.NewDriver(session, cfg.FallbackCurrency())
	var final core.ProgressEvent
	for ev := range driver.Submit(ctx, drafts, ownerID) {
		final = ev
		if ev.CurrentLabel != "" {
			log.Info("importing", "label", ev.CurrentLabel, "imported", ev.Imported, "total", ev.Total)
		}
	}
	if ctx.Err() != nil {
		return fmt.Errorf("import interrupted: %w", ctx.Err())
	}
	if err := session.Commit(ctx); err != nil {
		return err
	}

	fmt.Printf("imported %d of %d selected rows (%d failed, %d skipped)\n",
		final.Imported, final.Total, final.Failed, final.Skipped)
	return nil
}

func printMapping(cfg *mapping.Configuration) {
	fmt.Printf("%-22s %-28s %-10s %s\n", "FIELD", "SOURCE COLUMN", "CONFIDENCE", "CONFIRMED")
	for _, m := range cfg.Mappings {
		source := "-"
		if m.Mapped() {
			source = m.SourceColumns[0]
			for _, extra := range m.SourceColumns[1:] {
				source += ", " + extra
			}
		}
		fmt.Printf("%-22s %-28s %-10.2f %v\n", m.Field.DisplayName(), source, m.Confidence, m.Confirmed)
	}
}

func printReport(drafts []core.Draft) {
	selected := 0
	for i := range drafts {
		d := &drafts[i]
		if d.SelectedForImport {
			selected++
		}
		if len(d.Errors) == 0 && len(d.Warnings) == 0 {
			continue
		}
		fmt.Printf("row %d:\n", d.RowIndex+1)
		for _, e := range d.Errors {
			fmt.Printf("  [%s] %s: %s (value %q)\n", e.Severity, e.Field.DisplayName(), e.Message, e.RawValue)
		}
		for _, w := range d.Warnings {
			if w.SuggestedCorrection != "" {
				fmt.Printf("  [note] %s: %s (suggest %q)\n", w.Field.DisplayName(), w.Message, w.SuggestedCorrection)
			} else {
				fmt.Printf("  [note] %s: %s\n", w.Field.DisplayName(), w.Message)
			}
		}
	}
	fmt.Printf("%d rows parsed, %d selected for import\n", len(drafts), selected)
}
