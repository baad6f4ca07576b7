package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/benwebber/domesday/pkg/audit"
	"github.com/benwebber/domesday/pkg/export"
	"github.com/benwebber/domesday/pkg/input"
	"github.com/benwebber/domesday/pkg/store"

	// Linked export formats. Dropping an import removes the capability;
	// requesting it then fails with export.ErrUnsupported.
	_ "github.com/benwebber/domesday/pkg/export/xlsx"
)

func main() {
	ctx := context.Background()

	flags := ParseFlags()

	if *flags.Version {
		PrintVersion()
		os.Exit(0)
	}
	if *flags.Help {
		PrintHelp()
		os.Exit(0)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if *flags.Quiet {
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}

	config, err := LoadConfig(*flags.Config)
	if err != nil {
		fatal("Failed to load config: %v", err)
	}
	applyFlags(config, flags)

	csvPath := input.Stdin
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}
	if flag.NArg() > 1 {
		config.Database = flag.Arg(1)
	}

	auditLogger, err := newAuditLogger(config)
	if err != nil {
		fatal("Failed to open audit log: %v", err)
	}
	defer auditLogger.Close()

	if err := run(ctx, config, flags, csvPath, auditLogger); err != nil {
		fatal("%v", err)
	}
}

// run performs the load and the optional export. All resources are closed
// on every exit path.
func run(ctx context.Context, config *Config, flags *Flags, csvPath string, auditLogger *audit.Logger) error {
	st, err := store.Open(ctx, store.Config{
		Path:        config.Database,
		StrictTypes: config.StrictTypes,
		Logger:      &log.Logger,
	})
	if err != nil {
		auditLogger.Failure(audit.OpSchema, err)
		return err
	}
	defer st.Close()

	if !*flags.NoLoad {
		if err := load(ctx, st, csvPath, config, auditLogger); err != nil {
			return err
		}
	}

	if config.Export.Output != "" {
		if err := exportFrame(ctx, st, config, auditLogger); err != nil {
			return err
		}
	}

	return nil
}

func load(ctx context.Context, st *store.Store, csvPath string, config *Config, auditLogger *audit.Logger) error {
	src, err := input.Open(csvPath)
	if err != nil {
		auditLogger.Failure(audit.OpLoad, err)
		return err
	}
	defer src.Close()

	report, err := st.LoadCSV(ctx, src)
	if err != nil {
		auditLogger.Failure(audit.OpLoad, err)
		return fmt.Errorf("load failed: %w", err)
	}

	return auditLogger.Success(audit.Entry{
		Operation: audit.OpLoad,
		Source:    csvPath,
		Database:  config.Database,
		Rows:      report.Rows,
		Repaired:  report.Repaired,
		Checksum:  report.Checksum,
		Duration:  report.Duration.Milliseconds(),
	})
}

func exportFrame(ctx context.Context, st *store.Store, config *Config, auditLogger *audit.Logger) error {
	exporter, err := export.New(config.Export.Format)
	if err != nil {
		auditLogger.Failure(audit.OpExport, err)
		return err
	}

	records, err := st.All(ctx)
	if err != nil {
		auditLogger.Failure(audit.OpExport, err)
		return err
	}

	frame, err := export.NewFrame(records)
	if err != nil {
		auditLogger.Failure(audit.OpExport, err)
		return fmt.Errorf("export failed: %w", err)
	}

	if err := exporter.Export(ctx, frame, config.Export.Output); err != nil {
		auditLogger.Failure(audit.OpExport, err)
		return fmt.Errorf("export failed: %w", err)
	}

	log.Info().
		Str("format", config.Export.Format).
		Str("output", config.Export.Output).
		Int("rows", len(frame.Rows)).
		Msg("export written")

	return auditLogger.Success(audit.Entry{
		Operation: audit.OpExport,
		Database:  config.Database,
		Rows:      len(frame.Rows),
	})
}

// applyFlags overrides config values with explicit flags.
func applyFlags(config *Config, flags *Flags) {
	if *flags.Strict {
		config.StrictTypes = true
	}
	if *flags.AuditFile != "" {
		config.Audit.Enabled = true
		config.Audit.File = *flags.AuditFile
	}
	if *flags.Export != "" {
		config.Export.Output = *flags.Export
	}
	if *flags.Format != "" {
		config.Export.Format = *flags.Format
	}
}

func newAuditLogger(config *Config) (*audit.Logger, error) {
	file := ""
	if config.Audit.Enabled {
		file = config.Audit.File
	}
	return audit.NewLogger(log.Logger, file)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
