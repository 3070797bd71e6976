// Command blasefeed verifies, filters, archives and serves Blaseball feed
// records through the lossless codec.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/calliehart/blasefeed/internal/archive"
	"github.com/calliehart/blasefeed/internal/config"
	"github.com/calliehart/blasefeed/internal/filter"
	"github.com/calliehart/blasefeed/internal/server"
	"github.com/calliehart/blasefeed/internal/verify"
	"github.com/calliehart/blasefeed/internal/wire"
)

const maxLineBytes = 8 << 20

func main() {
	// A local .env is a development convenience, not a requirement.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := newLogger(cfg.LogLevel)

	root := newRootCmd(cfg, log)
	if err := root.Execute(); err != nil {
		log.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func newRootCmd(cfg config.Config, log *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "blasefeed",
		Short:         "Lossless codec for the Blaseball event feed",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newVerifyCmd(cfg, log),
		newFilterCmd(log),
		newIngestCmd(cfg, log),
		newServeCmd(cfg, log),
	)
	return root
}

func newVerifyCmd(cfg config.Config, log *slog.Logger) *cobra.Command {
	workers := cfg.VerifyWorkers
	cmd := &cobra.Command{
		Use:   "verify <files...>",
		Short: "Round-trip ndjson feed files and report mismatches",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := verify.Files(cmd.Context(), args, workers)
			if err != nil {
				return err
			}
			for _, f := range report.Failures {
				log.Error("round trip failed",
					"file", f.File,
					"line", f.Line,
					"id", f.ID,
					"reason", f.Reason)
			}
			log.Info("verified",
				"records", report.Records,
				"skipped", report.Skipped,
				"failures", len(report.Failures))
			if !report.Ok() {
				return fmt.Errorf("%d records failed verification", len(report.Failures))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", workers, "files verified concurrently")
	return cmd
}

func newFilterCmd(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "filter <dump> <outdir>",
		Short: "Split a feed dump into per-sim/season ndjson files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := filter.SplitFile(args[0], args[1])
			if err != nil {
				return err
			}
			log.Info("filtered",
				"lines", stats.Lines,
				"written", stats.Written,
				"malformed", stats.Malformed,
				"files", len(stats.Files))
			return nil
		},
	}
}

func newIngestCmd(cfg config.Config, log *slog.Logger) *cobra.Command {
	archivePath := cfg.ArchivePath
	cmd := &cobra.Command{
		Use:   "ingest <files...>",
		Short: "Verify feed files and checkpoint passing records to the archive",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := archive.Open(archivePath)
			if err != nil {
				return err
			}
			defer store.Close()

			var saved, failed int
			for _, path := range args {
				s, f, err := ingestFile(cmd.Context(), store, path, log)
				if err != nil {
					return err
				}
				saved += s
				failed += f
			}
			log.Info("ingested", "saved", saved, "failed", failed, "archive", archivePath)
			if failed > 0 {
				return fmt.Errorf("%d records failed ingest", failed)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&archivePath, "archive", archivePath, "SQLite archive path")
	return cmd
}

// ingestFile round-trips each record in one ndjson file and archives the
// canonical form of the ones that pass.
func ingestFile(ctx context.Context, store *archive.Store, path string, log *slog.Logger) (saved, failed int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64<<10), maxLineBytes)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		rec, err := wire.Decode(raw)
		if err != nil {
			failed++
			log.Warn("undecodable record", "file", path, "line", line, "error", err)
			continue
		}
		if rec.Metadata.IngestSrc != nil && *rec.Metadata.IngestSrc == "blaseball.com_library" {
			continue
		}
		rebuilt, err := verify.Record(rec)
		if err != nil {
			failed++
			log.Warn("round trip failed", "file", path, "line", line, "id", rec.ID, "error", err)
			continue
		}
		if err := store.Save(ctx, rebuilt); err != nil {
			return saved, failed, err
		}
		saved++
	}
	if err := scanner.Err(); err != nil {
		return saved, failed, fmt.Errorf("read %s: %w", path, err)
	}
	return saved, failed, nil
}

func newServeCmd(cfg config.Config, log *slog.Logger) *cobra.Command {
	addr := cfg.Addr
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the parse and build endpoints over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(addr, log).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", addr, "listen address")
	return cmd
}
