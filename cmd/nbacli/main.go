// Command nbacli runs batch report jobs against the NBA statistics service
// and writes the results to JSON or CSV files.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aself101/nba-api/internal/config"
	"github.com/aself101/nba-api/internal/logging"
	"github.com/aself101/nba-api/internal/metrics"
	"github.com/aself101/nba-api/stats"
)

const appVersion = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("nbacli", flag.ContinueOnError)
	jobsPath := fs.String("jobs", "", "path to the YAML job file (required)")
	outDir := fs.String("out", "", "output directory override")
	format := fs.String("format", "", "output format override: json or csv")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *showVersion {
		fmt.Println("nbacli " + appVersion)
		return 0
	}
	if *jobsPath == "" {
		fmt.Fprintln(os.Stderr, "nbacli: -jobs is required")
		fs.Usage()
		return 2
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "nbacli",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	job, err := LoadJobFile(*jobsPath)
	if err != nil {
		logging.Error(logger, "job file rejected", err)
		return 1
	}
	tasks, err := job.expand()
	if err != nil {
		logging.Error(logger, "job file rejected", err)
		return 1
	}

	dir := cfg.Output.Dir
	if job.Output != "" {
		dir = job.Output
	}
	if *outDir != "" {
		dir = *outDir
	}
	outFormat := cfg.Output.Format
	if job.Format != "" {
		outFormat = job.Format
	}
	if *format != "" {
		outFormat = *format
	}
	writer, err := NewReportWriter(dir, outFormat)
	if err != nil {
		logging.Error(logger, "output setup failed", err)
		return 1
	}

	delayMin, delayMax, err := job.delays(cfg.Pacing.DelayMin, cfg.Pacing.DelayMax)
	if err != nil {
		logging.Error(logger, "job file rejected", err)
		return 1
	}

	recorder, promHandler, shutdownMetrics, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Error(logger, "metrics setup failed", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownMetrics(shutdownCtx); err != nil {
			logging.Warn(logger, "metrics shutdown failed", "error", err)
		}
	}()

	if promHandler != nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promHandler)
		srv := &http.Server{Addr: ":" + cfg.Metrics.Port, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logging.Warn(logger, "metrics server stopped", "error", err)
			}
		}()
		defer srv.Close()
	}

	client := stats.New(stats.Config{
		StatsBaseURL:   cfg.StatsBaseURL,
		LiveBaseURL:    cfg.LiveBaseURL,
		Timeout:        cfg.Timeout,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		SecondaryFetch: cfg.SecondaryFetch,
		Logger:         logger,
		Recorder:       recorder,
	})

	r := newRunner(client, writer, logger, delayMin, delayMax)
	if failed := r.run(ctx, tasks); failed > 0 {
		return 1
	}
	return 0
}
