package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/martinschatz-cz/docker-parallel-processing/internal/shared/config"
	"github.com/martinschatz-cz/docker-parallel-processing/internal/shared/logging"
	"github.com/martinschatz-cz/docker-parallel-processing/internal/worker/service"
)

var rootCmd = &cobra.Command{
	Use:   "worker",
	Short: "Process this replica's share of the input files",
	Long: `worker scans a shared input directory, deterministically selects the
files owned by this replica via hash(filename) mod replica-count, counts
words and letters in each, and writes one results_<replica-id>.json
artifact. Replicas never communicate; running replica-count workers with
distinct ids covers every input file exactly once.`,
	SilenceUsage: true,
	RunE:         runWorker,
}

func init() {
	rootCmd.Flags().String("config", "", "path to config file")
	rootCmd.Flags().Int("replica-id", 0, "this replica's position in [0, replica-count)")
	rootCmd.Flags().Int("replica-count", 1, "total number of cooperating replicas")
	rootCmd.Flags().String("input-dir", "", "shared read-only input directory")
	rootCmd.Flags().String("output-dir", "", "directory the artifact is written to")
}

func runWorker(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.LoadWorker(configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		return err
	}
	applyFlagOverrides(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		return err
	}

	runID := uuid.New()
	logger := logging.NewSlogLogger(cfg.Logging.Level, cfg.Logging.Format).With(
		"run_id", runID.String(),
		"replica_id", cfg.Replica.ID,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Worker started",
		"replica_count", cfg.Replica.Count,
		"input_dir", cfg.Paths.InputDir,
		"output_dir", cfg.Paths.OutputDir,
	)

	worker := service.NewWorkerService(cfg, logger)
	report, err := worker.Run(ctx)
	if err != nil {
		logger.Error("Run failed", "error", err)
		return err
	}

	for _, failure := range report.Failures {
		logger.Warn("File skipped", "file", failure.Filename, "error", failure.Err)
	}
	return nil
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.WorkerConfig) {
	if cmd.Flags().Changed("replica-id") {
		cfg.Replica.ID, _ = cmd.Flags().GetInt("replica-id")
	}
	if cmd.Flags().Changed("replica-count") {
		cfg.Replica.Count, _ = cmd.Flags().GetInt("replica-count")
	}
	if cmd.Flags().Changed("input-dir") {
		cfg.Paths.InputDir, _ = cmd.Flags().GetString("input-dir")
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.Paths.OutputDir, _ = cmd.Flags().GetString("output-dir")
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
