package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/martinschatz-cz/docker-parallel-processing/internal/shared/config"
	"github.com/martinschatz-cz/docker-parallel-processing/internal/shared/logging"
	"github.com/martinschatz-cz/docker-parallel-processing/internal/worker/core"
)

type workerService struct {
	identity    core.ReplicaIdentity
	inputDir    string
	outputDir   string
	extension   string
	parallelism int
	logger      logging.Logger
}

func NewWorkerService(cfg *config.WorkerConfig, logger logging.Logger) core.WorkerService {
	return &workerService{
		identity:    core.ReplicaIdentity{ID: cfg.Replica.ID, Count: cfg.Replica.Count},
		inputDir:    cfg.Paths.InputDir,
		outputDir:   cfg.Paths.OutputDir,
		extension:   cfg.Input.Extension,
		parallelism: cfg.Processing.Parallelism,
		logger:      logger,
	}
}

// Run executes one full replica pass: discover the input files, keep
// the subset this replica owns, count each owned file, and persist the
// ResultSet as a single artifact. Per-file failures are collected in
// the report; only an unreadable input directory or a failed artifact
// write aborts the run.
func (w *workerService) Run(ctx context.Context) (*core.Report, error) {
	if err := w.identity.Validate(); err != nil {
		return nil, err
	}

	files, err := DiscoverFiles(w.inputDir, w.extension)
	if err != nil {
		return nil, fmt.Errorf("input directory unavailable: %w", err)
	}

	var owned []string
	for _, name := range files {
		if core.Owns(name, w.identity) {
			owned = append(owned, name)
		}
	}
	w.logger.Info("Input discovered",
		"total_files", len(files),
		"owned_files", len(owned),
		"replica", w.identity.String(),
	)

	pool := newCountPool(w.parallelism, w.processFile)
	pool.Start()
	go func() {
		for _, name := range owned {
			if ctx.Err() != nil {
				break
			}
			pool.Submit(name)
		}
		pool.Close()
	}()

	results := make(core.ResultSet, len(owned))
	var failures []core.FileFailure
	for res := range pool.Results() {
		if res.err != nil {
			w.logger.Warn("Failed to process file", "file", res.filename, "error", res.err)
			failures = append(failures, core.FileFailure{Filename: res.filename, Err: res.err})
			continue
		}
		results[res.filename] = res.metrics
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	artifactPath, err := WriteArtifact(w.outputDir, w.identity.ID, results)
	if err != nil {
		return nil, fmt.Errorf("writing artifact: %w", err)
	}

	w.logger.Info("Run complete",
		"artifact", artifactPath,
		"processed", len(results),
		"failed", len(failures),
	)

	return &core.Report{
		Results:      results,
		Failures:     failures,
		ArtifactPath: artifactPath,
	}, nil
}

func (w *workerService) processFile(name string) (core.FileMetrics, error) {
	w.logger.Info("Processing file", "file", name)
	content, err := os.ReadFile(filepath.Join(w.inputDir, name))
	if err != nil {
		return core.FileMetrics{}, err
	}
	return core.CountText(name, content)
}
