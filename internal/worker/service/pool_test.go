package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/martinschatz-cz/docker-parallel-processing/internal/worker/core"
)

func collectResults(p *countPool) map[string]fileResult {
	results := make(map[string]fileResult)
	for res := range p.Results() {
		results[res.filename] = res
	}
	return results
}

func TestCountPool_OneResultPerFile(t *testing.T) {
	p := newCountPool(2, func(name string) (core.FileMetrics, error) {
		return core.FileMetrics{Words: len(name), Letters: 1}, nil
	})
	p.Start()

	go func() {
		for i := 0; i < 10; i++ {
			p.Submit(fmt.Sprintf("file-%d.txt", i))
		}
		p.Close()
	}()

	results := collectResults(p)
	require.Len(t, results, 10)
	for name, res := range results {
		require.NoError(t, res.err)
		require.Equal(t, core.FileMetrics{Words: len(name), Letters: 1}, res.metrics)
	}
}

func TestCountPool_FailuresCarryTheirFilename(t *testing.T) {
	failOn := errors.New("boom")
	p := newCountPool(2, func(name string) (core.FileMetrics, error) {
		if name == "bad.txt" {
			return core.FileMetrics{}, failOn
		}
		return core.FileMetrics{Words: 1}, nil
	})
	p.Start()

	go func() {
		for _, name := range []string{"a.txt", "bad.txt", "b.txt"} {
			p.Submit(name)
		}
		p.Close()
	}()

	results := collectResults(p)
	require.Len(t, results, 3)
	require.ErrorIs(t, results["bad.txt"].err, failOn)
	require.NoError(t, results["a.txt"].err)
	require.NoError(t, results["b.txt"].err)
}

func TestCountPool_ResultsChannelClosesAfterDrain(t *testing.T) {
	p := newCountPool(1, func(name string) (core.FileMetrics, error) {
		return core.FileMetrics{}, nil
	})
	p.Start()

	go func() {
		p.Submit("only.txt")
		p.Close()
	}()

	count := 0
	for range p.Results() {
		count++
	}
	require.Equal(t, 1, count)

	_, open := <-p.Results()
	require.False(t, open)
}

func TestCountPool_NonPositiveSizeFallsBackToOne(t *testing.T) {
	p := newCountPool(0, func(name string) (core.FileMetrics, error) {
		return core.FileMetrics{Words: 1}, nil
	})
	p.Start()

	go func() {
		p.Submit("a.txt")
		p.Close()
	}()

	results := collectResults(p)
	require.Len(t, results, 1)
}
