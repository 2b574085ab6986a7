package service

import (
	"sync"

	"github.com/martinschatz-cz/docker-parallel-processing/internal/worker/core"
)

// fileResult is one file's outcome moving from a pool worker back to
// the collector: either metrics or the error that excluded the file.
type fileResult struct {
	filename string
	metrics  core.FileMetrics
	err      error
}

// countPool fans filenames out over a bounded number of goroutines,
// applies a counting function to each, and streams every outcome back
// on a single results channel. Processing order is unobservable since
// the ResultSet is an unordered mapping, so the pool size is a pure
// throughput knob.
type countPool struct {
	numWorkers int
	process    func(filename string) (core.FileMetrics, error)
	files      chan string
	results    chan fileResult
	once       sync.Once
	wg         sync.WaitGroup
}

func newCountPool(numWorkers int, process func(string) (core.FileMetrics, error)) *countPool {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return &countPool{
		numWorkers: numWorkers,
		process:    process,
		files:      make(chan string, numWorkers),
		results:    make(chan fileResult, numWorkers),
	}
}

func (p *countPool) Start() {
	p.once.Do(func() {
		for i := 0; i < p.numWorkers; i++ {
			p.wg.Add(1)
			go func() {
				defer p.wg.Done()
				for name := range p.files {
					metrics, err := p.process(name)
					p.results <- fileResult{filename: name, metrics: metrics, err: err}
				}
			}()
		}
		go func() {
			p.wg.Wait()
			close(p.results)
		}()
	})
}

func (p *countPool) Submit(filename string) {
	p.files <- filename
}

func (p *countPool) Close() {
	close(p.files)
}

// Results yields one fileResult per submitted filename. The channel is
// closed once Close has been called and all workers have drained.
func (p *countPool) Results() <-chan fileResult {
	return p.results
}
