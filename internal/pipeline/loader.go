package pipeline

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/theirongolddev/cashburn/internal/model"
	"github.com/theirongolddev/cashburn/internal/source"
)

// LoadResult holds the output of loading seed files.
type LoadResult struct {
	Expenses    []model.Expense
	TotalFiles  int
	ParsedFiles int
	FileErrors  int
	Errors      []error
}

// ProgressFunc is called during loading to report progress.
// current is the number of files processed so far, total is the total count.
type ProgressFunc func(current, total int)

type fileResult struct {
	expenses []model.Expense
	err      error
}

// Load discovers and reads all seed CSV files under paths.
// It uses a bounded worker pool for parallel parsing; records keep file
// order, then row order.
func Load(paths []string, progressFn ProgressFunc) (*LoadResult, error) {
	files, err := source.ScanPaths(paths)
	if err != nil {
		return nil, err
	}

	result := &LoadResult{TotalFiles: len(files)}
	if len(files) == 0 {
		return result, nil
	}

	// Parallel parsing with bounded worker pool
	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers < 1 {
		numWorkers = 4
	}
	if numWorkers > len(files) {
		numWorkers = len(files)
	}

	work := make(chan int, len(files))
	results := make([]fileResult, len(files))
	var wg sync.WaitGroup
	var processed atomic.Int64

	for i := range files {
		work <- i
	}
	close(work)

	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				expenses, err := source.ReadFile(files[idx].Path)
				results[idx] = fileResult{expenses: expenses, err: err}
				n := processed.Add(1)
				if progressFn != nil {
					progressFn(int(n), len(files))
				}
			}
		}()
	}

	wg.Wait()

	for i, fr := range results {
		if fr.err != nil {
			result.FileErrors++
			result.Errors = append(result.Errors, fmt.Errorf("loading %s: %w", files[i].Name, fr.err))
			continue
		}
		result.ParsedFiles++
		result.Expenses = append(result.Expenses, fr.expenses...)
	}

	return result, nil
}
