// Package parallel provides a fork-join helper for the ranking pipeline.
// Work items read shared immutable inputs and write to disjoint output
// slots, so no locking is needed beyond the final WaitGroup join.
package parallel

import (
	"runtime"
	"sync"
)

// Run divides items into contiguous chunks and executes fn(start, end)
// for each chunk on up to workers goroutines. workers <= 0 selects
// runtime.NumCPU(); workers == 1 runs fn(0, items) on the calling
// goroutine, which is the safe default for callers that cannot assume
// anything about the host environment.
func Run(items, workers int, fn func(start, end int)) {
	if items == 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > items {
		workers = items
	}
	if workers == 1 {
		fn(0, items)
		return
	}

	// Ceiling division so every item lands in exactly one chunk.
	chunkSize := (items + workers - 1) / workers

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
