package stylize

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// workerCount resolves the Workers option against the number of rows to split.
func workerCount(requested, rows int) int {
	n := requested
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > rows {
		n = rows
	}
	if n < 1 {
		n = 1
	}
	return n
}

// forEachBand splits [0, rows) into at most workers contiguous, disjoint
// bands and calls fn(start, end) for each, concurrently. Band boundaries
// depend only on rows and workers, and fn must only write output owned by
// its own rows, so the result is the same for every worker count.
func forEachBand(rows, workers int, fn func(start, end int)) {
	n := workerCount(workers, rows)
	if n == 1 {
		fn(0, rows)
		return
	}

	var g errgroup.Group
	g.SetLimit(n)
	per := (rows + n - 1) / n
	for start := 0; start < rows; start += per {
		start := start
		end := min(start+per, rows)
		g.Go(func() error {
			fn(start, end)
			return nil
		})
	}
	_ = g.Wait()
}
