package main

import "runtime"

// maxWorkers caps the pool; article builds are mostly small and the wins
// of wide fan-out flatten quickly.
const maxWorkers = 8

// resolveWorkerCount picks the pool size: an explicit setting wins, else
// GOMAXPROCS, clamped to [1, maxWorkers] and never more than the job count.
func resolveWorkerCount(configured, jobs int) int {
	workers := configured
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > maxWorkers {
		workers = maxWorkers
	}
	if jobs > 0 && workers > jobs {
		workers = jobs
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
