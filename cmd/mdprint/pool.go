package main

import "runtime"

// maxAutoWorkers caps the automatic worker count; each worker runs its own
// Chromium, which is memory heavy.
const maxAutoWorkers = 8

// resolvePoolSize determines how many files convert in parallel.
// Priority: explicit value > GOMAXPROCS/2 clamped to 1..maxAutoWorkers.
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs for container CPU quotas.
	n := runtime.GOMAXPROCS(0) / 2
	if n < 1 {
		return 1
	}
	if n > maxAutoWorkers {
		return maxAutoWorkers
	}
	return n
}
