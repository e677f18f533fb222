package kempe

import (
	"runtime"
	"sort"
	"sync"

	pcore "honeycomb/pkg/core"
)

// SweepResult is the outcome of one seed record.
type SweepResult struct {
	Record int
	Seeds  pcore.SeedPair
	Result RunResult
	Err    error
}

type sweepJob struct {
	record int
	seeds  pcore.SeedPair
}

// Sweep runs cfg once per seed pair, first being the record number of
// seeds[0]. Every run owns its lattice and generator. Results come back
// ordered by record.
func Sweep(cfg Config, first int, seeds []pcore.SeedPair, workers int) []SweepResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan sweepJob)
	results := make(chan SweepResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results <- runRecord(cfg, job)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for n, s := range seeds {
			jobs <- sweepJob{record: first + n, seeds: s}
		}
		close(jobs)
	}()

	all := make([]SweepResult, 0, len(seeds))
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Record < all[j].Record })
	return all
}

func runRecord(cfg Config, job sweepJob) SweepResult {
	cfg.Record = job.record
	out := SweepResult{Record: job.record, Seeds: job.seeds}
	u, err := NewUpdater(cfg, pcore.NewRNGFromPair(job.seeds))
	if err != nil {
		out.Err = err
		return out
	}
	out.Result, out.Err = u.Run(cfg.Iterations)
	return out
}
