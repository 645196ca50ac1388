package cavitypost

import (
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/zap"
)

// Runner executes a job over every case of a sweep concurrently. Each
// case runs independently; a failing case never stops the sweep.
type Runner struct {
	// Workers bounds the number of cases processed at once. Zero means
	// one worker per CPU.
	Workers int
	// Log receives per-case progress. Nil disables progress logging.
	Log *zap.Logger
}

// Run applies job to every case and returns the error list aligned with
// cases, or nil when every case succeeded. Errors are wrapped as
// CaseError so the failing case is identifiable downstream.
func (r *Runner) Run(cases []Case, job func(Case) error) ErrorList {
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}

	errs := make(ErrorList, len(cases))
	sem := make(chan struct{}, workers)
	wg := &sync.WaitGroup{}
	for i, c := range cases {
		f := func(i int, c Case) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			log.Debug("processing case", zap.String("case", c.ID()))
			if err := job(c); err != nil {
				errs[i] = &CaseError{Case: c, Err: err}
				log.Warn("case failed", zap.String("case", c.ID()), zap.Error(err))
				return
			}
			log.Debug("case done", zap.String("case", c.ID()))
		}
		wg.Add(1)
		go f(i, c)
	}
	wg.Wait()

	for i := range errs {
		if errs[i] != nil {
			return errs
		}
	}
	return nil
}

// Summary condenses a sweep outcome for the end-of-run report.
type Summary struct {
	Total     int
	Failed    int
	FailedIDs []string
}

// Summarize pairs a case list with the error list Run returned for it.
func Summarize(cases []Case, errs ErrorList) Summary {
	s := Summary{Total: len(cases)}
	for i := range errs {
		if errs[i] != nil {
			s.Failed++
			s.FailedIDs = append(s.FailedIDs, cases[i].ID())
		}
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d processed, %d failed", s.Total-s.Failed, s.Failed)
}
