package display

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
)

type ProbeResult struct {
	Resource   string `json:"resource"`
	OK         bool   `json:"ok"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

type ProbeReport struct {
	Ready     bool          `json:"ready"`
	Resources []ProbeResult `json:"resources"`
}

// Probe reads every public resource through a bounded worker pool and
// reports which of them the upstream API currently serves.
func (s *Service) Probe(ctx context.Context, workers int) (ProbeReport, error) {
	if workers <= 0 {
		workers = 1
	}

	checks := []struct {
		resource string
		run      func(context.Context) error
	}{
		{resource: "standings", run: func(ctx context.Context) error {
			_, err := s.source.GetStandings(ctx)
			return err
		}},
		{resource: "schedule", run: func(ctx context.Context) error {
			_, err := s.source.GetSchedule(ctx)
			return err
		}},
		{resource: "regulations", run: func(ctx context.Context) error {
			_, err := s.source.GetRegulations(ctx)
			return err
		}},
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return ProbeReport{}, fmt.Errorf("create probe pool: %w", err)
	}
	defer pool.Release()

	results := make(chan ProbeResult, len(checks))
	var wg sync.WaitGroup
	for _, check := range checks {
		check := check
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			start := time.Now()
			row := ProbeResult{Resource: check.resource, OK: true}
			if err := check.run(ctx); err != nil {
				row.OK = false
				row.Error = err.Error()
			}
			row.DurationMs = time.Since(start).Milliseconds()
			results <- row
		}); err != nil {
			wg.Done()
			return ProbeReport{}, fmt.Errorf("submit probe: %w", err)
		}
	}

	wg.Wait()
	close(results)

	report := ProbeReport{Ready: true, Resources: make([]ProbeResult, 0, len(checks))}
	for row := range results {
		if !row.OK {
			report.Ready = false
			s.logger.WarnContext(ctx, "readiness probe failed", "resource", row.Resource, "error", row.Error)
		}
		report.Resources = append(report.Resources, row)
	}
	sort.SliceStable(report.Resources, func(i, j int) bool {
		return report.Resources[i].Resource < report.Resources[j].Resource
	})

	return report, nil
}
