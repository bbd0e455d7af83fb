// Package runner composes the scan and generation stages: extract every
// annotation unit, request a suggestion for each, and hand the ordered
// pairs to the presentation sink.
package runner

import (
	"context"
	"sync"

	"github.com/Cyclone1070/yaget/internal/provider"
	"github.com/Cyclone1070/yaget/internal/scan"
)

// Scanner is the extraction stage.
type Scanner interface {
	Scan(ctx context.Context, root string) ([]scan.AnnotationUnit, error)
}

// Sink receives results for presentation. The pipeline never prints
// directly; a sink implementation decides how pairs are rendered.
type Sink interface {
	// Result is called once per annotation unit, in unit order, with the
	// prompt that was sent and the real or sentinel result.
	Result(unit scan.AnnotationUnit, prompt string, res *provider.GenerationResult)
	// Summary is called once after all units have been presented.
	Summary(total, failed, totalTokens int)
}

// Logger is the minimal logging interface the runner needs.
type Logger interface {
	Warnf(format string, args ...any)
	Infof(format string, args ...any)
}

// Runner drives the full pipeline.
type Runner struct {
	scanner     Scanner
	provider    provider.Provider
	sink        Sink
	log         Logger
	concurrency int
}

// New creates a Runner. concurrency values below 1 are treated as 1.
func New(scanner Scanner, p provider.Provider, sink Sink, log Logger, concurrency int) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{
		scanner:     scanner,
		provider:    p,
		sink:        sink,
		log:         log,
		concurrency: concurrency,
	}
}

// Run scans root and generates a suggestion for every annotation unit.
//
// Generation calls run under a bounded worker pool; results land in indexed
// slots so presentation order always equals unit order regardless of
// scheduling. A failed collaborator call is logged and replaced with the
// sentinel result; it never aborts the batch. Only a scan setup failure
// returns an error.
func (r *Runner) Run(ctx context.Context, root string) error {
	units, err := r.scanner.Scan(ctx, root)
	if err != nil {
		return err
	}

	if r.log != nil {
		r.log.Infof("found %d annotation(s) under %s", len(units), root)
	}

	results := make([]*provider.GenerationResult, len(units))
	prompts := make([]string, len(units))

	sem := make(chan struct{}, r.concurrency)
	var wg sync.WaitGroup

	for i, unit := range units {
		// Cancellation stops launching new collaborator calls; in-flight
		// calls are bounded by the provider's own context handling.
		if ctx.Err() != nil {
			break
		}

		sem <- struct{}{}
		wg.Add(1)
		go func(i int, unit scan.AnnotationUnit) {
			defer wg.Done()
			defer func() { <-sem }()

			req := BuildRequest(unit)
			prompts[i] = req.Prompt()

			res, err := r.provider.Generate(ctx, req)
			if err != nil || res == nil {
				if r.log != nil {
					r.log.Warnf("%s:%d: generation failed: %v", unit.SourceFile, unit.LineIndex+1, err)
				}
				res = provider.Sentinel()
			}
			results[i] = res
		}(i, unit)
	}

	wg.Wait()

	failed := 0
	totalTokens := 0
	for i, unit := range units {
		res := results[i]
		if res == nil {
			// Unit never launched because the run was cancelled.
			res = provider.Sentinel()
		}
		if res.GeneratedText == provider.NoSuggestion {
			failed++
		}
		totalTokens += res.TotalTokens
		if prompts[i] == "" {
			prompts[i] = BuildRequest(unit).Prompt()
		}
		r.sink.Result(unit, prompts[i], res)
	}

	r.sink.Summary(len(units), failed, totalTokens)
	return nil
}
