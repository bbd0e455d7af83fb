package runner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/Cyclone1070/yaget/internal/provider"
	"github.com/Cyclone1070/yaget/internal/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScanner struct {
	units []scan.AnnotationUnit
	err   error
}

func (s *stubScanner) Scan(ctx context.Context, root string) ([]scan.AnnotationUnit, error) {
	return s.units, s.err
}

// stubProvider generates deterministic text, failing for configured markers.
type stubProvider struct {
	mu       sync.Mutex
	failFor  map[string]error
	inFlight int
	maxSeen  int
}

func (p *stubProvider) Generate(ctx context.Context, req *provider.GenerationRequest) (*provider.GenerationResult, error) {
	p.mu.Lock()
	p.inFlight++
	if p.inFlight > p.maxSeen {
		p.maxSeen = p.inFlight
	}
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		p.inFlight--
		p.mu.Unlock()
	}()

	if err, ok := p.failFor[req.MarkerText]; ok {
		return nil, err
	}
	return &provider.GenerationResult{
		GeneratedText: fmt.Sprintf("suggestion for %s", req.MarkerText),
		ModelID:       "stub-model",
		TotalTokens:   10,
	}, nil
}

func (p *stubProvider) GetModel() string { return "stub-model" }

type recordingSink struct {
	mu      sync.Mutex
	units   []scan.AnnotationUnit
	prompts []string
	results []*provider.GenerationResult
	total   int
	failed  int
	tokens  int
}

func (s *recordingSink) Result(unit scan.AnnotationUnit, prompt string, res *provider.GenerationResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units = append(s.units, unit)
	s.prompts = append(s.prompts, prompt)
	s.results = append(s.results, res)
}

func (s *recordingSink) Summary(total, failed, totalTokens int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total = total
	s.failed = failed
	s.tokens = totalTokens
}

func unitsFixture(n int) []scan.AnnotationUnit {
	units := make([]scan.AnnotationUnit, 0, n)
	for i := 0; i < n; i++ {
		marker := fmt.Sprintf("# TODO: task %d", i)
		units = append(units, scan.AnnotationUnit{
			SourceFile: fmt.Sprintf("file%d.py", i),
			MarkerLine: marker,
			Context:    []string{marker, "pass"},
			LineIndex:  i,
		})
	}
	return units
}

func TestRunnerRun(t *testing.T) {
	t.Run("results are presented in unit order", func(t *testing.T) {
		units := unitsFixture(8)
		sink := &recordingSink{}
		r := New(&stubScanner{units: units}, &stubProvider{}, sink, nil, 4)

		require.NoError(t, r.Run(context.Background(), "proj"))

		require.Len(t, sink.units, 8)
		for i, unit := range sink.units {
			assert.Equal(t, units[i], unit)
			assert.Equal(t, fmt.Sprintf("suggestion for %s", unit.MarkerLine), sink.results[i].GeneratedText)
		}
		assert.Equal(t, 8, sink.total)
		assert.Equal(t, 0, sink.failed)
		assert.Equal(t, 80, sink.tokens)
	})

	t.Run("one failure gets a sentinel, the rest get real results", func(t *testing.T) {
		units := unitsFixture(3)
		p := &stubProvider{failFor: map[string]error{
			units[1].MarkerLine: errors.New("backend unavailable"),
		}}
		sink := &recordingSink{}
		r := New(&stubScanner{units: units}, p, sink, nil, 2)

		require.NoError(t, r.Run(context.Background(), "proj"))

		require.Len(t, sink.results, 3)
		assert.Equal(t, provider.NoSuggestion, sink.results[1].GeneratedText)
		assert.NotEqual(t, provider.NoSuggestion, sink.results[0].GeneratedText)
		assert.NotEqual(t, provider.NoSuggestion, sink.results[2].GeneratedText)
		assert.Equal(t, 1, sink.failed)
	})

	t.Run("concurrency never exceeds the configured bound", func(t *testing.T) {
		units := unitsFixture(20)
		p := &stubProvider{}
		sink := &recordingSink{}
		r := New(&stubScanner{units: units}, p, sink, nil, 3)

		require.NoError(t, r.Run(context.Background(), "proj"))
		assert.LessOrEqual(t, p.maxSeen, 3)
	})

	t.Run("scan failure aborts before generation", func(t *testing.T) {
		scanErr := errors.New("unreadable root")
		sink := &recordingSink{}
		r := New(&stubScanner{err: scanErr}, &stubProvider{}, sink, nil, 2)

		err := r.Run(context.Background(), "proj")
		assert.ErrorIs(t, err, scanErr)
		assert.Empty(t, sink.units)
	})

	t.Run("cancelled context substitutes sentinels for unlaunched units", func(t *testing.T) {
		units := unitsFixture(4)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		sink := &recordingSink{}
		r := New(&stubScanner{units: units}, &stubProvider{}, sink, nil, 2)

		require.NoError(t, r.Run(ctx, "proj"))
		require.Len(t, sink.results, 4)
		for _, res := range sink.results {
			assert.Equal(t, provider.NoSuggestion, res.GeneratedText)
		}
		// Prompts are still reconstructed for presentation.
		for _, prompt := range sink.prompts {
			assert.NotEmpty(t, prompt)
		}
	})

	t.Run("empty scan still summarizes", func(t *testing.T) {
		sink := &recordingSink{}
		r := New(&stubScanner{}, &stubProvider{}, sink, nil, 2)

		require.NoError(t, r.Run(context.Background(), "proj"))
		assert.Equal(t, 0, sink.total)
	})
}

func TestBuildRequest(t *testing.T) {
	unit := scan.AnnotationUnit{
		SourceFile: "src/app.py",
		MarkerLine: "# TODO: retry on failure",
		Context:    []string{"def fetch():", "# TODO: retry on failure", "    pass"},
		LineIndex:  4,
	}

	req := BuildRequest(unit)
	assert.Equal(t, "# TODO: retry on failure", req.MarkerText)
	assert.Equal(t, "src/app.py", req.FilePath)
	assert.Equal(t, "def fetch():\n# TODO: retry on failure\n    pass", req.ContextText)

	prompt := req.Prompt()
	assert.Contains(t, prompt, "# TODO: retry on failure")
	assert.Contains(t, prompt, "src/app.py")
	assert.Contains(t, prompt, "def fetch():")
}
