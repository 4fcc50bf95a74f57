package app

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"statlab/domain/core"
	"statlab/domain/descriptive"
	"statlab/domain/inference"
	"statlab/domain/sample"
	"statlab/ports"
)

// AnalysisService orchestrates per-column statistical analysis: it pulls
// raw observations through the dataset reader, builds the right engine
// for each column, and collects summary artifacts.
type AnalysisService struct {
	reader   ports.DatasetReaderPort
	critical ports.CriticalValuePort

	// columnSem bounds concurrent column analysis
	columnSem *semaphore.Weighted
}

// ColumnSummary is the per-column analysis artifact
type ColumnSummary struct {
	ArtifactID core.ArtifactID        `json:"artifact_id"`
	Column     core.ColumnKey         `json:"column"`
	Kind       ports.SampleKind       `json:"kind"`
	Result     map[string]interface{} `json:"result,omitempty"`
	Report     string                 `json:"report,omitempty"`
	Error      string                 `json:"error,omitempty"`
	ComputedAt core.Timestamp         `json:"computed_at"`
}

// SweepResult contains the complete output of a dataset sweep
type SweepResult struct {
	SweepID   core.ID         `json:"sweep_id"`
	Summaries []ColumnSummary `json:"summaries"`
	RuntimeMs int64           `json:"runtime_ms"`
}

// NewAnalysisService creates an analysis service. maxConcurrent bounds
// how many columns are analyzed in parallel during a sweep.
func NewAnalysisService(reader ports.DatasetReaderPort, critical ports.CriticalValuePort, maxConcurrent int64) *AnalysisService {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &AnalysisService{
		reader:    reader,
		critical:  critical,
		columnSem: semaphore.NewWeighted(maxConcurrent),
	}
}

// SweepColumns analyzes every column in the source and returns one
// summary artifact per column. Per-column failures are captured in the
// artifact instead of aborting the sweep.
func (s *AnalysisService) SweepColumns(ctx context.Context) (*SweepResult, error) {
	startTime := time.Now()

	columns, err := s.reader.Columns(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]ColumnSummary, len(columns))
	var wg sync.WaitGroup
	for i, key := range columns {
		if err := s.columnSem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(i int, key core.ColumnKey) {
			defer wg.Done()
			defer s.columnSem.Release(1)
			summaries[i] = s.analyzeColumn(ctx, key)
		}(i, key)
	}
	wg.Wait()

	return &SweepResult{
		SweepID:   core.NewID(),
		Summaries: summaries,
		RuntimeMs: time.Since(startTime).Milliseconds(),
	}, nil
}

// DescribeColumn analyzes a single column by key.
func (s *AnalysisService) DescribeColumn(ctx context.Context, key core.ColumnKey) (ColumnSummary, error) {
	columns, err := s.reader.Columns(ctx)
	if err != nil {
		return ColumnSummary{}, err
	}
	for _, c := range columns {
		if c == key {
			return s.analyzeColumn(ctx, key), nil
		}
	}
	return ColumnSummary{}, core.ErrColumnNotFound
}

// MeanInterval computes the population-mean confidence interval for one
// numeric column at the given confidence level.
func (s *AnalysisService) MeanInterval(ctx context.Context, key core.ColumnKey, level float64) (inference.Interval, error) {
	engine, err := s.inferenceEngine(ctx, key)
	if err != nil {
		return inference.Interval{}, err
	}
	return engine.MeanInterval(level)
}

// ProportionInterval computes the population-proportion confidence
// interval for one column, counting observations equal to success.
func (s *AnalysisService) ProportionInterval(ctx context.Context, key core.ColumnKey, success interface{}, level float64) (inference.Interval, error) {
	engine, err := s.inferenceEngine(ctx, key)
	if err != nil {
		return inference.Interval{}, err
	}
	return engine.ProportionInterval(sample.Coerce(success), level)
}

// Reportable returns the inference engine for a column, used by the
// report UI to render the textual summary.
func (s *AnalysisService) Reportable(ctx context.Context, key core.ColumnKey) (*inference.Engine, error) {
	return s.inferenceEngine(ctx, key)
}

func (s *AnalysisService) inferenceEngine(ctx context.Context, key core.ColumnKey) (*inference.Engine, error) {
	raw, err := s.reader.Column(ctx, key)
	if err != nil {
		return nil, err
	}
	return inference.FromRaw(raw, s.critical)
}

// analyzeColumn picks the summarizer for the column's data shape:
// inferential for numeric columns with enough observations, categorical
// otherwise, falling back to a plain quantitative view when the numeric
// column is too small for inference.
func (s *AnalysisService) analyzeColumn(ctx context.Context, key core.ColumnKey) ColumnSummary {
	summary := ColumnSummary{
		ArtifactID: core.ArtifactID(core.NewID()),
		Column:     key,
		ComputedAt: core.Now(),
	}

	raw, err := s.reader.Column(ctx, key)
	if err != nil {
		summary.Error = err.Error()
		return summary
	}

	smp, err := sample.New(raw)
	if err != nil {
		summary.Error = err.Error()
		return summary
	}

	var summarizer ports.SummarizerPort
	switch {
	case smp.IsNumeric() && smp.N() >= 2:
		summary.Kind = ports.KindInferential
		engine, buildErr := inference.New(smp, s.critical)
		if buildErr != nil {
			summary.Error = buildErr.Error()
			return summary
		}
		summarizer = engine
	case smp.IsNumeric():
		summary.Kind = ports.KindQuantitative
		summarizer, err = descriptive.SummarizerFor(ports.KindQuantitative, smp)
	default:
		summary.Kind = ports.KindCategorical
		summarizer, err = descriptive.SummarizerFor(ports.KindCategorical, smp)
	}
	if err != nil {
		summary.Error = err.Error()
		return summary
	}

	result, err := summarizer.Summarize()
	if err != nil {
		summary.Error = err.Error()
		return summary
	}
	summary.Result = result
	summary.Report = summarizer.Report()
	return summary
}
