package descriptive

import (
	"fmt"
	"strings"

	"statlab/domain/core"
	"statlab/domain/sample"
	"statlab/ports"
)

// QuantitativeSummary summarizes a numeric sample with the full set of
// central-tendency and dispersion statistics.
type QuantitativeSummary struct {
	engine *Engine
}

// NewQuantitativeSummary wraps an engine for numeric reporting.
func NewQuantitativeSummary(e *Engine) *QuantitativeSummary {
	return &QuantitativeSummary{engine: e}
}

// Summarize returns the key numeric metrics. Conversion failures
// propagate: a quantitative summary requires numeric data.
func (s *QuantitativeSummary) Summarize() (map[string]interface{}, error) {
	mean, err := s.engine.Mean()
	if err != nil {
		return nil, err
	}
	median, err := s.engine.Median()
	if err != nil {
		return nil, err
	}
	variance, err := s.engine.Variance()
	if err != nil {
		return nil, err
	}
	sd, err := s.engine.StdDev()
	if err != nil {
		return nil, err
	}
	rng, err := s.engine.Range()
	if err != nil {
		return nil, err
	}
	cv, err := s.engine.CoefficientOfVariation()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"count":                    s.engine.Count(),
		"n":                        s.engine.N(),
		"mean":                     mean,
		"median":                   median,
		"variance":                 variance,
		"std_dev":                  sd,
		"range":                    rng,
		"coefficient_of_variation": cv,
	}, nil
}

// Report renders the numeric summary as text.
func (s *QuantitativeSummary) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Quantitative summary (n=%d)\n", s.engine.N())
	b.WriteString(strings.Repeat("-", 30) + "\n")
	res, err := s.Summarize()
	if err != nil {
		fmt.Fprintf(&b, "not available: %v\n", err)
		return b.String()
	}
	fmt.Fprintf(&b, "Mean: %.4f\n", res["mean"])
	fmt.Fprintf(&b, "Median: %.4f\n", res["median"])
	fmt.Fprintf(&b, "Std Dev: %.4f\n", res["std_dev"])
	fmt.Fprintf(&b, "Range: %.4f\n", res["range"])
	fmt.Fprintf(&b, "CV: %.4f%%\n", res["coefficient_of_variation"])
	return b.String()
}

// CategoricalSummary summarizes a sample by frequency, the only
// meaningful view when values have no ordering.
type CategoricalSummary struct {
	engine *Engine
}

// NewCategoricalSummary wraps an engine for frequency reporting.
func NewCategoricalSummary(e *Engine) *CategoricalSummary {
	return &CategoricalSummary{engine: e}
}

// Summarize returns counts and the modal value(s).
func (s *CategoricalSummary) Summarize() (map[string]interface{}, error) {
	modes := s.engine.Mode()
	labels := make([]string, 0, len(modes))
	for _, m := range modes {
		labels = append(labels, m.Label())
	}
	return map[string]interface{}{
		"count": s.engine.Count(),
		"n":     s.engine.N(),
		"mode":  labels,
	}, nil
}

// Report renders the categorical summary as text.
func (s *CategoricalSummary) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Categorical summary (n=%d)\n", s.engine.N())
	b.WriteString(strings.Repeat("-", 30) + "\n")
	modes := s.engine.Mode()
	if len(modes) == 0 {
		b.WriteString("Mode: none (all values unique)\n")
		return b.String()
	}
	labels := make([]string, 0, len(modes))
	for _, m := range modes {
		labels = append(labels, m.Label())
	}
	fmt.Fprintf(&b, "Mode: %s\n", strings.Join(labels, ", "))
	return b.String()
}

// SummarizerFor selects a concrete summarizer for the sample kind. The
// inferential kind needs interval support and is constructed by the
// inference package, so it cannot be produced here.
func SummarizerFor(kind ports.SampleKind, s *sample.Sample) (ports.SummarizerPort, error) {
	engine, err := New(s)
	if err != nil {
		return nil, err
	}
	switch kind {
	case ports.KindQuantitative:
		return NewQuantitativeSummary(engine), nil
	case ports.KindCategorical:
		return NewCategoricalSummary(engine), nil
	default:
		return nil, fmt.Errorf("%w: %s", core.ErrNoSummarizer, kind)
	}
}
