package ports

// SummarizerPort is the capability shared by every sample kind. There is
// no concrete default: callers obtain a quantitative, categorical, or
// inferential implementation and the registry fails for unknown kinds.
type SummarizerPort interface {
	// Summarize returns the key metrics for the sample as a labeled map.
	Summarize() (map[string]interface{}, error)

	// Report renders the summary as human-readable text.
	Report() string
}

// SampleKind selects a concrete summarizer implementation
type SampleKind string

const (
	KindQuantitative SampleKind = "quantitative"
	KindCategorical  SampleKind = "categorical"
	KindInferential  SampleKind = "inferential"
)
