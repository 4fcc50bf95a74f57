package api

import (
	"math"
	"strconv"

	"statlab/domain/inference"
)

// DescribeRequest selects one column for a full summary
type DescribeRequest struct {
	Column string `json:"column" binding:"required"`
}

// IntervalRequest asks for a mean confidence interval on one column.
// Level is a fraction in (0,1); 0 means use the default.
type IntervalRequest struct {
	Column string  `json:"column" binding:"required"`
	Level  float64 `json:"level"`
}

func (r IntervalRequest) normalizedLevel() float64 {
	if r.Level == 0 {
		return inference.DefaultConfidenceLevel
	}
	return r.Level
}

// ProportionRequest asks for a proportion confidence interval, counting
// observations equal to Success.
type ProportionRequest struct {
	Column  string      `json:"column" binding:"required"`
	Success interface{} `json:"success" binding:"required"`
	Level   float64     `json:"level"`
}

func (r ProportionRequest) normalizedLevel() float64 {
	if r.Level == 0 {
		return inference.DefaultConfidenceLevel
	}
	return r.Level
}

// jsonSafe replaces non-finite floats in a summary result with their
// string forms. NaN and Inf are legitimate sentinels in the domain layer
// but encoding/json refuses to marshal them.
func jsonSafe(result map[string]interface{}) map[string]interface{} {
	if result == nil {
		return nil
	}
	out := make(map[string]interface{}, len(result))
	for key, value := range result {
		if f, ok := value.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			out[key] = strconv.FormatFloat(f, 'g', -1, 64)
			continue
		}
		out[key] = value
	}
	return out
}

// IntervalResponse is the wire shape of a computed interval
type IntervalResponse struct {
	Column          string  `json:"column"`
	ConfidenceLevel float64 `json:"confidence_level"`
	Lower           float64 `json:"lower"`
	Upper           float64 `json:"upper"`
}
