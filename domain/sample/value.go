package sample

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Observation is a single normalized value in a sample. A sample mixes
// numeric and categorical observations freely; numeric-only operations
// decide at call time whether the data qualifies.
type Observation struct {
	Type       ValueType `json:"type"`
	StringVal  string    `json:"string_val,omitempty"`
	NumericVal float64   `json:"numeric_val,omitempty"`
	IsMissing  bool      `json:"is_missing"`
}

// ValueType classifies an observation
type ValueType string

const (
	ValueTypeNumeric     ValueType = "numeric"
	ValueTypeCategorical ValueType = "categorical"
	ValueTypeMissing     ValueType = "missing"
)

// NewNumeric creates a numeric observation
func NewNumeric(n float64) Observation {
	return Observation{Type: ValueTypeNumeric, NumericVal: n}
}

// NewCategorical creates a categorical (string-valued) observation
func NewCategorical(s string) Observation {
	return Observation{Type: ValueTypeCategorical, StringVal: s}
}

// NewMissing creates a missing observation placeholder
func NewMissing() Observation {
	return Observation{Type: ValueTypeMissing, IsMissing: true}
}

// Coerce deterministically converts a raw value into an Observation.
// Numeric strings become numeric observations, everything else stays
// categorical. nil and NaN map to missing.
func Coerce(raw interface{}) Observation {
	switch v := raw.(type) {
	case nil:
		return NewMissing()
	case float64:
		if math.IsNaN(v) {
			return NewMissing()
		}
		return NewNumeric(v)
	case float32:
		return Coerce(float64(v))
	case int:
		return NewNumeric(float64(v))
	case int32:
		return NewNumeric(float64(v))
	case int64:
		return NewNumeric(float64(v))
	case bool:
		if v {
			return NewNumeric(1)
		}
		return NewNumeric(0)
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return NewMissing()
		}
		if n, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsNaN(n) {
			return NewNumeric(n)
		}
		return NewCategorical(trimmed)
	default:
		return NewCategorical(fmt.Sprintf("%v", v))
	}
}

// Float returns the numeric value of the observation, attempting string
// conversion for categorical values. The second return reports success.
func (o Observation) Float() (float64, bool) {
	switch o.Type {
	case ValueTypeNumeric:
		return o.NumericVal, true
	case ValueTypeCategorical:
		n, err := strconv.ParseFloat(strings.TrimSpace(o.StringVal), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return math.NaN(), false
	}
}

// Label returns the comparable identity of the observation. Numeric values
// format compactly so 2 and 2.0 collapse to the same label.
func (o Observation) Label() string {
	switch o.Type {
	case ValueTypeNumeric:
		return strconv.FormatFloat(o.NumericVal, 'g', -1, 64)
	case ValueTypeCategorical:
		return o.StringVal
	default:
		return ""
	}
}

// Equal reports whether two observations carry the same value. A numeric
// observation equals a categorical one when the categorical parses to the
// same number, so success counting works across mixed inputs.
func (o Observation) Equal(other Observation) bool {
	if o.IsMissing || other.IsMissing {
		return false
	}
	if o.Type == other.Type {
		return o.Label() == other.Label()
	}
	a, aok := o.Float()
	b, bok := other.Float()
	return aok && bok && a == b
}

func (o Observation) String() string {
	if o.IsMissing {
		return "<missing>"
	}
	return o.Label()
}
