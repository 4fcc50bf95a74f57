package inference

import (
	"fmt"
	"strings"

	"statlab/domain/core"
)

// proportionHint is appended to every textual report so callers know the
// proportion interval is available on demand.
const proportionHint = "Use ProportionInterval(value) for a proportion confidence interval."

func meanIntervalKey(level float64) string {
	return fmt.Sprintf("mean_interval_%d", int(level*100))
}

// Summarize returns the key inference metrics. It always succeeds for a
// constructed engine: the mean interval is attempted at the default
// confidence level, and failures are recorded in-band instead of
// returned. Conversion failures get a fixed not-applicable marker; any
// other failure is recorded as its message.
func (e *Engine) Summarize() (map[string]interface{}, error) {
	res := map[string]interface{}{
		"count": e.N(),
	}

	interval, err := e.MeanInterval(DefaultConfidenceLevel)
	switch {
	case err == nil:
		// Mean cannot fail once the interval computed.
		mean, _ := e.Mean()
		res["sample_mean"] = mean
		res[meanIntervalKey(DefaultConfidenceLevel)] = interval
	case core.IsConversionError(err):
		res["mean_interval"] = "not applicable (non-numeric data)"
	default:
		res["mean_interval"] = fmt.Sprintf("failed to compute: %v", err)
	}

	return res, nil
}

// Report renders the inference summary as text. It never fails for a
// constructed engine, relying on Summarize's partial-result contract.
func (e *Engine) Report() string {
	res, _ := e.Summarize()

	var b strings.Builder
	fmt.Fprintf(&b, "Statistical inference (n=%d)\n", e.N())
	b.WriteString(strings.Repeat("-", 30) + "\n")

	if mean, ok := res["sample_mean"]; ok {
		interval := res[meanIntervalKey(DefaultConfidenceLevel)].(Interval)
		fmt.Fprintf(&b, "Sample mean: %.4f\n", mean)
		fmt.Fprintf(&b, "Mean CI (95%%): (%.4f, %.4f)\n", interval.Lower, interval.Upper)
	} else {
		fmt.Fprintf(&b, "%v\n", res["mean_interval"])
	}

	b.WriteString(strings.Repeat("-", 30) + "\n")
	b.WriteString(proportionHint)
	return b.String()
}
