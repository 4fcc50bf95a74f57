package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statlab/adapters/ingest"
	"statlab/domain/core"
	"statlab/internal/distributions"
	"statlab/ports"
)

func newTestService() *AnalysisService {
	table := ingest.NewTable(map[core.ColumnKey][]interface{}{
		"age":    {30, 40, 50, 60, nil},
		"city":   {"lima", "quito", "lima", "lima", "cusco"},
		"single": {7},
	})
	return NewAnalysisService(table, distributions.New(), 2)
}

func TestSweepColumns(t *testing.T) {
	service := newTestService()

	result, err := service.SweepColumns(context.Background())
	require.NoError(t, err)
	assert.False(t, result.SweepID.IsEmpty())
	require.Len(t, result.Summaries, 3)

	byColumn := map[core.ColumnKey]ColumnSummary{}
	for _, summary := range result.Summaries {
		byColumn[summary.Column] = summary
	}

	age := byColumn["age"]
	assert.Equal(t, ports.KindInferential, age.Kind)
	assert.Empty(t, age.Error)
	assert.Equal(t, 4, age.Result["count"])
	assert.Contains(t, age.Result, "mean_interval_95")

	city := byColumn["city"]
	assert.Equal(t, ports.KindCategorical, city.Kind)
	assert.Equal(t, []string{"lima"}, city.Result["mode"])

	// A numeric column with one observation cannot support inference but
	// still gets a quantitative summary with NaN dispersion sentinels.
	single := byColumn["single"]
	assert.Equal(t, ports.KindQuantitative, single.Kind)
	assert.Empty(t, single.Error)
}

func TestDescribeColumn_NotFound(t *testing.T) {
	service := newTestService()

	_, err := service.DescribeColumn(context.Background(), "nope")
	assert.ErrorIs(t, err, core.ErrColumnNotFound)
}

func TestMeanInterval(t *testing.T) {
	service := newTestService()

	interval, err := service.MeanInterval(context.Background(), "age", 0.95)
	require.NoError(t, err)
	assert.Less(t, interval.Lower, 45.0)
	assert.Greater(t, interval.Upper, 45.0)

	_, err = service.MeanInterval(context.Background(), "city", 0.95)
	assert.True(t, core.IsConversionError(err), "expected conversion error, got %v", err)

	_, err = service.MeanInterval(context.Background(), "single", 0.95)
	assert.ErrorIs(t, err, core.ErrInsufficientData)
}

func TestProportionInterval(t *testing.T) {
	service := newTestService()

	interval, err := service.ProportionInterval(context.Background(), "city", "lima", 0.95)
	require.NoError(t, err)
	assert.Less(t, interval.Lower, 0.6)
	assert.Greater(t, interval.Upper, 0.6)
}
