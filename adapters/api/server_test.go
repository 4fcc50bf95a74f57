package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statlab/adapters/ingest"
	"statlab/app"
	"statlab/domain/core"
	"statlab/internal/distributions"
)

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)
	table := ingest.NewTable(map[core.ColumnKey][]interface{}{
		"age":  {30, 40, 50, 60},
		"city": {"lima", "quito", "lima"},
		"solo": {7},
	})
	service := app.NewAnalysisService(table, distributions.New(), 2)
	return NewServer(service)
}

func doJSON(t *testing.T, server *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSweep(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodGet, "/api/sweep", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Summaries []struct {
			Column string                 `json:"column"`
			Kind   string                 `json:"kind"`
			Result map[string]interface{} `json:"result"`
		} `json:"summaries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result.Summaries, 3)
}

func TestDescribe(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/api/describe", DescribeRequest{Column: "age"})
	require.Equal(t, http.StatusOK, rec.Code)

	var summary struct {
		Kind   string                 `json:"kind"`
		Result map[string]interface{} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, "inferential", summary.Kind)
	assert.EqualValues(t, 4, summary.Result["count"])
}

func TestDescribe_MissingColumn(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/api/describe", DescribeRequest{Column: "nope"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDescribe_BadRequest(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/api/describe", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMeanInterval(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/api/interval/mean", IntervalRequest{Column: "age"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp IntervalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0.95, resp.ConfidenceLevel)
	assert.Less(t, resp.Lower, 45.0)
	assert.Greater(t, resp.Upper, 45.0)
}

func TestMeanInterval_NonNumericColumn(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/api/interval/mean", IntervalRequest{Column: "city"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestMeanInterval_TooFewObservations(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/api/interval/mean", IntervalRequest{Column: "solo"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestProportionInterval(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/api/interval/proportion",
		ProportionRequest{Column: "city", Success: "lima"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp IntervalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	phat := 2.0 / 3.0
	assert.Less(t, resp.Lower, phat)
	assert.Greater(t, resp.Upper, phat)
}
