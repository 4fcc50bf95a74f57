package ui

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statlab/adapters/ingest"
	"statlab/app"
	"statlab/domain/core"
	"statlab/internal/distributions"
)

func newTestApp() *App {
	table := ingest.NewTable(map[core.ColumnKey][]interface{}{
		"age":  {30, 40, 50, 60},
		"city": {"lima", "quito", "lima"},
	})
	service := app.NewAnalysisService(table, distributions.New(), 2)
	return NewApp(service)
}

func TestIndexListsColumns(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	newTestApp().Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, "/report/age")
	assert.Contains(t, body, "/report/city")
}

func TestReportRendersSummary(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/report/age", nil)
	newTestApp().Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Sample mean")
	assert.Contains(t, body, "n=4")
}

func TestReport_UnknownColumn(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/report/nope", nil)
	newTestApp().Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
