package ui

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"statlab/app"
	"statlab/domain/core"
)

// App serves read-only HTML reports for analyzed columns. It runs beside
// the JSON API on its own port.
type App struct {
	router  *chi.Mux
	service *app.AnalysisService
}

// NewApp creates the report application
func NewApp(service *app.AnalysisService) *App {
	a := &App{
		router:  chi.NewRouter(),
		service: service,
	}
	a.setupMiddleware()
	a.setupRoutes()
	return a
}

func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Get("/report/{column}", a.handleReport)
}

// Start runs the report server on the given address
func (a *App) Start(addr string) error {
	return http.ListenAndServe(addr, a.router)
}

// Handler exposes the router for tests
func (a *App) Handler() http.Handler {
	return a.router
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	result, err := a.service.SweepColumns(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var md strings.Builder
	md.WriteString("# Dataset report\n\n")
	for _, summary := range result.Summaries {
		fmt.Fprintf(&md, "- [%s](/report/%s) (%s)\n", summary.Column, summary.Column, summary.Kind)
	}
	a.renderMarkdown(w, md.String())
}

func (a *App) handleReport(w http.ResponseWriter, r *http.Request) {
	key := core.ColumnKey(chi.URLParam(r, "column"))

	summary, err := a.service.DescribeColumn(r.Context(), key)
	if err != nil {
		status := http.StatusInternalServerError
		if core.IsValidationError(err) || errors.Is(err, core.ErrColumnNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}

	var md strings.Builder
	fmt.Fprintf(&md, "# Column %s\n\n", key)
	if summary.Error != "" {
		fmt.Fprintf(&md, "analysis failed: %s\n", summary.Error)
	} else {
		md.WriteString("```\n")
		md.WriteString(summary.Report)
		md.WriteString("\n```\n")
	}
	a.renderMarkdown(w, md.String())
}

// renderMarkdown converts a markdown document to HTML and writes it out
func (a *App) renderMarkdown(w http.ResponseWriter, source string) {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse([]byte(source))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(markdown.Render(doc, renderer))
}
