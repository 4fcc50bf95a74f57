package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"statlab/app"
	"statlab/domain/core"
)

// Server exposes the analysis service as a JSON API
type Server struct {
	router  *gin.Engine
	service *app.AnalysisService
}

// NewServer creates the API server and registers routes
func NewServer(service *app.AnalysisService) *Server {
	s := &Server{
		router:  gin.Default(),
		service: service,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	apiGroup := s.router.Group("/api")
	apiGroup.GET("/sweep", s.handleSweep)
	apiGroup.POST("/describe", s.handleDescribe)
	apiGroup.POST("/interval/mean", s.handleMeanInterval)
	apiGroup.POST("/interval/proportion", s.handleProportionInterval)
}

// Start runs the HTTP server on the given address
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the router for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleSweep(c *gin.Context) {
	result, err := s.service.SweepColumns(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for i := range result.Summaries {
		result.Summaries[i].Result = jsonSafe(result.Summaries[i].Result)
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleDescribe(c *gin.Context) {
	var req DescribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	summary, err := s.service.DescribeColumn(c.Request.Context(), core.ColumnKey(req.Column))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	summary.Result = jsonSafe(summary.Result)
	c.JSON(http.StatusOK, summary)
}

func (s *Server) handleMeanInterval(c *gin.Context) {
	var req IntervalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	level := req.normalizedLevel()
	interval, err := s.service.MeanInterval(c.Request.Context(), core.ColumnKey(req.Column), level)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, IntervalResponse{
		Column:          req.Column,
		ConfidenceLevel: level,
		Lower:           interval.Lower,
		Upper:           interval.Upper,
	})
}

func (s *Server) handleProportionInterval(c *gin.Context) {
	var req ProportionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	level := req.normalizedLevel()
	interval, err := s.service.ProportionInterval(c.Request.Context(), core.ColumnKey(req.Column), req.Success, level)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, IntervalResponse{
		Column:          req.Column,
		ConfidenceLevel: level,
		Lower:           interval.Lower,
		Upper:           interval.Upper,
	})
}

// statusFor maps domain errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrColumnNotFound):
		return http.StatusNotFound
	case core.IsValidationError(err) || core.IsConversionError(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
