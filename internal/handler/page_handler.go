package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/recipe-share/pkg/response"
)

// BuildInfo identifies the running binary
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// PageHandler serves the static pages and operational endpoints
type PageHandler struct {
	build BuildInfo
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(build BuildInfo) *PageHandler {
	return &PageHandler{build: build}
}

// Index renders the public landing page
// GET /
func (h *PageHandler) Index(c *gin.Context) {
	render(c, http.StatusOK, "index.html", nil)
}

// Options renders the menu shown after login
// GET /options
func (h *PageHandler) Options(c *gin.Context) {
	render(c, http.StatusOK, "options.html", nil)
}

// Health reports liveness and build info
// GET /health
func (h *PageHandler) Health(c *gin.Context) {
	response.Success(c, gin.H{
		"status":     "ok",
		"version":    h.build.Version,
		"commit":     h.build.Commit,
		"build_time": h.build.BuildTime,
		"time":       time.Now().Unix(),
	})
}

// RegisterRoutes registers page routes
func (h *PageHandler) RegisterRoutes(r gin.IRouter, requireLogin gin.HandlerFunc) {
	r.GET("/", h.Index)
	r.GET("/options", requireLogin, h.Options)
	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
