// Package controller wires HTTP endpoints to the analyzer and the judge
// runner. The endpoint layer is plumbing: it binds requests, calls the core
// and wraps results in the standard response envelope.
package controller

import (
	"time"

	"minijudge/internal/analyzer"
	"minijudge/internal/judge/runner"
	"minijudge/pkg/utils/response"

	"github.com/gin-gonic/gin"
)

// JudgeController handles analysis and execution requests.
type JudgeController struct {
	analyzer *analyzer.Analyzer
	runner   *runner.Runner
}

// NewJudgeController creates a new controller.
func NewJudgeController(a *analyzer.Analyzer, r *runner.Runner) *JudgeController {
	return &JudgeController{analyzer: a, runner: r}
}

// Register mounts all routes on the engine.
func (h *JudgeController) Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")
	{
		v1.POST("/analyze", h.Analyze)
		v1.POST("/analyze/formatted", h.AnalyzeFormatted)
		v1.GET("/rules", h.Rules)
		v1.GET("/languages", h.Languages)
		v1.POST("/run", h.Run)
		v1.POST("/test", h.Test)
	}
	r.GET("/health", h.Health)
}

type analyzeRequest struct {
	Code  string   `json:"code" binding:"required"`
	Rules []string `json:"rules"`
}

type runRequest struct {
	Code           string  `json:"code" binding:"required"`
	Language       string  `json:"language" binding:"required"`
	Stdin          string  `json:"stdin"`
	ExpectedOutput *string `json:"expected_output"`
	TimeoutMs      int64   `json:"timeout_ms"`
}

type testRequest struct {
	Code     string            `json:"code" binding:"required"`
	Language string            `json:"language" binding:"required"`
	Cases    []runner.TestCase `json:"cases" binding:"required"`
}

// Analyze runs the selected lexical checks against submitted code.
func (h *JudgeController) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.Success(c, h.analyzer.Analyze(req.Code, req.Rules))
}

// AnalyzeFormatted returns the analysis as a human-readable report.
func (h *JudgeController) AnalyzeFormatted(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	res := h.analyzer.Analyze(req.Code, req.Rules)
	response.Success(c, gin.H{"formatted": analyzer.Format(res)})
}

// Rules lists the available analysis rules.
func (h *JudgeController) Rules(c *gin.Context) {
	response.Success(c, gin.H{"rules": h.analyzer.Rules()})
}

// Languages lists the supported language identifiers.
func (h *JudgeController) Languages(c *gin.Context) {
	response.Success(c, gin.H{"languages": h.runner.Languages()})
}

// Run executes code once, optionally comparing output to an expectation.
func (h *JudgeController) Run(c *gin.Context) {
	var req runRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	res, err := h.runner.Execute(c.Request.Context(), runner.Request{
		Source:         req.Code,
		Language:       req.Language,
		Stdin:          req.Stdin,
		ExpectedOutput: req.ExpectedOutput,
		Timeout:        time.Duration(req.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// Test executes a batch of test cases against one submission.
func (h *JudgeController) Test(c *gin.Context) {
	var req testRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	res, err := h.runner.ExecuteBatch(c.Request.Context(), req.Code, req.Language, req.Cases)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}

// Health reports service liveness.
func (h *JudgeController) Health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "healthy"})
}
