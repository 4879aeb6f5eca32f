package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"solar-analyzer/internal/analyzer"
	"solar-analyzer/internal/api"
	"solar-analyzer/internal/api/models"
	"solar-analyzer/internal/config"
	"solar-analyzer/internal/data"
	"solar-analyzer/internal/model"
)

// AnalyzeHandler runs analyses and serves stored results.
type AnalyzeHandler struct {
	store *api.Store
}

func NewAnalyzeHandler(store *api.Store) *AnalyzeHandler {
	return &AnalyzeHandler{store: store}
}

// RunAnalysis handles POST /api/v1/analyze
func (h *AnalyzeHandler) RunAnalysis(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	rows := make([]model.RawRow, len(req.Rows))
	for i, r := range req.Rows {
		rows[i] = model.RawRow{
			Timestamp: r.Timestamp,
			RateA:     r.RateA,
			RateB:     r.RateB,
			RateC:     r.RateC,
		}
	}
	if req.Options.LimitRows > 0 && req.Options.LimitRows < len(rows) {
		rows = rows[:req.Options.LimitRows]
	}

	h.run(c, rows, req.Config, req.Options)
}

// UploadAnalysis handles POST /api/v1/analyze/upload (multipart CSV).
func (h *AnalyzeHandler) UploadAnalysis(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		writeError(c, http.StatusBadRequest, "MISSING_FILE", "multipart field 'file' is required")
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		writeError(c, http.StatusBadRequest, "UNREADABLE_FILE", err.Error())
		return
	}
	defer f.Close()

	rows, err := data.ReadRows(f)
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_CSV", err.Error())
		return
	}

	cfg := models.AnalysisConfig{
		SolarCapacityMW: formFloat(c, "solar_capacity_mw"),
		SunHours:        formFloat(c, "sun_hours"),
		ThresholdW:      formFloat(c, "threshold_w"),
		BatterySizeKWh:  formFloat(c, "battery_size_kwh"),
	}
	opts := models.AnalyzeOptions{
		IncludeDays:   c.PostForm("include_days") == "true",
		IncludeSeries: c.PostForm("include_series") == "true",
	}

	h.run(c, rows, cfg, opts)
}

// GetAnalysis handles GET /api/v1/analyses/:id
func (h *AnalyzeHandler) GetAnalysis(c *gin.Context) {
	result := h.store.Get(c.Param("id"))
	if result == nil {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "unknown or expired analysis id")
		return
	}
	resp := buildResponse(result, models.AnalyzeOptions{})
	resp.ID = c.Param("id")
	c.JSON(http.StatusOK, resp)
}

// GetAnalysisDays handles GET /api/v1/analyses/:id/days
func (h *AnalyzeHandler) GetAnalysisDays(c *gin.Context) {
	result := h.store.Get(c.Param("id"))
	if result == nil {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "unknown or expired analysis id")
		return
	}
	resp := buildResponse(result, models.AnalyzeOptions{IncludeDays: true, IncludeSeries: true})
	resp.ID = c.Param("id")
	c.JSON(http.StatusOK, resp)
}

func (h *AnalyzeHandler) run(c *gin.Context, rows []model.RawRow, cfg models.AnalysisConfig, opts models.AnalyzeOptions) {
	params := config.ApplyDefaults(config.AnalysisConfig{
		SolarCapacityMW: cfg.SolarCapacityMW,
		SunHours:        cfg.SunHours,
		ThresholdW:      cfg.ThresholdW,
		BatterySizeKWh:  cfg.BatterySizeKWh,
	}).ToParams()

	result, err := analyzer.New().Run(rows, params)
	if err != nil {
		writeCoreError(c, err)
		return
	}

	resp := buildResponse(result, opts)
	resp.ID = h.store.Put(result)
	c.JSON(http.StatusOK, resp)
}

// writeCoreError maps the core's typed failures onto the error envelope.
func writeCoreError(c *gin.Context, err error) {
	var cfgErr *model.ConfigError
	var dataErr *model.DataError
	var convErr *model.ConvergenceError
	switch {
	case errors.As(err, &cfgErr):
		writeError(c, http.StatusBadRequest, "INVALID_CONFIG", err.Error())
	case errors.As(err, &dataErr):
		writeError(c, http.StatusBadRequest, "NO_USABLE_DATA", err.Error())
	case errors.As(err, &convErr):
		writeError(c, http.StatusUnprocessableEntity, "CONVERGENCE_FAILED", err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "ANALYSIS_ERROR", err.Error())
	}
}

func writeError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: message},
	})
}

func formFloat(c *gin.Context, key string) float64 {
	v, err := strconv.ParseFloat(c.PostForm(key), 64)
	if err != nil {
		return 0
	}
	return v
}
