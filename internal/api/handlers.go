package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SmartSoil-SPCBA/SmartSoil/internal/advisory"
	"github.com/SmartSoil-SPCBA/SmartSoil/internal/domain/model"
)

// handleState returns the current selection, the latest reading (null
// until one arrives) and both advisory strings.
// GET /api/v1/state
func (s *Server) handleState(c *gin.Context) {
	sel := s.ctrl.Selection()

	var reading *model.Reading
	if r, ok := s.feed.Current(); ok {
		reading = r
	}
	cropAdvisory, altSuggestion := advisory.Compute(reading, s.catalog, s.altTable)

	c.JSON(http.StatusOK, gin.H{
		"selection":         sel,
		"reading":           reading,
		"cropAdvisory":      cropAdvisory,
		"altCropSuggestion": altSuggestion,
	})
}

// handleThresholds returns the threshold catalog for the active crop.
// GET /api/v1/thresholds
func (s *Server) handleThresholds(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Snapshot())
}

// handleHistory returns windowed statistics and the chronological
// series. An optional ?window=12h reloads the aggregation for a
// different span before answering.
// GET /api/v1/history
func (s *Server) handleHistory(c *gin.Context) {
	snap := s.history.Snapshot()

	if raw := c.Query("window"); raw != "" {
		window, err := time.ParseDuration(raw)
		if err != nil || window <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "window must be a positive duration, e.g. 24h"})
			return
		}
		if window != snap.Window {
			// One bounded round trip; failure falls back to the
			// previous aggregation.
			_ = s.ctrl.RefreshHistory(c.Request.Context(), window)
			snap = s.history.Snapshot()
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"crop":          snap.Crop,
		"windowSeconds": int(snap.Window / time.Second),
		"stats":         snap.Stats,
		"series":        snap.Series,
	})
}

// handleCrops lists the crops that have threshold rules, for the
// selector UI.
// GET /api/v1/crops
func (s *Server) handleCrops(c *gin.Context) {
	crops, err := s.thresholds.ListCrops(c.Request.Context())
	if err != nil {
		s.logger.Warn("list crops failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list crops"})
		return
	}
	if crops == nil {
		crops = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"crops": crops})
}

// handleSetCrop changes the active crop. The response reflects the
// in-memory selection immediately; dependent reloads continue in the
// background.
// PUT /api/v1/crop
func (s *Server) handleSetCrop(c *gin.Context) {
	var req struct {
		Crop string `json:"crop" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "crop is required"})
		return
	}

	s.ctrl.SetCrop(c.Request.Context(), req.Crop)
	c.JSON(http.StatusOK, gin.H{"selection": s.ctrl.Selection()})
}
