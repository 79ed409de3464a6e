package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/qrsegnaletica/signage-tracker/internal/quality"
	"github.com/qrsegnaletica/signage-tracker/services/api/db"
)

const (
	defaultIssueLimit = 200
	maxIssueLimit     = 1000
)

// handleV1QualityInspect inspects the current backend data without storing anything
// GET /api/v1/quality/inspect
func (s *Server) handleV1QualityInspect(c *gin.Context) {
	ctx, cancel := s.upstreamContext(c)
	defer cancel()

	products, maintenances, err := s.fetchListings(ctx)
	if err != nil {
		s.respondUpstreamError(c, err)
		return
	}

	issues := quality.Inspect(products, maintenances)
	if issues == nil {
		issues = []quality.Issue{}
	}
	c.JSON(http.StatusOK, gin.H{
		"data": issues,
		"meta": gin.H{
			"count":   len(issues),
			"summary": quality.Summarize(issues),
		},
	})
}

// handleV1QualityIssues returns the latest auditor report
// GET /api/v1/quality/issues?kind=unparseable_gps&record_id=...&limit=100
func (s *Server) handleV1QualityIssues(c *gin.Context) {
	q := db.IssueQuery{
		Kind:     strings.TrimSpace(c.Query("kind")),
		RecordID: strings.TrimSpace(c.Query("record_id")),
		Limit:    defaultIssueLimit,
	}
	if l := c.Query("limit"); l != "" {
		val, err := strconv.Atoi(l)
		if err != nil || val <= 0 || val > maxIssueLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		q.Limit = val
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	issues, err := s.issues.LatestIssues(ctx, q)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": issues,
		"meta": gin.H{
			"count": len(issues),
		},
	})
}
