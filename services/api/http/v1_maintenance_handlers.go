package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/qrsegnaletica/signage-tracker/internal/mapping"
	"github.com/qrsegnaletica/signage-tracker/internal/models"
)

type maintenanceFilter struct {
	ProductID        string
	InterventionType models.InterventionType
}

func filterMaintenances(maintenances []models.Maintenance, f maintenanceFilter) []models.Maintenance {
	out := make([]models.Maintenance, 0, len(maintenances))
	for _, m := range maintenances {
		if f.ProductID != "" && m.ProductID != f.ProductID {
			continue
		}
		if f.InterventionType != "" && m.InterventionType != f.InterventionType {
			continue
		}
		out = append(out, m)
	}
	return out
}

// handleV1ListMaintenances returns mapped maintenances
// GET /api/v1/maintenances?product_id=...&tipo=verifica
func (s *Server) handleV1ListMaintenances(c *gin.Context) {
	filter := maintenanceFilter{
		ProductID:        strings.TrimSpace(c.Query("product_id")),
		InterventionType: models.InterventionType(strings.ToLower(strings.TrimSpace(c.Query("tipo")))),
	}
	if filter.InterventionType != "" && !filter.InterventionType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tipo"})
		return
	}

	ctx, cancel := s.upstreamContext(c)
	defer cancel()

	raw, err := s.backend.ListMaintenances(ctx)
	if err != nil {
		s.respondUpstreamError(c, err)
		return
	}

	maintenances := filterMaintenances(s.mapper.Maintenances(raw), filter)
	c.JSON(http.StatusOK, gin.H{
		"data": maintenances,
		"meta": gin.H{
			"count": len(maintenances),
		},
	})
}

// handleV1CreateMaintenance validates an internal maintenance form and creates it upstream
// POST /api/v1/maintenances
func (s *Server) handleV1CreateMaintenance(c *gin.Context) {
	var form models.Maintenance
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := models.Validate(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, err := mapping.NewMaintenanceRequest(form)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := s.upstreamContext(c)
	defer cancel()

	created, err := s.backend.CreateMaintenance(ctx, req)
	if err != nil {
		s.respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": s.mapper.Maintenance(created)})
}
