package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/qrsegnaletica/signage-tracker/internal/models"
	"github.com/qrsegnaletica/signage-tracker/internal/quality"
)

// DashboardSummary aggregates both listings for the web dashboard.
type DashboardSummary struct {
	Products       int                             `json:"prodotti"`
	Maintenances   int                             `json:"manutenzioni"`
	Located        int                             `json:"prodotti_geolocalizzati"`
	ByCategory     map[models.SignalCategory]int   `json:"tipologia_segnale"`
	ByIntervention map[models.InterventionType]int `json:"tipo_intervento"`
	QualityIssues  map[quality.Kind]int            `json:"problemi_qualita"`
}

func summarize(products []models.Product, maintenances []models.Maintenance) DashboardSummary {
	sum := DashboardSummary{
		Products:     len(products),
		Maintenances: len(maintenances),
		ByCategory: map[models.SignalCategory]int{
			models.SignalCategoryTemporary: 0,
			models.SignalCategoryPermanent: 0,
		},
		ByIntervention: make(map[models.InterventionType]int, len(models.InterventionTypes)),
	}
	for _, t := range models.InterventionTypes {
		sum.ByIntervention[t] = 0
	}

	for _, p := range products {
		sum.ByCategory[p.Category]++
		if p.GPSLat != nil && p.GPSLng != nil {
			sum.Located++
		}
	}
	for _, m := range maintenances {
		sum.ByIntervention[m.InterventionType]++
	}
	return sum
}

// handleV1Dashboard fetches both listings concurrently and returns counts
// GET /api/v1/dashboard
func (s *Server) handleV1Dashboard(c *gin.Context) {
	ctx, cancel := s.upstreamContext(c)
	defer cancel()

	rawProducts, rawMaintenances, err := s.fetchListings(ctx)
	if err != nil {
		s.respondUpstreamError(c, err)
		return
	}

	summary := summarize(s.mapper.Products(rawProducts), s.mapper.Maintenances(rawMaintenances))
	summary.QualityIssues = quality.Summarize(quality.Inspect(rawProducts, rawMaintenances))

	c.JSON(http.StatusOK, gin.H{"data": summary})
}

// fetchListings loads products and maintenances concurrently. The first
// failure cancels the other request.
func (s *Server) fetchListings(ctx context.Context) ([]models.APIProduct, []models.APIMaintenance, error) {
	var (
		products     []models.APIProduct
		maintenances []models.APIMaintenance
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		products, err = s.backend.ListProducts(gctx)
		return err
	})
	g.Go(func() (err error) {
		maintenances, err = s.backend.ListMaintenances(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return products, maintenances, nil
}
