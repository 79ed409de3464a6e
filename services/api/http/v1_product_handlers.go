package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/qrsegnaletica/signage-tracker/internal/mapping"
	"github.com/qrsegnaletica/signage-tracker/internal/models"
)

// productFilter narrows a product listing. Empty fields match everything.
type productFilter struct {
	QRCode   string
	Category models.SignalCategory
	Search   string
}

func (f productFilter) match(p models.Product) bool {
	if f.QRCode != "" && p.QRCode != f.QRCode {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		haystacks := []string{p.QRCode, p.SignalType, p.Shape}
		found := false
		for _, h := range haystacks {
			if strings.Contains(strings.ToLower(h), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func filterProducts(products []models.Product, f productFilter) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.match(p) {
			out = append(out, p)
		}
	}
	return out
}

// handleV1ListProducts returns mapped products
// GET /api/v1/products?qr=QR-1&tipologia=temporanea&q=triang
func (s *Server) handleV1ListProducts(c *gin.Context) {
	filter := productFilter{
		QRCode:   strings.TrimSpace(c.Query("qr")),
		Category: models.SignalCategory(strings.ToLower(strings.TrimSpace(c.Query("tipologia")))),
		Search:   strings.TrimSpace(c.Query("q")),
	}
	if filter.Category != "" && !filter.Category.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tipologia"})
		return
	}

	ctx, cancel := s.upstreamContext(c)
	defer cancel()

	raw, err := s.backend.ListProducts(ctx)
	if err != nil {
		s.respondUpstreamError(c, err)
		return
	}

	products := filterProducts(s.mapper.Products(raw), filter)
	c.JSON(http.StatusOK, gin.H{
		"data": products,
		"meta": gin.H{
			"count": len(products),
		},
	})
}

// handleV1GetProduct returns one mapped product
// GET /api/v1/products/:id
func (s *Server) handleV1GetProduct(c *gin.Context) {
	s.respondProduct(c, func(p models.APIProduct) bool { return p.UUID == c.Param("id") })
}

// handleV1GetProductByQR resolves a scanned QR code
// GET /api/v1/products/qr/:qr
func (s *Server) handleV1GetProductByQR(c *gin.Context) {
	qr := strings.TrimSpace(c.Param("qr"))
	s.respondProduct(c, func(p models.APIProduct) bool { return p.QRCode == qr })
}

func (s *Server) respondProduct(c *gin.Context, match func(models.APIProduct) bool) {
	ctx, cancel := s.upstreamContext(c)
	defer cancel()

	raw, err := s.backend.ListProducts(ctx)
	if err != nil {
		s.respondUpstreamError(c, err)
		return
	}

	for _, p := range raw {
		if match(p) {
			c.JSON(http.StatusOK, gin.H{"data": s.mapper.Product(p)})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
}

// handleV1ProductMaintenances returns the maintenance history of a product
// GET /api/v1/products/:id/maintenances
func (s *Server) handleV1ProductMaintenances(c *gin.Context) {
	productID := c.Param("id")

	ctx, cancel := s.upstreamContext(c)
	defer cancel()

	raw, err := s.backend.ListProducts(ctx)
	if err != nil {
		s.respondUpstreamError(c, err)
		return
	}

	var product *models.APIProduct
	for i := range raw {
		if raw[i].UUID == productID {
			product = &raw[i]
			break
		}
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	// Nested records are authoritative when the backend embedded them.
	maintenances := s.mapper.Product(*product).Maintenances
	if maintenances == nil {
		all, err := s.backend.ListMaintenances(ctx)
		if err != nil {
			s.respondUpstreamError(c, err)
			return
		}
		maintenances = filterMaintenances(s.mapper.Maintenances(all), maintenanceFilter{ProductID: productID})
	}

	c.JSON(http.StatusOK, gin.H{
		"data": maintenances,
		"meta": gin.H{
			"count":      len(maintenances),
			"product_id": productID,
		},
	})
}

// handleV1CreateProduct validates an internal product form and creates it upstream
// POST /api/v1/products
func (s *Server) handleV1CreateProduct(c *gin.Context) {
	var form models.Product
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := models.Validate(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, err := mapping.NewProductRequest(form)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := s.upstreamContext(c)
	defer cancel()

	created, err := s.backend.CreateProduct(ctx, req)
	if err != nil {
		s.respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": s.mapper.Product(created)})
}
