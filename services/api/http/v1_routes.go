package http

// registerV1Routes sets up the v1 API structure
// Groups: /api/v1/products, /api/v1/maintenances, /api/v1/quality
func (s *Server) registerV1Routes() {
	v1 := s.engine.Group("/api/v1")
	v1.Use(apiVersionMiddleware()) // Add X-API-Version: v1 header

	if s.cfg.BearerToken != "" {
		v1.Use(bearerAuthMiddleware(s.cfg.BearerToken))
	}

	products := v1.Group("/products")
	{
		products.GET("", s.handleV1ListProducts)
		products.POST("", s.handleV1CreateProduct)
		products.GET("/qr/:qr", s.handleV1GetProductByQR)
		products.GET("/:id", s.handleV1GetProduct)
		products.GET("/:id/maintenances", s.handleV1ProductMaintenances)
	}

	maintenances := v1.Group("/maintenances")
	{
		maintenances.GET("", s.handleV1ListMaintenances)
		maintenances.POST("", s.handleV1CreateMaintenance)
	}

	v1.GET("/dashboard", s.handleV1Dashboard)

	// Live inspection needs only the backend; stored reports need postgres.
	quality := v1.Group("/quality")
	{
		quality.GET("/inspect", s.handleV1QualityInspect)
		if s.issues != nil {
			quality.GET("/issues", s.handleV1QualityIssues)
		}
	}
}
