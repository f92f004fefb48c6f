package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	api := s.echo.Group("/api/v1")

	videos := api.Group("/videos")
	videos.GET("", s.listVideos)
	videos.GET("/trending", s.getTrending)
	videos.GET("/:id", s.getVideo)
	videos.GET("/:id/recommendations", s.getRecommendations)
	videos.POST("/:id/like", s.likeVideo, s.publicWriteLimiter())

	categories := api.Group("/categories")
	categories.GET("", s.listCategories)
	categories.GET("/:slug", s.getCategoryBySlug)

	admin := api.Group("/admin")
	admin.Use(s.middleware.Admin.RequireAdmin())

	admin.GET("/videos", s.listAdminVideos)
	admin.PUT("/videos/:id", s.updateVideo)
	admin.DELETE("/videos/:id", s.deleteVideo)

	admin.GET("/categories", s.listAdminCategories)
	admin.POST("/categories", s.createCategory)
	admin.PUT("/categories/:id", s.updateCategory)
	admin.DELETE("/categories/:id", s.deleteCategory)
	admin.PATCH("/categories/:id/toggle", s.toggleCategory)

	admin.GET("/cache/stats", s.cacheStats)
	admin.DELETE("/cache", s.flushCache)
	admin.POST("/cache/sweep", s.sweepCache)
	admin.POST("/cache/warm", s.warmCache)
}
