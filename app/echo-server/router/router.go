package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dewaterRecommender/internal/rest"
)

func SetupRecommenderRoutes(e *echo.Echo, handler *rest.RecommenderHandler) {
	e.GET("/products", handler.GetProducts)
	e.POST("/recommend", handler.Recommend)
	e.GET("/health", handler.Health)
}

func SetupInfoRoutes(e *echo.Echo, handler *rest.InfoHandler) {
	e.GET("/", handler.Root)
	e.GET("/test-scenarios", handler.TestScenarios)
}

func SetupMetricsRoute(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
