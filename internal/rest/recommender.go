package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"dewaterRecommender/domain"
	"dewaterRecommender/pkg/logger"
	"dewaterRecommender/pkg/metrics"
)

type (
	RecommenderHandler struct {
		validate           *validator.Validate
		recommenderService RecommenderService
		timeout            time.Duration
	}

	RecommenderService interface {
		Recommend(ctx context.Context, req domain.RecommendationRequest) (*domain.RecommendationResult, error)
		AvailableProducts(ctx context.Context) (domain.ProductCatalog, error)
	}

	RecommendRequest struct {
		ProductType string  `json:"product_type" validate:"required"`
		Urgency     string  `json:"urgency" validate:"required"`
		Quantity    int     `json:"quantity"`
		Budget      float64 `json:"budget"`
	}

	ProductsResponse struct {
		FiltrationProducts []string `json:"filtration_products"`
		SensorProducts     []string `json:"sensor_products"`
		TotalProducts      int      `json:"total_products"`
	}

	HealthResponse struct {
		Status      string `json:"status"`
		ModelLoaded bool   `json:"model_loaded"`
	}
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

func NewRecommenderHandler(svc RecommenderService) *RecommenderHandler {
	return &RecommenderHandler{
		validate:           validator.New(),
		recommenderService: svc,
		timeout:            10 * time.Second,
	}
}

// GET /products
func (h *RecommenderHandler) GetProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.recommenderService.AvailableProducts(ctx)
	if err != nil {
		logger.Error("Failed to list products", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, ProductsResponse{
		FiltrationProducts: products.Filtration,
		SensorProducts:     products.Sensors,
		TotalProducts:      len(products.Filtration) + len(products.Sensors),
	})
}

// POST /recommend
func (h *RecommenderHandler) Recommend(c echo.Context) error {
	start := time.Now()

	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind recommend request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&req); err != nil {
		logger.Error("Failed to validate recommend request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.recommenderService.Recommend(ctx, domain.RecommendationRequest{
		ProductType: req.ProductType,
		Urgency:     req.Urgency,
		Quantity:    req.Quantity,
		Budget:      req.Budget,
	})
	if err != nil {
		var validationErr *domain.ValidationError
		var notFoundErr *domain.NotFoundError

		switch {
		case errors.As(err, &validationErr), errors.As(err, &notFoundErr):
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		default:
			logger.Error("Recommendation failed", "error", err)
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
		}
	}

	metrics.RecommendRequests.Inc()
	metrics.RecommendLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, result)
}

// GET /health
func (h *RecommenderHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:      "healthy",
		ModelLoaded: h.recommenderService != nil,
	})
}
