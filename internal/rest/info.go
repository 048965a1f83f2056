package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dewaterRecommender/domain"
)

type InfoHandler struct {
	appName    string
	appVersion string
}

func NewInfoHandler(appName, appVersion string) *InfoHandler {
	return &InfoHandler{
		appName:    appName,
		appVersion: appVersion,
	}
}

// GET /
func (h *InfoHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": h.appName,
		"version": h.appVersion,
		"status":  "running",
	})
}

type TestScenario struct {
	Name   string                       `json:"name"`
	Params domain.RecommendationRequest `json:"params"`
}

// Canned requests for manual smoke testing of the recommend endpoint.
var testScenarios = []TestScenario{
	{
		Name: "Premium vs economy cloth rolls",
		Params: domain.RecommendationRequest{
			ProductType: "filter_cloth_roll",
			Urgency:     domain.UrgencyLow,
			Quantity:    2,
			Budget:      8000,
		},
	},
	{
		Name: "Standard press cloth set",
		Params: domain.RecommendationRequest{
			ProductType: "filter_press_cloth_set",
			Urgency:     domain.UrgencyMedium,
			Quantity:    30,
			Budget:      800,
		},
	},
	{
		Name: "Urgent butterfly valves",
		Params: domain.RecommendationRequest{
			ProductType: "valve_butterfly",
			Urgency:     domain.UrgencyCritical,
			Quantity:    1,
			Budget:      600,
		},
	},
}

// GET /test-scenarios
func (h *InfoHandler) TestScenarios(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"test_scenarios": testScenarios,
	})
}
