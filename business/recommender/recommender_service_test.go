package recommender

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dewaterRecommender/domain"
	"dewaterRecommender/internal/catalog"
)

func testCatalog() *catalog.Store {
	return catalog.NewStore([]domain.SupplierOffer{
		{
			ProductType: "filter_cloth_roll", SupplierName: "AquaFlow GmbH", Country: "Germany",
			QualityRating: 4.5, PriceUSD: 2500, DeliveryDays: 10, PaymentTermsDays: 30,
			ShippingIncluded: true, ExpressAvailable: true, Incoterms: "DDP",
		},
		{
			ProductType: "filter_cloth_roll", SupplierName: "HydroTech SA", Country: "Chile",
			QualityRating: 3.8, PriceUSD: 1200, DeliveryDays: 25, PaymentTermsDays: 0,
			ShippingIncluded: false, ExpressAvailable: false, Incoterms: "FOB",
		},
		{
			ProductType: "filter_cloth_roll", SupplierName: "Unknown Pumps Ltd", Country: "India",
			QualityRating: 4.0, PriceUSD: 900, DeliveryDays: 12, PaymentTermsDays: 15,
			ShippingIncluded: true, ExpressAvailable: false, Incoterms: "CIF",
		},
		{
			ProductType: "valve_butterfly", SupplierName: "AquaFlow GmbH", Country: "Germany",
			QualityRating: 4.2, PriceUSD: 450, DeliveryDays: 7, PaymentTermsDays: 30,
			ShippingIncluded: true, ExpressAvailable: true, Incoterms: "DDP",
		},
		{
			ProductType: "valve_butterfly", SupplierName: "HydroTech SA", Country: "Chile",
			QualityRating: 3.5, PriceUSD: 700, DeliveryDays: 20, PaymentTermsDays: 0,
			ShippingIncluded: false, ExpressAvailable: false, Incoterms: "EXW",
		},
	})
}

func newTestService(t *testing.T) *RecommenderService {
	t.Helper()

	model := &stubModel{probs: map[string]float64{
		"AquaFlow GmbH": 0.7,
		"HydroTech SA":  0.2,
		// Unknown Pumps Ltd deliberately absent: catalog supplier the
		// model was never trained on
	}}

	svc, err := NewRecommenderService(testCatalog(), model)
	require.NoError(t, err)

	// pin the clock so month/quarter features are stable
	svc.now = func() time.Time {
		return time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	}

	return svc
}

func TestRecommend_RanksByDescendingFinalScore(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Recommend(context.Background(), domain.RecommendationRequest{
		ProductType: "filter_cloth_roll",
		Urgency:     domain.UrgencyLow,
		Quantity:    2,
		Budget:      8000,
	})
	require.NoError(t, err)

	require.Equal(t, 3, result.TotalOptions)
	require.Len(t, result.Recommendations, 3)

	for i := 1; i < len(result.Recommendations); i++ {
		assert.GreaterOrEqual(t,
			result.Recommendations[i-1].FinalScore,
			result.Recommendations[i].FinalScore,
			"list must be sorted by descending final score")
	}

	validTiers := map[string]bool{
		TierHighlyRecommended: true,
		TierRecommended:       true,
		TierAcceptable:        true,
		TierNotRecommended:    true,
	}
	for _, rec := range result.Recommendations {
		assert.GreaterOrEqual(t, rec.FinalScore, 0.0)
		assert.LessOrEqual(t, rec.FinalScore, 1.0)
		assert.True(t, validTiers[rec.RecommendationLevel], "unexpected tier %q", rec.RecommendationLevel)
		assert.Equal(t, rec.TotalCost <= 8000, rec.WithinBudget)
	}

	// echoed request parameters
	assert.Equal(t, "filter_cloth_roll", result.ProductType)
	assert.Equal(t, domain.UrgencyLow, result.Urgency)
	assert.Equal(t, 2, result.Quantity)
	assert.Equal(t, 8000.0, result.Budget)
}

func TestRecommend_ExactScores(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Recommend(context.Background(), domain.RecommendationRequest{
		ProductType: "filter_cloth_roll",
		Urgency:     domain.UrgencyLow,
		Quantity:    2,
		Budget:      8000,
	})
	require.NoError(t, err)

	byName := map[string]domain.SupplierRecommendation{}
	for _, rec := range result.Recommendations {
		byName[rec.SupplierName] = rec
	}

	aqua := byName["AquaFlow GmbH"]
	assert.Equal(t, 5000.0, aqua.TotalCost)
	assert.Equal(t, 0.7, aqua.ProbabilityScore)
	assert.Equal(t, 0.855, aqua.FinalScore)
	assert.Equal(t, TierHighlyRecommended, aqua.RecommendationLevel)

	hydro := byName["HydroTech SA"]
	assert.Equal(t, 2700.0, hydro.TotalCost, "shipping surcharge applied")
	assert.Equal(t, 0.58, hydro.FinalScore)
	assert.Equal(t, TierAcceptable, hydro.RecommendationLevel)
}

func TestRecommend_SupplierUnknownToModelGetsZeroProbability(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Recommend(context.Background(), domain.RecommendationRequest{
		ProductType: "filter_cloth_roll",
		Urgency:     domain.UrgencyMedium,
		Quantity:    1,
		Budget:      5000,
	})
	require.NoError(t, err)

	var unknown *domain.SupplierRecommendation
	for i := range result.Recommendations {
		if result.Recommendations[i].SupplierName == "Unknown Pumps Ltd" {
			unknown = &result.Recommendations[i]
		}
	}

	require.NotNil(t, unknown, "untrained supplier must still be scored")
	assert.Equal(t, 0.0, unknown.ProbabilityScore)
}

func TestRecommend_TightBudgetScenario(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Recommend(context.Background(), domain.RecommendationRequest{
		ProductType: "valve_butterfly",
		Urgency:     domain.UrgencyCritical,
		Quantity:    1,
		Budget:      600,
	})
	require.NoError(t, err)
	require.Equal(t, 2, result.TotalOptions)

	byName := map[string]domain.SupplierRecommendation{}
	for _, rec := range result.Recommendations {
		byName[rec.SupplierName] = rec
	}

	assert.True(t, byName["AquaFlow GmbH"].WithinBudget)

	hydro := byName["HydroTech SA"]
	assert.Equal(t, 1000.0, hydro.TotalCost)
	assert.False(t, hydro.WithinBudget, "700 + 300 shipping exceeds 600")
	// price sub-score degraded to 0.5:
	// 0.4*0.2 + 0.25*0.7 + 0.2*0.5 + 0.1*0.7 + 0.05*0.8 = 0.465
	assert.Equal(t, 0.465, hydro.FinalScore)
}

func TestRecommend_ValidationErrors(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  domain.RecommendationRequest
		want string
	}{
		{
			name: "bad urgency",
			req:  domain.RecommendationRequest{ProductType: "valve_butterfly", Urgency: "ASAP", Quantity: 1, Budget: 100},
			want: "urgency must be one of: Low, Medium, High, Critical",
		},
		{
			name: "zero quantity",
			req:  domain.RecommendationRequest{ProductType: "valve_butterfly", Urgency: domain.UrgencyLow, Quantity: 0, Budget: 100},
			want: "quantity must be greater than 0",
		},
		{
			name: "zero budget",
			req:  domain.RecommendationRequest{ProductType: "valve_butterfly", Urgency: domain.UrgencyLow, Quantity: 1, Budget: 0},
			want: "budget must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Recommend(ctx, tt.req)

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.want, validationErr.Message)
		})
	}
}

func TestRecommend_UnknownProductListsAvailableTypes(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Recommend(context.Background(), domain.RecommendationRequest{
		ProductType: "hose_reel",
		Urgency:     domain.UrgencyLow,
		Quantity:    1,
		Budget:      100,
	})

	var notFoundErr *domain.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "hose_reel", notFoundErr.ProductType)
	assert.Contains(t, notFoundErr.Available, "filter_cloth_roll")
	assert.Contains(t, notFoundErr.Available, "valve_butterfly")
	assert.Contains(t, err.Error(), "filter_cloth_roll")
}

func TestRecommend_Idempotent(t *testing.T) {
	svc := newTestService(t)
	req := domain.RecommendationRequest{
		ProductType: "filter_cloth_roll",
		Urgency:     domain.UrgencyHigh,
		Quantity:    3,
		Budget:      4000,
	}

	first, err := svc.Recommend(context.Background(), req)
	require.NoError(t, err)

	second, err := svc.Recommend(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNewRecommenderService_SchemaMismatchFails(t *testing.T) {
	model := &badSchemaModel{stubModel{}}

	_, err := NewRecommenderService(testCatalog(), model)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model schema")
}

// badSchemaModel declares a feature the encoder never produces.
type badSchemaModel struct {
	stubModel
}

func (m *badSchemaModel) FeatureNames() []string {
	return append([]string{"lead_time_class"}, expectedFeatureFields[1:]...)
}
