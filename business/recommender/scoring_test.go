package recommender

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dewaterRecommender/domain"
)

func TestRecommendationLevel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.75, TierHighlyRecommended},
		{0.9, TierHighlyRecommended},
		{1.0, TierHighlyRecommended},
		{0.749, TierRecommended},
		{0.6, TierRecommended},
		{0.599, TierAcceptable},
		{0.45, TierAcceptable},
		{0.449, TierNotRecommended},
		{0.0, TierNotRecommended},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, recommendationLevel(tt.score), "score %v", tt.score)
	}
}

func TestScoreOffer_TotalCost(t *testing.T) {
	req := domain.RecommendationRequest{Quantity: 3, Budget: 10000}

	withShipping := domain.SupplierOffer{PriceUSD: 100, ShippingIncluded: true}
	rec := scoreOffer(withShipping, req, 0.5)
	assert.Equal(t, 300.0, rec.TotalCost)

	withoutShipping := domain.SupplierOffer{PriceUSD: 100, ShippingIncluded: false}
	rec = scoreOffer(withoutShipping, req, 0.5)
	assert.Equal(t, 600.0, rec.TotalCost, "flat shipping surcharge added")
}

func TestScoreOffer_WithinBudget(t *testing.T) {
	offer := domain.SupplierOffer{PriceUSD: 450, ShippingIncluded: true}

	rec := scoreOffer(offer, domain.RecommendationRequest{Quantity: 1, Budget: 600}, 0)
	assert.True(t, rec.WithinBudget)

	rec = scoreOffer(offer, domain.RecommendationRequest{Quantity: 2, Budget: 600}, 0)
	assert.False(t, rec.WithinBudget)

	// boundary: exactly on budget counts as within
	rec = scoreOffer(offer, domain.RecommendationRequest{Quantity: 1, Budget: 450}, 0)
	assert.True(t, rec.WithinBudget)
}

func TestScoreOffer_FinalScoreBlend(t *testing.T) {
	offer := domain.SupplierOffer{
		PriceUSD:         2500,
		QualityRating:    4.5,
		DeliveryDays:     10,
		PaymentTermsDays: 30,
		ShippingIncluded: true,
	}
	req := domain.RecommendationRequest{Quantity: 2, Budget: 8000}

	rec := scoreOffer(offer, req, 0.7)

	// 0.4*0.7 + 0.25*0.9 + 0.2*1.0 + 0.1*1.0 + 0.05*1.0 = 0.855
	assert.Equal(t, 0.855, rec.FinalScore)
	assert.Equal(t, TierHighlyRecommended, rec.RecommendationLevel)
	assert.Equal(t, 0.7, rec.ProbabilityScore)
	assert.True(t, rec.WithinBudget)
}

func TestScoreOffer_PenaltySubScores(t *testing.T) {
	// over budget, slow delivery, no payment terms
	offer := domain.SupplierOffer{
		PriceUSD:         700,
		QualityRating:    4.0,
		DeliveryDays:     25,
		PaymentTermsDays: 0,
		ShippingIncluded: false,
	}
	req := domain.RecommendationRequest{Quantity: 1, Budget: 600}

	rec := scoreOffer(offer, req, 0.0)

	assert.Equal(t, 1000.0, rec.TotalCost)
	assert.False(t, rec.WithinBudget)
	// 0.4*0 + 0.25*0.8 + 0.2*0.5 + 0.1*0.7 + 0.05*0.8 = 0.41
	assert.Equal(t, 0.41, rec.FinalScore)
	assert.Equal(t, TierNotRecommended, rec.RecommendationLevel)
}

func TestScoreOffer_ScoreStaysInUnitRange(t *testing.T) {
	offers := []domain.SupplierOffer{
		{PriceUSD: 1, QualityRating: 0, DeliveryDays: 100, PaymentTermsDays: 0},
		{PriceUSD: 1, QualityRating: 5, DeliveryDays: 1, PaymentTermsDays: 60, ShippingIncluded: true},
	}
	probs := []float64{0.0, 1.0}

	for _, offer := range offers {
		for _, p := range probs {
			rec := scoreOffer(offer, domain.RecommendationRequest{Quantity: 1, Budget: 5}, p)
			assert.GreaterOrEqual(t, rec.FinalScore, 0.0)
			assert.LessOrEqual(t, rec.FinalScore, 1.0)
		}
	}
}

func TestScoreOffer_BlendUsesRoundedProbability(t *testing.T) {
	offer := domain.SupplierOffer{
		PriceUSD:         100,
		QualityRating:    5,
		DeliveryDays:     5,
		PaymentTermsDays: 30,
		ShippingIncluded: true,
	}
	req := domain.RecommendationRequest{Quantity: 1, Budget: 1000}

	rec := scoreOffer(offer, req, 0.66666)

	assert.Equal(t, 0.667, rec.ProbabilityScore)
	// blend is computed from the rounded value shown to the caller
	assert.Equal(t, round3(0.667*0.4+0.25+0.2+0.1+0.05), rec.FinalScore)
}
