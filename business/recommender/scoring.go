package recommender

import (
	"math"

	"dewaterRecommender/domain"
)

// Final score blend: model probability plus deterministic business
// sub-scores. Weights sum to 1.0 so the score stays in [0, 1].
const (
	weightProbability = 0.4
	weightQuality     = 0.25
	weightPrice       = 0.2
	weightDelivery    = 0.1
	weightPayment     = 0.05
)

const (
	// Flat estimate added when the supplier does not cover shipping.
	shippingSurchargeUSD = 300.0

	// Deliveries at or under this many days count as fast.
	fastDeliveryDays = 15

	maxQualityRating = 5.0
)

// Recommendation tiers, evaluated high to low against the final score.
const (
	TierHighlyRecommended = "Highly Recommended"
	TierRecommended       = "Recommended"
	TierAcceptable        = "Acceptable"
	TierNotRecommended    = "Not Recommended"
)

func recommendationLevel(finalScore float64) string {
	switch {
	case finalScore >= 0.75:
		return TierHighlyRecommended
	case finalScore >= 0.60:
		return TierRecommended
	case finalScore >= 0.45:
		return TierAcceptable
	default:
		return TierNotRecommended
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// scoreOffer turns one supplier offer plus its model probability into a
// ranked recommendation row. The blend uses the rounded probability, the
// same value the caller sees in the output.
func scoreOffer(offer domain.SupplierOffer, req domain.RecommendationRequest, probability float64) domain.SupplierRecommendation {
	totalCost := offer.PriceUSD * float64(req.Quantity)
	if !offer.ShippingIncluded {
		totalCost += shippingSurchargeUSD
	}
	withinBudget := totalCost <= req.Budget

	probScore := round3(probability)
	qualityScore := offer.QualityRating / maxQualityRating

	priceScore := 0.5
	if withinBudget {
		priceScore = 1.0
	}

	deliveryScore := 0.7
	if offer.DeliveryDays <= fastDeliveryDays {
		deliveryScore = 1.0
	}

	paymentScore := 0.8
	if offer.PaymentTermsDays > 0 {
		paymentScore = 1.0
	}

	finalScore := round3(
		probScore*weightProbability +
			qualityScore*weightQuality +
			priceScore*weightPrice +
			deliveryScore*weightDelivery +
			paymentScore*weightPayment,
	)

	return domain.SupplierRecommendation{
		SupplierName:        offer.SupplierName,
		Country:             offer.Country,
		QualityRating:       offer.QualityRating,
		PriceUSD:            offer.PriceUSD,
		TotalCost:           round2(totalCost),
		DeliveryDays:        offer.DeliveryDays,
		PaymentTermsDays:    offer.PaymentTermsDays,
		ProbabilityScore:    probScore,
		FinalScore:          finalScore,
		RecommendationLevel: recommendationLevel(finalScore),
		WithinBudget:        withinBudget,
		ShippingIncluded:    offer.ShippingIncluded,
		ExpressAvailable:    offer.ExpressAvailable,
	}
}
