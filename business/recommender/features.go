package recommender

import (
	"fmt"
	"strconv"
	"time"

	"dewaterRecommender/domain"
	"dewaterRecommender/pkg/logger"
	"dewaterRecommender/pkg/metrics"
)

// Field set of the model's feature vector. The trained artifact fixes
// which of these are categorical and in which order they are consumed;
// the service validates both against this set at construction time.
var expectedFeatureFields = []string{
	"price_usd",
	"delivery_days",
	"payment_terms_days",
	"shipping_included",
	"express_available",
	"order_urgency",
	"quantity_needed",
	"budget_available",
	"product_type",
	"incoterms",
	"month",
	"quarter",
}

// Fields that are strings at the source and can only reach the model
// through a learned encoder.
var categoricalSourceFields = []string{
	"order_urgency",
	"product_type",
	"incoterms",
	"quarter",
}

func boolToFloat(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}

func boolToRaw(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func quarterLabel(month int) string {
	return fmt.Sprintf("Q%d", (month-1)/3+1)
}

// encodeFeatures builds the named feature map for one (request, offer)
// pair. Every field in the trained encoders goes through its encoder on
// the value's string form; unseen categories degrade to the sentinel
// code instead of failing the request.
func encodeFeatures(model ClassifierModel, req domain.RecommendationRequest, offer domain.SupplierOffer, asOf time.Time) map[string]float64 {
	month := int(asOf.Month())

	numeric := map[string]float64{
		"price_usd":          offer.PriceUSD,
		"delivery_days":      float64(offer.DeliveryDays),
		"payment_terms_days": float64(offer.PaymentTermsDays),
		"shipping_included":  boolToFloat(offer.ShippingIncluded),
		"express_available":  boolToFloat(offer.ExpressAvailable),
		"quantity_needed":    float64(req.Quantity),
		"budget_available":   req.Budget,
		"month":              float64(month),
	}

	raw := map[string]string{
		"price_usd":          strconv.FormatFloat(offer.PriceUSD, 'f', -1, 64),
		"delivery_days":      strconv.Itoa(offer.DeliveryDays),
		"payment_terms_days": strconv.Itoa(offer.PaymentTermsDays),
		"shipping_included":  boolToRaw(offer.ShippingIncluded),
		"express_available":  boolToRaw(offer.ExpressAvailable),
		"order_urgency":      req.Urgency,
		"quantity_needed":    strconv.Itoa(req.Quantity),
		"budget_available":   strconv.FormatFloat(req.Budget, 'f', -1, 64),
		"product_type":       req.ProductType,
		"incoterms":          offer.Incoterms,
		"month":              strconv.Itoa(month),
		"quarter":            quarterLabel(month),
	}

	features := make(map[string]float64, len(expectedFeatureFields))
	for _, field := range expectedFeatureFields {
		if model.IsCategorical(field) {
			code, known := model.EncodeCategorical(field, raw[field])
			if !known {
				metrics.UnknownCategoryFallbacks.WithLabelValues(field).Inc()
				logger.Debug("unseen category value, using sentinel code",
					"field", field,
					"value", raw[field],
				)
			}
			features[field] = code
			continue
		}

		features[field] = numeric[field]
	}

	return features
}
