package domain

// Urgency levels accepted by the recommender.
const (
	UrgencyLow      = "Low"
	UrgencyMedium   = "Medium"
	UrgencyHigh     = "High"
	UrgencyCritical = "Critical"
)

// ValidUrgencies lists the accepted urgency levels in menu order.
var ValidUrgencies = []string{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical}

// RecommendationRequest carries the parameters of a single recommendation
// call. It is built per request and never persisted.
type RecommendationRequest struct {
	ProductType string  `json:"product_type"`
	Urgency     string  `json:"urgency"`
	Quantity    int     `json:"quantity"`
	Budget      float64 `json:"budget"`
}

// SupplierRecommendation is one ranked row of the recommendation output.
type SupplierRecommendation struct {
	SupplierName        string  `json:"supplier_name"`
	Country             string  `json:"country"`
	QualityRating       float64 `json:"quality_rating"`
	PriceUSD            float64 `json:"price_usd"`
	TotalCost           float64 `json:"total_cost"`
	DeliveryDays        int     `json:"delivery_days"`
	PaymentTermsDays    int     `json:"payment_terms_days"`
	ProbabilityScore    float64 `json:"probability_score"`
	FinalScore          float64 `json:"final_score"`
	RecommendationLevel string  `json:"recommendation_level"`
	WithinBudget        bool    `json:"within_budget"`
	ShippingIncluded    bool    `json:"shipping_included"`
	ExpressAvailable    bool    `json:"express_available"`
}

// RecommendationResult echoes the request parameters together with the
// ranked supplier list, ordered by descending final score.
type RecommendationResult struct {
	ProductType     string                   `json:"product_type"`
	Urgency         string                   `json:"urgency"`
	Quantity        int                      `json:"quantity"`
	Budget          float64                  `json:"budget"`
	Recommendations []SupplierRecommendation `json:"recommendations"`
	TotalOptions    int                      `json:"total_options"`
}
