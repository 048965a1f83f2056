package recommender

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"dewaterRecommender/domain"
	"dewaterRecommender/pkg/logger"
)

// ---- Collaborator interfaces ----

// CatalogStore is the read-only supplier catalog loaded at startup.
type CatalogStore interface {
	SuppliersFor(productType string) ([]domain.SupplierOffer, error)
	AvailableProducts() domain.ProductCatalog
	ProductTypes() []string
}

// ClassifierModel is the trained classifier plus its encoders.
type ClassifierModel interface {
	FeatureNames() []string
	IsCategorical(field string) bool
	EncodeCategorical(field, value string) (float64, bool)
	Vectorize(features map[string]float64) ([]float64, error)
	ProbabilityFor(x []float64, supplierName string) (float64, error)
}

// ---- Usecase / Service ----

// RecommenderService runs the shared recommendation pipeline used by
// both the HTTP API and the interactive CLI.
type RecommenderService struct {
	store CatalogStore
	model ClassifierModel

	// injected clock so the month/quarter features are testable
	now func() time.Time
}

// NewRecommenderService wires the catalog and model together. The model's
// declared feature schema is checked here once; a mismatch means the
// artifacts and this code disagree and the process must not serve.
func NewRecommenderService(store CatalogStore, model ClassifierModel) (*RecommenderService, error) {
	if err := validateModelSchema(model); err != nil {
		return nil, fmt.Errorf("model schema: %w", err)
	}

	return &RecommenderService{
		store: store,
		model: model,
		now:   time.Now,
	}, nil
}

func validateModelSchema(model ClassifierModel) error {
	declared := model.FeatureNames()

	expected := make(map[string]struct{}, len(expectedFeatureFields))
	for _, f := range expectedFeatureFields {
		expected[f] = struct{}{}
	}

	seen := make(map[string]struct{}, len(declared))
	for _, f := range declared {
		if _, ok := expected[f]; !ok {
			return fmt.Errorf("model declares unknown feature %q", f)
		}
		if _, dup := seen[f]; dup {
			return fmt.Errorf("model declares feature %q twice", f)
		}
		seen[f] = struct{}{}
	}

	for _, f := range expectedFeatureFields {
		if _, ok := seen[f]; !ok {
			return fmt.Errorf("model is missing feature %q", f)
		}
	}

	for _, f := range categoricalSourceFields {
		if !model.IsCategorical(f) {
			return fmt.Errorf("no trained encoder for categorical feature %q", f)
		}
	}

	return nil
}

// AvailableProducts lists the known product types grouped by category.
func (s *RecommenderService) AvailableProducts(ctx context.Context) (domain.ProductCatalog, error) {
	if err := ctx.Err(); err != nil {
		return domain.ProductCatalog{}, fmt.Errorf("context error: %w", err)
	}

	return s.store.AvailableProducts(), nil
}

// SuppliersFor exposes the catalog rows for one product type, used by
// the CLI menu to show which suppliers offer each product.
func (s *RecommenderService) SuppliersFor(ctx context.Context, productType string) ([]domain.SupplierOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.store.SuppliersFor(productType)
}

// Recommend scores every supplier offering the requested product and
// returns them ranked by descending final score. A failure for any
// single supplier aborts the whole request; partial rankings are never
// returned.
func (s *RecommenderService) Recommend(ctx context.Context, req domain.RecommendationRequest) (*domain.RecommendationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	offers, err := s.store.SuppliersFor(req.ProductType)
	if err != nil {
		return nil, err
	}

	asOf := s.now()

	// one recommendation per distinct supplier, first offer row wins
	seen := make(map[string]struct{}, len(offers))
	recs := make([]domain.SupplierRecommendation, 0, len(offers))

	for _, offer := range offers {
		if _, dup := seen[offer.SupplierName]; dup {
			continue
		}
		seen[offer.SupplierName] = struct{}{}

		features := encodeFeatures(s.model, req, offer, asOf)

		x, err := s.model.Vectorize(features)
		if err != nil {
			return nil, fmt.Errorf("encode features for supplier %s: %w", offer.SupplierName, err)
		}

		probability, err := s.model.ProbabilityFor(x, offer.SupplierName)
		if err != nil {
			return nil, fmt.Errorf("predict for supplier %s: %w", offer.SupplierName, err)
		}

		recs = append(recs, scoreOffer(offer, req, probability))
	}

	// stable: equal scores keep catalog order
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].FinalScore > recs[j].FinalScore
	})

	logger.Debug("supplier_recommend",
		"trace_id", TraceIDFromContext(ctx),
		"product_type", req.ProductType,
		"urgency", req.Urgency,
		"quantity", req.Quantity,
		"budget", req.Budget,
		"total_options", len(recs),
	)

	return &domain.RecommendationResult{
		ProductType:     req.ProductType,
		Urgency:         req.Urgency,
		Quantity:        req.Quantity,
		Budget:          req.Budget,
		Recommendations: recs,
		TotalOptions:    len(recs),
	}, nil
}

func validateRequest(req domain.RecommendationRequest) error {
	validUrgency := false
	for _, u := range domain.ValidUrgencies {
		if req.Urgency == u {
			validUrgency = true
			break
		}
	}
	if !validUrgency {
		return domain.NewValidationError("urgency must be one of: %s",
			strings.Join(domain.ValidUrgencies, ", "))
	}

	if req.Quantity <= 0 {
		return domain.NewValidationError("quantity must be greater than 0")
	}

	if req.Budget <= 0 {
		return domain.NewValidationError("budget must be greater than 0")
	}

	return nil
}
