// Package catalog holds the read-only in-memory view of supplier offers.
// The store is built once at startup and never mutated, so concurrent
// readers need no locking.
package catalog

import (
	"sort"

	"dewaterRecommender/domain"
)

// Product types counted as sensors; everything else is filtration gear.
// Fixed membership, mirrors the trained dataset's category split.
var sensorTypes = map[string]struct{}{
	"pressure_sensor_analog":     {},
	"pressure_sensor_digital":    {},
	"temperature_sensor_bimetal": {},
	"sensor_inductivo":           {},
	"transmisor_presion":         {},
}

type Store struct {
	byProduct    map[string][]domain.SupplierOffer
	productTypes []string // first-appearance order
	total        int
}

// NewStore indexes offers by product type, preserving row order within
// each product.
func NewStore(offers []domain.SupplierOffer) *Store {
	s := &Store{
		byProduct: make(map[string][]domain.SupplierOffer),
		total:     len(offers),
	}

	for _, offer := range offers {
		if _, seen := s.byProduct[offer.ProductType]; !seen {
			s.productTypes = append(s.productTypes, offer.ProductType)
		}
		s.byProduct[offer.ProductType] = append(s.byProduct[offer.ProductType], offer)
	}

	return s
}

// SuppliersFor returns all offers for a product type in catalog order.
func (s *Store) SuppliersFor(productType string) ([]domain.SupplierOffer, error) {
	offers, ok := s.byProduct[productType]
	if !ok || len(offers) == 0 {
		return nil, &domain.NotFoundError{
			ProductType: productType,
			Available:   s.ProductTypes(),
		}
	}

	return offers, nil
}

// ProductTypes lists known product types in first-appearance order.
func (s *Store) ProductTypes() []string {
	out := make([]string, len(s.productTypes))
	copy(out, s.productTypes)
	return out
}

// AvailableProducts partitions the known product types into filtration
// and sensor categories, each sorted alphabetically.
func (s *Store) AvailableProducts() domain.ProductCatalog {
	var cat domain.ProductCatalog

	for _, p := range s.productTypes {
		if _, isSensor := sensorTypes[p]; isSensor {
			cat.Sensors = append(cat.Sensors, p)
		} else {
			cat.Filtration = append(cat.Filtration, p)
		}
	}

	sort.Strings(cat.Filtration)
	sort.Strings(cat.Sensors)

	return cat
}

// Len returns the total number of offer rows loaded.
func (s *Store) Len() int {
	return s.total
}
