package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"dewaterRecommender/domain"
)

type SupplierRepository struct {
	DB *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{
		DB: db,
	}
}

// FindAll loads every supplier offer ordered by insertion id, so the
// in-memory catalog keeps the same row order as the source table.
func (r *SupplierRepository) FindAll(ctx context.Context) ([]domain.SupplierOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var offers []domain.SupplierOffer
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&offers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load supplier offers: %w", err)
	}

	return offers, nil
}
