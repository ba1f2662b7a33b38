package repository

import (
	"context"

	"product-catalog-backend/internal/database/models"

	"gorm.io/gorm"
)

// ComponentRepository handles database operations for components
type ComponentRepository struct {
	*GormRepository[models.Component, *models.Component]
}

// NewComponentRepository creates a new component repository
func NewComponentRepository(db *gorm.DB) *ComponentRepository {
	base := NewGormRepository[models.Component](db, "component").
		WithListPreload(Preload("Product")).
		WithDetailPreload(Preload("Product"), Preload("TenantComponents.Tenant")).
		WithCascade(deleteWhere(&models.TenantComponent{}, "component_id"))
	return &ComponentRepository{GormRepository: base}
}

func (r *ComponentRepository) find(ctx context.Context, query func(*gorm.DB) *gorm.DB) ([]models.Component, error) {
	var components []models.Component
	err := r.DB(ctx).Preload("Product").Scopes(query).Order("id").Find(&components).Error
	if err != nil {
		return nil, translateError(r.Entity(), err)
	}
	return components, nil
}

// GetByProduct returns the components of a product
func (r *ComponentRepository) GetByProduct(ctx context.Context, productID uint) ([]models.Component, error) {
	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("product_id = ?", productID)
	})
}

// GetByTenant returns every component with an activation record for the tenant,
// whether or not it is currently active
func (r *ComponentRepository) GetByTenant(ctx context.Context, tenantID uint) ([]models.Component, error) {
	activated := r.DB(ctx).Model(&models.TenantComponent{}).
		Select("component_id").Where("tenant_id = ?", tenantID)
	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("id IN (?)", activated)
	})
}

// GetEnabledByTenant returns the components currently active for the tenant
func (r *ComponentRepository) GetEnabledByTenant(ctx context.Context, tenantID uint) ([]models.Component, error) {
	enabled := r.DB(ctx).Model(&models.TenantComponent{}).
		Select("component_id").Where("tenant_id = ? AND is_active = ?", tenantID, true)
	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("id IN (?)", enabled)
	})
}
