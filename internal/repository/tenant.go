package repository

import (
	"context"

	"product-catalog-backend/internal/database/models"

	"gorm.io/gorm"
)

// TenantRepository handles database operations for tenants
type TenantRepository struct {
	*GormRepository[models.Tenant, *models.Tenant]
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) *TenantRepository {
	base := NewGormRepository[models.Tenant](db, "tenant").
		WithListPreload(Preload("TenantProducts.Product")).
		WithDetailPreload(Preload("TenantProducts.Product"), Preload("TenantComponents.Component")).
		WithCascade(
			deleteWhere(&models.TenantProduct{}, "tenant_id"),
			deleteWhere(&models.TenantComponent{}, "tenant_id"),
		)
	return &TenantRepository{GormRepository: base}
}

// GetActiveTenants returns tenants flagged active
func (r *TenantRepository) GetActiveTenants(ctx context.Context) ([]models.Tenant, error) {
	var tenants []models.Tenant
	err := r.DB(ctx).Preload("TenantProducts.Product").
		Where("is_active = ?", true).Order("id").Find(&tenants).Error
	if err != nil {
		return nil, translateError(r.Entity(), err)
	}
	return tenants, nil
}

// GetByProduct returns tenants holding an active subscription to the product
func (r *TenantRepository) GetByProduct(ctx context.Context, productID uint) ([]models.Tenant, error) {
	subscribers := r.DB(ctx).Model(&models.TenantProduct{}).
		Select("tenant_id").Where("product_id = ? AND is_active = ?", productID, true)

	var tenants []models.Tenant
	err := r.DB(ctx).Preload("TenantProducts.Product").
		Where("id IN (?)", subscribers).Order("id").Find(&tenants).Error
	if err != nil {
		return nil, translateError(r.Entity(), err)
	}
	return tenants, nil
}
