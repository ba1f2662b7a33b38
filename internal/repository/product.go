package repository

import (
	"context"

	"product-catalog-backend/internal/database/models"

	"gorm.io/gorm"
)

// ProductRepository handles database operations for products
type ProductRepository struct {
	*GormRepository[models.Product, *models.Product]
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	base := NewGormRepository[models.Product](db, "product").
		WithListPreload(Preload("Team")).
		WithDetailPreload(
			Preload("Team"),
			Preload("Components"),
			Preload("ProductEnvironments.Environment"),
			Preload("ProductEnvironments.AwsAccount"),
			Preload("TenantProducts.Tenant"),
		).
		WithCascade(
			deleteComponentActivationsOfProduct,
			deleteWhere(&models.TenantProduct{}, "product_id"),
			deleteWhere(&models.ProductEnvironment{}, "product_id"),
			deleteWhere(&models.Component{}, "product_id"),
		)
	return &ProductRepository{GormRepository: base}
}

func deleteComponentActivationsOfProduct(tx *gorm.DB, id uint) error {
	components := tx.Session(&gorm.Session{NewDB: true}).
		Model(&models.Component{}).Select("id").Where("product_id = ?", id)
	return tx.Where("component_id IN (?)", components).Delete(&models.TenantComponent{}).Error
}

func (r *ProductRepository) find(ctx context.Context, query func(*gorm.DB) *gorm.DB) ([]models.Product, error) {
	var products []models.Product
	err := r.DB(ctx).Preload("Team").Scopes(query).Order("id").Find(&products).Error
	if err != nil {
		return nil, translateError(r.Entity(), err)
	}
	return products, nil
}

// GetByTeam returns the products owned by a team
func (r *ProductRepository) GetByTeam(ctx context.Context, teamID uint) ([]models.Product, error) {
	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("team_id = ?", teamID)
	})
}

// GetByEnvironment returns the products with a deployment record in an environment
func (r *ProductRepository) GetByEnvironment(ctx context.Context, environmentID uint) ([]models.Product, error) {
	deployed := r.DB(ctx).Model(&models.ProductEnvironment{}).
		Select("product_id").Where("environment_id = ?", environmentID)
	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("id IN (?)", deployed)
	})
}

// GetByTenant returns the products a tenant holds an active subscription to
func (r *ProductRepository) GetByTenant(ctx context.Context, tenantID uint) ([]models.Product, error) {
	subscribed := r.DB(ctx).Model(&models.TenantProduct{}).
		Select("product_id").Where("tenant_id = ? AND is_active = ?", tenantID, true)
	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("id IN (?)", subscribed)
	})
}

// GetMultiTenantProducts returns the products shared between tenants
func (r *ProductRepository) GetMultiTenantProducts(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("is_multi_tenant = ?", true)
	})
}

// GetSingleTenantProducts returns the products dedicated to one tenant
func (r *ProductRepository) GetSingleTenantProducts(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("is_multi_tenant = ?", false)
	})
}
