package repository

import (
	"context"

	"product-catalog-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ProductRepositoryInterface defines the interface for product repository operations
type ProductRepositoryInterface interface {
	Repository[models.Product]
	GetByTeam(ctx context.Context, teamID uint) ([]models.Product, error)
	GetByEnvironment(ctx context.Context, environmentID uint) ([]models.Product, error)
	GetByTenant(ctx context.Context, tenantID uint) ([]models.Product, error)
	GetMultiTenantProducts(ctx context.Context) ([]models.Product, error)
	GetSingleTenantProducts(ctx context.Context) ([]models.Product, error)
}

// ComponentRepositoryInterface defines the interface for component repository operations
type ComponentRepositoryInterface interface {
	Repository[models.Component]
	GetByProduct(ctx context.Context, productID uint) ([]models.Component, error)
	GetByTenant(ctx context.Context, tenantID uint) ([]models.Component, error)
	GetEnabledByTenant(ctx context.Context, tenantID uint) ([]models.Component, error)
}

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	Repository[models.Tenant]
	GetActiveTenants(ctx context.Context) ([]models.Tenant, error)
	GetByProduct(ctx context.Context, productID uint) ([]models.Tenant, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Repository[models.User]
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByTeam(ctx context.Context, teamID uint) ([]models.User, error)
	GetByRole(ctx context.Context, roleID uint) ([]models.User, error)
}

// RelationshipRepositoryInterface defines the interface for join row operations
type RelationshipRepositoryInterface interface {
	Subscribe(ctx context.Context, tenantID, productID uint, actor string) (*models.TenantProduct, error)
	Unsubscribe(ctx context.Context, tenantID, productID uint, actor string) error
	ActivateComponent(ctx context.Context, tenantID, componentID uint, actor string) (*models.TenantComponent, error)
	DeactivateComponent(ctx context.Context, tenantID, componentID uint, actor string) error
	RecordDeployment(ctx context.Context, productID, environmentID uint, details DeploymentDetails) (*models.ProductEnvironment, error)
}

var (
	_ ProductRepositoryInterface      = (*ProductRepository)(nil)
	_ ComponentRepositoryInterface    = (*ComponentRepository)(nil)
	_ TenantRepositoryInterface       = (*TenantRepository)(nil)
	_ UserRepositoryInterface         = (*UserRepository)(nil)
	_ RelationshipRepositoryInterface = (*RelationshipRepository)(nil)
)
