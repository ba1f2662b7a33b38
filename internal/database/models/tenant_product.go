package models

// TenantProduct is the subscription of a tenant to a product
type TenantProduct struct {
	JoinEntity
	TenantID  uint `json:"tenantId" gorm:"not null;uniqueIndex:idx_tenant_product" validate:"required"`
	ProductID uint `json:"productId" gorm:"not null;uniqueIndex:idx_tenant_product;index" validate:"required"`
	IsActive  bool `json:"isActive" gorm:"not null"`

	// Relationships
	Tenant  *Tenant  `json:"-" gorm:"foreignKey:TenantID"`
	Product *Product `json:"-" gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for TenantProduct
func (TenantProduct) TableName() string {
	return "tenant_products"
}
