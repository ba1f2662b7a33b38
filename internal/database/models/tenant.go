package models

// Tenant is a customer organization subscribing to products
type Tenant struct {
	BaseEntity
	Description string `json:"description" gorm:"size:255" validate:"max=255"`
	IsActive    bool   `json:"isActive" gorm:"not null;index"`

	// Relationships
	TenantProducts   []TenantProduct   `json:"-" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	TenantComponents []TenantComponent `json:"-" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}

// ApplyDefaults marks new tenants active
func (t *Tenant) ApplyDefaults() {
	t.IsActive = true
}
