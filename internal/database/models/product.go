package models

// Product is a named deliverable, optionally owned by a team
type Product struct {
	BaseEntity
	Description   string `json:"description" gorm:"size:255" validate:"max=255"`
	Version       string `json:"version" gorm:"size:50" validate:"max=50"`
	IsMultiTenant bool   `json:"isMultiTenant" gorm:"not null;index"`
	TeamID        *uint  `json:"teamId" gorm:"index"`

	// Relationships
	Team                *Team                `json:"-" gorm:"foreignKey:TeamID"`
	Components          []Component          `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	ProductEnvironments []ProductEnvironment `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	TenantProducts      []TenantProduct      `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Product
func (Product) TableName() string {
	return "products"
}
