package models

// Component is a part of exactly one product
type Component struct {
	BaseEntity
	Description   string `json:"description" gorm:"size:255" validate:"max=255"`
	ProductID     uint   `json:"productId" gorm:"not null;index" validate:"required"`
	ComponentType string `json:"componentType" gorm:"size:50" validate:"max=50"`

	// Relationships
	Product          *Product          `json:"-" gorm:"foreignKey:ProductID"`
	TenantComponents []TenantComponent `json:"-" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Component
func (Component) TableName() string {
	return "components"
}
