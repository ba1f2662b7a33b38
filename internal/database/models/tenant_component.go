package models

import "time"

// TenantComponent is the activation of a component for a tenant
type TenantComponent struct {
	JoinEntity
	TenantID        uint       `json:"tenantId" gorm:"not null;uniqueIndex:idx_tenant_component" validate:"required"`
	ComponentID     uint       `json:"componentId" gorm:"not null;uniqueIndex:idx_tenant_component;index" validate:"required"`
	IsActive        bool       `json:"isActive" gorm:"not null"`
	ActivatedDate   time.Time  `json:"activatedDate" gorm:"not null"`
	DeactivatedDate *time.Time `json:"deactivatedDate"`

	// Relationships
	Tenant    *Tenant    `json:"-" gorm:"foreignKey:TenantID"`
	Component *Component `json:"-" gorm:"foreignKey:ComponentID"`
}

// TableName returns the table name for TenantComponent
func (TenantComponent) TableName() string {
	return "tenant_components"
}
