package models

// Role groups privileges granted to users
type Role struct {
	BaseEntity
	Description string `json:"description" gorm:"size:255" validate:"max=255"`

	// Relationships
	UserRoles      []UserRole      `json:"-" gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
	RolePrivileges []RolePrivilege `json:"-" gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Role
func (Role) TableName() string {
	return "roles"
}

// Privilege is a named permission
type Privilege struct {
	BaseEntity
	Description string `json:"description" gorm:"size:255" validate:"max=255"`

	// Relationships
	RolePrivileges []RolePrivilege `json:"-" gorm:"foreignKey:PrivilegeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Privilege
func (Privilege) TableName() string {
	return "privileges"
}

// Module is an application area privileges can be scoped to
type Module struct {
	BaseEntity
	Description string `json:"description" gorm:"size:255" validate:"max=255"`
	IsActive    bool   `json:"isActive" gorm:"not null"`
}

// TableName returns the table name for Module
func (Module) TableName() string {
	return "modules"
}

// ApplyDefaults marks new modules active
func (m *Module) ApplyDefaults() {
	m.IsActive = true
}
