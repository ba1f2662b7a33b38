package models

// Environment is a named deployment target such as DEV or PROD
type Environment struct {
	BaseEntity
	Description string `json:"description" gorm:"size:255" validate:"max=255"`

	// Relationships
	ProductEnvironments []ProductEnvironment `json:"-" gorm:"foreignKey:EnvironmentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Environment
func (Environment) TableName() string {
	return "environments"
}
