package models

// Team is the organizational owner of products
type Team struct {
	BaseEntity
	Description string `json:"description" gorm:"size:255" validate:"max=255"`

	// Relationships
	UserTeams []UserTeam `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Products  []Product  `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
