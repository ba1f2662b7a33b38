package models

// User is an operator account. Users hold roles and belong to teams; nothing
// evaluates those grants at request time.
type User struct {
	BaseEntity
	Email    string `json:"email" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100,email"`
	Password string `json:"-" gorm:"size:255;not null" validate:"required,max=255"`
	IsActive bool   `json:"isActive" gorm:"not null"`

	// Relationships
	UserRoles []UserRole `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	UserTeams []UserTeam `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// ApplyDefaults marks new users active
func (u *User) ApplyDefaults() {
	u.IsActive = true
}
