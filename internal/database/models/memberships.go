package models

// UserRole assigns a role to a user
type UserRole struct {
	JoinEntity
	UserID uint `json:"userId" gorm:"not null;uniqueIndex:idx_user_role" validate:"required"`
	RoleID uint `json:"roleId" gorm:"not null;uniqueIndex:idx_user_role;index" validate:"required"`

	// Relationships
	User *User `json:"-" gorm:"foreignKey:UserID"`
	Role *Role `json:"-" gorm:"foreignKey:RoleID"`
}

// TableName returns the table name for UserRole
func (UserRole) TableName() string {
	return "user_roles"
}

// RolePrivilege grants a privilege to a role
type RolePrivilege struct {
	JoinEntity
	RoleID      uint `json:"roleId" gorm:"not null;uniqueIndex:idx_role_privilege" validate:"required"`
	PrivilegeID uint `json:"privilegeId" gorm:"not null;uniqueIndex:idx_role_privilege;index" validate:"required"`

	// Relationships
	Role      *Role      `json:"-" gorm:"foreignKey:RoleID"`
	Privilege *Privilege `json:"-" gorm:"foreignKey:PrivilegeID"`
}

// TableName returns the table name for RolePrivilege
func (RolePrivilege) TableName() string {
	return "role_privileges"
}

// UserTeam places a user in a team
type UserTeam struct {
	JoinEntity
	UserID     uint `json:"userId" gorm:"not null;uniqueIndex:idx_user_team" validate:"required"`
	TeamID     uint `json:"teamId" gorm:"not null;uniqueIndex:idx_user_team;index" validate:"required"`
	IsTeamLead bool `json:"isTeamLead" gorm:"not null"`

	// Relationships
	User *User `json:"-" gorm:"foreignKey:UserID"`
	Team *Team `json:"-" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for UserTeam
func (UserTeam) TableName() string {
	return "user_teams"
}
