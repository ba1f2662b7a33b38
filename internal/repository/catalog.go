package repository

import (
	"product-catalog-backend/internal/database/models"

	"gorm.io/gorm"
)

// NewEnvironmentRepository creates a repository for environments.
// Deleting an environment removes its deployment records.
func NewEnvironmentRepository(db *gorm.DB) *GormRepository[models.Environment, *models.Environment] {
	return NewGormRepository[models.Environment](db, "environment").
		WithCascade(deleteWhere(&models.ProductEnvironment{}, "environment_id"))
}

// NewAwsAccountRepository creates a repository for AWS accounts.
// Deleting an account detaches it from deployment records.
func NewAwsAccountRepository(db *gorm.DB) *GormRepository[models.AwsAccount, *models.AwsAccount] {
	return NewGormRepository[models.AwsAccount](db, "aws account").
		WithCascade(nullifyWhere(&models.ProductEnvironment{}, "aws_account_id"))
}

// NewTeamRepository creates a repository for teams.
// Deleting a team orphans its products and removes its memberships.
func NewTeamRepository(db *gorm.DB) *GormRepository[models.Team, *models.Team] {
	return NewGormRepository[models.Team](db, "team").
		WithCascade(
			nullifyWhere(&models.Product{}, "team_id"),
			deleteWhere(&models.UserTeam{}, "team_id"),
		)
}

func NewRoleRepository(db *gorm.DB) *GormRepository[models.Role, *models.Role] {
	return NewGormRepository[models.Role](db, "role").
		WithCascade(
			deleteWhere(&models.UserRole{}, "role_id"),
			deleteWhere(&models.RolePrivilege{}, "role_id"),
		)
}

func NewPrivilegeRepository(db *gorm.DB) *GormRepository[models.Privilege, *models.Privilege] {
	return NewGormRepository[models.Privilege](db, "privilege").
		WithCascade(deleteWhere(&models.RolePrivilege{}, "privilege_id"))
}

func NewModuleRepository(db *gorm.DB) *GormRepository[models.Module, *models.Module] {
	return NewGormRepository[models.Module](db, "module")
}
