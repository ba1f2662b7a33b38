package repository

import (
	"context"
	"errors"
	"strings"

	"product-catalog-backend/internal/database/models"
	apperrors "product-catalog-backend/internal/errors"

	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	*GormRepository[models.User, *models.User]
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	base := NewGormRepository[models.User](db, "user").
		WithDetailPreload(Preload("UserRoles.Role"), Preload("UserTeams.Team")).
		WithCascade(
			deleteWhere(&models.UserRole{}, "user_id"),
			deleteWhere(&models.UserTeam{}, "user_id"),
		)
	return &UserRepository{GormRepository: base}
}

// GetByEmail retrieves a user by email, case-insensitively
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.DB(ctx).Where("LOWER(email) = ?", strings.ToLower(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, translateError(r.Entity(), err)
	}
	return &user, nil
}

// GetByTeam returns the members of a team
func (r *UserRepository) GetByTeam(ctx context.Context, teamID uint) ([]models.User, error) {
	members := r.DB(ctx).Model(&models.UserTeam{}).Select("user_id").Where("team_id = ?", teamID)

	var users []models.User
	if err := r.DB(ctx).Where("id IN (?)", members).Order("id").Find(&users).Error; err != nil {
		return nil, translateError(r.Entity(), err)
	}
	return users, nil
}

// GetByRole returns the users holding a role
func (r *UserRepository) GetByRole(ctx context.Context, roleID uint) ([]models.User, error) {
	holders := r.DB(ctx).Model(&models.UserRole{}).Select("user_id").Where("role_id = ?", roleID)

	var users []models.User
	if err := r.DB(ctx).Where("id IN (?)", holders).Order("id").Find(&users).Error; err != nil {
		return nil, translateError(r.Entity(), err)
	}
	return users, nil
}
