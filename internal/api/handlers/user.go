package handlers

import (
	"net/http"

	"product-catalog-backend/internal/api/dto"
	"product-catalog-backend/internal/database/models"
	"product-catalog-backend/internal/metrics"
	"product-catalog-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes the user scaffold read-only
type UserHandler struct {
	*ResourceHandler[models.User, *models.User]
	repo repository.UserRepositoryInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(repo repository.UserRepositoryInterface, m *metrics.Metrics) *UserHandler {
	views := Views(dto.Identity[models.User], dto.NewUserDetail)
	return &UserHandler{
		ResourceHandler: NewResourceHandler[models.User, *models.User](repo, "user", "/api/users", views, m),
		repo:            repo,
	}
}

// Register mounts the read routes for users
func (h *UserHandler) Register(group *gin.RouterGroup) {
	group.GET("/email/:email", h.GetByEmail)
	group.GET("/team/:teamId", h.GetByTeam)
	group.GET("/role/:roleId", h.GetByRole)
	h.RegisterReadOnly(group)
}

// GetByEmail returns the user with the given email, ignoring case
// @Summary Get user by email
// @Tags users
// @Produce json
// @Param email path string true "Email address"
// @Success 200 {object} models.User
// @Failure 404 {object} ErrorResponse
// @Router /users/email/{email} [get]
func (h *UserHandler) GetByEmail(c *gin.Context) {
	user, err := h.repo.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetByTeam lists the members of a team
// @Summary List users by team
// @Tags users
// @Produce json
// @Param teamId path int true "Team ID"
// @Success 200 {array} models.User
// @Failure 400 {object} ErrorResponse
// @Router /users/team/{teamId} [get]
func (h *UserHandler) GetByTeam(c *gin.Context) {
	respondFiltered(c, "teamId", h.repo.GetByTeam, dto.Identity[models.User])
}

// GetByRole lists the users holding a role
// @Summary List users by role
// @Tags users
// @Produce json
// @Param roleId path int true "Role ID"
// @Success 200 {array} models.User
// @Failure 400 {object} ErrorResponse
// @Router /users/role/{roleId} [get]
func (h *UserHandler) GetByRole(c *gin.Context) {
	respondFiltered(c, "roleId", h.repo.GetByRole, dto.Identity[models.User])
}
