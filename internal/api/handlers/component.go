package handlers

import (
	"product-catalog-backend/internal/api/dto"
	"product-catalog-backend/internal/database/models"
	"product-catalog-backend/internal/metrics"
	"product-catalog-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// ComponentHandler serves /api/components
type ComponentHandler struct {
	*ResourceHandler[models.Component, *models.Component]
	repo repository.ComponentRepositoryInterface
}

// NewComponentHandler creates a new component handler
func NewComponentHandler(repo repository.ComponentRepositoryInterface, m *metrics.Metrics) *ComponentHandler {
	views := Views(dto.NewComponentView, dto.NewComponentDetail)
	return &ComponentHandler{
		ResourceHandler: NewResourceHandler[models.Component, *models.Component](repo, "component", "/api/components", views, m),
		repo:            repo,
	}
}

// Register mounts the uniform routes plus the filtered component queries
func (h *ComponentHandler) Register(group *gin.RouterGroup) {
	group.GET("/product/:productId", h.GetByProduct)
	group.GET("/tenant/:tenantId", h.GetByTenant)
	group.GET("/tenant/:tenantId/enabled", h.GetEnabledByTenant)
	h.ResourceHandler.Register(group)
}

// GetByProduct lists the components of a product
// @Summary List components by product
// @Tags components
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {array} dto.ComponentView
// @Failure 400 {object} ErrorResponse
// @Router /components/product/{productId} [get]
func (h *ComponentHandler) GetByProduct(c *gin.Context) {
	respondFiltered(c, "productId", h.repo.GetByProduct, dto.NewComponentView)
}

// GetByTenant lists every component with an activation row for the tenant
// @Summary List components by tenant
// @Tags components
// @Produce json
// @Param tenantId path int true "Tenant ID"
// @Success 200 {array} dto.ComponentView
// @Failure 400 {object} ErrorResponse
// @Router /components/tenant/{tenantId} [get]
func (h *ComponentHandler) GetByTenant(c *gin.Context) {
	respondFiltered(c, "tenantId", h.repo.GetByTenant, dto.NewComponentView)
}

// GetEnabledByTenant lists the components currently active for the tenant
// @Summary List enabled components by tenant
// @Tags components
// @Produce json
// @Param tenantId path int true "Tenant ID"
// @Success 200 {array} dto.ComponentView
// @Failure 400 {object} ErrorResponse
// @Router /components/tenant/{tenantId}/enabled [get]
func (h *ComponentHandler) GetEnabledByTenant(c *gin.Context) {
	respondFiltered(c, "tenantId", h.repo.GetEnabledByTenant, dto.NewComponentView)
}
