package handlers

import (
	"product-catalog-backend/internal/api/dto"
	"product-catalog-backend/internal/database/models"
	"product-catalog-backend/internal/metrics"
	"product-catalog-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// ProductHandler serves /api/products
type ProductHandler struct {
	*ResourceHandler[models.Product, *models.Product]
	repo repository.ProductRepositoryInterface
}

// NewProductHandler creates a new product handler
func NewProductHandler(repo repository.ProductRepositoryInterface, m *metrics.Metrics) *ProductHandler {
	views := Views(dto.NewProductView, dto.NewProductDetail)
	return &ProductHandler{
		ResourceHandler: NewResourceHandler[models.Product, *models.Product](repo, "product", "/api/products", views, m),
		repo:            repo,
	}
}

// Register mounts the uniform routes plus the filtered product queries
func (h *ProductHandler) Register(group *gin.RouterGroup) {
	group.GET("/team/:teamId", h.GetByTeam)
	group.GET("/environment/:environmentId", h.GetByEnvironment)
	group.GET("/tenant/:tenantId", h.GetByTenant)
	group.GET("/multi-tenant", h.GetMultiTenant)
	group.GET("/single-tenant", h.GetSingleTenant)
	h.ResourceHandler.Register(group)
}

// GetByTeam lists the products owned by a team
// @Summary List products by team
// @Tags products
// @Produce json
// @Param teamId path int true "Team ID"
// @Success 200 {array} dto.ProductView
// @Failure 400 {object} ErrorResponse
// @Router /products/team/{teamId} [get]
func (h *ProductHandler) GetByTeam(c *gin.Context) {
	respondFiltered(c, "teamId", h.repo.GetByTeam, dto.NewProductView)
}

// GetByEnvironment lists the products with a deployment record in an environment
// @Summary List products by environment
// @Tags products
// @Produce json
// @Param environmentId path int true "Environment ID"
// @Success 200 {array} dto.ProductView
// @Failure 400 {object} ErrorResponse
// @Router /products/environment/{environmentId} [get]
func (h *ProductHandler) GetByEnvironment(c *gin.Context) {
	respondFiltered(c, "environmentId", h.repo.GetByEnvironment, dto.NewProductView)
}

// GetByTenant lists the products a tenant is actively subscribed to
// @Summary List products by tenant
// @Tags products
// @Produce json
// @Param tenantId path int true "Tenant ID"
// @Success 200 {array} dto.ProductView
// @Failure 400 {object} ErrorResponse
// @Router /products/tenant/{tenantId} [get]
func (h *ProductHandler) GetByTenant(c *gin.Context) {
	respondFiltered(c, "tenantId", h.repo.GetByTenant, dto.NewProductView)
}

// GetMultiTenant lists the products flagged as multi-tenant
// @Summary List multi-tenant products
// @Tags products
// @Produce json
// @Success 200 {array} dto.ProductView
// @Router /products/multi-tenant [get]
func (h *ProductHandler) GetMultiTenant(c *gin.Context) {
	rows, err := h.repo.GetMultiTenantProducts(c.Request.Context())
	respondList(c, rows, err, dto.NewProductView)
}

// GetSingleTenant lists the products not flagged as multi-tenant
// @Summary List single-tenant products
// @Tags products
// @Produce json
// @Success 200 {array} dto.ProductView
// @Router /products/single-tenant [get]
func (h *ProductHandler) GetSingleTenant(c *gin.Context) {
	rows, err := h.repo.GetSingleTenantProducts(c.Request.Context())
	respondList(c, rows, err, dto.NewProductView)
}
