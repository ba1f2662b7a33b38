package handlers

import (
	"product-catalog-backend/internal/api/dto"
	"product-catalog-backend/internal/database/models"
	"product-catalog-backend/internal/metrics"
	"product-catalog-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// TenantHandler serves /api/tenants
type TenantHandler struct {
	*ResourceHandler[models.Tenant, *models.Tenant]
	repo repository.TenantRepositoryInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(repo repository.TenantRepositoryInterface, m *metrics.Metrics) *TenantHandler {
	views := Views(dto.NewTenantView, dto.NewTenantDetail)
	return &TenantHandler{
		ResourceHandler: NewResourceHandler[models.Tenant, *models.Tenant](repo, "tenant", "/api/tenants", views, m),
		repo:            repo,
	}
}

// Register mounts the uniform routes plus the filtered tenant queries
func (h *TenantHandler) Register(group *gin.RouterGroup) {
	group.GET("/active", h.GetActive)
	group.GET("/product/:productId", h.GetByProduct)
	h.ResourceHandler.Register(group)
}

// GetActive lists the active tenants
// @Summary List active tenants
// @Tags tenants
// @Produce json
// @Success 200 {array} dto.TenantView
// @Router /tenants/active [get]
func (h *TenantHandler) GetActive(c *gin.Context) {
	rows, err := h.repo.GetActiveTenants(c.Request.Context())
	respondList(c, rows, err, dto.NewTenantView)
}

// GetByProduct lists the tenants actively subscribed to a product
// @Summary List tenants by product
// @Tags tenants
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {array} dto.TenantView
// @Failure 400 {object} ErrorResponse
// @Router /tenants/product/{productId} [get]
func (h *TenantHandler) GetByProduct(c *gin.Context) {
	respondFiltered(c, "productId", h.repo.GetByProduct, dto.NewTenantView)
}
