package handlers

import (
	"net/http"
	"time"

	apperrors "product-catalog-backend/internal/errors"
	"product-catalog-backend/internal/metrics"
	"product-catalog-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// RelationshipHandler manages subscriptions, component activations and
// deployment records through their endpoint pairs
type RelationshipHandler struct {
	repo    repository.RelationshipRepositoryInterface
	metrics *metrics.Metrics
}

// NewRelationshipHandler creates a new relationship handler
func NewRelationshipHandler(repo repository.RelationshipRepositoryInterface, m *metrics.Metrics) *RelationshipHandler {
	return &RelationshipHandler{repo: repo, metrics: m}
}

// DeploymentRequest is the body of a deployment record write
type DeploymentRequest struct {
	AwsAccountID  *uint      `json:"awsAccountId"`
	DeploymentURL string     `json:"deploymentUrl"`
	Status        string     `json:"status" example:"Deployed"`
	DeployedOn    *time.Time `json:"deployedOn"`
}

// pair reads two positive ids from the path
func pair(c *gin.Context, first, second string) (uint, uint, error) {
	a, err := parseID(c, first)
	if err != nil {
		return 0, 0, err
	}
	b, err := parseID(c, second)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func (h *RelationshipHandler) done(c *gin.Context, resource, operation string, err error) bool {
	if h.metrics != nil {
		result := outcomeSuccess
		if err != nil {
			result = outcome(err)
		}
		h.metrics.RecordOperation(resource, operation, result)
	}
	if err != nil {
		writeError(c, err)
		return false
	}
	return true
}

// Subscribe subscribes a tenant to a product, reactivating a previous subscription
// @Summary Subscribe tenant to product
// @Tags tenants
// @Produce json
// @Param id path int true "Tenant ID"
// @Param productId path int true "Product ID"
// @Success 200 {object} models.TenantProduct
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tenants/{id}/products/{productId} [post]
func (h *RelationshipHandler) Subscribe(c *gin.Context) {
	tenantID, productID, err := pair(c, "id", "productId")
	if err != nil {
		writeError(c, err)
		return
	}
	row, err := h.repo.Subscribe(c.Request.Context(), tenantID, productID, actor(c))
	if h.done(c, "tenant product", "subscribe", err) {
		c.JSON(http.StatusOK, row)
	}
}

// Unsubscribe deactivates a subscription
// @Summary Unsubscribe tenant from product
// @Tags tenants
// @Param id path int true "Tenant ID"
// @Param productId path int true "Product ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /tenants/{id}/products/{productId} [delete]
func (h *RelationshipHandler) Unsubscribe(c *gin.Context) {
	tenantID, productID, err := pair(c, "id", "productId")
	if err != nil {
		writeError(c, err)
		return
	}
	err = h.repo.Unsubscribe(c.Request.Context(), tenantID, productID, actor(c))
	if h.done(c, "tenant product", "unsubscribe", err) {
		c.Status(http.StatusNoContent)
	}
}

// ActivateComponent enables a component for a tenant
// @Summary Activate component for tenant
// @Tags tenants
// @Produce json
// @Param id path int true "Tenant ID"
// @Param componentId path int true "Component ID"
// @Success 200 {object} models.TenantComponent
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tenants/{id}/components/{componentId} [post]
func (h *RelationshipHandler) ActivateComponent(c *gin.Context) {
	tenantID, componentID, err := pair(c, "id", "componentId")
	if err != nil {
		writeError(c, err)
		return
	}
	row, err := h.repo.ActivateComponent(c.Request.Context(), tenantID, componentID, actor(c))
	if h.done(c, "tenant component", "activate", err) {
		c.JSON(http.StatusOK, row)
	}
}

// DeactivateComponent disables a component for a tenant
// @Summary Deactivate component for tenant
// @Tags tenants
// @Param id path int true "Tenant ID"
// @Param componentId path int true "Component ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /tenants/{id}/components/{componentId} [delete]
func (h *RelationshipHandler) DeactivateComponent(c *gin.Context) {
	tenantID, componentID, err := pair(c, "id", "componentId")
	if err != nil {
		writeError(c, err)
		return
	}
	err = h.repo.DeactivateComponent(c.Request.Context(), tenantID, componentID, actor(c))
	if h.done(c, "tenant component", "deactivate", err) {
		c.Status(http.StatusNoContent)
	}
}

// RecordDeployment writes the deployment record of a product in an environment
// @Summary Record product deployment
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param environmentId path int true "Environment ID"
// @Param deployment body DeploymentRequest true "Deployment details"
// @Success 200 {object} models.ProductEnvironment
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id}/environments/{environmentId} [put]
func (h *RelationshipHandler) RecordDeployment(c *gin.Context) {
	productID, environmentID, err := pair(c, "id", "environmentId")
	if err != nil {
		writeError(c, err)
		return
	}

	var req DeploymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperrors.NewValidationError("body", err.Error()))
		return
	}

	row, err := h.repo.RecordDeployment(c.Request.Context(), productID, environmentID, repository.DeploymentDetails{
		AwsAccountID:  req.AwsAccountID,
		DeploymentURL: req.DeploymentURL,
		Status:        req.Status,
		DeployedOn:    req.DeployedOn,
		Actor:         actor(c),
	})
	if h.done(c, "product environment", "deploy", err) {
		c.JSON(http.StatusOK, row)
	}
}
