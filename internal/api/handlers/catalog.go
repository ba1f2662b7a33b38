package handlers

import (
	"product-catalog-backend/internal/api/dto"
	"product-catalog-backend/internal/database/models"
	"product-catalog-backend/internal/metrics"
	"product-catalog-backend/internal/repository"
)

// NewCatalogHandler creates a handler for an entity without navigation
// fields, serialized as-is for lists and by-id reads
func NewCatalogHandler[T any, P interface {
	*T
	models.Entity
}](repo repository.Repository[T], resource, basePath string, m *metrics.Metrics) *ResourceHandler[T, P] {
	return NewResourceHandler[T, P](repo, resource, basePath, Views(dto.Identity[T], dto.Identity[T]), m)
}
