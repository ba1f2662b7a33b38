package handlers

import (
	"context"
	"fmt"
	"net/http"

	"product-catalog-backend/internal/api/dto"
	"product-catalog-backend/internal/database/models"
	apperrors "product-catalog-backend/internal/errors"
	"product-catalog-backend/internal/metrics"
	"product-catalog-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// ViewSet converts entities into the JSON shapes returned by list and by-id reads
type ViewSet[T any] struct {
	List   func(*T) any
	Detail func(*T) any
}

// Views builds a ViewSet from typed view constructors
func Views[T, L, D any](list func(*T) L, detail func(*T) D) ViewSet[T] {
	return ViewSet[T]{
		List:   func(row *T) any { return list(row) },
		Detail: func(row *T) any { return detail(row) },
	}
}

// ResourceHandler exposes list, get, create, replace and delete for one
// entity type on top of a Repository. Identity comes from models.Entity, so
// an entity without one cannot be registered.
type ResourceHandler[T any, P interface {
	*T
	models.Entity
}] struct {
	repo     repository.Repository[T]
	resource string
	basePath string
	views    ViewSet[T]
	metrics  *metrics.Metrics
}

// NewResourceHandler creates a handler for resource mounted at basePath, e.g. "/api/products"
func NewResourceHandler[T any, P interface {
	*T
	models.Entity
}](repo repository.Repository[T], resource, basePath string, views ViewSet[T], m *metrics.Metrics) *ResourceHandler[T, P] {
	return &ResourceHandler[T, P]{
		repo:     repo,
		resource: resource,
		basePath: basePath,
		views:    views,
		metrics:  m,
	}
}

// Register mounts the five uniform routes on group
func (h *ResourceHandler[T, P]) Register(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.PUT("/:id", h.Replace)
	group.DELETE("/:id", h.Delete)
}

// RegisterReadOnly mounts only the list and by-id routes on group
func (h *ResourceHandler[T, P]) RegisterReadOnly(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.GET("/:id", h.Get)
}

// List returns every row of the resource
func (h *ResourceHandler[T, P]) List(c *gin.Context) {
	rows, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		h.fail(c, "list", err)
		return
	}

	out := make([]any, len(rows))
	for i := range rows {
		out[i] = h.views.List(&rows[i])
	}
	h.record("list", outcomeSuccess)
	c.JSON(http.StatusOK, out)
}

// Get returns a single row with its related rows
func (h *ResourceHandler[T, P]) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.fail(c, "get", err)
		return
	}

	row, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	h.record("get", outcomeSuccess)
	c.JSON(http.StatusOK, h.views.Detail(row))
}

// Create stores a new row. Any id in the body is ignored. Audit actors
// missing from the body default to the X-User header.
func (h *ResourceHandler[T, P]) Create(c *gin.Context) {
	entity, err := h.bind(c)
	if err != nil {
		h.fail(c, "create", err)
		return
	}

	if who := actor(c); who != "" {
		audit := P(entity).Audit()
		if audit.CreatedBy == "" {
			audit.CreatedBy = who
		}
		if audit.ModifiedBy == "" {
			audit.ModifiedBy = who
		}
	}

	created, err := h.repo.Add(c.Request.Context(), entity)
	if err != nil {
		h.fail(c, "create", err)
		return
	}

	h.record("create", outcomeSuccess)
	c.Header("Location", fmt.Sprintf("%s/%d", h.basePath, P(created).GetID()))
	c.JSON(http.StatusCreated, h.views.List(created))
}

// Replace overwrites the row identified by the path. A body without an id
// targets the path id; a different id is rejected.
func (h *ResourceHandler[T, P]) Replace(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.fail(c, "replace", err)
		return
	}

	entity, err := h.bind(c)
	if err != nil {
		h.fail(c, "replace", err)
		return
	}

	p := P(entity)
	switch p.GetID() {
	case 0:
		p.SetID(id)
	case id:
	default:
		h.fail(c, "replace", apperrors.ErrIDMismatch)
		return
	}
	if audit := p.Audit(); audit.ModifiedBy == "" {
		audit.ModifiedBy = actor(c)
	}

	if err := h.repo.Update(c.Request.Context(), entity); err != nil {
		h.fail(c, "replace", err)
		return
	}
	h.record("replace", outcomeSuccess)
	c.Status(http.StatusNoContent)
}

// Delete removes the row and whatever its cascade policy covers
func (h *ResourceHandler[T, P]) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.fail(c, "delete", err)
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete", err)
		return
	}
	h.record("delete", outcomeSuccess)
	c.Status(http.StatusNoContent)
}

func (h *ResourceHandler[T, P]) bind(c *gin.Context) (*T, error) {
	entity := new(T)
	if d, ok := any(entity).(models.Defaulter); ok {
		d.ApplyDefaults()
	}
	if err := c.ShouldBindJSON(entity); err != nil {
		return nil, apperrors.NewValidationError("body", err.Error())
	}
	return entity, nil
}

func (h *ResourceHandler[T, P]) fail(c *gin.Context, operation string, err error) {
	h.record(operation, outcome(err))
	writeError(c, err)
}

func (h *ResourceHandler[T, P]) record(operation, result string) {
	if h.metrics != nil {
		h.metrics.RecordOperation(h.resource, operation, result)
	}
}

// respondList writes rows through view, or the error
func respondList[T, V any](c *gin.Context, rows []T, err error, view func(*T) V) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Map(rows, view))
}

// respondFiltered runs a query keyed by the id in path parameter param
func respondFiltered[T, V any](c *gin.Context, param string, query func(context.Context, uint) ([]T, error), view func(*T) V) {
	id, err := parseID(c, param)
	if err != nil {
		writeError(c, err)
		return
	}
	rows, err := query(c.Request.Context(), id)
	respondList(c, rows, err, view)
}
