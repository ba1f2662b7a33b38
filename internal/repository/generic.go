package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"product-catalog-backend/internal/database/models"
	apperrors "product-catalog-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=generic.go -destination=../mocks/generic_mocks.go -package=mocks

// Repository is the capability set every catalog entity supports
type Repository[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id uint) (*T, error)
	Add(ctx context.Context, entity *T) (*T, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uint) error
}

// Scope narrows or decorates a query, typically with Preload calls
type Scope func(*gorm.DB) *gorm.DB

// CascadeFunc removes or detaches rows depending on the entity being deleted.
// It runs inside the delete transaction before the entity row itself is removed.
type CascadeFunc func(tx *gorm.DB, id uint) error

// GormRepository implements Repository for any entity type. Specialized
// repositories embed it and supply preload scopes and cascade rules.
type GormRepository[E any, P interface {
	*E
	models.Entity
}] struct {
	db           *gorm.DB
	entity       string
	listScopes   []Scope
	detailScopes []Scope
	cascades     []CascadeFunc
	now          func() time.Time
}

// NewGormRepository creates a repository for E. entity names the type in errors.
func NewGormRepository[E any, P interface {
	*E
	models.Entity
}](db *gorm.DB, entity string) *GormRepository[E, P] {
	return &GormRepository[E, P]{
		db:     db,
		entity: entity,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// WithListPreload adds scopes applied by GetAll
func (r *GormRepository[E, P]) WithListPreload(scopes ...Scope) *GormRepository[E, P] {
	r.listScopes = append(r.listScopes, scopes...)
	return r
}

// WithDetailPreload adds scopes applied by GetByID
func (r *GormRepository[E, P]) WithDetailPreload(scopes ...Scope) *GormRepository[E, P] {
	r.detailScopes = append(r.detailScopes, scopes...)
	return r
}

// WithCascade registers rules executed before a row is deleted
func (r *GormRepository[E, P]) WithCascade(cascades ...CascadeFunc) *GormRepository[E, P] {
	r.cascades = append(r.cascades, cascades...)
	return r
}

// Entity returns the name used for this entity in errors
func (r *GormRepository[E, P]) Entity() string {
	return r.entity
}

// DB returns the underlying handle bound to ctx
func (r *GormRepository[E, P]) DB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// GetAll returns every row ordered by id
func (r *GormRepository[E, P]) GetAll(ctx context.Context) ([]E, error) {
	var rows []E
	err := r.DB(ctx).Scopes(toFuncs(r.listScopes)...).Order("id").Find(&rows).Error
	if err != nil {
		return nil, translateError(r.entity, err)
	}
	return rows, nil
}

// GetByID returns the row with the given id or a NotFoundError
func (r *GormRepository[E, P]) GetByID(ctx context.Context, id uint) (*E, error) {
	var row E
	err := r.DB(ctx).Scopes(toFuncs(r.detailScopes)...).First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(r.entity, id)
		}
		return nil, translateError(r.entity, err)
	}
	return &row, nil
}

// Add inserts entity with a store-assigned id and fresh audit fields.
// Associations set on entity are not written.
func (r *GormRepository[E, P]) Add(ctx context.Context, entity *E) (*E, error) {
	p := P(entity)
	p.SetID(0)
	p.Audit().StampCreated(r.now())

	if err := models.Validate(r.entity, entity); err != nil {
		return nil, err
	}
	if err := r.DB(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		return nil, translateError(r.entity, err)
	}
	return entity, nil
}

// Update replaces every column of an existing row except the created audit fields
func (r *GormRepository[E, P]) Update(ctx context.Context, entity *E) error {
	p := P(entity)
	return r.DB(ctx).Transaction(func(tx *gorm.DB) error {
		var stored E
		err := tx.Select("id", "created_by", "created_date").First(&stored, p.GetID()).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError(r.entity, p.GetID())
		}
		if err != nil {
			return translateError(r.entity, err)
		}

		p.Audit().StampModified(P(&stored).Audit(), r.now())
		if err := models.Validate(r.entity, entity); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(entity).Error; err != nil {
			return translateError(r.entity, err)
		}
		return nil
	})
}

// Delete removes the row and applies the cascade rules in one transaction
func (r *GormRepository[E, P]) Delete(ctx context.Context, id uint) error {
	return r.DB(ctx).Transaction(func(tx *gorm.DB) error {
		for _, cascade := range r.cascades {
			if err := cascade(tx, id); err != nil {
				return translateError(r.entity, err)
			}
		}
		res := tx.Delete(new(E), id)
		if res.Error != nil {
			return translateError(r.entity, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.NewNotFoundError(r.entity, id)
		}
		return nil
	})
}

func toFuncs(scopes []Scope) []func(*gorm.DB) *gorm.DB {
	funcs := make([]func(*gorm.DB) *gorm.DB, len(scopes))
	for i, s := range scopes {
		funcs[i] = s
	}
	return funcs
}

// Preload returns a scope preloading the given association path
func Preload(path string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Preload(path)
	}
}

// deleteWhere builds a cascade rule removing rows of model whose column equals the deleted id
func deleteWhere(model interface{}, column string) CascadeFunc {
	return func(tx *gorm.DB, id uint) error {
		return tx.Where(column+" = ?", id).Delete(model).Error
	}
}

// nullifyWhere builds a cascade rule clearing an optional reference to the deleted id
func nullifyWhere(model interface{}, column string) CascadeFunc {
	return func(tx *gorm.DB, id uint) error {
		return tx.Model(model).Where(column+" = ?", id).Update(column, nil).Error
	}
}

var (
	duplicateMarkers = []string{
		"UNIQUE constraint failed",
		"duplicate key value",
		"Duplicate entry",
	}
	foreignKeyMarkers = []string{
		"FOREIGN KEY constraint failed",
		"violates foreign key constraint",
		"a foreign key constraint fails",
	}
	columnMarkers = []string{
		"NOT NULL constraint failed",
		"violates not-null constraint",
		"value too long",
		"Data too long",
		"cannot be null",
	}
)

// translateError maps store errors onto the catalog error taxonomy.
// Anything unrecognized is wrapped and passed through.
func translateError(entity string, err error) error {
	if err == nil {
		return nil
	}
	if apperrors.IsConstraintViolation(err) || apperrors.IsNotFound(err) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.NewNotFoundError(entity, 0)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.NewConstraintViolationError(entity, "a record with the same unique values already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.NewConstraintViolationError(entity, "referenced record does not exist")
	}

	msg := err.Error()
	for _, m := range duplicateMarkers {
		if strings.Contains(msg, m) {
			return apperrors.NewConstraintViolationError(entity, "a record with the same unique values already exists")
		}
	}
	for _, m := range foreignKeyMarkers {
		if strings.Contains(msg, m) {
			return apperrors.NewConstraintViolationError(entity, "referenced record does not exist")
		}
	}
	for _, m := range columnMarkers {
		if strings.Contains(msg, m) {
			return apperrors.NewConstraintViolationError(entity, msg)
		}
	}
	return fmt.Errorf("%s: %w", entity, err)
}
