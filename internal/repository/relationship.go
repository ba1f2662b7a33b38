package repository

import (
	"context"
	"time"

	"product-catalog-backend/internal/database/models"
	apperrors "product-catalog-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DeploymentDetails describes the state recorded for a product in an environment
type DeploymentDetails struct {
	AwsAccountID  *uint
	DeploymentURL string
	Status        string
	DeployedOn    *time.Time
	Actor         string
}

// RelationshipRepository manages the join rows linking tenants, products,
// components and environments. Rows are addressed by their endpoint pair.
type RelationshipRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRelationshipRepository creates a new relationship repository
func NewRelationshipRepository(db *gorm.DB) *RelationshipRepository {
	return &RelationshipRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// ensureExists reports a NotFoundError when no row of model has the id
func ensureExists(tx *gorm.DB, model interface{}, entity string, id uint) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return translateError(entity, err)
	}
	if count == 0 {
		return apperrors.NewNotFoundError(entity, id)
	}
	return nil
}

// findPair loads the join row matching the pair into row, or leaves it zero.
// found reports whether a stored row was loaded.
func findPair(tx *gorm.DB, row interface{}, query string, args ...interface{}) (found bool, err error) {
	res := tx.Where(query, args...).Limit(1).Find(row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// save stamps audit fields, validates and writes a join row
func (r *RelationshipRepository) save(tx *gorm.DB, entity string, row models.Entity, found bool, actor string) error {
	now := r.now()
	audit := row.Audit()
	if found {
		stored := *audit
		audit.ModifiedBy = actor
		audit.StampModified(&stored, now)
	} else {
		audit.CreatedBy = actor
		audit.ModifiedBy = ""
		audit.StampCreated(now)
	}
	if err := models.Validate(entity, row); err != nil {
		return err
	}
	if err := tx.Omit(clause.Associations).Save(row).Error; err != nil {
		return translateError(entity, err)
	}
	return nil
}

// Subscribe creates or reactivates the subscription of a tenant to a product
func (r *RelationshipRepository) Subscribe(ctx context.Context, tenantID, productID uint, actor string) (*models.TenantProduct, error) {
	var row models.TenantProduct
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Tenant{}, "tenant", tenantID); err != nil {
			return err
		}
		if err := ensureExists(tx, &models.Product{}, "product", productID); err != nil {
			return err
		}
		found, err := findPair(tx, &row, "tenant_id = ? AND product_id = ?", tenantID, productID)
		if err != nil {
			return translateError("tenant product", err)
		}
		row.TenantID = tenantID
		row.ProductID = productID
		row.IsActive = true
		return r.save(tx, "tenant product", &row, found, actor)
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Unsubscribe marks a subscription inactive
func (r *RelationshipRepository) Unsubscribe(ctx context.Context, tenantID, productID uint, actor string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row models.TenantProduct
		found, err := findPair(tx, &row, "tenant_id = ? AND product_id = ?", tenantID, productID)
		if err != nil {
			return translateError("tenant product", err)
		}
		if !found {
			return apperrors.ErrSubscriptionNotFound
		}
		row.IsActive = false
		return r.save(tx, "tenant product", &row, true, actor)
	})
}

// ActivateComponent creates or reactivates a component for a tenant
func (r *RelationshipRepository) ActivateComponent(ctx context.Context, tenantID, componentID uint, actor string) (*models.TenantComponent, error) {
	var row models.TenantComponent
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Tenant{}, "tenant", tenantID); err != nil {
			return err
		}
		if err := ensureExists(tx, &models.Component{}, "component", componentID); err != nil {
			return err
		}
		found, err := findPair(tx, &row, "tenant_id = ? AND component_id = ?", tenantID, componentID)
		if err != nil {
			return translateError("tenant component", err)
		}
		if !found || !row.IsActive {
			row.ActivatedDate = r.now()
		}
		row.TenantID = tenantID
		row.ComponentID = componentID
		row.IsActive = true
		row.DeactivatedDate = nil
		return r.save(tx, "tenant component", &row, found, actor)
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// DeactivateComponent marks a component inactive for a tenant and records when
func (r *RelationshipRepository) DeactivateComponent(ctx context.Context, tenantID, componentID uint, actor string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row models.TenantComponent
		found, err := findPair(tx, &row, "tenant_id = ? AND component_id = ?", tenantID, componentID)
		if err != nil {
			return translateError("tenant component", err)
		}
		if !found {
			return apperrors.ErrActivationNotFound
		}
		deactivated := r.now()
		row.IsActive = false
		row.DeactivatedDate = &deactivated
		return r.save(tx, "tenant component", &row, true, actor)
	})
}

// RecordDeployment creates or replaces the deployment record of a product in an environment
func (r *RelationshipRepository) RecordDeployment(ctx context.Context, productID, environmentID uint, details DeploymentDetails) (*models.ProductEnvironment, error) {
	var row models.ProductEnvironment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Product{}, "product", productID); err != nil {
			return err
		}
		if err := ensureExists(tx, &models.Environment{}, "environment", environmentID); err != nil {
			return err
		}
		if details.AwsAccountID != nil {
			if err := ensureExists(tx, &models.AwsAccount{}, "aws account", *details.AwsAccountID); err != nil {
				return err
			}
		}
		found, err := findPair(tx, &row, "product_id = ? AND environment_id = ?", productID, environmentID)
		if err != nil {
			return translateError("product environment", err)
		}
		row.ProductID = productID
		row.EnvironmentID = environmentID
		row.AwsAccountID = details.AwsAccountID
		row.DeploymentURL = details.DeploymentURL
		row.Status = details.Status
		if row.Status == "" {
			row.Status = models.DeploymentStatusNotDeployed
		}
		row.DeployedOn = details.DeployedOn
		return r.save(tx, "product environment", &row, found, details.Actor)
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}
