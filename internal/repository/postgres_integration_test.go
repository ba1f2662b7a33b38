//go:build integration
// +build integration

package repository

import (
	"context"
	"strings"
	"testing"

	"product-catalog-backend/internal/database/models"
	apperrors "product-catalog-backend/internal/errors"
	"product-catalog-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// PostgresRepositoryTestSuite repeats the store-dependent checks against Postgres
type PostgresRepositoryTestSuite struct {
	testutils.PostgresSuite
	factories *testutils.FactorySet
}

func (s *PostgresRepositoryTestSuite) SetupSuite() {
	s.PostgresSuite.SetupSuite()
	s.factories = testutils.NewFactorySet()
}

func (s *PostgresRepositoryTestSuite) TestJoinPairUniqueness() {
	ctx := context.Background()
	tenant := s.factories.Tenant.Create()
	product := s.factories.Product.Create()
	testutils.Insert(s.T(), s.DB, tenant, product)

	joins := NewGormRepository[models.TenantProduct](s.DB, "tenant product")
	_, err := joins.Add(ctx, testutils.Subscription(tenant.ID, product.ID, true))
	s.Require().NoError(err)

	_, err = joins.Add(ctx, testutils.Subscription(tenant.ID, product.ID, true))
	s.True(apperrors.IsConstraintViolation(err), "got %v", err)
}

func (s *PostgresRepositoryTestSuite) TestDanglingReference() {
	_, err := NewComponentRepository(s.DB).Add(context.Background(), s.factories.Component.Create(4242))
	s.True(apperrors.IsConstraintViolation(err), "got %v", err)
}

func (s *PostgresRepositoryTestSuite) TestProductDeleteCascades() {
	ctx := context.Background()
	env := s.factories.Environment.Create()
	tenant := s.factories.Tenant.Create()
	product := s.factories.Product.Create()
	testutils.Insert(s.T(), s.DB, env, tenant, product)
	component := s.factories.Component.Create(product.ID)
	testutils.Insert(s.T(), s.DB, component)
	testutils.Insert(s.T(), s.DB,
		testutils.Deployment(product.ID, env.ID, nil),
		testutils.Subscription(tenant.ID, product.ID, true),
		testutils.Activation(tenant.ID, component.ID, true),
	)

	s.Require().NoError(NewProductRepository(s.DB).Delete(ctx, product.ID))

	for _, model := range []interface{}{&models.Product{}, &models.Component{}, &models.TenantProduct{}, &models.TenantComponent{}, &models.ProductEnvironment{}} {
		var n int64
		s.Require().NoError(s.DB.Model(model).Count(&n).Error)
		s.Zero(n)
	}
}

func (s *PostgresRepositoryTestSuite) TestOversizedValueRejected() {
	env := s.factories.Environment.Create()
	testutils.Insert(s.T(), s.DB, env)

	// bypasses validation to exercise the store's own length check
	err := s.DB.Exec("UPDATE environments SET code = ? WHERE id = ?", strings.Repeat("x", 60), env.ID).Error
	s.True(apperrors.IsConstraintViolation(translateError("environment", err)), "got %v", err)
}

func TestPostgresRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresRepositoryTestSuite))
}
