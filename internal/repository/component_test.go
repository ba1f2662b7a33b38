package repository

import (
	"testing"

	"product-catalog-backend/internal/database/models"
	"product-catalog-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// ComponentRepositoryTestSuite tests the ComponentRepository
type ComponentRepositoryTestSuite struct {
	repositorySuite
	repo    *ComponentRepository
	product *models.Product
	tenant  *models.Tenant
}

func (s *ComponentRepositoryTestSuite) SetupTest() {
	s.repositorySuite.SetupTest()
	s.repo = NewComponentRepository(s.db)

	s.product = s.factories.Product.Create()
	s.tenant = s.factories.Tenant.Create()
	testutils.Insert(s.T(), s.db, s.product, s.tenant)
}

func componentIDs(components []models.Component) []uint {
	ids := make([]uint, len(components))
	for i, c := range components {
		ids[i] = c.ID
	}
	return ids
}

func (s *ComponentRepositoryTestSuite) TestGetByIDLoadsProductAndActivations() {
	component := s.factories.Component.Create(s.product.ID)
	testutils.Insert(s.T(), s.db, component)
	testutils.Insert(s.T(), s.db, testutils.Activation(s.tenant.ID, component.ID, true))

	found, err := s.repo.GetByID(s.ctx, component.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found.Product)
	s.Equal(s.product.ID, found.Product.ID)
	s.Empty(found.Product.Components)
	s.Require().Len(found.TenantComponents, 1)
	s.Require().NotNil(found.TenantComponents[0].Tenant)
	s.Equal(s.tenant.ID, found.TenantComponents[0].Tenant.ID)
	s.Nil(found.TenantComponents[0].Component)
}

func (s *ComponentRepositoryTestSuite) TestGetAllLoadsProduct() {
	testutils.Insert(s.T(), s.db, s.factories.Component.Create(s.product.ID))

	all, err := s.repo.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Require().NotNil(all[0].Product)
	s.Equal(s.product.Code, all[0].Product.Code)
	s.Empty(all[0].TenantComponents)
}

func (s *ComponentRepositoryTestSuite) TestGetByProduct() {
	other := s.factories.Product.Create()
	testutils.Insert(s.T(), s.db, other)
	c1 := s.factories.Component.Create(s.product.ID)
	c2 := s.factories.Component.Create(other.ID)
	testutils.Insert(s.T(), s.db, c1, c2)

	components, err := s.repo.GetByProduct(s.ctx, s.product.ID)
	s.Require().NoError(err)
	s.Equal([]uint{c1.ID}, componentIDs(components))
}

func (s *ComponentRepositoryTestSuite) TestTenantQueries() {
	enabled := s.factories.Component.Create(s.product.ID)
	disabled := s.factories.Component.Create(s.product.ID)
	unrelated := s.factories.Component.Create(s.product.ID)
	testutils.Insert(s.T(), s.db, enabled, disabled, unrelated)
	testutils.Insert(s.T(), s.db,
		testutils.Activation(s.tenant.ID, enabled.ID, true),
		testutils.Activation(s.tenant.ID, disabled.ID, false),
	)

	s.Run("enabled only", func() {
		components, err := s.repo.GetEnabledByTenant(s.ctx, s.tenant.ID)
		s.Require().NoError(err)
		s.Equal([]uint{enabled.ID}, componentIDs(components))
		s.NotNil(components[0].Product)
	})

	s.Run("any activation", func() {
		components, err := s.repo.GetByTenant(s.ctx, s.tenant.ID)
		s.Require().NoError(err)
		s.Equal([]uint{enabled.ID, disabled.ID}, componentIDs(components))
	})

	s.Run("unknown tenant", func() {
		components, err := s.repo.GetEnabledByTenant(s.ctx, s.tenant.ID+1)
		s.Require().NoError(err)
		s.Empty(components)
	})
}

func (s *ComponentRepositoryTestSuite) TestDeleteCascadesActivations() {
	component := s.factories.Component.Create(s.product.ID)
	testutils.Insert(s.T(), s.db, component)
	testutils.Insert(s.T(), s.db, testutils.Activation(s.tenant.ID, component.ID, true))

	s.Require().NoError(s.repo.Delete(s.ctx, component.ID))
	s.Zero(s.count(&models.Component{}))
	s.Zero(s.count(&models.TenantComponent{}))
	s.Equal(int64(1), s.count(&models.Tenant{}))
	s.Equal(int64(1), s.count(&models.Product{}))
}

func TestComponentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ComponentRepositoryTestSuite))
}
