package repository

import (
	"testing"
	"time"

	"product-catalog-backend/internal/database/models"
	"product-catalog-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// CatalogRepositoryTestSuite covers the cascade rules of the plain repositories
type CatalogRepositoryTestSuite struct {
	repositorySuite
}

func (s *CatalogRepositoryTestSuite) TestEnvironmentDeleteRemovesDeployments() {
	env := s.factories.Environment.Create()
	product := s.factories.Product.Create()
	testutils.Insert(s.T(), s.db, env, product)
	testutils.Insert(s.T(), s.db, testutils.Deployment(product.ID, env.ID, nil))

	s.Require().NoError(NewEnvironmentRepository(s.db).Delete(s.ctx, env.ID))
	s.Zero(s.count(&models.ProductEnvironment{}))
	s.Equal(int64(1), s.count(&models.Product{}))
}

func (s *CatalogRepositoryTestSuite) TestAwsAccountDeleteDetachesDeployments() {
	env := s.factories.Environment.Create()
	account := s.factories.AwsAccount.Create()
	product := s.factories.Product.Create()
	testutils.Insert(s.T(), s.db, env, account, product)
	deployment := testutils.Deployment(product.ID, env.ID, &account.ID)
	testutils.Insert(s.T(), s.db, deployment)

	s.Require().NoError(NewAwsAccountRepository(s.db).Delete(s.ctx, account.ID))

	var stored models.ProductEnvironment
	s.Require().NoError(s.db.First(&stored, deployment.ID).Error)
	s.Nil(stored.AwsAccountID)
	s.Zero(s.count(&models.AwsAccount{}))
}

func (s *CatalogRepositoryTestSuite) TestTeamDeleteOrphansProducts() {
	team := s.factories.Team.Create()
	user := s.factories.User.Create()
	testutils.Insert(s.T(), s.db, team, user)
	product := s.factories.Product.WithTeam(team.ID)
	testutils.Insert(s.T(), s.db, product, testutils.Membership(user.ID, team.ID, true))

	s.Require().NoError(NewTeamRepository(s.db).Delete(s.ctx, team.ID))

	var stored models.Product
	s.Require().NoError(s.db.First(&stored, product.ID).Error)
	s.Nil(stored.TeamID)
	s.Zero(s.count(&models.UserTeam{}))
	s.Equal(int64(1), s.count(&models.User{}))
}

func (s *CatalogRepositoryTestSuite) TestRoleAndPrivilegeDeleteRemoveGrants() {
	role := s.factories.Role.Create()
	user := s.factories.User.Create()
	privilege := &models.Privilege{BaseEntity: models.BaseEntity{Code: "READ", Name: "Read"}}
	privilege.StampCreated(time.Now().UTC())
	testutils.Insert(s.T(), s.db, role, user, privilege)

	grant := &models.RolePrivilege{RoleID: role.ID, PrivilegeID: privilege.ID}
	grant.StampCreated(privilege.CreatedDate)
	testutils.Insert(s.T(), s.db, grant, testutils.RoleAssignment(user.ID, role.ID))

	s.Require().NoError(NewPrivilegeRepository(s.db).Delete(s.ctx, privilege.ID))
	s.Zero(s.count(&models.RolePrivilege{}))
	s.Equal(int64(1), s.count(&models.UserRole{}))

	s.Require().NoError(NewRoleRepository(s.db).Delete(s.ctx, role.ID))
	s.Zero(s.count(&models.UserRole{}))
	s.Equal(int64(1), s.count(&models.User{}))
}

func (s *CatalogRepositoryTestSuite) TestModuleRoundTrip() {
	repo := NewModuleRepository(s.db)
	module := &models.Module{BaseEntity: models.BaseEntity{Code: "CAT", Name: "Catalog"}}
	module.ApplyDefaults()

	created, err := repo.Add(s.ctx, module)
	s.Require().NoError(err)

	found, err := repo.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.True(found.IsActive)
}

func TestCatalogRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryTestSuite))
}
