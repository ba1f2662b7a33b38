package database_test

import (
	"context"
	"testing"

	"product-catalog-backend/internal/database"
	"product-catalog-backend/internal/database/models"
	"product-catalog-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type SeedTestSuite struct {
	suite.Suite
	db  *gorm.DB
	ctx context.Context
}

func (s *SeedTestSuite) SetupTest() {
	s.db = testutils.NewSQLiteDB(s.T())
	s.ctx = context.Background()
}

func (s *SeedTestSuite) count(model interface{}) int64 {
	var n int64
	require.NoError(s.T(), s.db.Model(model).Count(&n).Error)
	return n
}

func (s *SeedTestSuite) TestSeedDefaultsIsIdempotent() {
	require.NoError(s.T(), database.SeedDefaults(s.ctx, s.db))
	require.NoError(s.T(), database.SeedDefaults(s.ctx, s.db))

	assert.Equal(s.T(), int64(4), s.count(&models.Environment{}))
	assert.Equal(s.T(), int64(1), s.count(&models.Role{}))
	assert.Equal(s.T(), int64(1), s.count(&models.User{}))
	assert.Equal(s.T(), int64(1), s.count(&models.UserRole{}))

	var codes []string
	require.NoError(s.T(), s.db.Model(&models.Environment{}).Order("id").Pluck("code", &codes).Error)
	assert.Equal(s.T(), []string{"DEV", "TEST", "PREPROD", "PROD"}, codes)

	var admin models.User
	require.NoError(s.T(), s.db.Where("email = ?", "admin@example.com").First(&admin).Error)
	assert.True(s.T(), admin.IsActive)
	assert.Equal(s.T(), models.SystemActor, admin.CreatedBy)
	assert.NotEmpty(s.T(), admin.Password)
}

func (s *SeedTestSuite) TestApplyCatalog() {
	require.NoError(s.T(), database.SeedDefaults(s.ctx, s.db))
	catalog, err := database.LoadCatalog("testdata/catalog.yaml")
	require.NoError(s.T(), err)

	summary, err := database.ApplyCatalog(s.ctx, s.db, catalog)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), &database.SeedSummary{
		Environments:  1,
		Teams:         1,
		AwsAccounts:   1,
		Products:      1,
		Components:    2,
		Deployments:   2,
		Tenants:       2,
		Subscriptions: 1,
		Activations:   1,
	}, summary)

	var billing models.Product
	require.NoError(s.T(), s.db.Preload("Team").Where("code = ?", "BILLING").First(&billing).Error)
	assert.True(s.T(), billing.IsMultiTenant)
	require.NotNil(s.T(), billing.Team)
	assert.Equal(s.T(), "CORE", billing.Team.Code)

	var deployments []models.ProductEnvironment
	require.NoError(s.T(), s.db.Preload("Environment").Where("product_id = ?", billing.ID).Order("id").Find(&deployments).Error)
	require.Len(s.T(), deployments, 2)
	assert.Equal(s.T(), "DEV", deployments[0].Environment.Code)
	assert.Equal(s.T(), "Deployed", deployments[0].Status)
	assert.NotNil(s.T(), deployments[0].AwsAccountID)
	assert.Equal(s.T(), models.DeploymentStatusNotDeployed, deployments[1].Status)

	var globex models.Tenant
	require.NoError(s.T(), s.db.Where("code = ?", "GLOBEX").First(&globex).Error)
	assert.False(s.T(), globex.IsActive)

	again, err := database.ApplyCatalog(s.ctx, s.db, catalog)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), &database.SeedSummary{}, again)
}

func (s *SeedTestSuite) TestApplyCatalogRejectsUnknownReference() {
	catalog := &database.Catalog{
		Tenants: []database.TenantData{{Code: "ACME", Name: "Acme", Products: []string{"MISSING"}}},
	}

	_, err := database.ApplyCatalog(s.ctx, s.db, catalog)
	assert.ErrorContains(s.T(), err, `unknown reference "MISSING"`)
	assert.Zero(s.T(), s.count(&models.Tenant{}))
}

func (s *SeedTestSuite) TestLoadCatalogErrors() {
	_, err := database.LoadCatalog("testdata/missing.yaml")
	assert.ErrorContains(s.T(), err, "read seed file")
}

func TestSeedTestSuite(t *testing.T) {
	suite.Run(t, new(SeedTestSuite))
}
