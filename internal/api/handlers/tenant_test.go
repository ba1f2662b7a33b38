package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"product-catalog-backend/internal/api/handlers"
	"product-catalog-backend/internal/database/models"
	"product-catalog-backend/internal/mocks"
	"product-catalog-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TenantHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockRepo  *mocks.MockTenantRepositoryInterface
	httpSuite *testutils.HTTPTestSuite
}

func (suite *TenantHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockTenantRepositoryInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()
	handlers.NewTenantHandler(suite.mockRepo, nil).Register(suite.httpSuite.Router.Group("/api/tenants"))
}

func (suite *TenantHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TenantHandlerTestSuite) TestCreateAppliesDefaults() {
	suite.T().Run("isActive omitted", func(t *testing.T) {
		suite.mockRepo.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tenant *models.Tenant) (*models.Tenant, error) {
				assert.True(t, tenant.IsActive)
				tenant.ID = 3
				return tenant, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/tenants", map[string]interface{}{
			"code": "ACME", "name": "Acme",
		})

		var body map[string]interface{}
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &body)
		assert.Equal(t, "/api/tenants/3", recorder.Header().Get("Location"))
		assert.Equal(t, true, body["isActive"])
		assert.Empty(t, body["tenantProducts"])
	})

	suite.T().Run("isActive false is kept", func(t *testing.T) {
		suite.mockRepo.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tenant *models.Tenant) (*models.Tenant, error) {
				assert.False(t, tenant.IsActive)
				tenant.ID = 4
				return tenant, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/tenants", map[string]interface{}{
			"code": "OLD", "name": "Old", "isActive": false,
		})

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})
}

func (suite *TenantHandlerTestSuite) TestListIncludesSubscribedProducts() {
	tenant := models.Tenant{BaseEntity: models.BaseEntity{ID: 1, Code: "ACME", Name: "Acme"}, IsActive: true}
	tenant.TenantProducts = []models.TenantProduct{{
		TenantID:  1,
		ProductID: 2,
		IsActive:  true,
		Product:   &models.Product{BaseEntity: models.BaseEntity{ID: 2, Code: "P2", Name: "Two"}},
		Tenant:    &tenant,
	}}
	suite.mockRepo.EXPECT().GetAll(gomock.Any()).Return([]models.Tenant{tenant}, nil)

	var body []map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), suite.httpSuite.MakeRequest(http.MethodGet, "/api/tenants", nil), http.StatusOK, &body)

	require.Len(suite.T(), body, 1)
	subscriptions := body[0]["tenantProducts"].([]interface{})
	require.Len(suite.T(), subscriptions, 1)
	subscription := subscriptions[0].(map[string]interface{})
	assert.Equal(suite.T(), "P2", subscription["product"].(map[string]interface{})["code"])
	assert.NotContains(suite.T(), subscription, "tenant")
}

func (suite *TenantHandlerTestSuite) TestFilteredRoutes() {
	suite.T().Run("Active", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetActiveTenants(gomock.Any()).Return([]models.Tenant{
			{BaseEntity: models.BaseEntity{ID: 1, Code: "ACME", Name: "Acme"}, IsActive: true},
		}, nil)

		var body []map[string]interface{}
		testutils.AssertJSONResponse(t, suite.httpSuite.MakeRequest(http.MethodGet, "/api/tenants/active", nil), http.StatusOK, &body)
		assert.Len(t, body, 1)
	})

	suite.T().Run("By product", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByProduct(gomock.Any(), uint(2)).Return(nil, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/tenants/product/2", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestTenantHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TenantHandlerTestSuite))
}
