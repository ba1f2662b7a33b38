package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"product-catalog-backend/internal/api/handlers"
	"product-catalog-backend/internal/database/models"
	apperrors "product-catalog-backend/internal/errors"
	"product-catalog-backend/internal/mocks"
	"product-catalog-backend/internal/repository"
	"product-catalog-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RelationshipHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockRepo  *mocks.MockRelationshipRepositoryInterface
	httpSuite *testutils.HTTPTestSuite
}

func (suite *RelationshipHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockRelationshipRepositoryInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Actor = "operator"

	handler := handlers.NewRelationshipHandler(suite.mockRepo, nil)
	router := suite.httpSuite.Router
	router.POST("/api/tenants/:id/products/:productId", handler.Subscribe)
	router.DELETE("/api/tenants/:id/products/:productId", handler.Unsubscribe)
	router.POST("/api/tenants/:id/components/:componentId", handler.ActivateComponent)
	router.DELETE("/api/tenants/:id/components/:componentId", handler.DeactivateComponent)
	router.PUT("/api/products/:id/environments/:environmentId", handler.RecordDeployment)
}

func (suite *RelationshipHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RelationshipHandlerTestSuite) TestSubscribe() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockRepo.EXPECT().Subscribe(gomock.Any(), uint(1), uint(2), "operator").
			Return(&models.TenantProduct{JoinEntity: models.JoinEntity{ID: 5}, TenantID: 1, ProductID: 2, IsActive: true}, nil)

		var body map[string]interface{}
		testutils.AssertJSONResponse(t, suite.httpSuite.MakeRequest(http.MethodPost, "/api/tenants/1/products/2", nil), http.StatusOK, &body)
		assert.Equal(t, true, body["isActive"])
		assert.Equal(t, float64(2), body["productId"])
	})

	suite.T().Run("Unknown product", func(t *testing.T) {
		suite.mockRepo.EXPECT().Subscribe(gomock.Any(), uint(1), uint(99), "operator").
			Return(nil, apperrors.NewNotFoundError("product", 99))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/tenants/1/products/99", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "product 99 not found")
	})

	suite.T().Run("Invalid pair", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/tenants/1/products/nope", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "productId")
	})
}

func (suite *RelationshipHandlerTestSuite) TestUnsubscribe() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockRepo.EXPECT().Unsubscribe(gomock.Any(), uint(1), uint(2), "operator").Return(nil)

		testutils.AssertNoContent(t, suite.httpSuite.MakeRequest(http.MethodDelete, "/api/tenants/1/products/2", nil))
	})

	suite.T().Run("No subscription", func(t *testing.T) {
		suite.mockRepo.EXPECT().Unsubscribe(gomock.Any(), uint(1), uint(3), "operator").Return(apperrors.ErrSubscriptionNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/tenants/1/products/3", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "subscription")
	})
}

func (suite *RelationshipHandlerTestSuite) TestComponentActivation() {
	suite.mockRepo.EXPECT().ActivateComponent(gomock.Any(), uint(1), uint(4), "operator").
		Return(&models.TenantComponent{TenantID: 1, ComponentID: 4, IsActive: true}, nil)
	suite.mockRepo.EXPECT().DeactivateComponent(gomock.Any(), uint(1), uint(4), "operator").Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/tenants/1/components/4", nil)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	testutils.AssertNoContent(suite.T(), suite.httpSuite.MakeRequest(http.MethodDelete, "/api/tenants/1/components/4", nil))
}

func (suite *RelationshipHandlerTestSuite) TestRecordDeployment() {
	suite.T().Run("Success", func(t *testing.T) {
		deployedOn := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		account := uint(7)
		suite.mockRepo.EXPECT().
			RecordDeployment(gomock.Any(), uint(2), uint(3), repository.DeploymentDetails{
				AwsAccountID:  &account,
				DeploymentURL: "https://p2.dev.example.com",
				Status:        "Deployed",
				DeployedOn:    &deployedOn,
				Actor:         "operator",
			}).
			Return(&models.ProductEnvironment{ProductID: 2, EnvironmentID: 3, Status: "Deployed"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/products/2/environments/3", map[string]interface{}{
			"awsAccountId":  7,
			"deploymentUrl": "https://p2.dev.example.com",
			"status":        "Deployed",
			"deployedOn":    "2024-03-01T12:00:00Z",
		})

		var body map[string]interface{}
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &body)
		assert.Equal(t, "Deployed", body["status"])
	})

	suite.T().Run("Malformed body", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/products/2/environments/3", "{")
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "body")
	})

	suite.T().Run("Oversized status", func(t *testing.T) {
		suite.mockRepo.EXPECT().RecordDeployment(gomock.Any(), uint(2), uint(3), gomock.Any()).
			Return(nil, apperrors.NewConstraintViolationError("product environment", "Status must be at most 50 characters"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/products/2/environments/3", map[string]interface{}{"status": "x"})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "at most 50")
	})
}

func TestRelationshipHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RelationshipHandlerTestSuite))
}
