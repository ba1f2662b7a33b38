package handlers_test

import (
	"net/http"
	"testing"

	"product-catalog-backend/internal/api/handlers"
	"product-catalog-backend/internal/database/models"
	apperrors "product-catalog-backend/internal/errors"
	"product-catalog-backend/internal/mocks"
	"product-catalog-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockRepo  *mocks.MockUserRepositoryInterface
	httpSuite *testutils.HTTPTestSuite
}

func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()
	handlers.NewUserHandler(suite.mockRepo, nil).Register(suite.httpSuite.Router.Group("/api/users"))
}

func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func admin() *models.User {
	return &models.User{
		BaseEntity: models.BaseEntity{ID: 1, Code: "ADMIN", Name: "System Administrator"},
		Email:      "admin@example.com",
		Password:   "hashed",
		IsActive:   true,
	}
}

func (suite *UserHandlerTestSuite) TestGetByEmail() {
	suite.T().Run("Found", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByEmail(gomock.Any(), "Admin@Example.com").Return(admin(), nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/users/email/Admin@Example.com", nil)

		var body map[string]interface{}
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &body)
		assert.Equal(t, "admin@example.com", body["email"])
		assert.NotContains(t, recorder.Body.String(), "hashed")
	})

	suite.T().Run("Missing", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, apperrors.ErrUserNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/users/email/nobody@example.com", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "user not found")
	})
}

func (suite *UserHandlerTestSuite) TestGetDetail() {
	user := admin()
	user.UserRoles = []models.UserRole{{UserID: 1, RoleID: 2, Role: &models.Role{BaseEntity: models.BaseEntity{ID: 2, Code: "ADMIN", Name: "Administrator"}}}}
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), uint(1)).Return(user, nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), suite.httpSuite.MakeRequest(http.MethodGet, "/api/users/1", nil), http.StatusOK, &body)

	roles := body["roles"].([]interface{})
	require.Len(suite.T(), roles, 1)
	assert.Equal(suite.T(), "Administrator", roles[0].(map[string]interface{})["name"])
}

func (suite *UserHandlerTestSuite) TestFilteredRoutes() {
	suite.mockRepo.EXPECT().GetByTeam(gomock.Any(), uint(3)).Return([]models.User{*admin()}, nil)
	suite.mockRepo.EXPECT().GetByRole(gomock.Any(), uint(2)).Return(nil, nil)

	var byTeam []map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), suite.httpSuite.MakeRequest(http.MethodGet, "/api/users/team/3", nil), http.StatusOK, &byTeam)
	assert.Len(suite.T(), byTeam, 1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/users/role/2", nil)
	assert.JSONEq(suite.T(), "[]", recorder.Body.String())
}

func (suite *UserHandlerTestSuite) TestWritesAreNotRouted() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/users", map[string]interface{}{"code": "X"})
	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
