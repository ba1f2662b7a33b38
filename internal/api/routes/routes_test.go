package routes_test

import (
	"fmt"
	"net/http"
	"testing"

	"product-catalog-backend/internal/api/middleware"
	"product-catalog-backend/internal/api/routes"
	"product-catalog-backend/internal/config"
	"product-catalog-backend/internal/metrics"
	"product-catalog-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// CatalogAPITestSuite drives the full router against an in-memory store
type CatalogAPITestSuite struct {
	suite.Suite
	api *testutils.HTTPTestSuite
}

func (s *CatalogAPITestSuite) SetupTest() {
	db := testutils.NewSQLiteDB(s.T())
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000"}}
	s.api = testutils.NewHTTPTest(routes.SetupRoutes(db, cfg, metrics.New("catalog_test"), "test"))
	s.api.Actor = "e2e"
}

// create posts body to path and returns the new id
func (s *CatalogAPITestSuite) create(path string, body map[string]interface{}) uint {
	recorder := s.api.MakeRequest(http.MethodPost, path, body)
	require.Equal(s.T(), http.StatusCreated, recorder.Code, recorder.Body.String())

	var created struct {
		ID uint `json:"id"`
	}
	testutils.ParseJSONResponse(s.T(), recorder, &created)
	require.NotZero(s.T(), created.ID)
	assert.Equal(s.T(), fmt.Sprintf("%s/%d", path, created.ID), recorder.Header().Get("Location"))
	return created.ID
}

func (s *CatalogAPITestSuite) codes(path string) []string {
	var rows []struct {
		Code string `json:"code"`
	}
	testutils.AssertJSONResponse(s.T(), s.api.MakeRequest(http.MethodGet, path, nil), http.StatusOK, &rows)
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Code
	}
	return out
}

func (s *CatalogAPITestSuite) TestProductLifecycle() {
	id := s.create("/api/products", map[string]interface{}{"code": "P1", "name": "Prod One", "isMultiTenant": true})

	assert.Contains(s.T(), s.codes("/api/products/multi-tenant"), "P1")
	assert.NotContains(s.T(), s.codes("/api/products/single-tenant"), "P1")

	recorder := s.api.MakeRequest(http.MethodPut, fmt.Sprintf("/api/products/%d", id), map[string]interface{}{
		"id": id + 1, "code": "P1", "name": "Prod One",
	})
	assert.Equal(s.T(), http.StatusBadRequest, recorder.Code)

	testutils.AssertNoContent(s.T(), s.api.MakeRequest(http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil))
	assert.Equal(s.T(), http.StatusNotFound, s.api.MakeRequest(http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil).Code)
}

func (s *CatalogAPITestSuite) TestReplacePreservesCreatedAudit() {
	id := s.create("/api/environments", map[string]interface{}{"code": "QA", "name": "QA"})

	var before map[string]interface{}
	testutils.AssertJSONResponse(s.T(), s.api.MakeRequest(http.MethodGet, fmt.Sprintf("/api/environments/%d", id), nil), http.StatusOK, &before)
	assert.Equal(s.T(), "e2e", before["createdBy"])

	testutils.AssertNoContent(s.T(), s.api.MakeRequest(http.MethodPut, fmt.Sprintf("/api/environments/%d", id), map[string]interface{}{
		"id": id, "code": "QA", "name": "Quality", "createdBy": "intruder", "modifiedBy": "editor",
	}))

	var after map[string]interface{}
	testutils.AssertJSONResponse(s.T(), s.api.MakeRequest(http.MethodGet, fmt.Sprintf("/api/environments/%d", id), nil), http.StatusOK, &after)
	assert.Equal(s.T(), "Quality", after["name"])
	assert.Equal(s.T(), "e2e", after["createdBy"])
	assert.Equal(s.T(), before["createdDate"], after["createdDate"])
	assert.Equal(s.T(), "editor", after["modifiedBy"])
}

func (s *CatalogAPITestSuite) TestConstraintViolations() {
	recorder := s.api.MakeRequest(http.MethodPost, "/api/products", map[string]interface{}{"name": "No code"})
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "Code is required")

	recorder = s.api.MakeRequest(http.MethodPost, "/api/components", map[string]interface{}{
		"code": "ORPHAN", "name": "Orphan", "productId": 999,
	})
	assert.Equal(s.T(), http.StatusBadRequest, recorder.Code, recorder.Body.String())
}

func (s *CatalogAPITestSuite) TestTenantRelationships() {
	productID := s.create("/api/products", map[string]interface{}{"code": "P2", "name": "Two"})
	componentID := s.create("/api/components", map[string]interface{}{"code": "API", "name": "Api", "productId": productID})
	tenantID := s.create("/api/tenants", map[string]interface{}{"code": "ACME", "name": "Acme"})

	subscribe := fmt.Sprintf("/api/tenants/%d/products/%d", tenantID, productID)
	assert.Equal(s.T(), http.StatusOK, s.api.MakeRequest(http.MethodPost, subscribe, nil).Code)
	assert.Equal(s.T(), []string{"P2"}, s.codes(fmt.Sprintf("/api/products/tenant/%d", tenantID)))
	assert.Equal(s.T(), []string{"ACME"}, s.codes(fmt.Sprintf("/api/tenants/product/%d", productID)))

	activate := fmt.Sprintf("/api/tenants/%d/components/%d", tenantID, componentID)
	assert.Equal(s.T(), http.StatusOK, s.api.MakeRequest(http.MethodPost, activate, nil).Code)
	assert.Equal(s.T(), []string{"API"}, s.codes(fmt.Sprintf("/api/components/tenant/%d/enabled", tenantID)))

	testutils.AssertNoContent(s.T(), s.api.MakeRequest(http.MethodDelete, activate, nil))
	assert.Empty(s.T(), s.codes(fmt.Sprintf("/api/components/tenant/%d/enabled", tenantID)))
	assert.Equal(s.T(), []string{"API"}, s.codes(fmt.Sprintf("/api/components/tenant/%d", tenantID)))

	testutils.AssertNoContent(s.T(), s.api.MakeRequest(http.MethodDelete, subscribe, nil))
	assert.Empty(s.T(), s.codes(fmt.Sprintf("/api/products/tenant/%d", tenantID)))

	// deleting the tenant removes its join rows
	testutils.AssertNoContent(s.T(), s.api.MakeRequest(http.MethodDelete, fmt.Sprintf("/api/tenants/%d", tenantID), nil))
	assert.Empty(s.T(), s.codes(fmt.Sprintf("/api/components/tenant/%d", tenantID)))
}

func (s *CatalogAPITestSuite) TestDeploymentRecord() {
	productID := s.create("/api/products", map[string]interface{}{"code": "P3", "name": "Three"})
	envID := s.create("/api/environments", map[string]interface{}{"code": "STAGE", "name": "Staging"})

	path := fmt.Sprintf("/api/products/%d/environments/%d", productID, envID)
	var row map[string]interface{}
	testutils.AssertJSONResponse(s.T(), s.api.MakeRequest(http.MethodPut, path, map[string]interface{}{}), http.StatusOK, &row)
	assert.Equal(s.T(), "Not Deployed", row["status"])

	assert.Equal(s.T(), []string{"P3"}, s.codes(fmt.Sprintf("/api/products/environment/%d", envID)))

	var detail map[string]interface{}
	testutils.AssertJSONResponse(s.T(), s.api.MakeRequest(http.MethodGet, fmt.Sprintf("/api/products/%d", productID), nil), http.StatusOK, &detail)
	deployments := detail["productEnvironments"].([]interface{})
	require.Len(s.T(), deployments, 1)
	assert.Equal(s.T(), "STAGE", deployments[0].(map[string]interface{})["environment"].(map[string]interface{})["code"])
}

func (s *CatalogAPITestSuite) TestAmbientRoutes() {
	recorder := s.api.MakeRequest(http.MethodGet, "/health", nil)
	assert.Equal(s.T(), http.StatusOK, recorder.Code)
	assert.NotEmpty(s.T(), recorder.Header().Get(middleware.RequestIDHeader))

	recorder = s.api.MakeRequest(http.MethodGet, "/metrics", nil)
	assert.Equal(s.T(), http.StatusOK, recorder.Code)
	assert.Contains(s.T(), recorder.Body.String(), "catalog_test_http_requests_total")

	testutils.AssertErrorResponse(s.T(), s.api.MakeRequest(http.MethodGet, "/api/nothing", nil), http.StatusNotFound, "route not found")
}

func TestCatalogAPITestSuite(t *testing.T) {
	suite.Run(t, new(CatalogAPITestSuite))
}
