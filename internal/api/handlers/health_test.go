package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"product-catalog-backend/internal/api/handlers"
	"product-catalog-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthRouter(t *testing.T, pingErr error) *testutils.HTTPTestSuite {
	db, mock := testutils.NewMockDB(t)
	expectation := mock.ExpectPing()
	if pingErr != nil {
		expectation.WillReturnError(pingErr)
	}

	httpSuite := testutils.SetupHTTPTest()
	handler := handlers.NewHealthHandler(db, "test")
	httpSuite.Router.GET("/health", handler.Health)
	httpSuite.Router.GET("/health/ready", handler.Ready)
	httpSuite.Router.GET("/health/live", handler.Live)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	return httpSuite
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		httpSuite := newHealthRouter(t, nil)

		var body handlers.HealthResponse
		testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health", nil), http.StatusOK, &body)
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "ok", body.Services["database"])
		assert.Equal(t, "test", body.Version)
		assert.False(t, body.Timestamp.IsZero())
	})

	t.Run("database down", func(t *testing.T) {
		httpSuite := newHealthRouter(t, errors.New("connection refused"))

		var body handlers.HealthResponse
		testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health", nil), http.StatusServiceUnavailable, &body)
		assert.Equal(t, "unhealthy", body.Status)
		assert.Contains(t, body.Services["database"], "connection refused")
	})
}

func TestReady(t *testing.T) {
	httpSuite := newHealthRouter(t, errors.New("timeout"))

	var body map[string]interface{}
	testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil), http.StatusServiceUnavailable, &body)
	assert.Equal(t, false, body["ready"])
}

func TestLive(t *testing.T) {
	db, _ := testutils.NewMockDB(t)
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/health/live", handlers.NewHealthHandler(db, "test").Live)

	var body map[string]interface{}
	testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health/live", nil), http.StatusOK, &body)
	require.Equal(t, true, body["alive"])
}
