package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/testgen/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestRoutes_HealthIsPublic(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestRoutes_LoginIsPublic(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/user/login", nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	// reachable without a token; the empty body decodes as EOF
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_DashboardsRequireAuth(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/data-quality/dashboards/"},
		{http.MethodPost, "/api/data-quality/dashboards/"},
		{http.MethodGet, "/api/data-quality/connections/"},
		{http.MethodGet, "/api/data-quality/filter-options"},
	}

	for _, route := range protected {
		req := httptest.NewRequest(route.method, route.path, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equalf(t, http.StatusUnauthorized, rec.Code, "%s %s must require auth", route.method, route.path)
	}
}

func TestRoutes_AuthorizedRequestReachesHandler(t *testing.T) {
	h, mocks := newTestHandler(t)
	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), "valid.jwt.token").
		Return(models.Token{Username: "admin"}, nil)
	mocks.scores.EXPECT().
		ListScoreCards(gomock.Any(), models.DashboardListFilter{}).
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/data-quality/dashboards/", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
}
