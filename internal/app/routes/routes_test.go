package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/memberapi/internal/app/controllers"
	"github.com/yigit/memberapi/internal/app/models"
	"github.com/yigit/memberapi/internal/app/services/mocks"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockMemberService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := mocks.NewMockMemberService(gomock.NewController(t))

	r := gin.New()
	SetupRouter(r, controllers.NewMemberController(svc), controllers.NewHealthController(okPinger{}, time.Second))
	SetupSwagger(r)
	SetupMetrics(r, prometheus.NewRegistry())
	return r, svc
}

func TestSetupRouter_RegistersRoutes(t *testing.T) {
	r, _ := newTestRouter(t)

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /",
		"GET /memberOne",
		"GET /members/:id",
		"GET /ping",
		"GET /health",
		"GET /swagger/*any",
		"GET /metrics",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestSetupRouter_ServesMembers(t *testing.T) {
	r, svc := newTestRouter(t)
	svc.EXPECT().FindAll(gomock.Any()).Return([]*models.Member{}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestSetupSwagger_ServesDocJSON(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/memberOne"`)
	assert.Contains(t, w.Body.String(), `"Member API"`)
}
