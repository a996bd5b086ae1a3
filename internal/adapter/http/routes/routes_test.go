package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"checkmaster/internal/adapter/http/handlers"
	"checkmaster/internal/adapter/persistence/memory"
	"checkmaster/internal/domain/evaluation"
	"checkmaster/internal/infrastructure/auth"
	"checkmaster/internal/infrastructure/imageproc"
	"checkmaster/internal/infrastructure/metrics"
	"checkmaster/internal/usecase"
	"checkmaster/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, issuer interfaces.ITokenIssuer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), nil)
	templates := usecase.NewTemplateUseCase(store, evaluation.Policy{}, nil, m)
	inspections := usecase.NewInspectionUseCase(store, templates, evaluation.Policy{}, nil, m)
	scans := usecase.NewVehicleScanUseCase(nil, nil, imageproc.NewNormalizer(), time.Second, "photos", nil, m)
	payments := usecase.NewOrderPaymentUseCase(store, inspections, nil, usecase.PaymentOptions{Mock: true}, nil, m)
	sessions := usecase.NewAuthUseCase(issuer, nil)

	return New(Options{
		Handlers: Handlers{
			Templates:    handlers.NewTemplateHandler(templates, nil),
			Inspections:  handlers.NewInspectionHandler(inspections, nil),
			Scan:         handlers.NewScanHandler(scans, nil),
			Reports:      handlers.NewReportHandler(usecase.NewReportUseCase(store, nil, m), nil),
			OrderPayment: handlers.NewOrderPaymentHandler(payments, true, nil),
			Auth:         handlers.NewAuthHandler(sessions, nil),
		},
		Sessions:       sessions,
		Metrics:        m,
		AllowedOrigins: []string{"*"},
	})
}

func do(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoutes_Public(t *testing.T) {
	issuer, err := auth.NewJWTIssuer("secret", time.Hour)
	require.NoError(t, err)
	r := newTestRouter(t, issuer)

	w := do(r, http.MethodGet, "/v1/ping", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())

	w = do(r, http.MethodGet, "/v1/auth/session", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/metrics", "", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/v1/nope", "", "").Code)
}

func TestRoutes_RequireSession(t *testing.T) {
	issuer, err := auth.NewJWTIssuer("secret", time.Hour)
	require.NoError(t, err)
	r := newTestRouter(t, issuer)

	for _, path := range []string{"/v1/templates", "/v1/orders", "/v1/dashboard", "/v1/reports/clients"} {
		assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, path, "", "").Code, path)
	}
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/v1/auth/logout", "", "").Code)

	w := do(r, http.MethodPost, "/v1/auth/login", `{"email":"Ana@Frota.com"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	assert.Equal(t, "ana@frota.com", login.Email)
	require.NotEmpty(t, login.Token)

	w = do(r, http.MethodGet, "/v1/templates", "", login.Token)
	require.Equal(t, http.StatusOK, w.Code)
	var templates []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &templates))
	assert.Len(t, templates, 2)

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodPost, "/v1/auth/logout", "", login.Token).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/v1/templates", "", "garbage").Code)
}

func TestRoutes_DevSession(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/v1/templates/preset_man", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/v1/runs/finish", `{"template_id":"preset_man","client_name":"Frota Norte","values":{"m1":"ABC1D23","m2":true,"m3":80}}`, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(r, http.MethodPost, "/v1/scan", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/v1/reports/clients/export?format=csv", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Financeiro_CheckMaster_")
	assert.Contains(t, w.Body.String(), "Frota Norte,80.00,1,")
}

func TestCORSConfig(t *testing.T) {
	_, ok := corsConfig(nil)
	assert.False(t, ok)

	c, ok := corsConfig([]string{"*"})
	require.True(t, ok)
	assert.True(t, c.AllowAllOrigins)
	assert.Contains(t, c.AllowHeaders, "Authorization")

	c, ok = corsConfig([]string{"https://app.checkmaster.dev"})
	require.True(t, ok)
	assert.False(t, c.AllowAllOrigins)
	assert.Equal(t, []string{"https://app.checkmaster.dev"}, c.AllowOrigins)
}
