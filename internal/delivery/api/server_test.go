package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"passmanager/config"
	"passmanager/internal/delivery/api/router"
	"passmanager/internal/delivery/api/router/handler"
	deliverycontext "passmanager/internal/delivery/context"
	mockUsecase "passmanager/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.Port = 0
	cfg.HTTP.MaxRequestBodySize = "1KB"

	return cfg
}

func testRouterParams(t *testing.T) router.RouterParams {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return router.RouterParams{
		UserHandler:     handler.NewUserHandler(mockUsecase.NewMockUserUsecase(t), logger),
		PasswordHandler: handler.NewPasswordHandler(mockUsecase.NewMockPasswordUsecase(t), logger),
	}
}

func TestNewEcho_HealthCarriesRequestID(t *testing.T) {
	e := newEcho(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)), testRouterParams(t))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.Contains(t, rec.Body.String(), rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestNewEcho_BodyLimit(t *testing.T) {
	e := newEcho(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)), testRouterParams(t))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(strings.Repeat("a", 4096)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestNewEcho_UnknownRoute(t *testing.T) {
	e := newEcho(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)), testRouterParams(t))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestNewServer_RegistersStopHook(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	srv, err := NewServer(ServerParams{
		Lc:           lc,
		Cfg:          testConfig(),
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		RouterParams: testRouterParams(t),
	})

	assert.NoError(t, err)
	assert.NotNil(t, srv)
	lc.RequireStart().RequireStop()
}
