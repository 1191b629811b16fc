package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/TukaHeba/Task-System/internal/adapter/http/handlers"
	"github.com/TukaHeba/Task-System/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type pingerStub struct {
	err error
}

func (p pingerStub) PingContext(context.Context) error {
	return p.err
}

func newHealthRouter(pinger handlers.Pinger) *gin.Engine {
	handler := handlers.NewHealthHandler(pinger)
	router := gin.New()
	router.Use(middleware.LanguageMiddleware())
	router.GET("/api/health", handler.CheckHealth)
	router.GET("/api/health/report", handler.CheckHealthReport)
	return router
}

func TestHealthHandler_CheckHealth(t *testing.T) {
	rec := serve(newHealthRouter(pingerStub{}), http.MethodGet, "/api/health", "", "en")

	require.Equal(t, http.StatusOK, rec.Code)
	var got handlers.HealthBasic
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, handlers.StatusOk, got.Message)
	require.NotEmpty(t, got.AppName)
}

func TestHealthHandler_CheckHealth_DatabaseDown(t *testing.T) {
	rec := serve(newHealthRouter(pingerStub{err: errors.New("refused")}), http.MethodGet, "/api/health", "", "en")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var got handlers.HealthBasic
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, handlers.StatusDown, got.Message)
}

func TestHealthHandler_CheckHealthReport(t *testing.T) {
	rec := serve(newHealthRouter(pingerStub{err: errors.New("refused")}), http.MethodGet, "/api/health/report", "", "fr")

	require.Equal(t, http.StatusOK, rec.Code)
	var got handlers.HealthAdvanced
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "fr", got.Language)
	require.Equal(t, handlers.StatusDown, got.Status.Mysql)
}
