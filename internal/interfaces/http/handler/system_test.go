package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	"github.com/alvarosc2000/BriefNest-Local/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveSystem(t *testing.T, register func(*gin.Engine, *SystemHandler), target string) dto.Response {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	register(engine, NewSystemHandler())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	return resp
}

func TestSystemHandler_GetSystemInfo(t *testing.T) {
	resp := serveSystem(t, func(e *gin.Engine, h *SystemHandler) {
		e.GET("/system/info", h.GetSystemInfo)
	}, "/system/info")

	info := resp.Data.(map[string]interface{})
	assert.Equal(t, "BriefNest API", info["name"])
	assert.Equal(t, "1.0.0", info["version"])
	assert.Equal(t, runtime.Version(), info["go_version"])

	uptime, err := time.ParseDuration(info["uptime"].(string))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, uptime, time.Duration(0))
}

func TestSystemHandler_Ping(t *testing.T) {
	before := time.Now().Add(-time.Second)

	resp := serveSystem(t, func(e *gin.Engine, h *SystemHandler) {
		e.GET("/system/ping", h.Ping)
	}, "/system/ping")

	pong := resp.Data.(map[string]interface{})
	assert.Equal(t, "pong", pong["message"])

	ts, err := time.Parse(time.RFC3339, pong["timestamp"].(string))
	require.NoError(t, err)
	assert.True(t, ts.After(before))
}

func TestNewSystemHandlerRecordsStart(t *testing.T) {
	h := NewSystemHandler()
	assert.WithinDuration(t, time.Now(), h.startTime, time.Second)
}
