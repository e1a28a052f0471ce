package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newCORSRouter(cfg CORSConfig) *gin.Engine {
	engine := gin.New()
	engine.Use(CORSWithConfig(cfg))
	engine.GET("/briefs", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return engine
}

func corsGet(engine *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/briefs", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestCORS_EmptyWhitelistByDefault(t *testing.T) {
	engine := gin.New()
	engine.Use(CORS())
	engine.GET("/briefs", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := corsGet(engine, "http://unknown.example")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	// same-origin requests carry no Origin header and pass untouched
	w = corsGet(engine, "")
	assert.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodOptions, "/briefs", nil)
	req.Header.Set("Origin", "http://unknown.example")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSWithConfig_Whitelist(t *testing.T) {
	engine := newCORSRouter(CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000", "https://app.briefnest.example"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	})

	w := corsGet(engine, "http://localhost:3000")
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = corsGet(engine, "https://app.briefnest.example")
	assert.Equal(t, "https://app.briefnest.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = corsGet(engine, "http://evil.example")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSWithConfig_WildcardNeverSendsCredentials(t *testing.T) {
	engine := newCORSRouter(CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	})

	w := corsGet(engine, "http://any.example")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"),
		"credentials with wildcard origin would be rejected by browsers")
}

func TestCORSWithConfig_HeaderValues(t *testing.T) {
	engine := newCORSRouter(CORSConfig{
		AllowOrigins:  []string{"http://localhost:3000"},
		AllowMethods:  []string{"GET"},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{"X-Request-ID", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	})

	w := corsGet(engine, "http://localhost:3000")
	assert.Equal(t, "X-Request-ID, Content-Disposition", w.Header().Get("Access-Control-Expose-Headers"))
	assert.Equal(t, "43200", w.Header().Get("Access-Control-Max-Age"))
}

func TestCORSWithConfig_Preflight(t *testing.T) {
	engine := newCORSRouter(CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{"GET", "POST", "DELETE"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	})

	req := httptest.NewRequest(http.MethodOptions, "/briefs", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, DELETE", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization", w.Header().Get("Access-Control-Allow-Headers"))

	req = httptest.NewRequest(http.MethodOptions, "/briefs", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestID(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/briefs", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/briefs", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, w.Header().Get("X-Request-ID"), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/briefs", nil)
	req.Header.Set("X-Request-ID", "caller-supplied-id")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, "caller-supplied-id", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "caller-supplied-id", w.Body.String())
}

func TestNewRequestID(t *testing.T) {
	first := newRequestID()
	second := newRequestID()

	assert.Len(t, first, 32)
	assert.NotEqual(t, first, second)
}

func TestSecure_Defaults(t *testing.T) {
	engine := gin.New()
	engine.Use(Secure())
	engine.GET("/briefs", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/briefs", nil))

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", w.Header().Get("X-XSS-Protection"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))

	csp := w.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "default-src 'self'")
	assert.Contains(t, csp, "frame-ancestors 'none'")

	assert.Empty(t, w.Header().Get("Strict-Transport-Security"), "HSTS stays off until HTTPS is terminated here")
	assert.Contains(t, w.Header().Get("Permissions-Policy"), "camera=()")
}

func TestSecureWithConfig_HSTS(t *testing.T) {
	serve := func(cfg SecurityConfig) *httptest.ResponseRecorder {
		engine := gin.New()
		engine.Use(SecureWithConfig(cfg))
		engine.GET("/briefs", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/briefs", nil))
		return w
	}

	w := serve(SecurityConfig{HSTSEnabled: true, HSTSMaxAge: 63072000, HSTSIncludeSubdomains: true, HSTSPreload: true})
	assert.Equal(t, "max-age=63072000; includeSubDomains; preload", w.Header().Get("Strict-Transport-Security"))

	w = serve(SecurityConfig{HSTSEnabled: true, HSTSMaxAge: 31536000})
	assert.Equal(t, "max-age=31536000", w.Header().Get("Strict-Transport-Security"))

	w = serve(SecurityConfig{})
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
	assert.Empty(t, w.Header().Get("Content-Security-Policy"))
	assert.Empty(t, w.Header().Get("Permissions-Policy"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestSecureWithConfig_CustomDirectives(t *testing.T) {
	engine := gin.New()
	engine.Use(SecureWithConfig(SecurityConfig{
		CSPEnabled:                 true,
		CSPDirective:               "default-src 'none'",
		PermissionsPolicyEnabled:   true,
		PermissionsPolicyDirective: "geolocation=(self)",
	}))
	engine.GET("/briefs", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/briefs", nil))

	assert.Equal(t, "default-src 'none'", w.Header().Get("Content-Security-Policy"))
	assert.Equal(t, "geolocation=(self)", w.Header().Get("Permissions-Policy"))
}

func TestDefaultCORSConfig(t *testing.T) {
	cfg := DefaultCORSConfig()

	assert.Empty(t, cfg.AllowOrigins, "origins must be configured explicitly")
	assert.Contains(t, cfg.AllowMethods, "DELETE")
	assert.Contains(t, cfg.AllowHeaders, "Authorization")
	assert.Contains(t, cfg.ExposeHeaders, "Content-Disposition")
	assert.True(t, cfg.AllowCredentials)
	assert.Equal(t, 12*time.Hour, cfg.MaxAge)
}
