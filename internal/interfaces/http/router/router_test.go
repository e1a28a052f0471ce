package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestNewRouterDefaults(t *testing.T) {
	r := NewRouter(gin.New())

	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)

	r = NewRouter(gin.New(), WithAPIVersion("v2"))
	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterSetupMountsGroups(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v1"))

	briefs := NewDomainGroup("briefs", "/briefs")
	briefs.GET("", func(c *gin.Context) { c.String(http.StatusOK, "brief list") })

	plans := NewDomainGroup("plans", "/plans")
	plans.GET("", func(c *gin.Context) { c.String(http.StatusOK, "plan list") })

	r.Register(briefs).Register(plans)
	assert.Len(t, r.registrars, 2)
	r.Setup()

	w := serve(engine, http.MethodGet, "/api/v1/briefs")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "brief list", w.Body.String())

	w = serve(engine, http.MethodGet, "/api/v1/plans")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "plan list", w.Body.String())
}

func TestRouterUseAppliesMiddlewareToAPIGroup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	r.Use(func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	})

	briefs := NewDomainGroup("briefs", "/briefs")
	briefs.GET("", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.Register(briefs).Setup()

	w := serve(engine, http.MethodGet, "/api/v1/briefs")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/briefs", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDomainGroupNameAndPrefix(t *testing.T) {
	g := NewDomainGroup("checkout", "/checkout")
	assert.Equal(t, "checkout", g.Name())
	assert.Equal(t, "/checkout", g.Prefix())
}

func TestDomainGroupHTTPMethods(t *testing.T) {
	engine := gin.New()
	g := NewDomainGroup("briefs", "/briefs")
	g.GET("", func(c *gin.Context) { c.String(http.StatusOK, "list") }).
		POST("", func(c *gin.Context) { c.String(http.StatusCreated, "created") }).
		PUT("/:id", func(c *gin.Context) { c.String(http.StatusOK, "updated") }).
		PATCH("/:id", func(c *gin.Context) { c.String(http.StatusOK, "patched") }).
		DELETE("/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	g.RegisterRoutes(engine.Group("/api/v1"))

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/api/v1/briefs").Code)
	assert.Equal(t, http.StatusCreated, serve(engine, http.MethodPost, "/api/v1/briefs").Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodPut, "/api/v1/briefs/123").Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodPatch, "/api/v1/briefs/123").Code)
	assert.Equal(t, http.StatusNoContent, serve(engine, http.MethodDelete, "/api/v1/briefs/123").Code)
}

func TestDomainGroupMiddleware(t *testing.T) {
	engine := gin.New()
	g := NewDomainGroup("briefs", "/briefs")
	g.Use(func(c *gin.Context) {
		c.Header("X-Domain", "briefs")
		c.Next()
	})
	g.GET("", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	g.RegisterRoutes(engine.Group("/api/v1"))

	w := serve(engine, http.MethodGet, "/api/v1/briefs")
	assert.Equal(t, "briefs", w.Header().Get("X-Domain"))
}

func TestDomainGroupSubgroups(t *testing.T) {
	engine := gin.New()
	g := NewDomainGroup("billing", "/billing")

	plans := g.Group("plans", "/plans")
	plans.GET("", func(c *gin.Context) { c.String(http.StatusOK, "plans") })

	checkout := g.Group("checkout", "/checkout")
	checkout.POST("", func(c *gin.Context) { c.String(http.StatusOK, "session") })

	g.RegisterRoutes(engine.Group("/api/v1"))

	w := serve(engine, http.MethodGet, "/api/v1/billing/plans")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "plans", w.Body.String())

	w = serve(engine, http.MethodPost, "/api/v1/billing/checkout")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "session", w.Body.String())
}
