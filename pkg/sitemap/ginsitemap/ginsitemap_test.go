package ginsitemap

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/sitemapgen/pkg/sitemap"
)

func TestRegister(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	Register(r, "https://example.com", []sitemap.Entry{
		{Template: "/pricing", ChangeFreq: sitemap.Monthly, Priority: 0.7},
	}, sitemap.Options{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<loc>https://example.com/pricing</loc>")
	assert.Contains(t, rec.Body.String(), "<changefreq>monthly</changefreq>")
	assert.Contains(t, rec.Body.String(), "<priority>0.7</priority>")
}

func TestRegister_Group(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	Register(r.Group("/public"), "https://example.com", nil, sitemap.Options{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/public/sitemap.xml", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "</urlset>")
	assert.NotContains(t, rec.Body.String(), "<url>")
}
