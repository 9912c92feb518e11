// Package ginsitemap mounts the sitemap handler on a gin router.
// Generated code targets this package when the project is configured with
// router: gin.
package ginsitemap

import (
	"github.com/gin-gonic/gin"

	"github.com/vvka-141/sitemapgen/pkg/sitemap"
)

// Handler adapts sitemap.Handler to a gin.HandlerFunc.
func Handler(baseURL string, entries []sitemap.Entry, opts sitemap.Options) gin.HandlerFunc {
	return gin.WrapH(sitemap.NewHandler(baseURL, entries, opts))
}

// Register mounts the sitemap at GET /sitemap.xml and returns r for chaining.
func Register(r gin.IRoutes, baseURL string, entries []sitemap.Entry, opts sitemap.Options) gin.IRoutes {
	return r.GET("/"+sitemap.Path, Handler(baseURL, entries, opts))
}
