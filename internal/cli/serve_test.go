package cli

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/sitemapgen/pkg/sitemap"
	"github.com/vvka-141/sitemapgen/pkg/sitemapgen"
)

func TestNewPreviewHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	entries := []sitemap.Entry{sitemap.NewEntry("/dummy", 0, 0.5)}

	for _, router := range sitemapgen.Routers() {
		t.Run(string(router), func(t *testing.T) {
			srv := httptest.NewServer(newPreviewHandler(router, "https://example.com/", entries, sitemap.Options{}))
			defer srv.Close()

			resp, err := http.Get(srv.URL + "/sitemap.xml")
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, resp.Header.Get("Content-Type"), sitemap.ContentType)
			assert.Contains(t, string(body), "<loc>https://example.com/dummy</loc>")

			missing, err := http.Get(srv.URL + "/other")
			require.NoError(t, err)
			missing.Body.Close()
			assert.Equal(t, http.StatusNotFound, missing.StatusCode)
		})
	}
}

func TestDisplayAddr(t *testing.T) {
	assert.Equal(t, "localhost:8080", displayAddr(":8080"))
	assert.Equal(t, "127.0.0.1:9000", displayAddr("127.0.0.1:9000"))
}
