package emit

import (
	"go/format"
	"go/parser"
	"go/token"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/sitemapgen/pkg/sitemap"
	"github.com/vvka-141/sitemapgen/pkg/sitemapgen"
)

func scanned(dir, typeName, template string, freq sitemap.ChangeFreq, priority float64) sitemapgen.ScannedEntry {
	return sitemapgen.ScannedEntry{
		Declaration: sitemapgen.Declaration{Dir: dir, TypeName: typeName},
		Entry:       sitemap.Entry{Template: template, ChangeFreq: freq, Priority: priority},
	}
}

func imports(t *testing.T, src []byte) []string {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "sitemap_gen.go", src, parser.ImportsOnly)
	require.NoError(t, err)

	var paths []string
	for _, imp := range f.Imports {
		p, err := strconv.Unquote(imp.Path.Value)
		require.NoError(t, err)
		paths = append(paths, p)
	}
	return paths
}

func TestSource_HTTP(t *testing.T) {
	src, err := Source(Params{
		Package: "pages",
		Router:  sitemapgen.RouterHTTP,
		Entries: []sitemapgen.ScannedEntry{scanned("web/pages", "Dummy", "/dummy", sitemap.Always, 0.5)},
	})
	require.NoError(t, err)
	s := string(src)

	assert.Regexp(t, `^// Code generated by sitemapgen\. DO NOT EDIT\.\n\npackage pages\n`, s)
	assert.Contains(t, s, `{Template: "/dummy", ChangeFreq: sitemap.Always, Priority: 0.5}, // web/pages.Dummy`)
	assert.Contains(t, s, "var sitemapOptions = sitemap.Options{EscapeXML: false}")
	assert.Contains(t, s, "func MapSitemap(mux *http.ServeMux, baseURL string) http.Handler {")
	assert.Contains(t, s, "return sitemap.Register(mux, baseURL, sitemapEntries, sitemapOptions)")
	assert.Equal(t, []string{"net/http", sitemapgen.RuntimeImportPath}, imports(t, src))
}

func TestSource_Gin(t *testing.T) {
	src, err := Source(Params{
		Package:   "web",
		Router:    sitemapgen.RouterGin,
		EscapeXML: true,
		Entries:   []sitemapgen.ScannedEntry{scanned(".", "Pricing", "/pricing", sitemap.Monthly, 1)},
	})
	require.NoError(t, err)
	s := string(src)

	assert.Contains(t, s, `{Template: "/pricing", ChangeFreq: sitemap.Monthly, Priority: 1}, // Pricing`)
	assert.Contains(t, s, "sitemap.Options{EscapeXML: true}")
	assert.Contains(t, s, "func MapSitemap(r gin.IRoutes, baseURL string) gin.IRoutes {")
	assert.Contains(t, s, "return ginsitemap.Register(r, baseURL, sitemapEntries, sitemapOptions)")
	assert.Equal(t, []string{"github.com/gin-gonic/gin", sitemapgen.RuntimeImportPath, sitemapgen.GinRuntimeImportPath}, imports(t, src))
}

func TestSource_NoEntries(t *testing.T) {
	for _, router := range sitemapgen.Routers() {
		t.Run(string(router), func(t *testing.T) {
			src, err := Source(Params{Package: "pages", Router: router})
			require.NoError(t, err)

			_, err = parser.ParseFile(token.NewFileSet(), "sitemap_gen.go", src, 0)
			require.NoError(t, err)
			assert.Contains(t, string(src), "var sitemapEntries = []sitemap.Entry{")
			assert.NotContains(t, string(src), "Template:")
		})
	}
}

func TestSource_QuotesTemplates(t *testing.T) {
	src, err := Source(Params{
		Package: "pages",
		Entries: []sitemapgen.ScannedEntry{scanned(".", "Q", "/say/\"hi\"\\n", sitemap.Daily, 0.25)},
	})
	require.NoError(t, err)
	assert.Contains(t, string(src), `Template: "/say/\"hi\"\\n"`)
}

func TestSource_PreservesOrderAndIsFormatted(t *testing.T) {
	entries := []sitemapgen.ScannedEntry{
		scanned(".", "C", "/c", sitemap.Never, 0),
		scanned(".", "A", "/a", sitemap.Hourly, 0.75),
		scanned("blog", "B", "/blog/{slug}", sitemap.Weekly, 0.3),
	}
	src, err := Source(Params{Package: "pages", Entries: entries})
	require.NoError(t, err)

	formatted, err := format.Source(src)
	require.NoError(t, err)
	assert.Equal(t, string(formatted), string(src), "output is already gofmt-clean")

	s := string(src)
	ic := indexOf(s, `"/c"`)
	ia := indexOf(s, `"/a"`)
	ib := indexOf(s, `"/blog/{slug}"`)
	assert.True(t, ic < ia && ia < ib, "entries keep scan order")

	again, err := Source(Params{Package: "pages", Entries: entries})
	require.NoError(t, err)
	assert.Equal(t, src, again, "byte-identical across runs")
}

func TestSource_Errors(t *testing.T) {
	_, err := Source(Params{Package: "pages", Router: "chi"})
	assert.ErrorIs(t, err, sitemapgen.ErrUnsupportedRouter)

	for _, pkg := range []string{"", "web-app", "func", "1pages"} {
		_, err := Source(Params{Package: pkg})
		assert.ErrorIs(t, err, sitemapgen.ErrInvalidConfig, pkg)
	}
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
