package scan

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/sitemapgen/internal/files/filesystem"
	"github.com/vvka-141/sitemapgen/pkg/sitemap"
	"github.com/vvka-141/sitemapgen/pkg/sitemapgen"
)

func newTestScanner(t *testing.T, opts Options) (*Scanner, *filesystem.MemoryFileSystem) {
	t.Helper()
	mfs := filesystem.NewMemoryFileSystem("/project")
	s, err := NewScannerWithFS(mfs, opts)
	require.NoError(t, err)
	return s, mfs
}

// page builds a file declaring one type with the given doc lines.
func page(pkg, typeName string, doc ...string) string {
	var b strings.Builder
	b.WriteString("package " + pkg + "\n\n")
	for _, d := range doc {
		b.WriteString("// " + d + "\n")
	}
	b.WriteString("type " + typeName + " struct{}\n")
	return b.String()
}

func scanOne(t *testing.T, doc ...string) sitemapgen.ScanResult {
	t.Helper()
	s, mfs := newTestScanner(t, Options{})
	mfs.AddFile("page.go", page("pages", "Page", doc...))

	result, err := s.Scan(context.Background(), "/project")
	require.NoError(t, err)
	return result
}

func TestNewScannerWithFS_NilFilesystem(t *testing.T) {
	assert.Panics(t, func() { _, _ = NewScannerWithFS(nil, Options{}) })
}

func TestNewScanner_InvalidExcludePattern(t *testing.T) {
	_, err := NewScannerWithFS(filesystem.NewMemoryFileSystem("/p"), Options{Exclude: []string{"["}})
	require.Error(t, err)
	assert.ErrorIs(t, err, sitemapgen.ErrInvalidConfig)
}

func TestScan_EndToEndDefaults(t *testing.T) {
	result := scanOne(t, "Dummy page.", "", `@router.Route("/dummy")`, "@SitemapUrl")

	require.Len(t, result.Entries, 1)
	assert.Empty(t, result.Omissions)
	assert.Equal(t, sitemap.Entry{Template: "/dummy", ChangeFreq: sitemap.Always, Priority: 0.5}, result.Entries[0].Entry)

	doc := string(sitemap.Document("https://example.com/", result.SitemapEntries(), sitemap.Options{}))
	assert.Contains(t, doc, "<loc>https://example.com/dummy</loc>")
	assert.Contains(t, doc, "<changefreq>always</changefreq>")
	assert.Contains(t, doc, "<priority>0.5</priority>")
}

func TestScan_ValidShapeProducesOneEntry(t *testing.T) {
	result := scanOne(t, `@router.Route("/products/{id:int}")`, "@SitemapUrl(sitemap.Weekly, 0.8)")

	require.Len(t, result.Entries, 1)
	e := result.Entries[0]
	assert.Equal(t, "/products/{id:int}", e.Entry.Template, "template is taken verbatim")
	assert.Equal(t, sitemap.Weekly, e.Entry.ChangeFreq)
	assert.Equal(t, 0.8, e.Entry.Priority)

	assert.Equal(t, ".", e.Dir)
	assert.Equal(t, "Page", e.TypeName)
	assert.Equal(t, "page.go", e.File)
	assert.Equal(t, 5, e.Line)
}

func TestScan_PartialAnnotations(t *testing.T) {
	tests := []struct {
		name string
		doc  []string
	}{
		{"route only", []string{`@router.Route("/a")`}},
		{"sitemap only", []string{`@SitemapUrl(1, 0.5)`}},
		{"unqualified route is not a route", []string{`@Route("/a")`, `@SitemapUrl(1, 0.5)`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scanOne(t, tt.doc...)
			assert.Empty(t, result.Entries)
			require.Len(t, result.Omissions, 1)
			assert.Equal(t, sitemapgen.OmissionPartial, result.Omissions[0].Reason)
		})
	}
}

func TestScan_UnannotatedTypesAreIgnored(t *testing.T) {
	result := scanOne(t, "Page is a plain type.", "@Deprecated")
	assert.Empty(t, result.Entries)
	assert.Empty(t, result.Omissions)
}

func TestScan_SitemapAnnotationSpellings(t *testing.T) {
	for _, name := range []string{"SitemapUrl", "sitemap.SitemapUrl"} {
		t.Run(name, func(t *testing.T) {
			result := scanOne(t, `@router.Route("/a")`, "@"+name+"(2, 1)")
			require.Len(t, result.Entries, 1)
			assert.Equal(t, sitemap.Daily, result.Entries[0].Entry.ChangeFreq)
		})
	}
}

func TestScan_ChangeFreqOrdinals(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"0", "always"},
		{"1", "hourly"},
		{"2", "daily"},
		{"3", "weekly"},
		{"4", "monthly"},
		{"5", "yearly"},
		{"6", "never"},
		{"7", "always"},
		{"-1", "always"},
		{"1000000000000000000000", "always"},
		{"sitemap.Never", "never"},
		{"Hourly", "hourly"},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			result := scanOne(t, `@router.Route("/a")`, "@SitemapUrl("+tt.arg+", 0.5)")
			require.Len(t, result.Entries, 1)
			assert.Equal(t, tt.want, result.Entries[0].Entry.ChangeFreq.String())
		})
	}
}

func TestScan_PriorityClamping(t *testing.T) {
	tests := []struct {
		arg  string
		want float64
	}{
		{"-0.3", 0},
		{"1.7", 1},
		{"0.42", 0.42},
		{"1", 1},
		{"0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			result := scanOne(t, `@router.Route("/a")`, "@SitemapUrl(1, "+tt.arg+")")
			require.Len(t, result.Entries, 1)
			assert.Equal(t, tt.want, result.Entries[0].Entry.Priority)
		})
	}
}

func TestScan_MalformedAnnotationsAreOmittedWithoutError(t *testing.T) {
	tests := []struct {
		name string
		doc  []string
	}{
		{"three sitemap arguments", []string{`@router.Route("/a")`, `@SitemapUrl(sitemap.Weekly, 0.5, 1)`}},
		{"route without argument", []string{`@router.Route`, `@SitemapUrl`}},
		{"route with two arguments", []string{`@router.Route("/a", "/b")`, `@SitemapUrl`}},
		{"route with integer", []string{`@router.Route(42)`, `@SitemapUrl`}},
		{"route with variable", []string{`@router.Route(path)`, `@SitemapUrl`}},
		{"string priority", []string{`@router.Route("/a")`, `@SitemapUrl(1, "high")`}},
		{"enum priority", []string{`@router.Route("/a")`, `@SitemapUrl(1, sitemap.Daily)`}},
		{"float ordinal", []string{`@router.Route("/a")`, `@SitemapUrl(1.5, 0.5)`}},
		{"unknown constant", []string{`@router.Route("/a")`, `@SitemapUrl(sitemap.Often, 0.5)`}},
		{"broken argument list", []string{`@router.Route("/a")`, `@SitemapUrl(1,, 0.5)`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scanOne(t, tt.doc...)
			assert.Empty(t, result.Entries)
			require.Len(t, result.Omissions, 1)
			assert.Equal(t, sitemapgen.OmissionMalformed, result.Omissions[0].Reason)
			assert.NotEmpty(t, result.Omissions[0].Detail)
		})
	}
}

func TestScan_DuplicateAnnotations(t *testing.T) {
	result := scanOne(t, `@router.Route("/a")`, `@router.Route("/b")`, "@SitemapUrl")
	assert.Empty(t, result.Entries)
	require.Len(t, result.Omissions, 1)
	assert.Equal(t, sitemapgen.OmissionDuplicate, result.Omissions[0].Reason)

	result = scanOne(t, `@router.Route("/a")`, "@SitemapUrl", "@sitemap.SitemapUrl(1, 1)")
	assert.Empty(t, result.Entries)
	require.Len(t, result.Omissions, 1)
	assert.Equal(t, sitemapgen.OmissionDuplicate, result.Omissions[0].Reason)
}

func TestScan_DiscoveryOrder(t *testing.T) {
	s, mfs := newTestScanner(t, Options{})
	mfs.AddFile("web/pages/b.go", `package pages

// @router.Route("/b1")
// @SitemapUrl
type B1 struct{}

// @router.Route("/b0")
// @SitemapUrl
type B0 struct{}
`)
	mfs.AddFile("web/pages/a.go", `package pages

type (
	// @router.Route("/a2")
	// @SitemapUrl
	Z struct{}

	// @router.Route("/a1")
	// @SitemapUrl
	A struct{}
)
`)
	mfs.AddFile("main.go", page("main", "Root", `@router.Route("/")`, "@SitemapUrl(0, 1)"))

	result, err := s.Scan(context.Background(), "/project")
	require.NoError(t, err)

	var templates []string
	for _, e := range result.Entries {
		templates = append(templates, e.Entry.Template)
	}
	assert.Equal(t, []string{"/", "/a2", "/a1", "/b1", "/b0"}, templates, "file path order, then source order, never sorted by template")
	assert.Equal(t, 3, result.FilesScanned)
	assert.Equal(t, "web/pages", result.Entries[1].Dir)
	assert.Equal(t, "web/pages.Z", result.Entries[1].QualifiedName())
}

func TestScan_Deterministic(t *testing.T) {
	s, mfs := newTestScanner(t, Options{Concurrency: 4})
	for _, name := range []string{"c", "a", "e", "b", "d", "f", "g", "h"} {
		mfs.AddFile("pages/"+name+".go", page("pages", strings.ToUpper(name), `@router.Route("/`+name+`")`, "@SitemapUrl(3, 0.7)"))
	}

	first, err := s.Scan(context.Background(), "/project")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := s.Scan(context.Background(), "/project")
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestScan_SkipsFiles(t *testing.T) {
	s, mfs := newTestScanner(t, Options{
		OutputFile: "web/sitemap_gen.go",
		Exclude:    []string{"legacy/**", "**/*_mock.go"},
	})

	valid := func(route string) string {
		return page("x", "X", `@router.Route("`+route+`")`, "@SitemapUrl")
	}
	mfs.AddFile("web/home.go", valid("/home"))
	mfs.AddFile("web/home_test.go", valid("/test"))
	mfs.AddFile("web/sitemap_gen.go", valid("/generated"))
	mfs.AddFile("web/page_mock.go", valid("/mock"))
	mfs.AddFile("vendor/lib/lib.go", valid("/vendor"))
	mfs.AddFile("web/testdata/fixture.go", valid("/testdata"))
	mfs.AddFile(".git/hooks/x.go", valid("/hidden"))
	mfs.AddFile("_scratch/x.go", valid("/underscore"))
	mfs.AddFile("web/_ignored.go", valid("/underscore-file"))
	mfs.AddFile("legacy/old.go", valid("/legacy"))
	mfs.AddFile("web/README.md", "# not go")

	result, err := s.Scan(context.Background(), "/project")
	require.NoError(t, err)

	require.Len(t, result.Entries, 1)
	assert.Equal(t, "/home", result.Entries[0].Entry.Template)
	assert.Equal(t, 1, result.FilesScanned)
}

func TestScan_ZeroAnnotatedTypes(t *testing.T) {
	s, mfs := newTestScanner(t, Options{})
	mfs.AddFile("main.go", "package main\n\nfunc main() {}\n")

	result, err := s.Scan(context.Background(), "/project")
	require.NoError(t, err)
	assert.Empty(t, result.Entries)

	doc := string(sitemap.Document("https://example.com", result.SitemapEntries(), sitemap.Options{}))
	assert.True(t, strings.HasPrefix(doc, `<?xml version="1.0" encoding="utf-8"?>`))
	assert.True(t, strings.HasSuffix(doc, "</urlset>"))
	assert.NotContains(t, doc, "<url>")
}

func TestScan_NoGoFiles(t *testing.T) {
	s, mfs := newTestScanner(t, Options{})
	mfs.AddFile("README.md", "# empty")

	_, err := s.Scan(context.Background(), "/project")
	assert.ErrorIs(t, err, sitemapgen.ErrNoSourceFiles)
}

func TestScan_SyntaxErrorFails(t *testing.T) {
	s, mfs := newTestScanner(t, Options{})
	mfs.AddFile("broken.go", "package broken\n\ntype X struct {\n")

	_, err := s.Scan(context.Background(), "/project")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.go")
}

func TestScan_MissingRoot(t *testing.T) {
	s, _ := newTestScanner(t, Options{})

	_, err := s.Scan(context.Background(), "/elsewhere")
	assert.Error(t, err)
}

func TestScan_CancelledContext(t *testing.T) {
	s, mfs := newTestScanner(t, Options{})
	mfs.AddFile("main.go", page("main", "X"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Scan(ctx, "/project")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestScan_CustomAnnotationNames(t *testing.T) {
	s, mfs := newTestScanner(t, Options{
		Annotations: sitemapgen.AnnotationNames{Route: "web.Page", Sitemap: "seo.Sitemap"},
	})
	mfs.AddFile("a.go", page("a", "A", `@web.Page("/custom")`, "@seo.Sitemap(seo.Yearly, 0.1)"))
	mfs.AddFile("b.go", page("a", "B", `@router.Route("/stock")`, "@SitemapUrl"))

	result, err := s.Scan(context.Background(), "/project")
	require.NoError(t, err)

	require.Len(t, result.Entries, 1)
	assert.Equal(t, sitemap.Entry{Template: "/custom", ChangeFreq: sitemap.Yearly, Priority: 0.1}, result.Entries[0].Entry)
	assert.Empty(t, result.Omissions, "stock names are not recognised at all")
}
