package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"text/template"

	"github.com/vvka-141/sitemapgen/pkg/sitemap"
	"github.com/vvka-141/sitemapgen/pkg/sitemapgen"
)

var funcs = template.FuncMap{
	"quote":    strconv.Quote,
	"priority": sitemap.FormatPriority,
	"gostring": func(c sitemap.ChangeFreq) string { return c.GoString() },
}

var templates = map[sitemapgen.Router]*template.Template{
	sitemapgen.RouterHTTP: template.Must(template.New("http").Funcs(funcs).Parse(headerTemplate + httpTemplate)),
	sitemapgen.RouterGin:  template.Must(template.New("gin").Funcs(funcs).Parse(headerTemplate + ginTemplate)),
}

// Params describes one generated file.
type Params struct {
	Package   string
	Router    sitemapgen.Router
	EscapeXML bool
	Entries   []sitemapgen.ScannedEntry
}

// templateData is what the templates see.
type templateData struct {
	Params
	Header        string
	RuntimeImport string
	GinImport     string
}

// Source renders the generated file for p, gofmt-formatted.
func Source(p Params) ([]byte, error) {
	router, err := sitemapgen.ParseRouter(string(p.Router))
	if err != nil {
		return nil, err
	}
	if !isIdentifier(p.Package) {
		return nil, fmt.Errorf("package name %q is not a Go identifier: %w", p.Package, sitemapgen.ErrInvalidConfig)
	}

	var buf bytes.Buffer
	err = templates[router].Execute(&buf, templateData{
		Params:        p,
		Header:        sitemapgen.GeneratedHeader,
		RuntimeImport: sitemapgen.RuntimeImportPath,
		GinImport:     sitemapgen.GinRuntimeImportPath,
	})
	if err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}
