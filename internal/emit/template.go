package emit

// headerTemplate holds the definitions shared by both router flavours. It must
// not produce output of its own.
const headerTemplate = `{{define "header"}}{{.Header}}

package {{.Package}}
{{end}}{{define "entries"}}
// sitemapEntries lists the annotated pages in discovery order.
var sitemapEntries = []sitemap.Entry{
{{- range .Entries}}
	{Template: {{quote .Entry.Template}}, ChangeFreq: {{gostring .Entry.ChangeFreq}}, Priority: {{priority .Entry.Priority}}}, // {{.QualifiedName}}
{{- end}}
}

var sitemapOptions = sitemap.Options{EscapeXML: {{.EscapeXML}}}
{{end}}`

const httpTemplate = `{{template "header" .}}
import (
	"net/http"

	"{{.RuntimeImport}}"
)
{{template "entries" .}}
// MapSitemap registers GET /sitemap.xml on mux. Every location is baseURL
// followed by the route template.
func MapSitemap(mux *http.ServeMux, baseURL string) http.Handler {
	return sitemap.Register(mux, baseURL, sitemapEntries, sitemapOptions)
}
`

const ginTemplate = `{{template "header" .}}
import (
	"github.com/gin-gonic/gin"

	"{{.RuntimeImport}}"
	"{{.GinImport}}"
)
{{template "entries" .}}
// MapSitemap registers GET /sitemap.xml on r. Every location is baseURL
// followed by the route template.
func MapSitemap(r gin.IRoutes, baseURL string) gin.IRoutes {
	return ginsitemap.Register(r, baseURL, sitemapEntries, sitemapOptions)
}
`
