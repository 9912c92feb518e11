// Package sitemap is the runtime half of sitemapgen.
//
// Code emitted by the sitemapgen tool embeds the scanned entries as a literal
// []Entry and calls into this package to serve them:
//
//	var sitemapEntries = []sitemap.Entry{
//	    {Template: "/products/{id}", ChangeFreq: sitemap.Weekly, Priority: 0.8},
//	}
//
//	func MapSitemap(mux *http.ServeMux, baseURL string) http.Handler {
//	    return sitemap.Register(mux, baseURL, sitemapEntries, sitemap.Options{})
//	}
//
// The ChangeFreq constants double as the values accepted by the @SitemapUrl
// annotation, so annotated source and generated code share one vocabulary.
//
// # Document Format
//
// Render writes a fixed urlset layout, one <url> block per entry in slice order.
// Locations join base URL and template (see Location). They are not
// XML-escaped unless Options.EscapeXML is set.
//
// # Thread Safety
//
// Handler holds no mutable state; one instance serves concurrent requests.
package sitemap
