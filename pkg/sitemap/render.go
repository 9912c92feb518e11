package sitemap

import (
	"bufio"
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

const (
	// Path is the route the sitemap handler is registered under.
	Path = "sitemap.xml"

	// ContentType is sent with every sitemap response.
	ContentType = "text/xml"
)

const documentHeader = `<?xml version="1.0" encoding="utf-8"?>
<urlset xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
        xsi:schemaLocation="http://www.sitemaps.org/schemas/sitemap/0.9 http://www.sitemaps.org/schemas/sitemap/0.9/sitemap.xsd"
        xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
`

const documentFooter = "</urlset>"

// Options tunes rendering.
type Options struct {
	// EscapeXML escapes the <loc> text. Off by default: base URL and template
	// are concatenated verbatim, so characters such as '&' produce malformed XML.
	EscapeXML bool
}

// Render writes the sitemap document for entries to w.
// Each location is Location(baseURL, Template). Rendering stops with ctx.Err() as soon as
// the context is done; whatever was already written is left as is.
func Render(ctx context.Context, w io.Writer, baseURL string, entries []Entry, opts Options) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(documentHeader)
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		writeURL(bw, Location(baseURL, e.Template), e, opts)
	}
	bw.WriteString(documentFooter)

	return bw.Flush()
}

// Document renders the complete sitemap into memory.
func Document(baseURL string, entries []Entry, opts Options) []byte {
	var buf bytes.Buffer
	// bytes.Buffer writes cannot fail and the context never ends.
	_ = Render(context.Background(), &buf, baseURL, entries, opts)
	return buf.Bytes()
}

// Location joins a base URL and a route template. The two are concatenated
// verbatim, except that a '/' on both sides of the seam is written once:
// "https://example.com/" and "/dummy" give "https://example.com/dummy".
func Location(baseURL, template string) string {
	if strings.HasSuffix(baseURL, "/") && strings.HasPrefix(template, "/") {
		return baseURL + template[1:]
	}
	return baseURL + template
}

// FormatPriority returns the shortest decimal form of p that round-trips:
// 0.5, 1, 0.75.
func FormatPriority(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func writeURL(bw *bufio.Writer, loc string, e Entry, opts Options) {
	bw.WriteString("    <url>\n        <loc>")
	if opts.EscapeXML {
		// EscapeText only fails when the writer does; bufio keeps that error for Flush.
		_ = xml.EscapeText(bw, []byte(loc))
	} else {
		bw.WriteString(loc)
	}
	bw.WriteString("</loc>\n        <changefreq>")
	bw.WriteString(e.ChangeFreq.String())
	bw.WriteString("</changefreq>\n        <priority>")
	bw.WriteString(FormatPriority(e.Priority))
	bw.WriteString("</priority>\n    </url>\n")
}
