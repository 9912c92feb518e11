package annotation

import (
	"go/constant"
	"strings"

	"github.com/vvka-141/sitemapgen/pkg/sitemap"
	"github.com/vvka-141/sitemapgen/pkg/sitemapgen"
)

// ChangeFreqEnum is the enum name recorded on values resolved from ChangeFreq
// constants.
const ChangeFreqEnum = "ChangeFreq"

// Registry binds annotation names to Types and knows the enum constants that
// arguments may reference.
// A Registry is immutable after construction and safe for concurrent use.
type Registry struct {
	route   *Type
	sitemap *Type

	// names maps every accepted spelling to its Type.
	names map[string]*Type

	// enumQualifier is the package name allowed before enum constants
	// (sitemap.Weekly).
	enumQualifier string
	enum          map[string]int64
}

// NewRegistry declares the route and sitemap annotation types under the given
// names.
//
//	Route(template string)
//	SitemapUrl(changeFreq ChangeFreq = Always, priority float64 = 0.5)
func NewRegistry(names sitemapgen.AnnotationNames) *Registry {
	always := Value{Const: constant.MakeInt64(int64(sitemap.Always)), Enum: ChangeFreqEnum}
	half := Value{Const: constant.MakeFloat64(0.5)}

	r := &Registry{
		route: &Type{
			Name:   names.Route,
			Params: []Param{{Name: "template", Kind: KindString}},
		},
		sitemap: &Type{
			Name: names.Sitemap,
			Params: []Param{
				{Name: "changeFreq", Kind: KindOrdinal, Default: &always},
				{Name: "priority", Kind: KindNumber, Default: &half},
			},
		},
		names: make(map[string]*Type),
		enum:  make(map[string]int64),
	}

	r.names[names.Route] = r.route
	r.names[names.Sitemap] = r.sitemap
	for _, alias := range names.SitemapAliases {
		r.names[alias] = r.sitemap
	}

	if i := strings.LastIndex(names.Sitemap, "."); i > 0 {
		r.enumQualifier = names.Sitemap[:i]
	}
	for i, name := range sitemap.ChangeFreqNames() {
		r.enum[name] = int64(i)
	}

	return r
}

// Route returns the route annotation type.
func (r *Registry) Route() *Type { return r.route }

// Sitemap returns the sitemap annotation type.
func (r *Registry) Sitemap() *Type { return r.sitemap }

// Lookup returns the Type registered under name, matched exactly.
func (r *Registry) Lookup(name string) (*Type, bool) {
	t, ok := r.names[name]
	return t, ok
}

// IsRoute reports whether name is the exact route annotation spelling.
func (r *Registry) IsRoute(name string) bool {
	return r.names[name] == r.route
}

// IsSitemap reports whether name is an accepted sitemap annotation spelling.
func (r *Registry) IsSitemap(name string) bool {
	return r.names[name] == r.sitemap
}

// enumConstant resolves Weekly or <qualifier>.Weekly.
func (r *Registry) enumConstant(qualifier, name string) (int64, bool) {
	if qualifier != "" && qualifier != r.enumQualifier {
		return 0, false
	}
	n, ok := r.enum[name]
	return n, ok
}
