package scan

import (
	"fmt"

	"github.com/vvka-141/sitemapgen/internal/annotation"
	"github.com/vvka-141/sitemapgen/pkg/sitemap"
	"github.com/vvka-141/sitemapgen/pkg/sitemapgen"
)

// classify decides what one annotated declaration contributes. It returns
// either an entry or an omission; both nil means the declaration carries
// neither annotation kind and is of no interest.
//
// classify is pure and safe to call concurrently.
func classify(in *annotation.Inspector, decl sitemapgen.Declaration, anns []annotation.Annotation) (*sitemapgen.ScannedEntry, *sitemapgen.Omission) {
	reg := in.Registry()

	var routes, sitemaps []annotation.Annotation
	for _, a := range anns {
		switch {
		case reg.IsRoute(a.Name):
			routes = append(routes, a)
		case reg.IsSitemap(a.Name):
			sitemaps = append(sitemaps, a)
		}
	}

	omit := func(reason sitemapgen.OmissionReason, format string, args ...interface{}) (*sitemapgen.ScannedEntry, *sitemapgen.Omission) {
		return nil, &sitemapgen.Omission{Declaration: decl, Reason: reason, Detail: fmt.Sprintf(format, args...)}
	}

	switch {
	case len(routes) == 0 && len(sitemaps) == 0:
		return nil, nil
	case len(routes) == 0:
		return omit(sitemapgen.OmissionPartial, "missing @%s", reg.Route().Name)
	case len(sitemaps) == 0:
		return omit(sitemapgen.OmissionPartial, "missing @%s", reg.Sitemap().Name)
	case len(routes) > 1:
		return omit(sitemapgen.OmissionDuplicate, "@%s appears %d times", reg.Route().Name, len(routes))
	case len(sitemaps) > 1:
		return omit(sitemapgen.OmissionDuplicate, "@%s appears %d times", reg.Sitemap().Name, len(sitemaps))
	}

	route, err := in.Resolve(routes[0])
	if err != nil {
		return omit(sitemapgen.OmissionMalformed, "%v", err)
	}
	if route.Arity() != 1 || !route.Matches(0, annotation.KindString) {
		return omit(sitemapgen.OmissionMalformed, "@%s wants one string argument, got %s", routes[0].Name, describe(route))
	}

	sm, err := in.Resolve(sitemaps[0])
	if err != nil {
		return omit(sitemapgen.OmissionMalformed, "%v", err)
	}
	if sm.Arity() != 2 || !sm.Matches(0, annotation.KindOrdinal) || !sm.Matches(1, annotation.KindNumber) {
		return omit(sitemapgen.OmissionMalformed, "@%s wants (ordinal, number), got %s", sitemaps[0].Name, describe(sm))
	}

	template, _ := route.StringArg(0)
	ordinal, _ := sm.OrdinalArg(0)
	priority, _ := sm.NumberArg(1)

	return &sitemapgen.ScannedEntry{
		Declaration: decl,
		Entry:       sitemap.NewEntry(template, ordinal, priority),
	}, nil
}

// describe summarises resolved argument kinds, e.g. "(string, number)".
func describe(r annotation.Resolved) string {
	if r.Arity() == 0 {
		return "no arguments"
	}
	s := "("
	for i := range r.Args {
		if i > 0 {
			s += ", "
		}
		switch {
		case r.Matches(i, annotation.KindString):
			s += "string"
		case r.Args[i].Enum != "":
			s += r.Args[i].Enum
		case r.Matches(i, annotation.KindOrdinal):
			s += "int"
		case r.Matches(i, annotation.KindNumber):
			s += "float"
		default:
			s += "?"
		}
	}
	return s + ")"
}
