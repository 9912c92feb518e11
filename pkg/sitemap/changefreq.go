package sitemap

import "strings"

// ChangeFreq is the sitemap <changefreq> hint.
// The ordinal values are part of the annotation contract: @SitemapUrl(3, ...)
// and @SitemapUrl(sitemap.Weekly, ...) mean the same thing.
type ChangeFreq int

const (
	Always ChangeFreq = iota
	Hourly
	Daily
	Weekly
	Monthly
	Yearly
	Never
)

var changeFreqNames = [...]string{
	Always:  "always",
	Hourly:  "hourly",
	Daily:   "daily",
	Weekly:  "weekly",
	Monthly: "monthly",
	Yearly:  "yearly",
	Never:   "never",
}

// ChangeFreqFromOrdinal maps an annotation ordinal to a ChangeFreq.
// Only 1 through 6 select a specific value; everything else, including
// negative and out-of-range ordinals, falls back to Always.
func ChangeFreqFromOrdinal(ordinal int64) ChangeFreq {
	switch ordinal {
	case 1, 2, 3, 4, 5, 6:
		return ChangeFreq(ordinal)
	default:
		return Always
	}
}

// ParseChangeFreq looks up a constant by name, ignoring case
// ("Weekly", "weekly").
func ParseChangeFreq(name string) (ChangeFreq, bool) {
	for i, n := range changeFreqNames {
		if strings.EqualFold(n, name) {
			return ChangeFreq(i), true
		}
	}
	return Always, false
}

// ChangeFreqNames returns the constant names in ordinal order, capitalised the
// way they are written in Go source.
func ChangeFreqNames() []string {
	names := make([]string, len(changeFreqNames))
	for i, n := range changeFreqNames {
		names[i] = strings.ToUpper(n[:1]) + n[1:]
	}
	return names
}

// String returns the keyword written into <changefreq>.
func (c ChangeFreq) String() string {
	if c < Always || c > Never {
		return changeFreqNames[Always]
	}
	return changeFreqNames[c]
}

// GoString returns the qualified constant name, used when emitting Go source.
func (c ChangeFreq) GoString() string {
	if c < Always || c > Never {
		c = Always
	}
	return "sitemap." + ChangeFreqNames()[c]
}
