package sitemap

import "math"

// Entry is one <url> of the sitemap: a route template with its change
// frequency and priority. Entries are plain values and are never mutated
// after construction.
type Entry struct {
	Template   string
	ChangeFreq ChangeFreq
	Priority   float64
}

// NewEntry builds an Entry from raw annotation values, applying the ordinal
// fallback and the priority clamp.
func NewEntry(template string, ordinal int64, priority float64) Entry {
	return Entry{
		Template:   template,
		ChangeFreq: ChangeFreqFromOrdinal(ordinal),
		Priority:   ClampPriority(priority),
	}
}

// ClampPriority restricts p to [0, 1].
func ClampPriority(p float64) float64 {
	return math.Max(0, math.Min(1, p))
}
