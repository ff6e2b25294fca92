package css

import (
	"sort"
)

// Equal reports whether stylesheets produce the same rules.
func Equal(a, b *Stylesheet) bool {
	return len(Diff(a, b)) == 0
}

// Diff lists items present in only one of the stylesheets. Lines start with
// "-" for items missing from b and with "+" for items b adds.
func Diff(a, b *Stylesheet) []string {
	counts := make(map[string]int)
	for _, k := range a.Keys() {
		counts[k]++
	}
	for _, k := range b.Keys() {
		counts[k]--
	}

	var out []string
	for k, n := range counts {
		for ; n > 0; n-- {
			out = append(out, "- "+k)
		}
		for ; n < 0; n++ {
			out = append(out, "+ "+k)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][2:] != out[j][2:] {
			return out[i][2:] < out[j][2:]
		}
		return out[i] < out[j]
	})
	return out
}
