package course

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// titleMaxSim is the similarity ratio above which two titles are considered
// duplicates of each other.
const titleMaxSim = .9

// titleTooSimilar reports whether title is an exact or near duplicate of any
// existing course title, ignoring case and the excluded courses.
func titleTooSimilar(title string, existing, excluded []Course) bool {
	lower := strings.ToLower(title)
	for _, crs := range existing {
		if isExcluded(crs, excluded) {
			continue
		}
		other := strings.ToLower(crs.Title)
		if lower == other {
			return true
		}
		if similarity(lower, other) >= titleMaxSim {
			return true
		}
	}
	return false
}

func similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).QuickRatio()
}

func isExcluded(crs Course, excluded []Course) bool {
	for _, excl := range excluded {
		if excl.ID == crs.ID {
			return true
		}
	}
	return false
}
