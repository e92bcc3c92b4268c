package algorithms

import (
	"strings"
)

// ProfileFacts is the slice of a profile the scorer looks at. Both sides of
// a pair reduce to the same shape.
type ProfileFacts struct {
	Name     string
	Bio      string
	Phone    string
	Location string
}

// RatingFacts is the caregiver's externally aggregated review rating.
// A zero Count contributes nothing.
type RatingFacts struct {
	Mean  float64 // 0-5 scale
	Count int64
}

// Component caps. Location + completeness + rating never exceed 100, but the
// result is clamped anyway so a future component can't silently break the
// bound.
const (
	locationExactPoints  = 30.0
	locationRegionPoints = 15.0
	completenessMax      = 20.0
	ratingMax            = 40.0
)

// CompatibilityScore computes the 0-100 heuristic ordering score for a
// family/caregiver pair. It never gates eligibility; a zero-score candidate
// is still shown.
func CompatibilityScore(family, caregiver ProfileFacts, rating RatingFacts) (float64, []string) {
	score := 0.0
	reasons := []string{}

	// Location affinity (30 points exact, 15 same region)
	switch locationAffinity(family.Location, caregiver.Location) {
	case locationMatchExact:
		score += locationExactPoints
		reasons = append(reasons, "Same location")
	case locationMatchRegion:
		score += locationRegionPoints
		reasons = append(reasons, "Same region")
	}

	// Profile completeness (up to 20 points): average of both profiles'
	// completeness percentages, weighted at 20%.
	avgCompleteness := (completenessPercent(family) + completenessPercent(caregiver)) / 2.0
	score += avgCompleteness * 0.20
	if avgCompleteness >= 75 {
		reasons = append(reasons, "Detailed profiles")
	}

	// Aggregate rating (up to 40 points)
	if rating.Count > 0 {
		score += (rating.Mean / 5.0) * ratingMax
		if rating.Mean >= 4.0 {
			reasons = append(reasons, "Highly rated caregiver")
		}
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return score, reasons
}

type locationMatch int

const (
	locationMatchNone locationMatch = iota
	locationMatchRegion
	locationMatchExact
)

func locationAffinity(a, b string) locationMatch {
	na, nb := normalizeLocation(a), normalizeLocation(b)
	if na == "" || nb == "" {
		return locationMatchNone
	}
	if na == nb {
		return locationMatchExact
	}
	if regionToken(na) != "" && regionToken(na) == regionToken(nb) {
		return locationMatchRegion
	}
	return locationMatchNone
}

func normalizeLocation(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// regionToken is the state-level token: the text after the last comma,
// trimmed ("Austin, TX" -> "tx").
func regionToken(s string) string {
	idx := strings.LastIndex(s, ",")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(s[idx+1:])
}

// completenessPercent scores 25 points per present field of
// {name, bio, phone, location}.
func completenessPercent(p ProfileFacts) float64 {
	present := 0
	for _, field := range []string{p.Name, p.Bio, p.Phone, p.Location} {
		if strings.TrimSpace(field) != "" {
			present++
		}
	}
	return float64(present) * 25.0
}
