package services

import (
	"sort"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// RankCandidate is a restaurant prepared for distance ranking. A nil Point
// marks a restaurant whose address could not be geocoded; such candidates
// stay in the ranking but carry no distance.
type RankCandidate struct {
	Name  string
	Point *kernel.GeoPoint
}

// RankedRestaurant is one entry of the ranked output. DistanceKm is nil when
// the restaurant's coordinates are unknown.
type RankedRestaurant struct {
	Name       string
	DistanceKm *float64
}

// RestaurantRanker orders eligible restaurants by great circle distance
// from a delivery point.
type RestaurantRanker struct{}

// NewRestaurantRanker creates a RestaurantRanker.
func NewRestaurantRanker() *RestaurantRanker {
	return &RestaurantRanker{}
}

// Rank sorts candidates by distance from origin, closest first. Candidates
// without coordinates sort after all candidates with a distance. Candidates
// with equal distances, and candidates without coordinates among themselves,
// are ordered by name so the ranking is stable across runs.
func (r *RestaurantRanker) Rank(origin kernel.GeoPoint, candidates []RankCandidate) ([]RankedRestaurant, error) {
	if err := origin.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("origin", err)
	}

	ranked := make([]RankedRestaurant, 0, len(candidates))
	for _, candidate := range candidates {
		entry := RankedRestaurant{Name: candidate.Name}
		if candidate.Point != nil {
			distance, err := origin.DistanceKm(*candidate.Point)
			if err != nil {
				return nil, err
			}
			entry.DistanceKm = &distance
		}
		ranked = append(ranked, entry)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		switch {
		case a.DistanceKm == nil && b.DistanceKm == nil:
			return a.Name < b.Name
		case a.DistanceKm == nil:
			return false
		case b.DistanceKm == nil:
			return true
		case *a.DistanceKm != *b.DistanceKm:
			return *a.DistanceKm < *b.DistanceKm
		default:
			return a.Name < b.Name
		}
	})

	return ranked, nil
}
