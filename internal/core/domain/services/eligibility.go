package services

import (
	"sort"

	"fulfillment/internal/core/domain/model/kernel"
)

// MenuFact is one row of the active "restaurant sells product" relation.
// Facts must be pre-filtered to available menu items before indexing;
// unavailable items never reach eligibility resolution.
type MenuFact struct {
	RestaurantID      kernel.UUID
	RestaurantName    string
	RestaurantAddress string
	ProductID         kernel.UUID
}

// Candidate identifies a restaurant considered for order fulfillment.
type Candidate struct {
	ID      kernel.UUID
	Name    string
	Address string
}

// MenuIndex is a restaurant -> active-product-set index built once per
// routing batch. Building the index up front replaces a per-order rescan of
// the raw fact list and keeps eligibility resolution linear in the number
// of ordered products.
type MenuIndex struct {
	candidates map[kernel.UUID]Candidate
	// sellers maps a product to the set of restaurants actively selling it.
	sellers map[kernel.UUID]map[kernel.UUID]struct{}
}

// BuildMenuIndex indexes the active menu facts of all restaurants.
// Restaurants with no active facts never appear in the index and are
// therefore never eligible.
func BuildMenuIndex(facts []MenuFact) *MenuIndex {
	ix := &MenuIndex{
		candidates: make(map[kernel.UUID]Candidate),
		sellers:    make(map[kernel.UUID]map[kernel.UUID]struct{}),
	}

	for _, fact := range facts {
		if _, ok := ix.candidates[fact.RestaurantID]; !ok {
			ix.candidates[fact.RestaurantID] = Candidate{
				ID:      fact.RestaurantID,
				Name:    fact.RestaurantName,
				Address: fact.RestaurantAddress,
			}
		}

		restaurants, ok := ix.sellers[fact.ProductID]
		if !ok {
			restaurants = make(map[kernel.UUID]struct{})
			ix.sellers[fact.ProductID] = restaurants
		}
		restaurants[fact.RestaurantID] = struct{}{}
	}

	return ix
}

// EligibleRestaurants returns the restaurants whose active menu covers
// every distinct product identifier of an order. A restaurant missing even
// one product is excluded. An empty result is a valid outcome meaning no
// restaurant can fulfill the order.
//
// The candidates are returned sorted by name so repeated runs over the same
// data produce identical output. An empty product set yields every indexed
// restaurant; upstream validation makes that case unlikely, but it must not
// fail here.
func (ix *MenuIndex) EligibleRestaurants(productIDs []kernel.UUID) []Candidate {
	eligible := make(map[kernel.UUID]struct{}, len(ix.candidates))
	for id := range ix.candidates {
		eligible[id] = struct{}{}
	}

	for _, productID := range productIDs {
		sellers := ix.sellers[productID]
		for id := range eligible {
			if _, ok := sellers[id]; !ok {
				delete(eligible, id)
			}
		}
		if len(eligible) == 0 {
			break
		}
	}

	result := make([]Candidate, 0, len(eligible))
	for id := range eligible {
		result = append(result, ix.candidates[id])
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}
