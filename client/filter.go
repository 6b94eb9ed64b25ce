package client

import (
	"sort"
	"strings"

	"github.com/shibbster321321/vegan-restaurant-1/models"
)

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortRating    SortKey = "rating"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// Sentinels that bypass the cuisine and price filters.
const (
	CuisineAll = "All"
	PriceAll   = "all"
)

// priceRank maps each price symbol to its ordinal tier. Sorting by the
// symbol's character count would give the same order for these symbols;
// the explicit table keeps the order stable if the symbol convention
// ever changes.
var priceRank = map[string]int{
	models.PriceCheap:     1,
	models.PriceModerate:  2,
	models.PriceExpensive: 3,
	models.PriceLuxury:    4,
}

func rankOf(priceRange string) int {
	if rank, ok := priceRank[priceRange]; ok {
		return rank
	}
	// Unknown symbols keep the legacy length-based ordering.
	return len([]rune(priceRange))
}

// Criteria are the four user-controlled inputs of the derivation.
type Criteria struct {
	Search  string
	Cuisine string
	Price   string
	SortBy  SortKey
}

// Derive filters and sorts the record list. The three filters are
// conjunctive; the input slice is never mutated.
func Derive(records []models.Restaurant, crit Criteria) []models.Restaurant {
	search := strings.ToLower(crit.Search)

	out := make([]models.Restaurant, 0, len(records))
	for _, r := range records {
		matchesSearch := search == "" ||
			strings.Contains(strings.ToLower(r.Name), search) ||
			strings.Contains(strings.ToLower(r.Description), search)
		matchesCuisine := crit.Cuisine == "" || crit.Cuisine == CuisineAll || r.Cuisine == crit.Cuisine
		matchesPrice := crit.Price == "" || crit.Price == PriceAll || r.PriceRange == crit.Price

		if matchesSearch && matchesCuisine && matchesPrice {
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch crit.SortBy {
		case SortOldest:
			return a.Timestamp < b.Timestamp
		case SortRating:
			return a.Rating > b.Rating
		case SortPriceAsc:
			return rankOf(a.PriceRange) < rankOf(b.PriceRange)
		case SortPriceDesc:
			return rankOf(a.PriceRange) > rankOf(b.PriceRange)
		default: // SortNewest
			return a.Timestamp > b.Timestamp
		}
	})

	return out
}
