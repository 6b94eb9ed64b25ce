package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shibbster321321/vegan-restaurant-1/models"
)

func record(id, name, cuisine, price string, rating int, timestamp int64) models.Restaurant {
	return models.Restaurant{
		ID:          id,
		Name:        name,
		Cuisine:     cuisine,
		Description: "A place worth trying",
		PriceRange:  price,
		Rating:      rating,
		Timestamp:   timestamp,
	}
}

func ids(records []models.Restaurant) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	records := []models.Restaurant{
		record("a", "Cafe Luna", "Italian", "€€", 4, 1),
		record("b", "Taco Town", "Mexican", "€", 3, 2),
	}

	for _, term := range []string{"luna", "LUNA", "Luna"} {
		got := Derive(records, Criteria{Search: term})
		assert.Equal(t, []string{"a"}, ids(got), "term %q", term)
	}
}

func TestSearchMatchesDescription(t *testing.T) {
	records := []models.Restaurant{
		{ID: "a", Name: "Cafe Luna", Description: "Best tiramisu in town"},
		{ID: "b", Name: "Taco Town", Description: "Street food"},
	}

	got := Derive(records, Criteria{Search: "tiramisu"})
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestCuisineAndPriceSentinels(t *testing.T) {
	records := []models.Restaurant{
		record("a", "Cafe Luna", "Italian", "€€", 4, 1),
		record("b", "Taco Town", "Mexican", "€", 3, 2),
	}

	assert.Len(t, Derive(records, Criteria{Cuisine: CuisineAll, Price: PriceAll}), 2)
	assert.Equal(t, []string{"b"}, ids(Derive(records, Criteria{Cuisine: "Mexican"})))
	assert.Equal(t, []string{"a"}, ids(Derive(records, Criteria{Price: "€€"})))
}

func TestFiltersAreConjunctive(t *testing.T) {
	records := []models.Restaurant{
		record("a", "Cafe Luna", "Italian", "€€", 4, 1),
		record("b", "Pasta Bar", "Italian", "€€€", 5, 2),
	}

	// Matches cuisine but not price: excluded.
	got := Derive(records, Criteria{Cuisine: "Italian", Price: "€€"})
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestPriceSortUsesOrdinalRank(t *testing.T) {
	records := []models.Restaurant{
		record("four", "D", "Other", "€€€€", 1, 1),
		record("one", "A", "Other", "€", 1, 2),
		record("two", "B", "Other", "€€", 1, 3),
	}

	asc := Derive(records, Criteria{SortBy: SortPriceAsc})
	assert.Equal(t, []string{"one", "two", "four"}, ids(asc))

	desc := Derive(records, Criteria{SortBy: SortPriceDesc})
	assert.Equal(t, []string{"four", "two", "one"}, ids(desc))
}

func TestSortByTimestampAndRating(t *testing.T) {
	records := []models.Restaurant{
		record("old", "A", "Other", "€", 2, 100),
		record("new", "B", "Other", "€", 5, 300),
		record("mid", "C", "Other", "€", 4, 200),
	}

	assert.Equal(t, []string{"new", "mid", "old"}, ids(Derive(records, Criteria{SortBy: SortNewest})))
	assert.Equal(t, []string{"old", "mid", "new"}, ids(Derive(records, Criteria{SortBy: SortOldest})))
	assert.Equal(t, []string{"new", "mid", "old"}, ids(Derive(records, Criteria{SortBy: SortRating})))
}

func TestDeriveDoesNotMutateInput(t *testing.T) {
	records := []models.Restaurant{
		record("a", "A", "Other", "€", 1, 100),
		record("b", "B", "Other", "€€", 2, 200),
	}

	Derive(records, Criteria{SortBy: SortPriceDesc, Search: "zzz"})

	assert.Equal(t, "a", records[0].ID)
	assert.Equal(t, "b", records[1].ID)
}
