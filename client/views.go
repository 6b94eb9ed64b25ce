package client

import (
	"fmt"
	"time"

	"github.com/shibbster321321/vegan-restaurant-1/geo"
	"github.com/shibbster321321/vegan-restaurant-1/models"
)

// Empty-state messages for the list view. Which one applies depends on
// whether the wall is empty or the filters excluded everything.
const (
	EmptyNoRecords = "No restaurants added yet. Be the first to recommend one!"
	EmptyNoMatches = "No restaurants match your filters."
)

// Default map center (New York) when the wall is empty.
const (
	DefaultCenterLat = 40.7128
	DefaultCenterLng = -74.0060
)

// Card is one restaurant summary in list mode.
type Card struct {
	ID            string
	Name          string
	Cuisine       string
	Description   string
	PriceRange    string
	Rating        int
	RecommendedBy string
	Address       string
	Added         time.Time
}

// ListView is the card view over the derived list, plus the empty-state
// message when there is nothing to show.
type ListView struct {
	Cards        []Card
	EmptyMessage string
}

// NewListView builds the list mode over the visible records. The total
// count decides which empty-state message applies.
func NewListView(totalRecords int, visible []models.Restaurant) ListView {
	view := ListView{Cards: make([]Card, 0, len(visible))}

	for _, r := range visible {
		view.Cards = append(view.Cards, Card{
			ID:            r.ID,
			Name:          r.Name,
			Cuisine:       r.Cuisine,
			Description:   r.Description,
			PriceRange:    r.PriceRange,
			Rating:        r.Rating,
			RecommendedBy: r.RecommendedBy,
			Address:       r.Address,
			Added:         time.UnixMilli(r.Timestamp),
		})
	}

	if len(visible) == 0 {
		if totalRecords == 0 {
			view.EmptyMessage = EmptyNoRecords
		} else {
			view.EmptyMessage = EmptyNoMatches
		}
	}
	return view
}

// LatLng is a bare coordinate pair, e.g. the user's current position.
type LatLng struct {
	Lat float64
	Lng float64
}

// Marker is one pin on the map.
type Marker struct {
	ID       string
	Name     string
	Cuisine  string
	Address  string
	Lat      float64
	Lng      float64
	Selected bool

	// Distance annotation for the popup, e.g. "3.2 km away"; empty when
	// the user's location is unknown.
	Distance string
}

// MapView is map mode: one marker per visible record, an optional marker
// for the user, and the viewport center.
type MapView struct {
	CenterLat  float64
	CenterLng  float64
	Markers    []Marker
	UserMarker *Marker
}

// NewMapView plots the visible records. The map centers on the first
// record, falling back to the default center on an empty list. When the
// user's location is known each popup carries the great-circle distance.
func NewMapView(visible []models.Restaurant, selectedID string, user *LatLng) MapView {
	view := MapView{
		CenterLat: DefaultCenterLat,
		CenterLng: DefaultCenterLng,
		Markers:   make([]Marker, 0, len(visible)),
	}
	if len(visible) > 0 {
		view.CenterLat = visible[0].Lat
		view.CenterLng = visible[0].Lng
	}

	if user != nil {
		view.UserMarker = &Marker{
			Name: "You are here",
			Lat:  user.Lat,
			Lng:  user.Lng,
		}
		// Fly the viewport to the user.
		view.CenterLat = user.Lat
		view.CenterLng = user.Lng
	}

	for _, r := range visible {
		m := Marker{
			ID:       r.ID,
			Name:     r.Name,
			Cuisine:  r.Cuisine,
			Address:  r.Address,
			Lat:      r.Lat,
			Lng:      r.Lng,
			Selected: r.ID == selectedID,
		}
		if user != nil {
			km := geo.Distance(user.Lat, user.Lng, r.Lat, r.Lng)
			m.Distance = fmt.Sprintf("%.1f km away", km)
		}
		view.Markers = append(view.Markers, m)
	}

	return view
}
