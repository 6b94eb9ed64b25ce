package models

import (
	"encoding/json"
	"errors"
)

// Allowed price tiers, lowest to highest.
const (
	PriceCheap     = "€"
	PriceModerate  = "€€"
	PriceExpensive = "€€€"
	PriceLuxury    = "€€€€"
)

var PriceRanges = []string{PriceCheap, PriceModerate, PriceExpensive, PriceLuxury}

// Cuisines offered by the add/edit form. The store does not enforce this list.
var Cuisines = []string{
	"Italian", "Japanese", "Mexican", "Indian",
	"American", "French", "Thai", "Other",
}

// Restaurant is one row of the restaurants table. Coordinates and address
// are stored as flat columns; the wire representation nests them under
// "location" (see MarshalJSON / UnmarshalJSON).
type Restaurant struct {
	ID            string  `gorm:"column:id;type:text;primaryKey"`
	Name          string  `gorm:"column:name;type:text;not null"`
	Cuisine       string  `gorm:"column:cuisine;type:text;not null"`
	Description   string  `gorm:"column:description;type:text;not null"`
	PriceRange    string  `gorm:"column:priceRange;type:text;not null"`
	Rating        int     `gorm:"column:rating;not null"`
	RecommendedBy string  `gorm:"column:recommendedBy;type:text;not null"`
	Timestamp     int64   `gorm:"column:timestamp;not null"`
	Lat           float64 `gorm:"column:lat;not null"`
	Lng           float64 `gorm:"column:lng;not null"`
	Address       string  `gorm:"column:address;type:text;not null"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// Location is the nested coordinate/address value exchanged on the wire.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

var ErrInvalidCoordinates = errors.New("coordinates out of range")

// NewLocation validates coordinate bounds before the value crosses the
// store boundary.
func NewLocation(lat, lng float64, address string) (Location, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Location{}, ErrInvalidCoordinates
	}
	return Location{Lat: lat, Lng: lng, Address: address}, nil
}

// Location reassembles the flat columns into the nested wire value.
func (r Restaurant) Location() Location {
	return Location{Lat: r.Lat, Lng: r.Lng, Address: r.Address}
}

// SetLocation flattens a nested location back onto the row columns.
func (r *Restaurant) SetLocation(loc Location) {
	r.Lat = loc.Lat
	r.Lng = loc.Lng
	r.Address = loc.Address
}

// restaurantJSON is the wire shape: identical to Restaurant except that
// lat/lng/address appear as a nested object.
type restaurantJSON struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Cuisine       string   `json:"cuisine"`
	Description   string   `json:"description"`
	PriceRange    string   `json:"priceRange"`
	Rating        int      `json:"rating"`
	RecommendedBy string   `json:"recommendedBy"`
	Timestamp     int64    `json:"timestamp"`
	Location      Location `json:"location"`
}

func (r Restaurant) MarshalJSON() ([]byte, error) {
	return json.Marshal(restaurantJSON{
		ID:            r.ID,
		Name:          r.Name,
		Cuisine:       r.Cuisine,
		Description:   r.Description,
		PriceRange:    r.PriceRange,
		Rating:        r.Rating,
		RecommendedBy: r.RecommendedBy,
		Timestamp:     r.Timestamp,
		Location:      r.Location(),
	})
}

func (r *Restaurant) UnmarshalJSON(data []byte) error {
	var w restaurantJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	r.ID = w.ID
	r.Name = w.Name
	r.Cuisine = w.Cuisine
	r.Description = w.Description
	r.PriceRange = w.PriceRange
	r.Rating = w.Rating
	r.RecommendedBy = w.RecommendedBy
	r.Timestamp = w.Timestamp
	r.SetLocation(w.Location)
	return nil
}
