package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultNominatimURL = "https://nominatim.openstreetmap.org"

var ErrAddressNotFound = errors.New("address not found")

// Geocoder resolves free-text addresses to coordinates through the
// Nominatim search API. A lookup failure never blocks submission; the
// form falls back to manually entered coordinates.
type Geocoder struct {
	BaseURL string
	Client  *http.Client
}

func NewGeocoder() *Geocoder {
	return &Geocoder{
		BaseURL: defaultNominatimURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode returns the first match for the address.
func (g *Geocoder) Geocode(address string) (lat, lng float64, err error) {
	endpoint := fmt.Sprintf("%s/search?format=json&q=%s&limit=1", g.BaseURL, url.QueryEscape(address))

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, 0, err
	}
	req.Header.Set("Accept-Language", "en")

	resp, err := g.Client.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocoding request failed: %s", resp.Status)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, ErrAddressNotFound
	}

	lat, err = strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, err
	}
	lng, err = strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, err
	}
	return lat, lng, nil
}
