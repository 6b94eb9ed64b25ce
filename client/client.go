// Package client is the consumer side of the restaurant wall: the API
// client, the cached record list with its pending-mutation protocol, the
// filter/sort derivation, the list/map view models, the admin session and
// the local version snapshots.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shibbster321321/vegan-restaurant-1/models"
)

// Client talks to the restaurant wall REST API. A token obtained through
// Login is attached to every mutating call.
type Client struct {
	BaseURL string
	HTTP    *http.Client

	token string
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) SetToken(token string) {
	c.token = token
}

// RestaurantInput carries the user-entered fields of a new record; id and
// timestamp are assigned by NewRestaurant.
type RestaurantInput struct {
	Name          string
	Cuisine       string
	Description   string
	PriceRange    string
	Rating        int
	RecommendedBy string
	Location      models.Location
}

// NewRestaurant stamps the input with a fresh id and the current time in
// epoch milliseconds, matching the creation contract of the API.
func NewRestaurant(in RestaurantInput) models.Restaurant {
	r := models.Restaurant{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Cuisine:       in.Cuisine,
		Description:   in.Description,
		PriceRange:    in.PriceRange,
		Rating:        in.Rating,
		RecommendedBy: in.RecommendedBy,
		Timestamp:     time.Now().UnixMilli(),
	}
	r.SetLocation(in.Location)
	return r
}

func (c *Client) List() ([]models.Restaurant, error) {
	resp, err := c.HTTP.Get(c.BaseURL + "/api/restaurants")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch restaurants: %s", resp.Status)
	}

	var restaurants []models.Restaurant
	if err := json.NewDecoder(resp.Body).Decode(&restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (c *Client) Create(r models.Restaurant) error {
	return c.send(http.MethodPost, "/api/restaurants", r, http.StatusCreated)
}

func (c *Client) Update(id string, r models.Restaurant) error {
	return c.send(http.MethodPut, "/api/restaurants/"+id, r, http.StatusOK)
}

func (c *Client) Delete(id string) error {
	return c.send(http.MethodDelete, "/api/restaurants/"+id, nil, http.StatusOK)
}

func (c *Client) send(method, path string, body interface{}, want int) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequest(method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return fmt.Errorf("request failed: %s", resp.Status)
	}
	return nil
}

type loginResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	} `json:"data"`
}

var errUnauthorized = errors.New("unauthorized")

// login exchanges credentials for a token. Callers go through
// Session.Login, which owns the state transition.
func (c *Client) login(username, password string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	resp, err := c.HTTP.Post(c.BaseURL+"/api/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return "", errUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login failed: %s", resp.Status)
	}

	var out loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Data.Token, nil
}
