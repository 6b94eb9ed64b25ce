package client

import (
	"errors"
)

// Fixed user-visible messages for failed operations.
const (
	LoadFailedMessage   = "Failed to load restaurants. Please try again later."
	AddFailedMessage    = "Failed to add restaurant. Please try again."
	UpdateFailedMessage = "Failed to update restaurant. Please try again."
	DeleteFailedMessage = "Failed to delete restaurant. Please try again."
)

// Wall ties the API client, the cache and the session together the way a
// browser session would: one full fetch on load, then staged mutations
// committed only after the server acknowledges them and reverted on
// failure, so a rejected write never lingers in the visible list.
type Wall struct {
	API     *Client
	Cache   *Cache
	Session *Session
}

func NewWall(baseURL string) *Wall {
	api := New(baseURL)
	return &Wall{
		API:     api,
		Cache:   NewCache(),
		Session: NewSession(api),
	}
}

// Refresh replaces the cache with the server's list.
func (w *Wall) Refresh() error {
	records, err := w.API.List()
	if err != nil {
		return errors.New(LoadFailedMessage)
	}
	w.Cache.Replace(records)
	return nil
}

// Add creates a record from the form input and prepends it on success.
func (w *Wall) Add(in RestaurantInput) error {
	record := NewRestaurant(in)
	pending := w.Cache.StageCreate(record)

	if err := w.API.Create(record); err != nil {
		w.Cache.Revert(pending)
		return errors.New(AddFailedMessage)
	}
	return w.Cache.Commit(pending)
}

// Update replaces every mutable field of the record with the given id,
// stamping a fresh timestamp.
func (w *Wall) Update(id string, in RestaurantInput) error {
	// NewRestaurant stamps the fresh timestamp; only the id carries over.
	record := NewRestaurant(in)
	record.ID = id

	pending, err := w.Cache.StageUpdate(record)
	if err != nil {
		return err
	}

	if err := w.API.Update(id, record); err != nil {
		w.Cache.Revert(pending)
		return errors.New(UpdateFailedMessage)
	}
	return w.Cache.Commit(pending)
}

// Delete removes the record with the given id.
func (w *Wall) Delete(id string) error {
	pending, err := w.Cache.StageDelete(id)
	if err != nil {
		return err
	}

	if err := w.API.Delete(id); err != nil {
		w.Cache.Revert(pending)
		return errors.New(DeleteFailedMessage)
	}
	return w.Cache.Commit(pending)
}
