package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shibbster321321/vegan-restaurant-1/models"
)

// Version is a user-named snapshot of the whole record list, kept locally
// and independent of server persistence.
type Version struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Timestamp   int64               `json:"timestamp"`
	Restaurants []models.Restaurant `json:"restaurants"`
}

var ErrVersionNotFound = errors.New("version not found")

// VersionStore persists snapshots to a local JSON file.
type VersionStore struct {
	path     string
	versions []Version
}

func OpenVersionStore(path string) (*VersionStore, error) {
	vs := &VersionStore{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return vs, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &vs.versions); err != nil {
		return nil, err
	}
	return vs, nil
}

// Save snapshots the given records under name; an empty name gets the
// default "Version N". Newest snapshots come first.
func (vs *VersionStore) Save(name string, records []models.Restaurant) (Version, error) {
	if name == "" {
		name = fmt.Sprintf("Version %d", len(vs.versions)+1)
	}

	v := Version{
		ID:          uuid.NewString(),
		Name:        name,
		Timestamp:   time.Now().UnixMilli(),
		Restaurants: append([]models.Restaurant(nil), records...),
	}

	vs.versions = append([]Version{v}, vs.versions...)
	if err := vs.persist(); err != nil {
		return Version{}, err
	}
	return v, nil
}

func (vs *VersionStore) List() []Version {
	return append([]Version(nil), vs.versions...)
}

func (vs *VersionStore) Delete(id string) error {
	for i, v := range vs.versions {
		if v.ID == id {
			vs.versions = append(vs.versions[:i], vs.versions[i+1:]...)
			return vs.persist()
		}
	}
	return ErrVersionNotFound
}

// Restore replaces the cache list with the snapshot. Nothing is written
// back to the server.
func (vs *VersionStore) Restore(id string, cache *Cache) error {
	for _, v := range vs.versions {
		if v.ID == id {
			cache.Replace(v.Restaurants)
			return nil
		}
	}
	return ErrVersionNotFound
}

func (vs *VersionStore) persist() error {
	data, err := json.MarshalIndent(vs.versions, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(vs.path, data, 0644)
}
