package client

import (
	"errors"
	"sync"

	"github.com/shibbster321321/vegan-restaurant-1/models"
)

// Op is the kind of a staged mutation.
type Op int

const (
	OpCreate Op = iota
	OpUpdate
	OpDelete
)

// Pending is a staged mutation: the cache does not show its effect until
// the server acknowledges it and the caller commits.
type Pending struct {
	Op     Op
	Record models.Restaurant

	committed bool
	reverted  bool
}

var (
	ErrRecordNotFound  = errors.New("record not found in cache")
	ErrPendingResolved = errors.New("pending mutation already resolved")
)

// Cache holds the record list the views derive from. Mutations are staged,
// then either committed after server acknowledgment or reverted on failure;
// reads never observe a staged mutation.
type Cache struct {
	mu      sync.Mutex
	records []models.Restaurant
}

func NewCache() *Cache {
	return &Cache{}
}

// Replace swaps the whole list, e.g. after a fetch or a version restore.
func (c *Cache) Replace(records []models.Restaurant) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append([]models.Restaurant(nil), records...)
}

// Records returns a copy of the visible list.
func (c *Cache) Records() []models.Restaurant {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Restaurant(nil), c.records...)
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// StageCreate stages a new record for prepending.
func (c *Cache) StageCreate(r models.Restaurant) *Pending {
	return &Pending{Op: OpCreate, Record: r}
}

// StageUpdate stages a full replacement of the record matching r.ID.
func (c *Cache) StageUpdate(r models.Restaurant) (*Pending, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, rec := range c.records {
		if rec.ID == r.ID {
			return &Pending{Op: OpUpdate, Record: r}, nil
		}
	}
	return nil, ErrRecordNotFound
}

// StageDelete stages removal of the record with the given id.
func (c *Cache) StageDelete(id string) (*Pending, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, rec := range c.records {
		if rec.ID == id {
			return &Pending{Op: OpDelete, Record: rec}, nil
		}
	}
	return nil, ErrRecordNotFound
}

// Commit folds an acknowledged mutation into the visible list.
func (c *Cache) Commit(p *Pending) error {
	if p.committed || p.reverted {
		return ErrPendingResolved
	}
	p.committed = true

	c.mu.Lock()
	defer c.mu.Unlock()

	switch p.Op {
	case OpCreate:
		c.records = append([]models.Restaurant{p.Record}, c.records...)
	case OpUpdate:
		for i, rec := range c.records {
			if rec.ID == p.Record.ID {
				c.records[i] = p.Record
				break
			}
		}
	case OpDelete:
		for i, rec := range c.records {
			if rec.ID == p.Record.ID {
				c.records = append(c.records[:i], c.records[i+1:]...)
				break
			}
		}
	}
	return nil
}

// Revert discards a failed mutation, leaving the visible list untouched.
func (c *Cache) Revert(p *Pending) error {
	if p.committed || p.reverted {
		return ErrPendingResolved
	}
	p.reverted = true
	return nil
}
