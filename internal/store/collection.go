package store

import (
	"encoding/json"
	"fmt"
)

// Entity is a record addressable by a unique id.
type Entity interface {
	comparable
	EntityID() string
}

// Collection is an insertion-ordered set of entities keyed by id.
// It is not safe for concurrent use; Store serializes access.
type Collection[T Entity] struct {
	items []T
	index map[string]int
}

// NewCollection builds a collection holding items in the given order.
func NewCollection[T Entity](items ...T) *Collection[T] {
	c := &Collection[T]{index: make(map[string]int, len(items))}
	for _, it := range items {
		c.Insert(it)
	}
	return c
}

// Insert appends item. An item whose id is already present replaces the
// stored one in place, keeping its position.
func (c *Collection[T]) Insert(item T) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	id := item.EntityID()
	if i, ok := c.index[id]; ok {
		c.items[i] = item
		return
	}
	c.index[id] = len(c.items)
	c.items = append(c.items, item)
}

// FindByID returns the entity with id, or the zero value and false.
func (c *Collection[T]) FindByID(id string) (T, bool) {
	if i, ok := c.index[id]; ok {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Find returns the first entity matching pred.
func (c *Collection[T]) Find(pred func(T) bool) (T, bool) {
	for _, it := range c.items {
		if pred(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// FindAll returns the entities matching pred in insertion order. A nil pred
// matches everything. The result is a fresh slice, never nil.
func (c *Collection[T]) FindAll(pred func(T) bool) []T {
	out := make([]T, 0, len(c.items))
	for _, it := range c.items {
		if pred == nil || pred(it) {
			out = append(out, it)
		}
	}
	return out
}

// Count returns how many entities match pred.
func (c *Collection[T]) Count(pred func(T) bool) int {
	n := 0
	for _, it := range c.items {
		if pred(it) {
			n++
		}
	}
	return n
}

// RemoveWhere deletes every entity matching pred and reports how many were removed.
func (c *Collection[T]) RemoveWhere(pred func(T) bool) int {
	kept := c.items[:0]
	removed := 0
	for _, it := range c.items {
		if pred(it) {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	if removed == 0 {
		return 0
	}
	var zero T
	for i := len(kept); i < len(c.items); i++ {
		c.items[i] = zero
	}
	c.items = kept
	c.reindex()
	return removed
}

// Len returns the number of entities.
func (c *Collection[T]) Len() int { return len(c.items) }

func (c *Collection[T]) reindex() {
	c.index = make(map[string]int, len(c.items))
	for i, it := range c.items {
		c.index[it.EntityID()] = i
	}
}

// MarshalJSON encodes the collection as an array in insertion order.
func (c *Collection[T]) MarshalJSON() ([]byte, error) {
	if c == nil || c.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.items)
}

// UnmarshalJSON decodes an array of entities. Null entries, missing ids and
// duplicate ids are rejected.
func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	var zero T
	fresh := &Collection[T]{index: make(map[string]int, len(items))}
	for i, it := range items {
		if it == zero {
			return fmt.Errorf("entry %d is null", i)
		}
		id := it.EntityID()
		if id == "" {
			return fmt.Errorf("entry %d has no id", i)
		}
		if _, dup := fresh.index[id]; dup {
			return fmt.Errorf("duplicate id %q", id)
		}
		fresh.Insert(it)
	}
	*c = *fresh
	return nil
}
