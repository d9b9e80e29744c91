// Package cart holds the shopper's in-progress cart before any order
// exists server-side. The engine is the single owner of cart state: every
// mutation goes through it and is persisted to the backing store, so the
// cart survives restarts. It is a leaf component with no network
// collaborators.
package cart

import (
	"encoding/json"
	"sync"
)

// StorageKey is the fixed key the serialized cart lives under.
const StorageKey = "cart"

// LineItem is one product's presence in the cart. Name, price and image are
// snapshotted when the item is added; later catalog edits do not reach an
// open cart.
type LineItem struct {
	Slug     string  `json:"slug"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"` // unit price at add time
	Image    string  `json:"image,omitempty"`
	Quantity int     `json:"quantity"`
}

// Product is the catalog data needed to add an item to the cart.
type Product struct {
	Slug  string
	Name  string
	Price float64
	Image string
}

// Snapshot is an immutable-at-call-time view of the cart.
type Snapshot struct {
	Items     []LineItem
	ItemCount int
	Subtotal  float64
}

// Empty reports whether the snapshot holds no line items.
func (s Snapshot) Empty() bool {
	return len(s.Items) == 0
}

// Engine maintains the cart's line items in insertion order, one per slug,
// every item with quantity >= 1. Mutations persist the full cart to the
// store; a missing or corrupt stored cart restores as empty.
type Engine struct {
	mu    sync.Mutex
	items []LineItem
	store Store
}

// NewEngine restores the cart from the store. Corrupt or absent persisted
// state yields an empty cart, never an error.
func NewEngine(store Store) *Engine {
	e := &Engine{store: store}
	raw, err := store.Load(StorageKey)
	if err != nil || len(raw) == 0 {
		return e
	}
	var items []LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return e
	}
	// Drop anything a foreign writer left in an invalid state.
	for _, it := range items {
		if it.Slug == "" || it.Quantity < 1 {
			continue
		}
		e.items = append(e.items, it)
	}
	return e
}

func (e *Engine) find(slug string) int {
	for i := range e.items {
		if e.items[i].Slug == slug {
			return i
		}
	}
	return -1
}

// persist serializes the full cart under the fixed key. Called with the
// lock held, after every mutation.
func (e *Engine) persist() {
	raw, err := json.Marshal(e.items)
	if err != nil {
		return
	}
	_ = e.store.Save(StorageKey, raw)
}

// AddItem merges a product into the cart: an existing line item has its
// quantity incremented by seed, a new product is inserted with quantity
// seed. Seeds below 1 count as 1.
func (e *Engine) AddItem(p Product, seed int) {
	if seed < 1 {
		seed = 1
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if i := e.find(p.Slug); i >= 0 {
		e.items[i].Quantity += seed
	} else {
		e.items = append(e.items, LineItem{
			Slug:     p.Slug,
			Name:     p.Name,
			Price:    p.Price,
			Image:    p.Image,
			Quantity: seed,
		})
	}
	e.persist()
}

// RemoveItem deletes the line item for slug. Removing an absent slug is a
// no-op.
func (e *Engine) RemoveItem(slug string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.find(slug)
	if i < 0 {
		return
	}
	e.items = append(e.items[:i], e.items[i+1:]...)
	e.persist()
}

// SetQuantity replaces the stored quantity for slug. A quantity of zero or
// less removes the item; quantity <= 0 never exists in the cart.
func (e *Engine) SetQuantity(slug string, quantity int) {
	if quantity <= 0 {
		e.RemoveItem(slug)
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.find(slug)
	if i < 0 {
		return
	}
	e.items[i].Quantity = quantity
	e.persist()
}

// Clear empties the cart unconditionally.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.items = nil
	e.persist()
}

// Snapshot returns a copy of the current line items with the derived
// aggregates. It always reflects the latest mutation.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := Snapshot{Items: make([]LineItem, len(e.items))}
	copy(snap.Items, e.items)
	for _, it := range e.items {
		snap.ItemCount += it.Quantity
		snap.Subtotal += it.Price * float64(it.Quantity)
	}
	return snap
}
