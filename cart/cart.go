// Package cart holds the per-session shopping cart and the checkout flow.
// The cart is derived state: reconstructed from the Store on construction
// and rewritten whole on every mutation — no delta writes.
package cart

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/rewear-app/rewear-api/models"
	"github.com/rewear-app/rewear-api/storage"
)

const cartKey = "rewear_cart"

// Entry pairs an item snapshot with a quantity. At most one entry exists
// per item id.
type Entry struct {
	Item     models.Item `json:"item"`
	Quantity int         `json:"quantity"`
}

type Cart struct {
	store   storage.Store
	key     string
	entries []Entry
}

// New reconstructs the session cart from the Store.
func New(store storage.Store) *Cart {
	return NewWithKey(store, cartKey)
}

// NewForUser scopes the cart key to one account, for serving more than one
// session from the same Store.
func NewForUser(store storage.Store, userID string) *Cart {
	return NewWithKey(store, cartKey+"_"+userID)
}

func NewWithKey(store storage.Store, key string) *Cart {
	c := &Cart{store: store, key: key}
	raw, ok := store.Get(key)
	if ok && strings.TrimSpace(raw) != "" {
		if err := json.Unmarshal([]byte(raw), &c.entries); err != nil {
			log.Printf("cart: corrupt cart contents, starting empty: %v", err)
			c.entries = nil
		}
	}
	return c
}

// Add puts an item in the cart, incrementing the quantity when the item id
// is already present.
func (c *Cart) Add(item models.Item) {
	for i := range c.entries {
		if c.entries[i].Item.ID == item.ID {
			c.entries[i].Quantity++
			c.save()
			return
		}
	}
	c.entries = append(c.entries, Entry{Item: item, Quantity: 1})
	c.save()
}

// SetQuantity sets the quantity for an item; zero or less removes it.
func (c *Cart) SetQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.Remove(itemID)
		return
	}
	for i := range c.entries {
		if c.entries[i].Item.ID == itemID {
			c.entries[i].Quantity = quantity
			break
		}
	}
	c.save()
}

// Remove drops an item's entry entirely.
func (c *Cart) Remove(itemID string) {
	kept := c.entries[:0]
	for _, e := range c.entries {
		if e.Item.ID != itemID {
			kept = append(kept, e)
		}
	}
	c.entries = kept
	c.save()
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.entries = nil
	c.save()
}

// Entries returns a copy of the cart contents.
func (c *Cart) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// TotalPoints is the sum of point value times quantity over all entries.
func (c *Cart) TotalPoints() int {
	total := 0
	for _, e := range c.entries {
		total += e.Item.PointValue * e.Quantity
	}
	return total
}

// ItemCount is the sum of quantities.
func (c *Cart) ItemCount() int {
	count := 0
	for _, e := range c.entries {
		count += e.Quantity
	}
	return count
}

func (c *Cart) save() {
	b, err := json.Marshal(c.entries)
	if err != nil {
		log.Printf("cart: failed to encode cart: %v", err)
		return
	}
	c.store.Set(c.key, string(b))
}
