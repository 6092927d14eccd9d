// Package dataaccess emulates a query-builder backend over JSON collections
// held in a key-value Store. It is the seam at which a real backend would
// later be substituted: callers compose filter/sort/limit chains and the
// terminal call returns a result/error pair, never a panic, for every
// expected condition.
package dataaccess

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/rewear-app/rewear-api/models"
	"github.com/rewear-app/rewear-api/storage"
)

// ErrNotFound is returned by Update when no record carries the patch id.
// Absence on reads is not an error: Single resolves to (nil, nil).
var ErrNotFound = errors.New("record not found")

type collectionInfo struct {
	name     string
	key      string
	idPrefix string
	defaults func(m map[string]any)
}

var collections = map[string]collectionInfo{
	"items": {
		name:     "items",
		key:      "rewear_items",
		idPrefix: "item_",
	},
	"users": {
		name:     "users",
		key:      "rewear_demo_users",
		idPrefix: "user_",
	},
	"swap_requests": {
		name:     "swap_requests",
		key:      "rewear_swap_requests",
		idPrefix: "swap_",
		defaults: func(m map[string]any) {
			if s, _ := m["status"].(string); s == "" {
				m["status"] = string(models.SwapStatusPending)
			}
		},
	},
	"orders": {
		name:     "orders",
		key:      "rewear_orders",
		idPrefix: "order_",
		defaults: func(m map[string]any) {
			if s, _ := m["order_status"].(string); s == "" {
				m["order_status"] = string(models.OrderStatusPending)
			}
			if s, _ := m["payment_status"].(string); s == "" {
				m["payment_status"] = string(models.PaymentStatusPending)
			}
		},
	},
	"order_items": {
		name:     "order_items",
		key:      "rewear_order_items",
		idPrefix: "orderitem_",
	},
}

// Client provides query access to the five record collections. Each typed
// accessor loads the collection fresh from the Store, so a write through one
// query is visible to the next.
type Client struct {
	store storage.Store
}

func NewClient(store storage.Store) *Client {
	return &Client{store: store}
}

func (c *Client) Items() *Query[models.Item] {
	return open(c, "items", SeedItems)
}

func (c *Client) Users() *Query[models.PublicUser] {
	return open(c, "users", SeedUsers)
}

func (c *Client) SwapRequests() *Query[models.SwapRequest] {
	return open(c, "swap_requests", SeedSwapRequests)
}

func (c *Client) Orders() *Query[models.Order] {
	return open(c, "orders", SeedOrders)
}

func (c *Client) OrderItems() *Query[models.OrderItem] {
	return open(c, "order_items", SeedOrderItems)
}

// Collection returns a dynamic handle addressed by name. Writes against a
// name the client does not manage are accepted as no-ops that return the
// input unchanged, and reads yield no rows; callers relying on that quirk
// exist, so it is contract, not an oversight.
func (c *Client) Collection(name string) *Query[map[string]any] {
	info, ok := collections[name]
	if !ok {
		return &Query[map[string]any]{client: c, info: collectionInfo{name: name}}
	}
	return open(c, info.name, func() []map[string]any { return seedMaps(name) })
}

func seedMaps(name string) []map[string]any {
	switch name {
	case "items":
		return asMaps(SeedItems())
	case "users":
		return asMaps(SeedUsers())
	case "swap_requests":
		return asMaps(SeedSwapRequests())
	case "orders":
		return asMaps(SeedOrders())
	case "order_items":
		return asMaps(SeedOrderItems())
	}
	return nil
}

func asMaps[T any](rows []T) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, r := range rows {
		m, err := toMap(r)
		if err != nil {
			continue
		}
		out = append(out, m)
	}
	return out
}

// open loads a collection, materializing (and persisting) the default seed
// set when the key is absent or holds an empty array. Corrupt content
// degrades to the seed set with a logged warning and no overwrite; the next
// successful write replaces it.
func open[T any](c *Client, name string, seed func() []T) *Query[T] {
	info := collections[name]
	q := &Query[T]{client: c, info: info, known: true, seed: func() []T { return seed() }}
	q.rows = q.load()
	return q
}

func loadRows[T any](store storage.Store, info collectionInfo, seed func() []T) []T {
	raw, present := store.Get(info.key)
	if present && strings.TrimSpace(raw) != "" {
		var rows []T
		if err := json.Unmarshal([]byte(raw), &rows); err != nil {
			log.Printf("dataaccess: corrupt %s collection, falling back to defaults: %v", info.name, err)
			return seed()
		}
		if len(rows) > 0 {
			return rows
		}
	}
	rows := seed()
	persistRows(store, info, rows)
	return rows
}

func persistRows[T any](store storage.Store, info collectionInfo, rows []T) {
	b, err := json.Marshal(rows)
	if err != nil {
		log.Printf("dataaccess: failed to encode %s collection: %v", info.name, err)
		return
	}
	store.Set(info.key, string(b))
}
