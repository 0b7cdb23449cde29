package services

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"urban-threads/models"
	"urban-threads/storage"
)

// CatalogStore owns the product list. Every mutation re-serializes the full
// catalog to durable storage before subscribers are notified.
type CatalogStore struct {
	notifier

	mu       sync.Mutex
	store    storage.Store
	log      *slog.Logger
	products []models.Product
}

func NewCatalogStore(store storage.Store, log *slog.Logger) *CatalogStore {
	c := &CatalogStore{store: store, log: log}
	c.load()
	return c
}

// load reads the persisted catalog, seeding the built-in defaults when the
// blob is absent or unparsable. Parse errors are logged, never propagated.
func (c *CatalogStore) load() {
	raw, err := c.store.Get(keyProducts)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			c.log.Warn("could not read catalog, seeding defaults", "error", err)
		}
		c.products = defaultCatalog()
		c.persist()
		return
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		c.log.Warn("could not parse catalog, seeding defaults", "error", err)
		c.products = defaultCatalog()
		c.persist()
		return
	}
	c.products = products
}

func (c *CatalogStore) persist() {
	raw, err := json.Marshal(c.products)
	if err != nil {
		c.log.Error("failed to serialize catalog", "error", err)
		return
	}
	if err := c.store.Set(keyProducts, raw); err != nil {
		c.log.Error("failed to persist catalog", "error", err)
	}
}

// List returns the catalog, most recently added first.
func (c *CatalogStore) List() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Filter narrows the catalog by category and an optional price ceiling.
// An empty category matches everything; maxPrice <= 0 means no ceiling.
func (c *CatalogStore) Filter(category models.Category, maxPrice float64) []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := []models.Product{}
	for _, p := range c.products {
		if category != "" && p.Category != category {
			continue
		}
		if maxPrice > 0 && p.Price > maxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Featured returns the products flagged for the home page.
func (c *CatalogStore) Featured() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := []models.Product{}
	for _, p := range c.products {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out
}

func (c *CatalogStore) FindByID(id string) (models.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (c *CatalogStore) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.products)
}

// Add assigns a fresh id, prepends the product, persists, and returns it.
func (c *CatalogStore) Add(req models.ProductRequest) models.Product {
	product := models.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		IsFeatured:  req.IsFeatured,
	}

	c.mu.Lock()
	c.products = append([]models.Product{product}, c.products...)
	c.persist()
	c.mu.Unlock()

	c.notify()
	return product
}

// Update replaces the product with a matching id. A miss is silently
// ignored; the catalog is persisted either way.
func (c *CatalogStore) Update(product models.Product) {
	c.mu.Lock()
	for i, p := range c.products {
		if p.ID == product.ID {
			c.products[i] = product
			break
		}
	}
	c.persist()
	c.mu.Unlock()

	c.notify()
}

// Delete removes the product with a matching id, silently ignoring a miss.
func (c *CatalogStore) Delete(id string) {
	c.mu.Lock()
	kept := c.products[:0]
	for _, p := range c.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.products = kept
	c.persist()
	c.mu.Unlock()

	c.notify()
}
