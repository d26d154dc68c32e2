package store

import (
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"belshop/domain"
)

// CatalogStore owns the product catalog and the wishlist. It is the single
// writer for both lists: mutations are applied in memory under the lock and
// then persisted as a whole snapshot, so readers observe either the pre- or
// the post-mutation state, never an interleaving.
//
// Persistence is best-effort. When the KV backend fails, the in-memory state
// stays authoritative and the mutation returns a domain.PersistenceError that
// callers should treat as a warning.
type CatalogStore struct {
	mu        sync.RWMutex
	kv        KV
	log       *slog.Logger
	products  []domain.Product
	wishlist  []domain.WishlistItem
	observers []func()
}

// NewCatalogStore loads both snapshots from the KV backend and seeds the
// baseline catalog when no products were persisted yet. Load failures are
// logged and recovered by falling back to the seed.
func NewCatalogStore(kv KV, log *slog.Logger) *CatalogStore {
	if log == nil {
		log = slog.Default()
	}
	s := &CatalogStore{kv: kv, log: log}
	s.load()
	if len(s.products) == 0 {
		s.products = SeedProducts(time.Now())
		if err := s.persist("seed", KeyProducts, KeyWishlist); err != nil {
			s.log.Warn("seed snapshot not persisted", "error", err)
		}
	}
	return s
}

func (s *CatalogStore) load() {
	if b, err := s.kv.Get(KeyProducts); err != nil {
		s.log.Warn("loading products failed", "error", err)
	} else if len(b) > 0 {
		if err := json.Unmarshal(b, &s.products); err != nil {
			s.log.Warn("decoding products failed", "error", err)
			s.products = nil
		}
	}
	if b, err := s.kv.Get(KeyWishlist); err != nil {
		s.log.Warn("loading wishlist failed", "error", err)
	} else if len(b) > 0 {
		if err := json.Unmarshal(b, &s.wishlist); err != nil {
			s.log.Warn("decoding wishlist failed", "error", err)
			s.wishlist = nil
		}
	}
}

// persist writes the named snapshots in a single Put. Callers hold the lock.
func (s *CatalogStore) persist(op string, keys ...string) error {
	entries := make(map[string][]byte, len(keys))
	for _, key := range keys {
		var (
			b   []byte
			err error
		)
		switch key {
		case KeyProducts:
			b, err = json.Marshal(s.products)
		case KeyWishlist:
			b, err = json.Marshal(s.wishlist)
		}
		if err != nil {
			return domain.NewPersistenceError(op, err)
		}
		entries[key] = b
	}
	if err := s.kv.Put(entries); err != nil {
		s.log.Warn("snapshot not persisted", "op", op, "error", err)
		return domain.NewPersistenceError(op, err)
	}
	return nil
}

// Subscribe registers a callback invoked after every in-memory mutation.
// Callbacks run outside the store lock and may re-query the store.
func (s *CatalogStore) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *CatalogStore) notify() {
	s.mu.RLock()
	observers := make([]func(), len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()
	for _, fn := range observers {
		fn()
	}
}

// ListProducts returns all products in insertion order.
func (s *CatalogStore) ListProducts() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// GetProduct returns the product with the given id or a NotFoundError.
func (s *CatalogStore) GetProduct(id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.NewNotFoundError("product", id)
}

// GetProducts returns the products in the given category, insertion order.
func (s *CatalogStore) GetProducts(category domain.Category) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, 0)
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// SearchProducts returns products whose name or description contains the
// query, case-insensitively. An empty query returns the full catalog.
func (s *CatalogStore) SearchProducts(query string) []domain.Product {
	if query == "" {
		return s.ListProducts()
	}
	q := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, 0)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

// AddProduct validates and appends a product to the catalog.
func (s *CatalogStore) AddProduct(p domain.Product) error {
	if err := domain.ValidateProduct(p); err != nil {
		return err
	}
	s.mu.Lock()
	s.products = append(s.products, p)
	err := s.persist("add product", KeyProducts)
	s.mu.Unlock()
	s.notify()
	return err
}

// UpdateProduct replaces the product with the same id. Updating an absent id
// is a silent no-op.
func (s *CatalogStore) UpdateProduct(p domain.Product) error {
	if err := domain.ValidateProduct(p); err != nil {
		return err
	}
	s.mu.Lock()
	idx := -1
	for i := range s.products {
		if s.products[i].ID == p.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	s.products[idx] = p
	err := s.persist("update product", KeyProducts)
	s.mu.Unlock()
	s.notify()
	return err
}

// DeleteProduct removes the product with the given id; absent ids are a no-op.
func (s *CatalogStore) DeleteProduct(id string) error {
	s.mu.Lock()
	kept := s.products[:0]
	removed := false
	for _, p := range s.products {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		s.mu.Unlock()
		return nil
	}
	s.products = kept
	err := s.persist("delete product", KeyProducts)
	s.mu.Unlock()
	s.notify()
	return err
}

// AddToWishlist creates a wishlist item for the product unless one already
// exists, and flags the product when it is present in the catalog. Both
// snapshots are persisted together.
func (s *CatalogStore) AddToWishlist(productID, notes string, priority domain.Priority) error {
	s.mu.Lock()
	exists := false
	for _, it := range s.wishlist {
		if it.ProductID == productID {
			exists = true
			break
		}
	}
	if !exists {
		s.wishlist = append(s.wishlist, domain.WishlistItem{
			ID:        uuid.NewString(),
			ProductID: productID,
			AddedDate: time.Now(),
			Notes:     notes,
			Priority:  priority,
		})
	}
	flagged := false
	for i := range s.products {
		if s.products[i].ID == productID {
			if !s.products[i].IsOnWishlist {
				s.products[i].IsOnWishlist = true
				flagged = true
			}
			break
		}
	}
	if exists && !flagged {
		s.mu.Unlock()
		return nil
	}
	err := s.persist("add to wishlist", KeyProducts, KeyWishlist)
	s.mu.Unlock()
	s.notify()
	return err
}

// RemoveFromWishlist deletes any item for the product and clears its flag.
func (s *CatalogStore) RemoveFromWishlist(productID string) error {
	s.mu.Lock()
	kept := s.wishlist[:0]
	for _, it := range s.wishlist {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	s.wishlist = kept
	for i := range s.products {
		if s.products[i].ID == productID {
			s.products[i].IsOnWishlist = false
			break
		}
	}
	err := s.persist("remove from wishlist", KeyProducts, KeyWishlist)
	s.mu.Unlock()
	s.notify()
	return err
}

// IsInWishlist reports whether a wishlist item exists for the product.
func (s *CatalogStore) IsInWishlist(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.wishlist {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

// GetWishlistProducts returns the catalog products that have a wishlist item,
// in catalog insertion order. Items whose product left the catalog are
// silently excluded.
func (s *CatalogStore) GetWishlistProducts() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make(map[string]struct{}, len(s.wishlist))
	for _, it := range s.wishlist {
		ids[it.ProductID] = struct{}{}
	}
	out := make([]domain.Product, 0, len(ids))
	for _, p := range s.products {
		if _, ok := ids[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

// WishlistItems returns a copy of all wishlist items.
func (s *CatalogStore) WishlistItems() []domain.WishlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.WishlistItem, len(s.wishlist))
	copy(out, s.wishlist)
	return out
}

// WishlistItemFor returns the wishlist item referencing the product, if any.
func (s *CatalogStore) WishlistItemFor(productID string) (domain.WishlistItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.wishlist {
		if it.ProductID == productID {
			return it, true
		}
	}
	return domain.WishlistItem{}, false
}

// UpdateWishlistItem replaces the item with the same id; absent ids are a
// silent no-op.
func (s *CatalogStore) UpdateWishlistItem(item domain.WishlistItem) error {
	s.mu.Lock()
	idx := -1
	for i := range s.wishlist {
		if s.wishlist[i].ID == item.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	s.wishlist[idx] = item
	err := s.persist("update wishlist item", KeyWishlist)
	s.mu.Unlock()
	s.notify()
	return err
}

// ResetAll clears the catalog and wishlist and restores the seeded baseline.
func (s *CatalogStore) ResetAll() error {
	s.mu.Lock()
	s.products = SeedProducts(time.Now())
	s.wishlist = nil
	err := s.persist("reset", KeyProducts, KeyWishlist)
	s.mu.Unlock()
	s.notify()
	return err
}
