package query

import (
	"sort"
	"time"

	"belshop/domain"
)

// SortOption selects the wishlist ordering.
type SortOption string

const (
	SortByDateAdded SortOption = "dateAdded"
	SortByPriceAsc  SortOption = "priceAsc"
	SortByPriceDesc SortOption = "priceDesc"
	SortByName      SortOption = "name"
	SortByPriority  SortOption = "priority"
)

// ParseSortOption resolves a sort option name, defaulting to dateAdded for an
// empty string.
func ParseSortOption(s string) (SortOption, error) {
	switch SortOption(s) {
	case SortByDateAdded, SortByPriceAsc, SortByPriceDesc, SortByName, SortByPriority:
		return SortOption(s), nil
	case "":
		return SortByDateAdded, nil
	}
	return "", domain.NewValidationError("sort", "unknown sort option", s)
}

// WishlistFilter narrows and orders the wishlist view.
type WishlistFilter struct {
	Category *domain.Category
	Search   string
	Sort     SortOption
}

// WishlistView filters and sorts the wishlist products. The products slice is
// the store's wishlist join; items supply the added dates and priorities.
// All sorts are stable so re-queries render identically.
func WishlistView(products []domain.Product, items []domain.WishlistItem, f WishlistFilter) []domain.Product {
	byProduct := make(map[string]domain.WishlistItem, len(items))
	for _, it := range items {
		byProduct[it.ProductID] = it
	}

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if f.Category != nil && p.Category != *f.Category {
			continue
		}
		if !matchesSearch(p, f.Search) {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case SortByPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].LowestPrice() < out[j].LowestPrice()
		})
	case SortByPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].LowestPrice() > out[j].LowestPrice()
		})
	case SortByName:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Name < out[j].Name
		})
	case SortByPriority:
		// products without a wishlist item rank as low priority
		sort.SliceStable(out, func(i, j int) bool {
			return itemPriority(byProduct, out[i].ID) > itemPriority(byProduct, out[j].ID)
		})
	default: // SortByDateAdded
		// products without a wishlist item sort as the oldest possible date
		sort.SliceStable(out, func(i, j int) bool {
			return itemDate(byProduct, out[i].ID).After(itemDate(byProduct, out[j].ID))
		})
	}
	return out
}

func itemDate(items map[string]domain.WishlistItem, productID string) time.Time {
	if it, ok := items[productID]; ok {
		return it.AddedDate
	}
	return time.Time{}
}

func itemPriority(items map[string]domain.WishlistItem, productID string) int {
	if it, ok := items[productID]; ok {
		return it.Priority.Rank()
	}
	return domain.PriorityLow.Rank()
}
