// Package domain defines the core catalog types and interfaces.
package domain

import (
	"sort"
	"strings"
	"time"
)

// Category is the closed set of product categories.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryHome        Category = "home"
	CategoryBeauty      Category = "beauty"
	CategorySports      Category = "sports"
	CategoryBooks       Category = "books"
	CategoryToys        Category = "toys"
	CategoryFood        Category = "food"
	CategoryOther       Category = "other"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryClothing,
		CategoryHome,
		CategoryBeauty,
		CategorySports,
		CategoryBooks,
		CategoryToys,
		CategoryFood,
		CategoryOther,
	}
}

// ParseCategory resolves a case-insensitive category name.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return c, nil
		}
	}
	return "", NewValidationError("category", "unknown category", s)
}

// Availability describes stock status at a single retailer.
type Availability string

const (
	InStock    Availability = "inStock"
	LowStock   Availability = "lowStock"
	OutOfStock Availability = "outOfStock"
	PreOrder   Availability = "preOrder"
)

// RetailerPrice is one retailer's offer for a product.
type RetailerPrice struct {
	ID           string       `json:"id"`
	RetailerName string       `json:"retailerName"`
	Price        float64      `json:"price"`
	Currency     string       `json:"currency"`
	Availability Availability `json:"availability"`
	ShippingCost float64      `json:"shippingCost"`
	DeliveryDays int          `json:"deliveryDays"`
	RetailerURL  *string      `json:"retailerURL,omitempty"`
}

// NewRetailerPrice builds an offer with the default currency, availability
// and delivery window.
func NewRetailerPrice(id, retailerName string, price float64) RetailerPrice {
	return RetailerPrice{
		ID:           id,
		RetailerName: retailerName,
		Price:        price,
		Currency:     "BYN",
		Availability: InStock,
		DeliveryDays: 3,
	}
}

// TotalPrice is the base price plus shipping for this offer.
func (rp RetailerPrice) TotalPrice() float64 {
	return rp.Price + rp.ShippingCost
}

// Product is a catalog entry carrying offers from several retailers.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Category       Category          `json:"category"`
	ImageURL       *string           `json:"imageURL,omitempty"`
	Prices         []RetailerPrice   `json:"prices"`
	AverageRating  float64           `json:"averageRating"`
	ReviewCount    int               `json:"reviewCount"`
	Specifications map[string]string `json:"specifications"`
	IsOnWishlist   bool              `json:"isOnWishlist"`
	IsDeal         bool              `json:"isDeal"`
	DealExpiryDate *time.Time        `json:"dealExpiryDate,omitempty"`
	DealDiscount   *int              `json:"dealDiscount,omitempty"`
}

// LowestPrice is the minimum base price across retailers, 0 when no offers exist.
func (p Product) LowestPrice() float64 {
	if len(p.Prices) == 0 {
		return 0
	}
	min := p.Prices[0].Price
	for _, rp := range p.Prices[1:] {
		if rp.Price < min {
			min = rp.Price
		}
	}
	return min
}

// HighestPrice is the maximum base price across retailers, 0 when no offers exist.
func (p Product) HighestPrice() float64 {
	if len(p.Prices) == 0 {
		return 0
	}
	max := p.Prices[0].Price
	for _, rp := range p.Prices[1:] {
		if rp.Price > max {
			max = rp.Price
		}
	}
	return max
}

// PriceSavings is the spread between the highest and lowest base price.
func (p Product) PriceSavings() float64 {
	return p.HighestPrice() - p.LowestPrice()
}

// BestRetailer returns the offer with the lowest base price. Shipping is
// excluded from this ranking; comparison views sort by total price separately.
func (p Product) BestRetailer() (RetailerPrice, bool) {
	if len(p.Prices) == 0 {
		return RetailerPrice{}, false
	}
	best := p.Prices[0]
	for _, rp := range p.Prices[1:] {
		if rp.Price < best.Price {
			best = rp
		}
	}
	return best, true
}

// SpecificationKeys returns the spec-map keys in lexicographic order for
// deterministic rendering.
func (p Product) SpecificationKeys() []string {
	keys := make([]string, 0, len(p.Specifications))
	for k := range p.Specifications {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ValidateProduct checks field constraints before a product enters the store.
func ValidateProduct(p Product) error {
	if p.Name == "" {
		return NewValidationError("name", "cannot be empty", p.Name)
	}
	if _, err := ParseCategory(string(p.Category)); err != nil {
		return err
	}
	if p.AverageRating < 0 || p.AverageRating > 5 {
		return NewValidationError("averageRating", "must be between 0 and 5", p.AverageRating)
	}
	if p.ReviewCount < 0 {
		return NewValidationError("reviewCount", "must be non-negative", p.ReviewCount)
	}
	for _, rp := range p.Prices {
		if rp.RetailerName == "" {
			return NewValidationError("retailerName", "cannot be empty", rp.RetailerName)
		}
		if rp.Price < 0 {
			return NewValidationError("price", "must be non-negative", rp.Price)
		}
		if rp.ShippingCost < 0 {
			return NewValidationError("shippingCost", "must be non-negative", rp.ShippingCost)
		}
		if rp.DeliveryDays < 0 {
			return NewValidationError("deliveryDays", "must be non-negative", rp.DeliveryDays)
		}
	}
	if p.IsDeal {
		if p.DealDiscount == nil {
			return NewValidationError("dealDiscount", "required for deals", nil)
		}
		if *p.DealDiscount < 0 || *p.DealDiscount > 100 {
			return NewValidationError("dealDiscount", "must be between 0 and 100", *p.DealDiscount)
		}
	}
	return nil
}
