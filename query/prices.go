package query

import (
	"sort"

	"belshop/domain"
)

// PriceComparison is the per-product retailer comparison: offers sorted by
// total price ascending, with the cheapest-by-total offer pre-selected.
type PriceComparison struct {
	Sorted    []domain.RetailerPrice
	Selected  domain.RetailerPrice
	HasOffers bool
}

// ComparePrices sorts a product's offers by total price and selects the
// first. An empty price list yields HasOffers=false and zero values.
//
// Note the selection here ranks by total price while Product.BestRetailer
// ranks by base price only; the two reference points intentionally differ
// and PriceDifference is always measured against the latter.
func ComparePrices(p domain.Product) PriceComparison {
	sorted := make([]domain.RetailerPrice, len(p.Prices))
	copy(sorted, p.Prices)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalPrice() < sorted[j].TotalPrice()
	})
	c := PriceComparison{Sorted: sorted}
	if len(sorted) > 0 {
		c.Selected = sorted[0]
		c.HasOffers = true
	}
	return c
}

// PriceDifference is the offer's total price relative to the best retailer's
// total price, where "best retailer" is the cheapest by base price. The
// result can be negative when a zero-shipping offer undercuts the best
// retailer's total. Products without offers yield 0.
func PriceDifference(p domain.Product, rp domain.RetailerPrice) float64 {
	best, ok := p.BestRetailer()
	if !ok {
		return 0
	}
	return rp.TotalPrice() - best.TotalPrice()
}

// IsBestPrice reports whether the offer is the product's best retailer.
func IsBestPrice(p domain.Product, rp domain.RetailerPrice) bool {
	best, ok := p.BestRetailer()
	return ok && best.ID == rp.ID
}
