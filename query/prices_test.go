package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"belshop/domain"
)

// The comparison view selects by total price while best-retailer badges and
// price differences use the base-price ranking. These tests pin that
// asymmetry down, including the negative-difference case it produces.
func TestComparePrices_Asymmetry(t *testing.T) {
	store1 := domain.RetailerPrice{ID: "s1", RetailerName: "Store1", Price: 100, ShippingCost: 0}
	store2 := domain.RetailerPrice{ID: "s2", RetailerName: "Store2", Price: 90, ShippingCost: 20}
	p := domain.Product{ID: "p", Name: "Thing", Prices: []domain.RetailerPrice{store1, store2}}

	best, ok := p.BestRetailer()
	require.True(t, ok)
	assert.Equal(t, "Store2", best.RetailerName, "best retailer is cheapest by base price")

	c := ComparePrices(p)
	require.True(t, c.HasOffers)
	assert.Equal(t, "Store1", c.Selected.RetailerName,
		"default selection is cheapest by total price")
	assert.Equal(t, []string{"Store1", "Store2"},
		[]string{c.Sorted[0].RetailerName, c.Sorted[1].RetailerName})

	// 100 - (90+20) = -10: Store1 undercuts the best retailer's total
	assert.InDelta(t, -10.0, PriceDifference(p, store1), 1e-9)
	assert.InDelta(t, 0.0, PriceDifference(p, store2), 1e-9)

	assert.False(t, IsBestPrice(p, store1))
	assert.True(t, IsBestPrice(p, store2))
}

func TestComparePrices_EmptyPriceList(t *testing.T) {
	p := domain.Product{ID: "empty"}

	c := ComparePrices(p)
	assert.False(t, c.HasOffers)
	assert.Empty(t, c.Sorted)
	assert.Zero(t, c.Selected)

	assert.Zero(t, PriceDifference(p, domain.RetailerPrice{ID: "x", Price: 5}))
	assert.False(t, IsBestPrice(p, domain.RetailerPrice{ID: "x"}))
}

func TestComparePrices_StableForEqualTotals(t *testing.T) {
	a := domain.RetailerPrice{ID: "a", RetailerName: "A", Price: 50, ShippingCost: 10}
	b := domain.RetailerPrice{ID: "b", RetailerName: "B", Price: 60, ShippingCost: 0}
	p := domain.Product{ID: "p", Prices: []domain.RetailerPrice{a, b}}

	c := ComparePrices(p)
	assert.Equal(t, "A", c.Sorted[0].RetailerName, "equal totals keep input order")
	assert.Equal(t, "A", c.Selected.RetailerName)
}

func TestComparePrices_DoesNotMutateInput(t *testing.T) {
	p := domain.Product{ID: "p", Prices: []domain.RetailerPrice{
		{ID: "x", RetailerName: "X", Price: 30},
		{ID: "y", RetailerName: "Y", Price: 10},
	}}
	_ = ComparePrices(p)
	assert.Equal(t, "X", p.Prices[0].RetailerName, "input order untouched")
}
