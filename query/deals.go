// Package query implements stateless filtering, ranking and aggregation over
// catalog snapshots. Functions take an explicit evaluation time so results
// never depend on cached wall-clock state.
package query

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"belshop/domain"
)

// expiringWindow is how far ahead a deal's expiry may lie to count as
// expiring soon.
const expiringWindow = 3 * 24 * time.Hour

// DealFilter narrows a deal listing. Category and Search are combined with
// AND semantics; a nil category and empty search leave the listing untouched.
type DealFilter struct {
	Category *domain.Category
	Search   string
}

// IsActiveDeal reports whether the product is a deal that has not expired at
// the given time. A missing expiry never expires. Expiry is evaluated here at
// query time; expired deals stay in the catalog untouched.
func IsActiveDeal(p domain.Product, now time.Time) bool {
	if !p.IsDeal {
		return false
	}
	return p.DealExpiryDate == nil || p.DealExpiryDate.After(now)
}

func matchesSearch(p domain.Product, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

// Deals returns the active deals matching the filter, ordered by discount
// percent descending.
func Deals(products []domain.Product, now time.Time, f DealFilter) []domain.Product {
	out := make([]domain.Product, 0)
	for _, p := range products {
		if !IsActiveDeal(p, now) {
			continue
		}
		if f.Category != nil && p.Category != *f.Category {
			continue
		}
		if !matchesSearch(p, f.Search) {
			continue
		}
		out = append(out, p)
	}
	return ByDiscount(out)
}

// ByDiscount orders products by discount percent descending, treating a
// missing discount as 0. Applying it to an already ordered slice is a no-op;
// ties keep their relative order.
func ByDiscount(products []domain.Product) []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	sort.SliceStable(out, func(i, j int) bool {
		return dealDiscount(out[i]) > dealDiscount(out[j])
	})
	return out
}

func dealDiscount(p domain.Product) int {
	if p.DealDiscount == nil {
		return 0
	}
	return *p.DealDiscount
}

// ExpiringSoon returns the active deals whose expiry falls within the next
// three days (inclusive), soonest first. Deals without an expiry never
// qualify.
func ExpiringSoon(products []domain.Product, now time.Time) []domain.Product {
	cutoff := now.Add(expiringWindow)
	out := make([]domain.Product, 0)
	for _, p := range products {
		if !IsActiveDeal(p, now) {
			continue
		}
		if p.DealExpiryDate == nil || p.DealExpiryDate.After(cutoff) {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		// nil expiries sort last; unreachable here since the window
		// filter already requires an expiry.
		ei, ej := out[i].DealExpiryDate, out[j].DealExpiryDate
		if ei == nil {
			return false
		}
		if ej == nil {
			return true
		}
		return ei.Before(*ej)
	})
	return out
}

// TimeRemaining renders the time until expiry using the largest non-zero
// unit: "N days left", "N hours left", "N min left" or "Expiring soon".
func TimeRemaining(now, expiry time.Time) string {
	d := expiry.Sub(now)
	if days := int(d.Hours() / 24); days > 0 {
		return fmt.Sprintf("%d days left", days)
	}
	if hours := int(d.Hours()); hours > 0 {
		return fmt.Sprintf("%d hours left", hours)
	}
	if minutes := int(d.Minutes()); minutes > 0 {
		return fmt.Sprintf("%d min left", minutes)
	}
	return "Expiring soon"
}

// DealBadge is the short countdown shown next to a deal: "Nd", "Nh" or
// "Expiring soon". It is empty for products that are not deals or carry no
// expiry.
func DealBadge(p domain.Product, now time.Time) string {
	if !p.IsDeal || p.DealExpiryDate == nil {
		return ""
	}
	d := p.DealExpiryDate.Sub(now)
	if days := int(d.Hours() / 24); days > 0 {
		return fmt.Sprintf("%dd", days)
	}
	if hours := int(d.Hours()); hours > 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return "Expiring soon"
}
