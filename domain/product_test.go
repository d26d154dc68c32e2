package domain

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func pricesOf(values ...float64) []RetailerPrice {
	out := make([]RetailerPrice, 0, len(values))
	for i, v := range values {
		out = append(out, RetailerPrice{
			ID:           string(rune('a' + i)),
			RetailerName: "R",
			Price:        v,
			Currency:     "BYN",
			Availability: InStock,
		})
	}
	return out
}

func TestPriceProjections(t *testing.T) {
	p := Product{Prices: pricesOf(100, 50, 75)}

	if got := p.LowestPrice(); got != 50 {
		t.Fatalf("LowestPrice = %v, want 50", got)
	}
	if got := p.HighestPrice(); got != 100 {
		t.Fatalf("HighestPrice = %v, want 100", got)
	}
	if got := p.PriceSavings(); got != 50 {
		t.Fatalf("PriceSavings = %v, want 50", got)
	}
	best, ok := p.BestRetailer()
	if !ok || best.Price != 50 {
		t.Fatalf("BestRetailer = %+v ok=%v, want price 50", best, ok)
	}

	for _, rp := range p.Prices {
		if rp.Price < p.LowestPrice() || rp.Price > p.HighestPrice() {
			t.Fatalf("price %v outside [%v, %v]", rp.Price, p.LowestPrice(), p.HighestPrice())
		}
	}
}

func TestPriceProjections_EmptyPriceList(t *testing.T) {
	p := Product{}

	if got := p.LowestPrice(); got != 0 {
		t.Fatalf("LowestPrice = %v, want 0", got)
	}
	if got := p.HighestPrice(); got != 0 {
		t.Fatalf("HighestPrice = %v, want 0", got)
	}
	if got := p.PriceSavings(); got != 0 {
		t.Fatalf("PriceSavings = %v, want 0", got)
	}
	if _, ok := p.BestRetailer(); ok {
		t.Fatal("BestRetailer on empty price list should report no retailer")
	}
}

func TestBestRetailer_IgnoresShipping(t *testing.T) {
	p := Product{Prices: []RetailerPrice{
		{ID: "s1", RetailerName: "Store1", Price: 100, ShippingCost: 0},
		{ID: "s2", RetailerName: "Store2", Price: 90, ShippingCost: 20},
	}}
	best, ok := p.BestRetailer()
	if !ok || best.RetailerName != "Store2" {
		t.Fatalf("BestRetailer = %+v, want Store2 (cheapest base price)", best)
	}
}

func TestTotalPrice(t *testing.T) {
	rp := RetailerPrice{Price: 90, ShippingCost: 20}
	if got := rp.TotalPrice(); got != 110 {
		t.Fatalf("TotalPrice = %v, want 110", got)
	}
}

func TestSpecificationKeys_Sorted(t *testing.T) {
	p := Product{Specifications: map[string]string{
		"Storage": "256GB",
		"Chip":    "A16",
		"Display": "6.1\"",
	}}
	want := []string{"Chip", "Display", "Storage"}
	if got := p.SpecificationKeys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("SpecificationKeys = %v, want %v", got, want)
	}
}

func TestValidateProduct(t *testing.T) {
	discount := func(n int) *int { return &n }

	tests := []struct {
		name        string
		product     Product
		expectError bool
	}{
		{
			name: "valid product",
			product: Product{
				ID:       "1",
				Name:     "Laptop",
				Category: CategoryElectronics,
				Prices:   pricesOf(1000),
			},
			expectError: false,
		},
		{
			name:        "empty name",
			product:     Product{ID: "2", Category: CategoryBooks},
			expectError: true,
		},
		{
			name:        "unknown category",
			product:     Product{ID: "3", Name: "Book", Category: "gadgets"},
			expectError: true,
		},
		{
			name: "negative price",
			product: Product{
				ID: "4", Name: "Book", Category: CategoryBooks,
				Prices: pricesOf(-1),
			},
			expectError: true,
		},
		{
			name: "negative shipping",
			product: Product{
				ID: "5", Name: "Book", Category: CategoryBooks,
				Prices: []RetailerPrice{{RetailerName: "R", Price: 1, ShippingCost: -2}},
			},
			expectError: true,
		},
		{
			name: "rating above five",
			product: Product{
				ID: "6", Name: "Book", Category: CategoryBooks, AverageRating: 5.1,
			},
			expectError: true,
		},
		{
			name: "negative review count",
			product: Product{
				ID: "7", Name: "Book", Category: CategoryBooks, ReviewCount: -1,
			},
			expectError: true,
		},
		{
			name: "deal without discount",
			product: Product{
				ID: "8", Name: "Book", Category: CategoryBooks, IsDeal: true,
			},
			expectError: true,
		},
		{
			name: "deal discount above 100",
			product: Product{
				ID: "9", Name: "Book", Category: CategoryBooks,
				IsDeal: true, DealDiscount: discount(120),
			},
			expectError: true,
		},
		{
			name: "valid deal",
			product: Product{
				ID: "10", Name: "Book", Category: CategoryBooks,
				IsDeal: true, DealDiscount: discount(20),
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProduct(tt.product)
			if tt.expectError && !IsValidationError(err) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if !tt.expectError && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	if c, err := ParseCategory("Electronics"); err != nil || c != CategoryElectronics {
		t.Fatalf("ParseCategory(Electronics) = %v, %v", c, err)
	}
	if _, err := ParseCategory("nope"); !IsValidationError(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if got := len(Categories()); got != 9 {
		t.Fatalf("Categories() has %d entries, want 9", got)
	}
}

func TestPriorityRank(t *testing.T) {
	if PriorityHigh.Rank() <= PriorityMedium.Rank() || PriorityMedium.Rank() <= PriorityLow.Rank() {
		t.Fatal("priority ordering must be high > medium > low")
	}
}

func TestRoundTripEncoding(t *testing.T) {
	expiry := time.Date(2026, 9, 4, 12, 0, 0, 0, time.UTC)
	dc := 15
	url := "https://example.com/p"
	maxShipping := 25.0

	t.Run("product with optionals", func(t *testing.T) {
		in := Product{
			ID: "p1", Name: "Phone", Description: "A phone",
			Category: CategoryElectronics, ImageURL: &url,
			Prices: []RetailerPrice{{
				ID: "r1", RetailerName: "iStore", Price: 3299,
				Currency: "BYN", Availability: InStock,
				ShippingCost: 0, DeliveryDays: 1, RetailerURL: &url,
			}},
			AverageRating: 4.8, ReviewCount: 342,
			Specifications: map[string]string{"Chip": "A16"},
			IsOnWishlist:   true, IsDeal: true,
			DealExpiryDate: &expiry, DealDiscount: &dc,
		}
		b, err := json.Marshal(in)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var out Product
		if err := json.Unmarshal(b, &out); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !reflect.DeepEqual(in, out) {
			t.Fatalf("round trip mismatch:\nin:  %+v\nout: %+v", in, out)
		}
	})

	t.Run("product without optionals", func(t *testing.T) {
		in := Product{
			ID: "p2", Name: "Book", Category: CategoryBooks,
			Prices:         []RetailerPrice{},
			Specifications: map[string]string{},
		}
		b, _ := json.Marshal(in)
		var out Product
		if err := json.Unmarshal(b, &out); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !reflect.DeepEqual(in, out) {
			t.Fatalf("round trip mismatch:\nin:  %+v\nout: %+v", in, out)
		}
		if out.ImageURL != nil || out.DealExpiryDate != nil || out.DealDiscount != nil {
			t.Fatal("absent optional fields must stay absent")
		}
	})

	t.Run("wishlist item", func(t *testing.T) {
		in := WishlistItem{
			ID: "w1", ProductID: "p1",
			AddedDate: expiry, Notes: "gift", Priority: PriorityHigh,
		}
		b, _ := json.Marshal(in)
		var out WishlistItem
		if err := json.Unmarshal(b, &out); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !reflect.DeepEqual(in, out) {
			t.Fatalf("round trip mismatch:\nin:  %+v\nout: %+v", in, out)
		}
	})

	t.Run("user", func(t *testing.T) {
		in := User{
			ID: "u1", Username: "ann", Email: "ann@example.com",
			Preferences: UserPreferences{
				Currency: "BYN", Language: "ru",
				MaxShippingCost:    &maxShipping,
				PreferredRetailers: []string{"iStore"},
			},
			FavoriteCategories:   []Category{CategoryElectronics, CategoryBooks},
			NotificationSettings: DefaultNotificationSettings(),
			CreatedDate:          expiry,
		}
		b, _ := json.Marshal(in)
		var out User
		if err := json.Unmarshal(b, &out); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !reflect.DeepEqual(in, out) {
			t.Fatalf("round trip mismatch:\nin:  %+v\nout: %+v", in, out)
		}
	})
}
