package store

import (
	"time"

	"github.com/google/uuid"

	"belshop/domain"
)

func offer(retailer string, price, shipping float64, days int) domain.RetailerPrice {
	return domain.RetailerPrice{
		ID:           uuid.NewString(),
		RetailerName: retailer,
		Price:        price,
		Currency:     "BYN",
		Availability: domain.InStock,
		ShippingCost: shipping,
		DeliveryDays: days,
	}
}

func discount(pct int) *int { return &pct }

func expiry(now time.Time, days int) *time.Time {
	t := now.AddDate(0, 0, days)
	return &t
}

// SeedProducts is the fixed baseline catalog restored by ResetAll and used on
// first launch. It spans every category and mixes deal and non-deal products;
// deal expiries are relative to the given time.
func SeedProducts(now time.Time) []domain.Product {
	return []domain.Product{
		{
			ID:   uuid.NewString(),
			Name: "iPhone 14 Pro 256GB",
			Description: "Apple flagship with Dynamic Island, the A16 Bionic " +
				"chip and an upgraded 48MP camera.",
			Category: domain.CategoryElectronics,
			Prices: []domain.RetailerPrice{
				offer("iStore", 3299.00, 0, 1),
				offer("TechnoMart", 3450.00, 15, 2),
				offer("MTS Shop", 3399.00, 0, 1),
				offer("5 Element", 3550.00, 20, 3),
			},
			AverageRating:  4.8,
			ReviewCount:    342,
			Specifications: map[string]string{"Display": "6.1\"", "Storage": "256GB", "Chip": "A16 Bionic"},
			IsDeal:         true,
			DealExpiryDate: expiry(now, 7),
			DealDiscount:   discount(15),
		},
		{
			ID:   uuid.NewString(),
			Name: "Samsung Galaxy S23 Ultra",
			Description: "Premium Android phone with the S Pen, a 200MP camera " +
				"and Snapdragon 8 Gen 2.",
			Category: domain.CategoryElectronics,
			Prices: []domain.RetailerPrice{
				offer("Samsung Store", 3699.00, 0, 1),
				offer("TechnoMart", 3799.00, 15, 2),
				offer("Euroset", 3650.00, 10, 2),
			},
			AverageRating:  4.7,
			ReviewCount:    289,
			Specifications: map[string]string{"Display": "6.8\"", "Storage": "512GB", "Chip": "Snapdragon 8 Gen 2"},
		},
		{
			ID:   uuid.NewString(),
			Name: "Apple AirPods Pro 2",
			Description: "Wireless earbuds with active noise cancellation, " +
				"transparency mode and spatial audio.",
			Category: domain.CategoryElectronics,
			Prices: []domain.RetailerPrice{
				offer("iStore", 799.00, 0, 1),
				offer("MTS Shop", 849.00, 0, 1),
				offer("TechnoMart", 829.00, 10, 2),
			},
			AverageRating:  4.9,
			ReviewCount:    521,
			Specifications: map[string]string{"ANC": "Yes", "Battery": "6 hours", "Charging": "USB-C"},
			IsDeal:         true,
			DealExpiryDate: expiry(now, 3),
			DealDiscount:   discount(10),
		},
		{
			ID:   uuid.NewString(),
			Name: "Nike Air Max 270",
			Description: "Sport sneakers with the Air Max sole for all-day " +
				"comfort.",
			Category: domain.CategorySports,
			Prices: []domain.RetailerPrice{
				offer("Nike Store", 349.00, 0, 2),
				offer("SportMaster", 369.00, 15, 3),
				offer("Adidas.by", 359.00, 10, 2),
			},
			AverageRating:  4.6,
			ReviewCount:    187,
			Specifications: map[string]string{"Sizes": "36-46", "Material": "Textile + synthetic", "Colors": "5 options"},
		},
		{
			ID:   uuid.NewString(),
			Name: "Dyson V15 Detect",
			Description: "Cordless vacuum with a laser dust detector and smart " +
				"filtration.",
			Category: domain.CategoryHome,
			Prices: []domain.RetailerPrice{
				offer("Dyson Store", 1899.00, 0, 2),
				offer("5 Element", 1950.00, 20, 3),
				offer("TechnoMart", 1999.00, 15, 2),
			},
			AverageRating:  4.8,
			ReviewCount:    156,
			Specifications: map[string]string{"Runtime": "60 min", "Power": "230W", "Weight": "3.1 kg"},
			IsDeal:         true,
			DealExpiryDate: expiry(now, 5),
			DealDiscount:   discount(20),
		},
		{
			ID:   uuid.NewString(),
			Name: "Sony PlayStation 5",
			Description: "Next-generation game console with an SSD, 4K support " +
				"and exclusive titles.",
			Category: domain.CategoryElectronics,
			Prices: []domain.RetailerPrice{
				offer("GameStop", 1599.00, 0, 1),
				{
					ID:           uuid.NewString(),
					RetailerName: "TechnoMart",
					Price:        1650.00,
					Currency:     "BYN",
					Availability: domain.LowStock,
					ShippingCost: 15,
					DeliveryDays: 2,
				},
				offer("5 Element", 1699.00, 20, 3),
			},
			AverageRating:  4.9,
			ReviewCount:    678,
			Specifications: map[string]string{"Storage": "825GB SSD", "Resolution": "4K", "Controller": "DualSense"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Levi's 501 Original Jeans",
			Description: "Classic straight-cut jeans in premium denim.",
			Category:    domain.CategoryClothing,
			Prices: []domain.RetailerPrice{
				offer("Levi's Store", 249.00, 10, 3),
				offer("Zara", 269.00, 15, 4),
				offer("H&M", 239.00, 10, 3),
			},
			AverageRating:  4.7,
			ReviewCount:    234,
			Specifications: map[string]string{"Sizes": "28-38", "Colors": "Blue, Black", "Fit": "Straight"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "IKEA MALM Dresser",
			Description: "Six-drawer dresser for the bedroom or living room.",
			Category:    domain.CategoryHome,
			Prices: []domain.RetailerPrice{
				offer("IKEA", 349.00, 30, 5),
				offer("Mebel Center", 389.00, 0, 3),
			},
			AverageRating:  4.5,
			ReviewCount:    421,
			Specifications: map[string]string{"Dimensions": "80x123 cm", "Material": "Particleboard", "Colors": "White, Black-brown"},
		},
		{
			ID:   uuid.NewString(),
			Name: "L'Oreal Revitalift Cream",
			Description: "Anti-aging day cream with retinol and hyaluronic " +
				"acid.",
			Category: domain.CategoryBeauty,
			Prices: []domain.RetailerPrice{
				offer("Podruzhka", 45.00, 5, 2),
				offer("Rive Gauche", 49.00, 0, 2),
				offer("Medoveya", 47.00, 5, 3),
			},
			AverageRating:  4.4,
			ReviewCount:    892,
			Specifications: map[string]string{"Volume": "50ml", "SPF": "15", "Skin type": "All"},
			IsDeal:         true,
			DealExpiryDate: expiry(now, 10),
			DealDiscount:   discount(25),
		},
		{
			ID:   uuid.NewString(),
			Name: "Apple MacBook Air M2",
			Description: "Ultra-thin laptop with the M2 chip, a 13.6\" Liquid " +
				"Retina display and up to 18 hours of battery.",
			Category: domain.CategoryElectronics,
			Prices: []domain.RetailerPrice{
				offer("iStore", 3499.00, 0, 1),
				offer("TechnoMart", 3599.00, 20, 2),
				offer("5 Element", 3650.00, 15, 3),
			},
			AverageRating:  4.9,
			ReviewCount:    445,
			Specifications: map[string]string{"Chip": "Apple M2", "Memory": "8GB RAM + 256GB SSD", "Display": "13.6\" Retina"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Atomic Habits",
			Description: "James Clear's bestseller on building good habits and breaking bad ones.",
			Category:    domain.CategoryBooks,
			Prices: []domain.RetailerPrice{
				offer("OZ.by", 29.00, 5, 2),
				offer("Knigi.by", 32.00, 0, 3),
			},
			AverageRating:  4.8,
			ReviewCount:    1034,
			Specifications: map[string]string{"Pages": "320", "Cover": "Hardcover", "Language": "Russian"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "LEGO Technic Off-Roader",
			Description: "Buildable 4x4 off-roader with working suspension and winch.",
			Category:    domain.CategoryToys,
			Prices: []domain.RetailerPrice{
				offer("Detsky Mir", 189.00, 10, 3),
				offer("Toy City", 199.00, 0, 4),
			},
			AverageRating:  4.7,
			ReviewCount:    156,
			Specifications: map[string]string{"Pieces": "764", "Age": "10+"},
			IsDeal:         true,
			DealExpiryDate: expiry(now, 4),
			DealDiscount:   discount(12),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Lavazza Qualita Oro 1kg",
			Description: "Whole-bean arabica blend, medium roast.",
			Category:    domain.CategoryFood,
			Prices: []domain.RetailerPrice{
				offer("Euroopt", 39.00, 5, 1),
				offer("Green", 42.00, 0, 2),
			},
			AverageRating:  4.6,
			ReviewCount:    310,
			Specifications: map[string]string{"Weight": "1kg", "Roast": "Medium", "Beans": "100% arabica"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Moleskine Classic Notebook",
			Description: "Ruled hardcover notebook with an elastic closure.",
			Category:    domain.CategoryOther,
			Prices: []domain.RetailerPrice{
				offer("OfficeMag", 25.00, 5, 2),
				offer("OZ.by", 27.00, 0, 2),
			},
			AverageRating:  4.5,
			ReviewCount:    88,
			Specifications: map[string]string{"Format": "A5", "Pages": "240"},
		},
	}
}
