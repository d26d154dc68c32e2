package domain

import "time"

// User is the single local profile record.
type User struct {
	ID                   string               `json:"id"`
	Username             string               `json:"username"`
	Email                string               `json:"email"`
	Preferences          UserPreferences      `json:"preferences"`
	FavoriteCategories   []Category           `json:"favoriteCategories"`
	NotificationSettings NotificationSettings `json:"notificationSettings"`
	CreatedDate          time.Time            `json:"createdDate"`
}

// UserPreferences holds display and shopping preferences.
type UserPreferences struct {
	Currency           string   `json:"currency"`
	Language           string   `json:"language"`
	DarkModeEnabled    bool     `json:"darkModeEnabled"`
	MaxShippingCost    *float64 `json:"maxShippingCost,omitempty"`
	PreferredRetailers []string `json:"preferredRetailers"`
}

// DefaultPreferences returns the preferences applied to a fresh profile.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Currency:           "BYN",
		Language:           "ru",
		PreferredRetailers: []string{},
	}
}

// NotificationSettings holds four independent notification toggles.
type NotificationSettings struct {
	DealAlertsEnabled      bool `json:"dealAlertsEnabled"`
	PriceDropAlertsEnabled bool `json:"priceDropAlertsEnabled"`
	WishlistUpdatesEnabled bool `json:"wishlistUpdatesEnabled"`
	WeeklyDigestEnabled    bool `json:"weeklyDigestEnabled"`
}

// DefaultNotificationSettings enables everything except the weekly digest.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		DealAlertsEnabled:      true,
		PriceDropAlertsEnabled: true,
		WishlistUpdatesEnabled: true,
	}
}
