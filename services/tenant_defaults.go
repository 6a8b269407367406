package services

import "github.com/quentinhas/quentinhas-api/models"

// Every default applied during tenant normalization lives here, in one
// place, so legacy rows with sparse settings/theme always resolve to the
// same canonical shape.
const (
	DefaultDeliveryFee  = 5.00
	DefaultMinimumOrder = 15.00
	DefaultDeliveryTime = "30-45 min"

	DefaultPrimaryColor    = "#FF6B35"
	DefaultSecondaryColor  = "#F7931E"
	DefaultAccentColor     = "#FFD23F"
	DefaultBackgroundColor = "#FFFFFF"

	DefaultFont = "Inter"
)

// DefaultPaymentMethods returns the payment methods assumed for tenants
// that never configured any.
func DefaultPaymentMethods() []string {
	return []string{"pix", "cartao"}
}

// DefaultWorkingHours is open 08:00-22:00 every day except Sunday
func DefaultWorkingHours() map[string]models.DaySchedule {
	hours := make(map[string]models.DaySchedule, 7)
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"} {
		hours[day] = models.DaySchedule{Open: "08:00", Close: "22:00", IsOpen: true}
	}
	hours["sunday"] = models.DaySchedule{Open: "08:00", Close: "22:00", IsOpen: false}
	return hours
}

// DefaultSettings builds the canonical settings for a tenant that has none
func DefaultSettings(restaurantName, location string) *models.TenantSettings {
	return &models.TenantSettings{
		RestaurantName: restaurantName,
		DeliveryTime:   DefaultDeliveryTime,
		Location:       location,
		IsOpen:         true,
		DeliveryFee:    DefaultDeliveryFee,
		MinimumOrder:   DefaultMinimumOrder,
		PaymentMethods: DefaultPaymentMethods(),
		WorkingHours:   DefaultWorkingHours(),
	}
}

// DefaultTheme builds the canonical theme for a tenant that has none
func DefaultTheme() *models.TenantTheme {
	return &models.TenantTheme{
		Colors: models.ThemeColors{
			Primary:    DefaultPrimaryColor,
			Secondary:  DefaultSecondaryColor,
			Accent:     DefaultAccentColor,
			Background: DefaultBackgroundColor,
		},
		Fonts: models.ThemeFonts{
			Primary:   DefaultFont,
			Secondary: DefaultFont,
		},
	}
}
