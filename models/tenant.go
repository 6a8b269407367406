package models

import (
	"time"

	"gorm.io/gorm"
)

// Tenant status values. Tenants are never hard-deleted; deactivation is a
// status change.
const (
	TenantStatusActive    = "active"
	TenantStatusInactive  = "inactive"
	TenantStatusSuspended = "suspended"
)

// Subscription plans
const (
	PlanStarter      = "starter"
	PlanProfessional = "professional"
	PlanEnterprise   = "enterprise"
)

// Tenant represents one restaurant's isolated account, keyed by its
// subdomain slug. Settings and Theme are stored as JSON columns and may be
// absent on legacy rows; the tenant resolver fills in defaults.
type Tenant struct {
	ID           string          `gorm:"primaryKey;size:36" json:"id"`
	Slug         string          `gorm:"uniqueIndex;not null;size:30" json:"slug"`
	Name         string          `gorm:"not null" json:"name"`
	Email        string          `gorm:"not null" json:"email"`
	Phone        *string         `json:"phone,omitempty"`
	Address      *Address        `gorm:"serializer:json" json:"address,omitempty"`
	Domain       *string         `json:"domain,omitempty"` // optional custom domain
	Status       string          `gorm:"not null;default:'active';index" json:"status"`
	Plan         string          `gorm:"not null;default:'starter'" json:"plan"`
	AdminSubject string          `gorm:"index" json:"-"` // identity provider subject of the tenant admin
	Settings     *TenantSettings `gorm:"serializer:json" json:"settings,omitempty"`
	Theme        *TenantTheme    `gorm:"serializer:json" json:"theme,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Tenant model
func (Tenant) TableName() string {
	return "tenants"
}

// Address is a postal address stored inline on the tenant row
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// TenantSettings holds the operational configuration of a restaurant
type TenantSettings struct {
	RestaurantName string                 `json:"restaurant_name"`
	DeliveryTime   string                 `json:"delivery_time"`
	Location       string                 `json:"location"`
	IsOpen         bool                   `json:"is_open"`
	DeliveryFee    float64                `json:"delivery_fee"`
	MinimumOrder   float64                `json:"minimum_order"`
	PaymentMethods []string               `json:"payment_methods"`
	WorkingHours   map[string]DaySchedule `json:"working_hours"`
}

// DaySchedule is the opening window for one weekday. Keys in
// TenantSettings.WorkingHours are lowercase English weekday names.
type DaySchedule struct {
	Open   string `json:"open"`  // HH:MM
	Close  string `json:"close"` // HH:MM
	IsOpen bool   `json:"is_open"`
}

// TenantTheme holds the storefront branding of a restaurant
type TenantTheme struct {
	Colors    ThemeColors  `json:"colors"`
	Logo      string       `json:"logo"` // S3 key of the uploaded logo
	Favicon   string       `json:"favicon,omitempty"`
	Fonts     ThemeFonts   `json:"fonts"`
	CustomCSS string       `json:"custom_css,omitempty"`
	Layout    *ThemeLayout `json:"layout,omitempty"`
}

// ThemeColors is the storefront color palette
type ThemeColors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Foreground string `json:"foreground,omitempty"`
	Muted      string `json:"muted,omitempty"`
}

// ThemeFonts is the storefront font pairing
type ThemeFonts struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// ThemeLayout selects the storefront header/footer variants
type ThemeLayout struct {
	HeaderStyle string `json:"header_style"` // default, minimal, centered
	FooterStyle string `json:"footer_style"` // default, minimal, hidden
}
