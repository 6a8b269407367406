package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"github.com/quentinhas/quentinhas-api/config"
	"github.com/quentinhas/quentinhas-api/models"
)

// TenantStore is the data-access boundary for tenant records
type TenantStore interface {
	// FindActiveBySlug returns the active tenant for slug, or nil when no
	// such tenant exists. A non-nil error means a backend failure.
	FindActiveBySlug(ctx context.Context, slug string) (*models.Tenant, error)
	FindByID(ctx context.Context, id string) (*models.Tenant, error)
	Create(ctx context.Context, tenant *models.Tenant) error
	UpdateSettings(ctx context.Context, tenantID string, settings *models.TenantSettings) error
	UpdateTheme(ctx context.Context, tenantID string, theme *models.TenantTheme) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// TenantResolver resolves slugs to canonical tenant records, consulting
// its cache before the store. Concurrent resolutions of the same uncached
// slug coalesce into a single store query.
type TenantResolver struct {
	store TenantStore
	cache *TenantCache
	group singleflight.Group
}

// NewTenantResolver creates a resolver over the given store and cache
func NewTenantResolver(store TenantStore, cache *TenantCache) *TenantResolver {
	return &TenantResolver{store: store, cache: cache}
}

// ResolveBySlug returns the canonical tenant for slug, or nil when no
// active tenant matches. Backend failures are reported as
// ErrTenantResolution; "not found" is not an error.
func (r *TenantResolver) ResolveBySlug(ctx context.Context, slug string) (*models.Tenant, error) {
	if tenant := r.cache.Get(slug); tenant != nil {
		return tenant, nil
	}

	// All callers waiting on the same slug share one store query and
	// observe the same outcome. The cache entry is populated before any
	// caller gets the value back.
	v, err, _ := r.group.Do(slug, func() (interface{}, error) {
		raw, err := r.store.FindActiveBySlug(ctx, slug)
		if err != nil {
			logrus.WithFields(logrus.Fields{"slug": slug}).WithError(err).Error("tenant resolution failed")
			return nil, fmt.Errorf("%w: %v", ErrTenantResolution, err)
		}
		if raw == nil {
			return (*models.Tenant)(nil), nil
		}
		tenant := NormalizeTenant(raw)
		r.cache.Set(slug, tenant)
		return tenant, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Tenant), nil
}

// Invalidate drops the cached entry for slug so the next resolution hits
// the store. Called after settings or theme updates.
func (r *TenantResolver) Invalidate(slug string) {
	r.cache.Invalidate(slug)
}

// Cache exposes the resolver's cache for lifecycle management
func (r *TenantResolver) Cache() *TenantCache {
	return r.cache
}

// NormalizeTenant maps a possibly sparse tenant row into the canonical
// shape, filling every missing nested field from the defaults table. The
// input is not mutated.
func NormalizeTenant(raw *models.Tenant) *models.Tenant {
	tenant := *raw

	location := ""
	if raw.Address != nil {
		location = raw.Address.City
	}

	if raw.Settings == nil {
		tenant.Settings = DefaultSettings(raw.Name, location)
	} else {
		settings := *raw.Settings
		if settings.RestaurantName == "" {
			settings.RestaurantName = raw.Name
		}
		if settings.DeliveryTime == "" {
			settings.DeliveryTime = DefaultDeliveryTime
		}
		if settings.Location == "" {
			settings.Location = location
		}
		if settings.DeliveryFee == 0 {
			settings.DeliveryFee = DefaultDeliveryFee
		}
		if settings.MinimumOrder == 0 {
			settings.MinimumOrder = DefaultMinimumOrder
		}
		if len(settings.PaymentMethods) == 0 {
			settings.PaymentMethods = DefaultPaymentMethods()
		}
		if len(settings.WorkingHours) == 0 {
			settings.WorkingHours = DefaultWorkingHours()
		}
		tenant.Settings = &settings
	}

	if raw.Theme == nil {
		tenant.Theme = DefaultTheme()
	} else {
		theme := *raw.Theme
		defaults := DefaultTheme()
		if theme.Colors.Primary == "" {
			theme.Colors.Primary = defaults.Colors.Primary
		}
		if theme.Colors.Secondary == "" {
			theme.Colors.Secondary = defaults.Colors.Secondary
		}
		if theme.Colors.Accent == "" {
			theme.Colors.Accent = defaults.Colors.Accent
		}
		if theme.Colors.Background == "" {
			theme.Colors.Background = defaults.Colors.Background
		}
		if theme.Fonts.Primary == "" {
			theme.Fonts.Primary = defaults.Fonts.Primary
		}
		if theme.Fonts.Secondary == "" {
			theme.Fonts.Secondary = defaults.Fonts.Secondary
		}
		tenant.Theme = &theme
	}

	return &tenant
}

// IsTenantOpen reports whether the tenant accepts orders at the given
// moment, per its working-hours table. Closed days and out-of-window times
// are closed; a missing schedule for the day is closed.
func IsTenantOpen(tenant *models.Tenant, at time.Time) bool {
	if tenant == nil || tenant.Settings == nil {
		return false
	}
	if !tenant.Settings.IsOpen {
		return false
	}

	day := weekdayKey(at.Weekday())
	schedule, ok := tenant.Settings.WorkingHours[day]
	if !ok || !schedule.IsOpen {
		return false
	}

	// HH:MM strings compare correctly lexicographically
	current := at.Format("15:04")
	return current >= schedule.Open && current <= schedule.Close
}

func weekdayKey(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}

// GormTenantStore is the GORM-backed TenantStore used in production and in
// SQLite-backed tests. It reads the database handle per call so tests can
// swap it with config.SetDB.
type GormTenantStore struct{}

// NewGormTenantStore creates the database-backed tenant store
func NewGormTenantStore() *GormTenantStore {
	return &GormTenantStore{}
}

// FindActiveBySlug looks up the active tenant for a slug
func (s *GormTenantStore) FindActiveBySlug(ctx context.Context, slug string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := config.GetDB().WithContext(ctx).
		Where("slug = ? AND status = ?", slug, models.TenantStatusActive).
		First(&tenant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// FindByID looks up a tenant by id regardless of status
func (s *GormTenantStore) FindByID(ctx context.Context, id string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := config.GetDB().WithContext(ctx).First(&tenant, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// Create inserts a new tenant row
func (s *GormTenantStore) Create(ctx context.Context, tenant *models.Tenant) error {
	return config.GetDB().WithContext(ctx).Create(tenant).Error
}

// UpdateSettings replaces the settings JSON of a tenant, stamping updated_at
func (s *GormTenantStore) UpdateSettings(ctx context.Context, tenantID string, settings *models.TenantSettings) error {
	return config.GetDB().WithContext(ctx).
		Model(&models.Tenant{}).
		Where("id = ?", tenantID).
		Updates(map[string]interface{}{"settings": settings, "updated_at": time.Now()}).Error
}

// UpdateTheme replaces the theme JSON of a tenant, stamping updated_at
func (s *GormTenantStore) UpdateTheme(ctx context.Context, tenantID string, theme *models.TenantTheme) error {
	return config.GetDB().WithContext(ctx).
		Model(&models.Tenant{}).
		Where("id = ?", tenantID).
		Updates(map[string]interface{}{"theme": theme, "updated_at": time.Now()}).Error
}

// SlugExists reports whether any tenant (active or not) holds the slug
func (s *GormTenantStore) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := config.GetDB().WithContext(ctx).
		Model(&models.Tenant{}).
		Where("slug = ?", slug).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
