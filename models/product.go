package models

import (
	"time"

	"gorm.io/gorm"
)

// Category is one tenant-scoped menu section. MinSelections and
// MaxSelections bound how many of its products a customer may pick when
// building an order item.
type Category struct {
	ID            string         `gorm:"primaryKey;size:36" json:"id"`
	TenantID      string         `gorm:"not null;index;size:36" json:"tenant_id"`
	Name          string         `gorm:"not null" json:"name"`
	Description   string         `json:"description,omitempty"`
	MinSelections int            `gorm:"not null;default:0" json:"min_selections"`
	MaxSelections int            `gorm:"not null;default:1" json:"max_selections"`
	SortOrder     int            `gorm:"not null;default:0" json:"sort_order"`
	Active        bool           `gorm:"not null;default:true" json:"active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// Product is one tenant-scoped menu entry
type Product struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	TenantID    string          `gorm:"not null;index;size:36" json:"tenant_id"`
	CategoryID  string          `gorm:"not null;index;size:36" json:"category_id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description,omitempty"`
	Price       float64         `gorm:"not null" json:"price"`
	ImageURL    string          `json:"image_url,omitempty"`
	Active      bool            `gorm:"not null;default:true" json:"active"`
	Nutrition   *NutritionFacts `gorm:"serializer:json" json:"nutrition,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// NutritionFacts is optional nutritional metadata for a product
type NutritionFacts struct {
	Calories float64 `json:"calories,omitempty"`
	Protein  float64 `json:"protein,omitempty"`
	Carbs    float64 `json:"carbs,omitempty"`
	Fat      float64 `json:"fat,omitempty"`
}
