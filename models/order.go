package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus is the fulfillment state of an order. Orders move forward
// along pending → confirmed → preparing → ready → delivered; cancelled is
// terminal and reachable from any non-terminal state.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentStatus is the payment state of an order, independent of the
// fulfillment status.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Order represents one customer purchase scoped to exactly one tenant.
// Every read and write must filter by TenantID. Orders are never deleted;
// history is retained.
type Order struct {
	ID                string         `gorm:"primaryKey;size:36" json:"id"`
	TenantID          string         `gorm:"not null;index;size:36" json:"tenant_id"`
	CustomerInfo      CustomerInfo   `gorm:"serializer:json" json:"customer_info"`
	Items             []OrderItem    `gorm:"serializer:json" json:"items"`
	Subtotal          float64        `gorm:"not null" json:"subtotal"`
	DeliveryFee       float64        `gorm:"not null" json:"delivery_fee"`
	Total             float64        `gorm:"not null" json:"total"` // always subtotal + delivery fee
	Status            OrderStatus    `gorm:"not null;default:'pending';index" json:"status"`
	PaymentStatus     PaymentStatus  `gorm:"not null;default:'pending'" json:"payment_status"`
	PaymentMethod     *string        `json:"payment_method,omitempty"`
	Notes             *string        `json:"notes,omitempty"`
	EstimatedDelivery *time.Time     `json:"estimated_delivery,omitempty"`
	DeliveredAt       *time.Time     `json:"delivered_at,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// CustomerInfo is the checkout contact and delivery information
type CustomerInfo struct {
	Name    string          `json:"name"`
	Phone   string          `json:"phone"`
	Email   string          `json:"email,omitempty"`
	Address DeliveryAddress `json:"address"`
}

// DeliveryAddress is where the order is delivered
type DeliveryAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
	Complement string `json:"complement,omitempty"`
}

// OrderItem is one line of an order
type OrderItem struct {
	ProductID      string            `json:"product_id"`
	ProductName    string            `json:"product_name"`
	Quantity       int               `json:"quantity"`
	Price          float64           `json:"price"` // unit price of the selected size
	Customizations ItemCustomization `json:"customizations"`
}

// ItemCustomization records the size and the per-category product picks
// the customer made when building the item.
type ItemCustomization struct {
	Size          SizeOption          `json:"size"`
	SelectedItems []CategorySelection `json:"selected_items"`
}

// SizeOption is the meal size chosen for an item
type SizeOption struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

// CategorySelection groups the products picked from one menu category
type CategorySelection struct {
	CategoryID   string            `json:"category_id"`
	CategoryName string            `json:"category_name"`
	Items        []SelectedProduct `json:"items"`
}

// SelectedProduct is one product picked inside a category
type SelectedProduct struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
}
