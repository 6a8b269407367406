package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/quentinhas/quentinhas-api/config"
	"github.com/quentinhas/quentinhas-api/models"
)

// OrderCreateInput is the checkout payload accepted by CreateOrder.
// Subtotal and total are always computed server-side from the items.
type OrderCreateInput struct {
	TenantID      string
	CustomerInfo  models.CustomerInfo
	Items         []models.OrderItem
	PaymentMethod *string
	Notes         *string
}

// OrderService owns tenant-scoped order reads and writes. Every query
// filters by tenant id; an order id from another tenant behaves exactly
// like a missing id.
type OrderService struct{}

// NewOrderService creates the database-backed order service
func NewOrderService() *OrderService {
	return &OrderService{}
}

// GetOrders returns all orders of a tenant, newest first
func (s *OrderService) GetOrders(ctx context.Context, tenantID string) ([]models.Order, error) {
	if tenantID == "" {
		return nil, ErrTenantRequired
	}
	var orders []models.Order
	err := config.GetDB().WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return orders, nil
}

// GetOrderByID returns one order scoped to a tenant
func (s *OrderService) GetOrderByID(ctx context.Context, orderID, tenantID string) (*models.Order, error) {
	if tenantID == "" {
		return nil, ErrTenantRequired
	}
	var order models.Order
	err := config.GetDB().WithContext(ctx).
		Where("id = ? AND tenant_id = ?", orderID, tenantID).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	return &order, nil
}

// CreateOrder persists a checkout. The subtotal is summed from the items,
// the delivery fee comes from the tenant settings, and the order starts in
// pending/pending.
func (s *OrderService) CreateOrder(ctx context.Context, input OrderCreateInput, deliveryFee float64) (*models.Order, error) {
	if input.TenantID == "" {
		return nil, ErrTenantRequired
	}

	var subtotal float64
	for _, item := range input.Items {
		subtotal += item.Price * float64(item.Quantity)
	}

	now := time.Now()
	order := models.Order{
		ID:            uuid.NewString(),
		TenantID:      input.TenantID,
		CustomerInfo:  input.CustomerInfo,
		Items:         input.Items,
		Subtotal:      subtotal,
		DeliveryFee:   deliveryFee,
		Total:         subtotal + deliveryFee,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := config.GetDB().WithContext(ctx).Create(&order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"tenant":   order.TenantID,
		"order_id": order.ID,
		"total":    order.Total,
	}).Info("order created")

	return &order, nil
}

// UpdateOrderStatus applies a status transition to an order. Only the next
// forward step or cancellation of a non-terminal order is accepted;
// anything else fails with ErrInvalidTransition. Delivered orders get
// delivered_at stamped. The read and write run in one transaction to keep
// the transition check close to the update.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID, tenantID string, newStatus models.OrderStatus) (*models.Order, error) {
	if tenantID == "" {
		return nil, ErrTenantRequired
	}
	if _, ok := StatusMetadata(newStatus); !ok {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, newStatus)
	}

	var order models.Order
	err := config.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND tenant_id = ?", orderID, tenantID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("failed to load order: %w", err)
		}

		if !CanTransition(order.Status, newStatus) {
			return fmt.Errorf("%w: %s → %s", ErrInvalidTransition, order.Status, newStatus)
		}

		now := time.Now()
		order.Status = newStatus
		order.UpdatedAt = now
		updates := map[string]interface{}{"status": newStatus, "updated_at": now}
		if newStatus == models.OrderStatusDelivered {
			order.DeliveredAt = &now
			updates["delivered_at"] = now
		}
		return tx.Model(&models.Order{}).
			Where("id = ? AND tenant_id = ?", orderID, tenantID).
			Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"tenant":   tenantID,
		"order_id": orderID,
		"status":   newStatus,
	}).Info("order status updated")

	return &order, nil
}

// GetOrderStats derives the dashboard stats from the tenant's orders
func (s *OrderService) GetOrderStats(ctx context.Context, tenantID string) (OrderStats, error) {
	orders, err := s.GetOrders(ctx, tenantID)
	if err != nil {
		return OrderStats{}, err
	}
	return ComputeStats(orders, time.Now()), nil
}

// ValidateItemSelections checks each item's per-category picks against the
// tenant's category selection bounds. Unknown categories are rejected.
func ValidateItemSelections(ctx context.Context, tenantID string, items []models.OrderItem) error {
	var categories []models.Category
	err := config.GetDB().WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Find(&categories).Error
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	byID := make(map[string]models.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	for _, item := range items {
		for _, selection := range item.Customizations.SelectedItems {
			category, ok := byID[selection.CategoryID]
			if !ok {
				return fmt.Errorf("unknown category %q", selection.CategoryID)
			}
			picked := len(selection.Items)
			if picked < category.MinSelections || picked > category.MaxSelections {
				return fmt.Errorf("category %q requires between %d and %d selections, got %d",
					category.Name, category.MinSelections, category.MaxSelections, picked)
			}
		}
	}
	return nil
}
