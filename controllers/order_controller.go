package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/quentinhas/quentinhas-api/middleware"
	"github.com/quentinhas/quentinhas-api/models"
	"github.com/quentinhas/quentinhas-api/services"
)

// CreateOrderRequest represents the checkout request body
type CreateOrderRequest struct {
	CustomerInfo  models.CustomerInfo `json:"customer_info" binding:"required"`
	Items         []models.OrderItem  `json:"items" binding:"required,min=1"`
	PaymentMethod *string             `json:"payment_method"`
	Notes         *string             `json:"notes"`
}

// CreateOrder handles POST /api/v1/orders - customer checkout on a tenant
// subdomain. The subtotal and total are computed server-side; the delivery
// fee comes from the tenant settings.
func CreateOrder(c *gin.Context) {
	tenant := middleware.CurrentTenant(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	for _, item := range req.Items {
		if item.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "Item quantity must be greater than zero",
				},
			})
			return
		}
	}

	if !services.IsTenantOpen(tenant, time.Now()) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "RESTAURANT_CLOSED",
				"message": "The restaurant is not accepting orders right now",
			},
		})
		return
	}

	if err := services.ValidateItemSelections(c.Request.Context(), tenant.ID, req.Items); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_SELECTIONS",
				"message": err.Error(),
			},
		})
		return
	}

	var subtotal float64
	for _, item := range req.Items {
		subtotal += item.Price * float64(item.Quantity)
	}
	if subtotal < tenant.Settings.MinimumOrder {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MINIMUM_ORDER_NOT_MET",
				"message": fmt.Sprintf("Minimum order value is %.2f", tenant.Settings.MinimumOrder),
			},
		})
		return
	}

	order, err := orderService.CreateOrder(c.Request.Context(), services.OrderCreateInput{
		TenantID:      tenant.ID,
		CustomerInfo:  req.CustomerInfo,
		Items:         req.Items,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}, tenant.Settings.DeliveryFee)
	if err != nil {
		logrus.WithFields(logrus.Fields{"tenant": tenant.ID}).WithError(err).Error("checkout failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create order",
			},
		})
		return
	}

	if orderWatcher != nil {
		orderWatcher.Notify(c.Request.Context(), tenant.ID)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    order,
	})
}

// GetAdminOrders handles GET /api/v1/admin/orders - the Kanban payload:
// orders grouped per status plus the column metadata, so every view colors
// statuses from the same table.
func GetAdminOrders(c *gin.Context) {
	tenant := middleware.CurrentTenant(c)

	orders, err := orderService.GetOrders(c.Request.Context(), tenant.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load orders",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"orders_by_status": services.GroupByStatus(orders),
			"columns":          statusColumns(),
		},
	})
}

// UpdateOrderStatusRequest is the body for PATCH /api/v1/admin/orders/:id/status
type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus handles PATCH /api/v1/admin/orders/:id/status. Illegal
// jumps are rejected, never silently applied, and failures always surface
// in the response body.
func UpdateOrderStatus(c *gin.Context) {
	tenant := middleware.CurrentTenant(c)
	orderID := c.Param("id")

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	order, err := orderService.UpdateOrderStatus(c.Request.Context(), orderID, tenant.ID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ORDER_NOT_FOUND",
					"message": "Order not found",
				},
			})
		case errors.Is(err, services.ErrInvalidTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_TRANSITION",
					"message": err.Error(),
				},
			})
		default:
			logrus.WithFields(logrus.Fields{
				"tenant":   tenant.ID,
				"order_id": orderID,
			}).WithError(err).Error("status update failed")
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to update order status",
				},
			})
		}
		return
	}

	if orderWatcher != nil {
		orderWatcher.Notify(c.Request.Context(), tenant.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// GetOrderStats handles GET /api/v1/admin/orders/stats
func GetOrderStats(c *gin.Context) {
	tenant := middleware.CurrentTenant(c)

	stats, err := orderService.GetOrderStats(c.Request.Context(), tenant.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to compute order stats",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}

// OrderEvents handles GET /api/v1/admin/orders/events - a server-sent
// events stream that pushes the grouped order list whenever it changes.
// The subscription ends with the request, so closed dashboards stop
// consuming the poller.
func OrderEvents(c *gin.Context) {
	tenant := middleware.CurrentTenant(c)

	if orderWatcher == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EVENTS_UNAVAILABLE",
				"message": "Live updates are not enabled",
			},
		})
		return
	}

	updates, cancel := orderWatcher.Subscribe(tenant.ID)
	defer cancel()

	// Send the current board immediately so the dashboard never starts blank
	if orders, err := orderService.GetOrders(c.Request.Context(), tenant.ID); err == nil {
		c.SSEvent("orders", services.GroupByStatus(orders))
		c.Writer.Flush()
	}

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case orders, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent("orders", services.GroupByStatus(orders))
			return true
		}
	})
}

// statusColumns returns the board columns in display order with their
// metadata from the transition table.
func statusColumns() []gin.H {
	statuses := services.AllStatuses()
	columns := make([]gin.H, 0, len(statuses))
	for _, status := range statuses {
		info, _ := services.StatusMetadata(status)
		columns = append(columns, gin.H{
			"status":      status,
			"label":       info.Label,
			"icon":        info.Icon,
			"color":       info.Color,
			"badge_color": info.BadgeColor,
			"next_status": info.Next,
			"terminal":    info.Terminal,
		})
	}
	return columns
}
