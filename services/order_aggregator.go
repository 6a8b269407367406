package services

import (
	"time"

	"github.com/quentinhas/quentinhas-api/models"
)

// OrderStats is the dashboard summary for one tenant. TotalOrders,
// TotalRevenue and AvgTicket cover orders created today; PendingOrders and
// ActiveOrders count the whole backlog regardless of age, since staff must
// act on old orders too.
type OrderStats struct {
	TotalOrders   int     `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	PendingOrders int     `json:"pending_orders"`
	ActiveOrders  int     `json:"active_orders"`
	AvgTicket     float64 `json:"avg_ticket"`
}

// GroupByStatus partitions orders into one bucket per status, preserving
// the relative order of the input within each bucket. Every status has a
// bucket even when empty, so the board always renders six columns.
func GroupByStatus(orders []models.Order) map[models.OrderStatus][]models.Order {
	grouped := make(map[models.OrderStatus][]models.Order, len(statusConfig))
	for _, status := range AllStatuses() {
		grouped[status] = []models.Order{}
	}
	for _, order := range orders {
		grouped[order.Status] = append(grouped[order.Status], order)
	}
	return grouped
}

// ComputeStats derives the dashboard stats from a tenant's orders. The
// "today" window runs from local midnight of now's day to its end.
func ComputeStats(orders []models.Order, now time.Time) OrderStats {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	var stats OrderStats
	for _, order := range orders {
		if !order.CreatedAt.Before(startOfDay) && order.CreatedAt.Before(endOfDay) {
			stats.TotalOrders++
			stats.TotalRevenue += order.Total
		}
		switch order.Status {
		case models.OrderStatusPending:
			stats.PendingOrders++
		case models.OrderStatusConfirmed, models.OrderStatusPreparing, models.OrderStatusReady:
			stats.ActiveOrders++
		}
	}

	if stats.TotalOrders > 0 {
		stats.AvgTicket = stats.TotalRevenue / float64(stats.TotalOrders)
	}
	return stats
}
