package services

import "github.com/quentinhas/quentinhas-api/models"

// StatusInfo is the display and transition metadata of one order status.
// Both the Kanban board and the list view read this table, so labels and
// colors can never drift between views.
type StatusInfo struct {
	Label      string             `json:"label"`
	Icon       string             `json:"icon"`
	Color      string             `json:"color"`
	BadgeColor string             `json:"badge_color"`
	Next       models.OrderStatus `json:"next_status,omitempty"`
	Terminal   bool               `json:"terminal"`
}

// statusConfig is the single authoritative transition table. Forward
// progression is linear; delivered and cancelled are terminal.
var statusConfig = map[models.OrderStatus]StatusInfo{
	models.OrderStatusPending: {
		Label:      "Novos Pedidos",
		Icon:       "alert-circle",
		Color:      "bg-red-50 border-red-200",
		BadgeColor: "bg-red-100 text-red-800",
		Next:       models.OrderStatusConfirmed,
	},
	models.OrderStatusConfirmed: {
		Label:      "Confirmados",
		Icon:       "check-circle",
		Color:      "bg-blue-50 border-blue-200",
		BadgeColor: "bg-blue-100 text-blue-800",
		Next:       models.OrderStatusPreparing,
	},
	models.OrderStatusPreparing: {
		Label:      "Em Preparo",
		Icon:       "chef-hat",
		Color:      "bg-yellow-50 border-yellow-200",
		BadgeColor: "bg-yellow-100 text-yellow-800",
		Next:       models.OrderStatusReady,
	},
	models.OrderStatusReady: {
		Label:      "Prontos",
		Icon:       "clock",
		Color:      "bg-orange-50 border-orange-200",
		BadgeColor: "bg-orange-100 text-orange-800",
		Next:       models.OrderStatusDelivered,
	},
	models.OrderStatusDelivered: {
		Label:      "Entregues",
		Icon:       "truck",
		Color:      "bg-green-50 border-green-200",
		BadgeColor: "bg-green-100 text-green-800",
		Terminal:   true,
	},
	models.OrderStatusCancelled: {
		Label:      "Cancelados",
		Icon:       "x-circle",
		Color:      "bg-gray-50 border-gray-200",
		BadgeColor: "bg-gray-100 text-gray-800",
		Terminal:   true,
	},
}

// AllStatuses lists every order status in board column order
func AllStatuses() []models.OrderStatus {
	return []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusPreparing,
		models.OrderStatusReady,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	}
}

// StatusMetadata returns the display metadata for a status. The second
// return value is false for unknown statuses.
func StatusMetadata(status models.OrderStatus) (StatusInfo, bool) {
	info, ok := statusConfig[status]
	return info, ok
}

// NextStatus returns the next status in the forward chain, or "" when the
// status is terminal or unknown.
func NextStatus(status models.OrderStatus) models.OrderStatus {
	info, ok := statusConfig[status]
	if !ok || info.Terminal {
		return ""
	}
	return info.Next
}

// IsTerminal reports whether a status admits no further transitions
func IsTerminal(status models.OrderStatus) bool {
	info, ok := statusConfig[status]
	return ok && info.Terminal
}

// CanTransition reports whether from → to is a legal transition: the next
// step in the forward chain, or cancellation of any non-terminal order.
func CanTransition(from, to models.OrderStatus) bool {
	info, ok := statusConfig[from]
	if !ok || info.Terminal {
		return false
	}
	if to == models.OrderStatusCancelled {
		return true
	}
	return to == info.Next
}
