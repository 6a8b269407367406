package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/quentinhas/quentinhas-api/models"
)

// OrderWatcher polls the order store for tenants with active dashboard
// subscribers and broadcasts the fresh order list whenever it changes.
// The loop is tied to a context, so shutting the server down stops the
// polling instead of leaking a bare timer.
type OrderWatcher struct {
	service  *OrderService
	interval time.Duration

	mu          sync.Mutex
	subscribers map[string]map[chan []models.Order]struct{}
	digests     map[string]string
}

// NewOrderWatcher creates a watcher polling at the given interval
func NewOrderWatcher(service *OrderService, interval time.Duration) *OrderWatcher {
	return &OrderWatcher{
		service:     service,
		interval:    interval,
		subscribers: make(map[string]map[chan []models.Order]struct{}),
		digests:     make(map[string]string),
	}
}

// Start runs the polling loop until ctx is cancelled
func (w *OrderWatcher) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.poll(ctx)
			}
		}
	}()
}

// Subscribe registers a dashboard listener for a tenant's order changes.
// The returned cancel function must be called when the listener goes away.
func (w *OrderWatcher) Subscribe(tenantID string) (<-chan []models.Order, func()) {
	ch := make(chan []models.Order, 1)

	w.mu.Lock()
	if w.subscribers[tenantID] == nil {
		w.subscribers[tenantID] = make(map[chan []models.Order]struct{})
	}
	w.subscribers[tenantID][ch] = struct{}{}
	w.mu.Unlock()

	cancel := func() {
		w.mu.Lock()
		if subs, ok := w.subscribers[tenantID]; ok {
			delete(subs, ch)
			if len(subs) == 0 {
				delete(w.subscribers, tenantID)
				delete(w.digests, tenantID)
			}
		}
		// The channel is left open; a broadcast may have grabbed it just
		// before unsubscription and closing here would turn that send into
		// a panic.
		w.mu.Unlock()
	}
	return ch, cancel
}

// Notify forces an immediate re-check for a tenant, used right after a
// status change so subscribers don't wait a full poll interval.
func (w *OrderWatcher) Notify(ctx context.Context, tenantID string) {
	w.checkTenant(ctx, tenantID)
}

func (w *OrderWatcher) poll(ctx context.Context) {
	w.mu.Lock()
	tenantIDs := make([]string, 0, len(w.subscribers))
	for tenantID := range w.subscribers {
		tenantIDs = append(tenantIDs, tenantID)
	}
	w.mu.Unlock()

	for _, tenantID := range tenantIDs {
		w.checkTenant(ctx, tenantID)
	}
}

func (w *OrderWatcher) checkTenant(ctx context.Context, tenantID string) {
	orders, err := w.service.GetOrders(ctx, tenantID)
	if err != nil {
		logrus.WithFields(logrus.Fields{"tenant": tenantID}).WithError(err).Warn("order poll failed")
		return
	}

	digest := orderDigest(orders)

	w.mu.Lock()
	changed := w.digests[tenantID] != digest
	if changed {
		w.digests[tenantID] = digest
	}
	var targets []chan []models.Order
	if changed {
		for ch := range w.subscribers[tenantID] {
			targets = append(targets, ch)
		}
	}
	w.mu.Unlock()

	for _, ch := range targets {
		// Drop the stale pending update if the subscriber is slow; only the
		// latest list matters.
		select {
		case ch <- orders:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- orders:
			default:
			}
		}
	}
}

func orderDigest(orders []models.Order) string {
	var b strings.Builder
	for _, o := range orders {
		fmt.Fprintf(&b, "%s:%s:%d;", o.ID, o.Status, o.UpdatedAt.UnixNano())
	}
	return b.String()
}
