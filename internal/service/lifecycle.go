package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/denyszaritskyi/comand-work/internal/domain"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidOrder  = errors.New("invalid order payload")
	ErrInvalidStatus = errors.New("unknown order status")
)

// OrderService is the single authority for order status transitions and
// their payment and timer side effects. Every mutation is a full
// read-modify-write of the order collection; the last writer wins.
type OrderService struct {
	store     OrderStore
	publisher EventPublisher
	now       func() time.Time
}

func NewOrderService(store OrderStore, publisher EventPublisher) *OrderService {
	return &OrderService{store: store, publisher: publisher, now: time.Now}
}

func (s *OrderService) Place(ctx context.Context, order *domain.Order) error {
	if len(order.Items) == 0 {
		return ErrInvalidOrder
	}

	now := s.now()
	if order.ID == "" {
		order.ID = strconv.FormatInt(now.UnixNano(), 10)
	}
	if order.CreatedAt == 0 {
		order.CreatedAt = now.UnixMilli()
	}
	order.Status = domain.NormalizeStatus(order.Status)
	if order.Status == "" {
		order.Status = domain.StatusNew
	}
	if order.Total == 0 {
		order.Total = CartTotal(order.Items)
	}

	orders, err := s.store.ReadOrders()
	if err != nil {
		return fmt.Errorf("read orders: %w", err)
	}
	orders = append(orders, *order)
	if err := s.store.WriteOrders(orders); err != nil {
		return fmt.Errorf("persist orders: %w", err)
	}

	s.publish(ctx, domain.EventOrderPlaced, order)
	return nil
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.store.ReadOrders()
}

func (s *OrderService) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	orders, err := s.store.ReadOrders()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == orderID {
			order := orders[i]
			return &order, nil
		}
	}
	return nil, ErrOrderNotFound
}

// ApplyStatusChange resolves the new status, applies payment bookkeeping for
// the paid / partially_paid cases, then applies the timer rule and writes the
// whole collection back. Write failures propagate to the caller; there are
// no retries.
func (s *OrderService) ApplyStatusChange(ctx context.Context, orderID string, newStatus domain.OrderStatus, paidItemKeys []string) (*domain.Order, error) {
	newStatus = domain.NormalizeStatus(newStatus)
	if !newStatus.Valid() {
		return nil, ErrInvalidStatus
	}

	orders, err := s.store.ReadOrders()
	if err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}

	idx := -1
	for i := range orders {
		if orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrOrderNotFound
	}

	order := &orders[idx]
	switch {
	case newStatus == domain.StatusPartiallyPaid && len(paidItemKeys) > 0:
		paid := make(map[string]bool, len(paidItemKeys))
		for _, key := range paidItemKeys {
			paid[key] = true
		}
		for i := range order.Items {
			if paid[order.Items[i].Key] {
				order.Items[i].Paid = true
			}
		}
		if order.AllItemsPaid() {
			order.Status = domain.StatusPaid
		} else {
			order.Status = domain.StatusPartiallyPaid
		}
	case newStatus == domain.StatusPaid:
		for i := range order.Items {
			order.Items[i].Paid = true
		}
		order.Status = domain.StatusPaid
	default:
		order.Status = newStatus
	}

	// Entering a terminal-for-the-kitchen status freezes the timer once;
	// any other status, payment included, keeps it running.
	if order.Status.StopsTimer() {
		if order.StoppedAt == 0 {
			order.StoppedAt = s.now().UnixMilli()
		}
	} else {
		order.StoppedAt = 0
	}

	if err := s.store.WriteOrders(orders); err != nil {
		return nil, fmt.Errorf("persist orders: %w", err)
	}

	updated := *order
	s.publish(ctx, domain.EventStatusChanged, &updated)
	return &updated, nil
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	event := domain.OrderEvent{
		Type:        eventType,
		OrderID:     order.ID,
		TableNumber: order.TableNumber,
		Status:      order.Status,
		Total:       order.Total,
		Timestamp:   s.now(),
	}
	if eventType == domain.EventOrderPlaced {
		for _, item := range order.Items {
			event.Items = append(event.Items, domain.OrderEventItem{
				DishID:   item.DishID,
				Name:     item.Name,
				Quantity: item.Quantity,
			})
		}
	}
	_ = s.publisher.PublishOrderEvent(ctx, event)
}

var _ OrderServiceInterface = (*OrderService)(nil)
