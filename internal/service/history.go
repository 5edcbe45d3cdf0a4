package service

import (
	"context"
	"sort"

	"github.com/denyszaritskyi/comand-work/internal/domain"
)

// HistoryService associates a browsing session with the orders it placed.
// The session id is passed explicitly by the caller; the association is
// advisory UI state, not access control. Any client that knows an order id
// can fetch it.
type HistoryService struct {
	sessions SessionStore
}

func NewHistoryService(sessions SessionStore) *HistoryService {
	return &HistoryService{sessions: sessions}
}

func (s *HistoryService) Record(ctx context.Context, sessionID, orderID string) error {
	if sessionID == "" || orderID == "" {
		return nil
	}
	ids, err := s.sessions.IDs(ctx, sessionID)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == orderID {
			return nil
		}
	}
	return s.sessions.Append(ctx, sessionID, orderID)
}

// Orders filters the full collection down to this session's orders, newest
// first.
func (s *HistoryService) Orders(ctx context.Context, sessionID string, all []domain.Order) ([]domain.Order, error) {
	ids, err := s.sessions.IDs(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return MyOrders(all, ids), nil
}

func MyOrders(all []domain.Order, ids []string) []domain.Order {
	mine := make(map[string]bool, len(ids))
	for _, id := range ids {
		mine[id] = true
	}
	orders := []domain.Order{}
	for _, order := range all {
		if mine[order.ID] {
			orders = append(orders, order)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt > orders[j].CreatedAt
	})
	return orders
}

// HasUnpaidOrders reports whether any of the orders still needs settling.
// Legacy "pending" payloads count as new.
func HasUnpaidOrders(orders []domain.Order) bool {
	for _, order := range orders {
		status := domain.NormalizeStatus(order.Status)
		if status == domain.StatusNew || status == domain.StatusPartiallyPaid {
			return true
		}
	}
	return false
}

var _ HistoryServiceInterface = (*HistoryService)(nil)
