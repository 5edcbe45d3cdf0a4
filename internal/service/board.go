package service

import (
	"context"

	"github.com/denyszaritskyi/comand-work/internal/domain"
)

type Bucket string

const (
	BucketNew     Bucket = "new"
	BucketCooking Bucket = "cooking"
	BucketReady   Bucket = "ready"
)

// Board is the kitchen view of the active orders: three mutually exclusive
// columns, completed and cancelled orders excluded entirely.
type Board struct {
	New     []domain.Order `json:"new"`
	Cooking []domain.Order `json:"cooking"`
	Ready   []domain.Order `json:"ready"`
}

// BucketFor maps a status to its board column. Orders paid in advance still
// land in the incoming column; completed/cancelled map to no bucket.
func BucketFor(status domain.OrderStatus) (Bucket, bool) {
	switch status {
	case domain.StatusCooking:
		return BucketCooking, true
	case domain.StatusReady:
		return BucketReady, true
	case domain.StatusCompleted, domain.StatusCancelled:
		return "", false
	default:
		return BucketNew, true
	}
}

// ProjectBoard re-derives the board from the latest order collection; the
// projection holds no state of its own.
func ProjectBoard(orders []domain.Order) Board {
	board := Board{
		New:     []domain.Order{},
		Cooking: []domain.Order{},
		Ready:   []domain.Order{},
	}
	for _, order := range orders {
		bucket, ok := BucketFor(order.Status)
		if !ok {
			continue
		}
		switch bucket {
		case BucketNew:
			board.New = append(board.New, order)
		case BucketCooking:
			board.Cooking = append(board.Cooking, order)
		case BucketReady:
			board.Ready = append(board.Ready, order)
		}
	}
	return board
}

// BoardService translates board interactions into lifecycle calls. Card
// drags and the explicit cancel/complete controls go through the same
// ApplyStatusChange path so there is one transition logic, not two.
type BoardService struct {
	Orders OrderServiceInterface
}

func NewBoardService(orders OrderServiceInterface) *BoardService {
	return &BoardService{Orders: orders}
}

func (s *BoardService) Snapshot(ctx context.Context) (Board, error) {
	orders, err := s.Orders.List(ctx)
	if err != nil {
		return Board{}, err
	}
	return ProjectBoard(orders), nil
}

// Move drops a card into a bucket. Dropping it back onto its own column is a
// no-op.
func (s *BoardService) Move(ctx context.Context, orderID string, to Bucket) error {
	order, err := s.Orders.Get(ctx, orderID)
	if err != nil {
		return err
	}
	if current, ok := BucketFor(order.Status); ok && current == to {
		return nil
	}
	_, err = s.Orders.ApplyStatusChange(ctx, orderID, domain.OrderStatus(to), nil)
	return err
}
