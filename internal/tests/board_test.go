package tests

import (
	"context"
	"testing"

	"github.com/denyszaritskyi/comand-work/internal/domain"
	"github.com/denyszaritskyi/comand-work/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestProjectBoardPartition(t *testing.T) {
	statuses := []domain.OrderStatus{
		domain.StatusNew,
		domain.StatusCooking,
		domain.StatusReady,
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusPaid,
		domain.StatusPartiallyPaid,
	}
	orders := make([]domain.Order, 0, len(statuses))
	for i, status := range statuses {
		orders = append(orders, domain.Order{ID: string(rune('a' + i)), Status: status})
	}

	board := service.ProjectBoard(orders)

	// prepaid orders still show as incoming
	assert.Len(t, board.New, 3)
	assert.Len(t, board.Cooking, 1)
	assert.Len(t, board.Ready, 1)

	seen := map[string]int{}
	for _, bucket := range [][]domain.Order{board.New, board.Cooking, board.Ready} {
		for _, order := range bucket {
			seen[order.ID]++
		}
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "order %s appears in more than one bucket", id)
	}
	for _, order := range orders {
		if order.Active() {
			assert.Contains(t, seen, order.ID)
		} else {
			assert.NotContains(t, seen, order.ID)
		}
	}
}

func TestBoardMoveTransitions(t *testing.T) {
	store := &fakeStore{}
	orderSvc := service.NewOrderService(store, nil)
	board := service.NewBoardService(orderSvc)
	ctx := context.Background()
	seedOrder(store, twoItemOrder("card-1"))

	assert.NoError(t, board.Move(ctx, "card-1", service.BucketCooking))
	assert.Equal(t, domain.StatusCooking, store.orders[0].Status)

	assert.NoError(t, board.Move(ctx, "card-1", service.BucketReady))
	assert.Equal(t, domain.StatusReady, store.orders[0].Status)
	assert.NotZero(t, store.orders[0].StoppedAt)
}

func TestBoardMoveSameBucketIsNoop(t *testing.T) {
	store := &fakeStore{}
	orderSvc := service.NewOrderService(store, nil)
	board := service.NewBoardService(orderSvc)
	seedOrder(store, twoItemOrder("card-2"))

	assert.NoError(t, board.Move(context.Background(), "card-2", service.BucketNew))
	assert.Zero(t, store.orderWrites)
}

func TestBoardMovePrepaidCountsAsIncoming(t *testing.T) {
	store := &fakeStore{}
	orderSvc := service.NewOrderService(store, nil)
	board := service.NewBoardService(orderSvc)

	order := twoItemOrder("card-3")
	order.Status = domain.StatusPaid
	order.Items[0].Paid = true
	order.Items[1].Paid = true
	seedOrder(store, order)

	// the paid card sits in the incoming column; dropping it there moves nothing
	assert.NoError(t, board.Move(context.Background(), "card-3", service.BucketNew))
	assert.Zero(t, store.orderWrites)
}

func TestBoardMoveUnknownOrder(t *testing.T) {
	store := &fakeStore{}
	board := service.NewBoardService(service.NewOrderService(store, nil))

	err := board.Move(context.Background(), "ghost", service.BucketReady)
	assert.ErrorIs(t, err, service.ErrOrderNotFound)
}

func TestBoardSnapshot(t *testing.T) {
	store := &fakeStore{}
	board := service.NewBoardService(service.NewOrderService(store, nil))

	cooking := twoItemOrder("snap-1")
	cooking.Status = domain.StatusCooking
	done := twoItemOrder("snap-2")
	done.Status = domain.StatusCompleted
	seedOrder(store, cooking)
	seedOrder(store, done)

	snapshot, err := board.Snapshot(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, snapshot.New)
	assert.Len(t, snapshot.Cooking, 1)
	assert.Empty(t, snapshot.Ready)
}
