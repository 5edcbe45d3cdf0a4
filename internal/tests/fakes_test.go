package tests

import (
	"context"
	"sync"

	"github.com/denyszaritskyi/comand-work/internal/domain"
)

// fakeStore is an in-memory record store with the same read-all/replace-all
// contract as the real ones. It counts writes so tests can assert the store
// was left untouched.
type fakeStore struct {
	mu             sync.Mutex
	orders         []domain.Order
	dishes         []domain.Dish
	orderWrites    int
	dishWrites     int
	writeOrdersErr error
	writeDishesErr error
}

func (f *fakeStore) ReadOrders() ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	orders := make([]domain.Order, len(f.orders))
	copy(orders, f.orders)
	return orders, nil
}

func (f *fakeStore) WriteOrders(orders []domain.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeOrdersErr != nil {
		return f.writeOrdersErr
	}
	f.orderWrites++
	f.orders = make([]domain.Order, len(orders))
	copy(f.orders, orders)
	return nil
}

func (f *fakeStore) ReadDishes() ([]domain.Dish, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	dishes := make([]domain.Dish, len(f.dishes))
	copy(dishes, f.dishes)
	return dishes, nil
}

func (f *fakeStore) WriteDishes(dishes []domain.Dish) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeDishesErr != nil {
		return f.writeDishesErr
	}
	f.dishWrites++
	f.dishes = make([]domain.Dish, len(dishes))
	copy(f.dishes, dishes)
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []domain.OrderEvent
}

func (p *fakePublisher) PublishOrderEvent(_ context.Context, event domain.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}
