package service

import (
	"context"
	"time"

	"github.com/denyszaritskyi/comand-work/internal/domain"
	"github.com/denyszaritskyi/comand-work/internal/storage"
)

type OrderStore interface {
	ReadOrders() ([]domain.Order, error)
	WriteOrders([]domain.Order) error
}

type DishStore interface {
	ReadDishes() ([]domain.Dish, error)
	WriteDishes([]domain.Dish) error
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type SessionStore interface {
	Append(ctx context.Context, sessionID, orderID string) error
	IDs(ctx context.Context, sessionID string) ([]string, error)
}

type DishCounter interface {
	IncrDishCount(ctx context.Context, date string, dishID, quantity int) error
	TopDishes(ctx context.Context, date string, limit int) ([]storage.DishCount, error)
}

type OrderServiceInterface interface {
	Place(ctx context.Context, order *domain.Order) error
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	ApplyStatusChange(ctx context.Context, orderID string, newStatus domain.OrderStatus, paidItemKeys []string) (*domain.Order, error)
}

type DishServiceInterface interface {
	List(ctx context.Context) ([]domain.Dish, error)
	Create(ctx context.Context, dish *domain.Dish) error
	Update(ctx context.Context, dish *domain.Dish) error
	Delete(ctx context.Context, dishID int) error
}

type HistoryServiceInterface interface {
	Record(ctx context.Context, sessionID, orderID string) error
	Orders(ctx context.Context, sessionID string, all []domain.Order) ([]domain.Order, error)
}

type AnalyticsServiceInterface interface {
	Summary(ctx context.Context, from, to time.Time) (Summary, error)
	TopDishes(ctx context.Context, date string, limit int) ([]storage.DishCount, error)
}

type QRGenerator interface {
	Generate(tableNumber string) ([]byte, error)
}

var (
	_ OrderStore     = (*storage.JSONStore)(nil)
	_ DishStore      = (*storage.JSONStore)(nil)
	_ OrderStore     = (*storage.PostgresStore)(nil)
	_ DishStore      = (*storage.PostgresStore)(nil)
	_ SessionStore   = (*storage.MemorySessionStore)(nil)
	_ SessionStore   = (*storage.RedisSessionStore)(nil)
	_ DishCounter    = (*storage.RedisCache)(nil)
	_ EventPublisher = (*storage.KafkaPublisher)(nil)
)
