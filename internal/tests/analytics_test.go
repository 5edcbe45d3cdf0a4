package tests

import (
	"context"
	"testing"
	"time"

	"github.com/denyszaritskyi/comand-work/internal/domain"
	"github.com/denyszaritskyi/comand-work/internal/service"
	"github.com/denyszaritskyi/comand-work/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func dayMillis(day string) int64 {
	parsed, _ := time.Parse("2006-01-02", day)
	return parsed.Add(12 * time.Hour).UnixMilli()
}

func analyticsOrders() []domain.Order {
	return []domain.Order{
		{ID: "1", CreatedAt: dayMillis("2026-08-01"), Status: domain.StatusCompleted, Total: 300,
			Items: []domain.CartItem{{DishID: 10, Name: "Pizza", Quantity: 2}}},
		{ID: "2", CreatedAt: dayMillis("2026-08-01"), Status: domain.StatusCancelled, Total: 150,
			Items: []domain.CartItem{{DishID: 11, Name: "Salad", Quantity: 1}}},
		{ID: "3", CreatedAt: dayMillis("2026-08-02"), Status: domain.StatusPaid, Total: 200,
			Items: []domain.CartItem{{DishID: 10, Name: "Pizza", Quantity: 1}}},
		{ID: "4", CreatedAt: dayMillis("2026-08-02"), Status: domain.StatusCooking, Total: 90,
			Items: []domain.CartItem{{DishID: 12, Name: "Tea", Quantity: 3}}},
		{ID: "5", CreatedAt: dayMillis("2026-09-15"), Status: domain.StatusCompleted, Total: 500,
			Items: []domain.CartItem{{DishID: 11, Name: "Salad", Quantity: 5}}},
	}
}

func TestAnalyticsSummary(t *testing.T) {
	store := &fakeStore{orders: analyticsOrders()}
	svc := service.NewAnalyticsService(store, store, nil)

	from, _ := time.Parse("2006-01-02", "2026-08-01")
	to, _ := time.Parse("2006-01-02", "2026-08-31")
	summary, err := svc.Summary(context.Background(), from, to)

	assert.NoError(t, err)
	assert.Equal(t, 4, summary.OrdersCount)
	assert.Equal(t, 1, summary.CompletedCount)
	assert.Equal(t, 1, summary.CancelledCount)
	// completed 300 + paid 200; cooking and cancelled contribute nothing
	assert.Equal(t, 500.0, summary.Revenue)
	// averaged over the two revenue-bearing orders only
	assert.Equal(t, 250.0, summary.AverageCheck)
	assert.Equal(t, 2, summary.StatusCounts["completed"]+summary.StatusCounts["paid"])

	assert.Len(t, summary.DailyRevenue, 2)
	assert.Equal(t, "2026-08-01", summary.DailyRevenue[0].Date)
	assert.Equal(t, 300.0, summary.DailyRevenue[0].Revenue)
	assert.Equal(t, 2, summary.DailyRevenue[0].Orders)
	assert.Equal(t, "2026-08-02", summary.DailyRevenue[1].Date)
	assert.Equal(t, 200.0, summary.DailyRevenue[1].Revenue)
}

func TestTopDishesFromOrders(t *testing.T) {
	store := &fakeStore{orders: analyticsOrders()}
	svc := service.NewAnalyticsService(store, store, nil)
	ctx := context.Background()

	top, err := svc.TopDishes(ctx, "", 2)
	assert.NoError(t, err)
	assert.Len(t, top, 2)
	assert.Equal(t, "Salad", top[0].Name)
	assert.Equal(t, 6.0, top[0].Count)

	daily, err := svc.TopDishes(ctx, "2026-08-02", 10)
	assert.NoError(t, err)
	assert.Len(t, daily, 2)
	assert.Equal(t, "Tea", daily[0].Name)
	assert.Equal(t, 3.0, daily[0].Count)
}

func TestTopDishesPrefersCache(t *testing.T) {
	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	cache := storage.NewRedisCache(client)
	ctx := context.Background()

	assert.NoError(t, cache.IncrDishCount(ctx, "2026-09-01", 10, 7))
	assert.NoError(t, cache.IncrDishCount(ctx, "2026-09-01", 11, 2))

	store := &fakeStore{dishes: []domain.Dish{{ID: 10, Name: "Pizza"}, {ID: 11, Name: "Salad"}}}
	svc := service.NewAnalyticsService(store, store, cache)

	top, err := svc.TopDishes(ctx, "2026-09-01", 5)
	assert.NoError(t, err)
	assert.Len(t, top, 2)
	assert.Equal(t, 10, top[0].DishID)
	assert.Equal(t, "Pizza", top[0].Name)
	assert.Equal(t, 7.0, top[0].Count)
}
