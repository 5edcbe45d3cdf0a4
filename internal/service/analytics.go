package service

import (
	"context"
	"sort"
	"time"

	"github.com/denyszaritskyi/comand-work/internal/domain"
	"github.com/denyszaritskyi/comand-work/internal/storage"
)

type DailyPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type Summary struct {
	Revenue        float64        `json:"revenue"`
	OrdersCount    int            `json:"ordersCount"`
	CompletedCount int            `json:"completedCount"`
	CancelledCount int            `json:"cancelledCount"`
	AverageCheck   float64        `json:"averageCheck"`
	DailyRevenue   []DailyPoint   `json:"dailyRevenue"`
	StatusCounts   map[string]int `json:"statusCounts"`
}

// AnalyticsService aggregates the order collection for the admin dashboard.
// Top-dish queries prefer the Redis counters and fall back to recomputing
// from the orders themselves when no cache is wired.
type AnalyticsService struct {
	orders OrderStore
	dishes DishStore
	cache  DishCounter
}

func NewAnalyticsService(orders OrderStore, dishes DishStore, cache DishCounter) *AnalyticsService {
	return &AnalyticsService{orders: orders, dishes: dishes, cache: cache}
}

// settled statuses contribute to revenue; a partially paid order still counts
// its full total, matching the snapshot semantics of Order.Total.
func countsTowardRevenue(status domain.OrderStatus) bool {
	switch status {
	case domain.StatusCompleted, domain.StatusPaid, domain.StatusPartiallyPaid:
		return true
	}
	return false
}

func (s *AnalyticsService) Summary(ctx context.Context, from, to time.Time) (Summary, error) {
	orders, err := s.orders.ReadOrders()
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		DailyRevenue: []DailyPoint{},
		StatusCounts: map[string]int{},
	}
	daily := map[string]*DailyPoint{}
	settled := 0

	for _, order := range orders {
		created := time.UnixMilli(order.CreatedAt)
		if created.Before(from) || created.After(to) {
			continue
		}

		summary.OrdersCount++
		summary.StatusCounts[string(order.Status)]++
		switch order.Status {
		case domain.StatusCompleted:
			summary.CompletedCount++
		case domain.StatusCancelled:
			summary.CancelledCount++
		}

		key := created.Format("2006-01-02")
		point, ok := daily[key]
		if !ok {
			point = &DailyPoint{Date: key}
			daily[key] = point
		}
		point.Orders++
		if countsTowardRevenue(order.Status) {
			settled++
			summary.Revenue += order.Total
			point.Revenue += order.Total
		}
	}

	// in-flight and cancelled orders carry no revenue and must not dilute
	// the average
	if settled > 0 {
		summary.AverageCheck = summary.Revenue / float64(settled)
	}

	for _, point := range daily {
		summary.DailyRevenue = append(summary.DailyRevenue, *point)
	}
	sort.Slice(summary.DailyRevenue, func(i, j int) bool {
		return summary.DailyRevenue[i].Date < summary.DailyRevenue[j].Date
	})
	return summary, nil
}

// TopDishes returns the most ordered dishes for a day ("" means all time).
func (s *AnalyticsService) TopDishes(ctx context.Context, date string, limit int) ([]storage.DishCount, error) {
	if limit <= 0 {
		limit = 10
	}

	if s.cache != nil {
		if top, err := s.cache.TopDishes(ctx, date, limit); err == nil && len(top) > 0 {
			return s.resolveNames(top), nil
		}
	}
	return s.topDishesFromOrders(date, limit)
}

func (s *AnalyticsService) topDishesFromOrders(date string, limit int) ([]storage.DishCount, error) {
	orders, err := s.orders.ReadOrders()
	if err != nil {
		return nil, err
	}

	counts := map[int]*storage.DishCount{}
	for _, order := range orders {
		if date != "" && time.UnixMilli(order.CreatedAt).Format("2006-01-02") != date {
			continue
		}
		for _, item := range order.Items {
			entry, ok := counts[item.DishID]
			if !ok {
				entry = &storage.DishCount{DishID: item.DishID, Name: item.Name}
				counts[item.DishID] = entry
			}
			entry.Count += float64(item.Quantity)
		}
	}

	top := make([]storage.DishCount, 0, len(counts))
	for _, entry := range counts {
		top = append(top, *entry)
	}
	sort.Slice(top, func(i, j int) bool { return top[i].Count > top[j].Count })
	if len(top) > limit {
		top = top[:limit]
	}
	return top, nil
}

func (s *AnalyticsService) resolveNames(top []storage.DishCount) []storage.DishCount {
	dishes, err := s.dishes.ReadDishes()
	if err != nil {
		return top
	}
	names := make(map[int]string, len(dishes))
	for _, dish := range dishes {
		names[dish.ID] = dish.Name
	}
	for i := range top {
		if name, ok := names[top[i].DishID]; ok {
			top[i].Name = name
		}
	}
	return top
}

var _ AnalyticsServiceInterface = (*AnalyticsService)(nil)
