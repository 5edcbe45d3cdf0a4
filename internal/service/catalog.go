package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denyszaritskyi/comand-work/internal/domain"
)

var (
	ErrDishNotFound  = errors.New("dish not found")
	ErrMissingDishID = errors.New("dish id is required")
)

// DishService is the admin catalog CRUD over the dish collection. Dishes are
// immutable from the order side: placed orders carry their own snapshots.
type DishService struct {
	store DishStore
	now   func() time.Time
}

func NewDishService(store DishStore) *DishService {
	return &DishService{store: store, now: time.Now}
}

func (s *DishService) List(ctx context.Context) ([]domain.Dish, error) {
	return s.store.ReadDishes()
}

// Create assigns a time-derived id and prepends, so the newest dish shows
// first in the admin table.
func (s *DishService) Create(ctx context.Context, dish *domain.Dish) error {
	dishes, err := s.store.ReadDishes()
	if err != nil {
		return fmt.Errorf("read dishes: %w", err)
	}
	dish.ID = int(s.now().UnixMilli())
	dishes = append([]domain.Dish{*dish}, dishes...)
	if err := s.store.WriteDishes(dishes); err != nil {
		return fmt.Errorf("persist dishes: %w", err)
	}
	return nil
}

func (s *DishService) Update(ctx context.Context, dish *domain.Dish) error {
	dishes, err := s.store.ReadDishes()
	if err != nil {
		return fmt.Errorf("read dishes: %w", err)
	}
	for i := range dishes {
		if dishes[i].ID == dish.ID {
			dishes[i] = *dish
			if err := s.store.WriteDishes(dishes); err != nil {
				return fmt.Errorf("persist dishes: %w", err)
			}
			return nil
		}
	}
	return ErrDishNotFound
}

// Delete removes a dish by id. Deleting an id that is already gone succeeds
// silently; only a missing id is an error.
func (s *DishService) Delete(ctx context.Context, dishID int) error {
	if dishID == 0 {
		return ErrMissingDishID
	}
	dishes, err := s.store.ReadDishes()
	if err != nil {
		return fmt.Errorf("read dishes: %w", err)
	}
	kept := dishes[:0]
	for _, dish := range dishes {
		if dish.ID != dishID {
			kept = append(kept, dish)
		}
	}
	if err := s.store.WriteDishes(kept); err != nil {
		return fmt.Errorf("persist dishes: %w", err)
	}
	return nil
}

var _ DishServiceInterface = (*DishService)(nil)
