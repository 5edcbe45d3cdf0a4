package tests

import (
	"testing"

	"github.com/denyszaritskyi/comand-work/internal/domain"
	"github.com/denyszaritskyi/comand-work/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestUnitPrice(t *testing.T) {
	dish := domain.Dish{ID: 1, Price: 100}
	size := domain.SizeOption{ID: "s", Label: "Small", Delta: -20}
	addons := []domain.AddonOption{
		{ID: "cheese", Price: 15},
		{ID: "bacon", Price: 10},
	}

	assert.Equal(t, 105.0, service.UnitPrice(dish, &size, addons))
	assert.Equal(t, 100.0, service.UnitPrice(dish, nil, nil))
	assert.Equal(t, 135.0, service.UnitPrice(dish, &domain.SizeOption{Delta: 35}, nil))
}

func TestItemKeyOrderInsensitive(t *testing.T) {
	a := domain.AddonOption{ID: "cheese"}
	b := domain.AddonOption{ID: "bacon"}

	keyAB := service.ItemKey(7, "m", []domain.AddonOption{a, b})
	keyBA := service.ItemKey(7, "m", []domain.AddonOption{b, a})

	assert.Equal(t, keyAB, keyBA)
	assert.NotEqual(t, keyAB, service.ItemKey(7, "l", []domain.AddonOption{a, b}))
	assert.NotEqual(t, keyAB, service.ItemKey(8, "m", []domain.AddonOption{a, b}))
}

func TestCartMergesIdenticalSelections(t *testing.T) {
	dish := domain.Dish{ID: 3, Name: "Carbonara", Price: 180}
	size := domain.SizeOption{ID: "l", Label: "Large", Delta: 35}
	cheese := domain.AddonOption{ID: "cheese", Label: "Cheese", Price: 15}
	bacon := domain.AddonOption{ID: "bacon", Label: "Bacon", Price: 25}

	var cart service.Cart
	cart.Add(dish, &size, []domain.AddonOption{cheese, bacon}, 1)
	// same selection, addons listed in the other order
	cart.Add(dish, &size, []domain.AddonOption{bacon, cheese}, 2)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 255.0, cart.Items[0].UnitPrice)
	assert.Equal(t, 765.0, cart.Total())
}

func TestCartPriceIsSnapshot(t *testing.T) {
	dish := domain.Dish{ID: 5, Name: "Borsch", Price: 120}

	var cart service.Cart
	cart.Add(dish, nil, nil, 2)

	dish.Price = 999
	assert.Equal(t, 120.0, cart.Items[0].UnitPrice)
	assert.Equal(t, 240.0, cart.Total())
}

func TestCartUpdateQuantity(t *testing.T) {
	dish := domain.Dish{ID: 5, Name: "Borsch", Price: 120}

	var cart service.Cart
	item := cart.Add(dish, nil, nil, 1)

	cart.UpdateQuantity(item.Key, 4)
	assert.Equal(t, 4, cart.Items[0].Quantity)

	cart.UpdateQuantity(item.Key, 0)
	assert.Empty(t, cart.Items)
}

func TestCartRemoveAndClear(t *testing.T) {
	var cart service.Cart
	first := cart.Add(domain.Dish{ID: 1, Price: 50}, nil, nil, 1)
	cart.Add(domain.Dish{ID: 2, Price: 60}, nil, nil, 1)

	cart.Remove(first.Key)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].DishID)

	cart.Clear()
	assert.Empty(t, cart.Items)
}
