package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/denyszaritskyi/comand-work/internal/domain"
)

// DefaultSizeID marks a selection made without an explicit size.
const DefaultSizeID = "default"

const defaultSizeLabel = "Standard"

// UnitPrice derives a line's fixed unit price: base price plus the size delta
// plus the selected addons. A negative size delta can push the value below
// the base price; nothing is clamped here, a non-positive result is the
// caller's data error to flag.
func UnitPrice(dish domain.Dish, size *domain.SizeOption, addons []domain.AddonOption) float64 {
	price := dish.Price
	if size != nil {
		price += size.Delta
	}
	for _, addon := range addons {
		price += addon.Price
	}
	return price
}

func LineTotal(item domain.CartItem) float64 {
	return item.UnitPrice * float64(item.Quantity)
}

func CartTotal(items []domain.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += LineTotal(item)
	}
	return total
}

// ItemKey builds the composite line key. Addon order does not matter: the ids
// are sorted before joining, so identical selections collapse onto one line.
func ItemKey(dishID int, sizeID string, addons []domain.AddonOption) string {
	ids := make([]string, 0, len(addons))
	for _, addon := range addons {
		ids = append(ids, addon.ID)
	}
	sort.Strings(ids)
	return strconv.Itoa(dishID) + "-" + sizeID + "-" + strings.Join(ids, "|")
}

// Cart is a plain value type; callers own any persistence of it.
type Cart struct {
	Items []domain.CartItem
}

// Add merges an identical dish+size+addon selection into the existing line by
// bumping its quantity, otherwise appends a new line with a price snapshot
// taken now.
func (c *Cart) Add(dish domain.Dish, size *domain.SizeOption, addons []domain.AddonOption, quantity int) domain.CartItem {
	if quantity <= 0 {
		quantity = 1
	}

	sizeID, sizeLabel := DefaultSizeID, defaultSizeLabel
	if size != nil {
		sizeID, sizeLabel = size.ID, size.Label
	}
	key := ItemKey(dish.ID, sizeID, addons)

	for i := range c.Items {
		if c.Items[i].Key == key {
			c.Items[i].Quantity += quantity
			return c.Items[i]
		}
	}

	item := domain.CartItem{
		Key:       key,
		DishID:    dish.ID,
		Name:      dish.Name,
		ImageSrc:  dish.ImageSrc,
		SizeID:    sizeID,
		SizeLabel: sizeLabel,
		Addons:    addons,
		UnitPrice: UnitPrice(dish, size, addons),
		Quantity:  quantity,
	}
	c.Items = append(c.Items, item)
	return item
}

func (c *Cart) Remove(key string) {
	items := c.Items[:0]
	for _, item := range c.Items {
		if item.Key != key {
			items = append(items, item)
		}
	}
	c.Items = items
}

// UpdateQuantity sets a line's quantity; zero or negative removes the line.
func (c *Cart) UpdateQuantity(key string, quantity int) {
	if quantity <= 0 {
		c.Remove(key)
		return
	}
	for i := range c.Items {
		if c.Items[i].Key == key {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) Total() float64 {
	return CartTotal(c.Items)
}
