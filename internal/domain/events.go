package domain

import "time"

const (
	EventOrderPlaced   = "order_placed"
	EventStatusChanged = "status_changed"
)

type OrderEvent struct {
	Type        string           `json:"type"`
	OrderID     string           `json:"order_id"`
	TableNumber string           `json:"table_number"`
	Status      OrderStatus      `json:"status"`
	Total       float64          `json:"total"`
	Items       []OrderEventItem `json:"items,omitempty"`
	Timestamp   time.Time        `json:"timestamp"`
}

type OrderEventItem struct {
	DishID   int    `json:"dish_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
