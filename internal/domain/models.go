package domain

import "time"

type OrderStatus string

const (
	StatusNew           OrderStatus = "new"
	StatusCooking       OrderStatus = "cooking"
	StatusReady         OrderStatus = "ready"
	StatusCompleted     OrderStatus = "completed"
	StatusCancelled     OrderStatus = "cancelled"
	StatusPaid          OrderStatus = "paid"
	StatusPartiallyPaid OrderStatus = "partially_paid"
)

// statusPending survives in payloads from an older client build.
const statusPending OrderStatus = "pending"

// NormalizeStatus maps the legacy "pending" value to "new" and leaves
// everything else untouched.
func NormalizeStatus(s OrderStatus) OrderStatus {
	if s == statusPending {
		return StatusNew
	}
	return s
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusNew, StatusCooking, StatusReady, StatusCompleted, StatusCancelled, StatusPaid, StatusPartiallyPaid:
		return true
	}
	return false
}

// StopsTimer reports whether entering this status freezes the order timer.
// Every other status keeps it running, so a stop recorded earlier is cleared.
func (s OrderStatus) StopsTimer() bool {
	return s == StatusReady || s == StatusCompleted || s == StatusCancelled
}

type AddonOption struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

type SizeOption struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Delta float64 `json:"delta"`
}

// SizeOptions is the fixed size enumeration; deltas apply to a dish's base
// price and are not persisted per dish.
var SizeOptions = []SizeOption{
	{ID: "s", Label: "Small", Delta: -20},
	{ID: "m", Label: "Standard", Delta: 0},
	{ID: "l", Label: "Large", Delta: 35},
}

func SizeByID(id string) (SizeOption, bool) {
	for _, option := range SizeOptions {
		if option.ID == id {
			return option, true
		}
	}
	return SizeOption{}, false
}

type Dish struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Price        float64       `json:"price"`
	Description  string        `json:"description"`
	Category     string        `json:"category"`
	ImageSrc     string        `json:"imageSrc"`
	Rating       float64       `json:"rating"`
	ReviewsCount int           `json:"reviewsCount"`
	Addons       []AddonOption `json:"addons,omitempty"`
}

// CartItem is a priced line in a cart or order. Name, image and size label
// are snapshots taken at add time so later catalog edits do not rewrite a
// placed order; UnitPrice is fixed at add time for the same reason.
type CartItem struct {
	Key       string        `json:"key"`
	DishID    int           `json:"dishId"`
	Name      string        `json:"name"`
	ImageSrc  string        `json:"imageSrc"`
	SizeID    string        `json:"sizeId"`
	SizeLabel string        `json:"sizeLabel"`
	Addons    []AddonOption `json:"addons"`
	UnitPrice float64       `json:"unitPrice"`
	Quantity  int           `json:"quantity"`
	Paid      bool          `json:"paid,omitempty"`
}

type Order struct {
	ID            string      `json:"id"`
	CreatedAt     int64       `json:"createdAt"`
	StoppedAt     int64       `json:"stoppedAt,omitempty"`
	Items         []CartItem  `json:"items"`
	Total         float64     `json:"total"`
	Status        OrderStatus `json:"status"`
	TableNumber   string      `json:"tableNumber"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
}

func (o *Order) AllItemsPaid() bool {
	if len(o.Items) == 0 {
		return false
	}
	for _, item := range o.Items {
		if !item.Paid {
			return false
		}
	}
	return true
}

func (o *Order) AnyItemPaid() bool {
	for _, item := range o.Items {
		if item.Paid {
			return true
		}
	}
	return false
}

// Active reports whether the order still belongs on the kitchen board.
func (o *Order) Active() bool {
	return o.Status != StatusCompleted && o.Status != StatusCancelled
}

// Elapsed returns the ticket age: frozen at StoppedAt once the timer is
// stopped, otherwise running against the supplied clock.
func (o *Order) Elapsed(now time.Time) time.Duration {
	end := now.UnixMilli()
	if o.StoppedAt != 0 {
		end = o.StoppedAt
	}
	return time.Duration(end-o.CreatedAt) * time.Millisecond
}
