package entities

import "time"

type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "NEW"
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusRejected   OrderStatus = "REJECTED"
)

func (s OrderStatus) String() string { return string(s) }

// Terminal reports whether no further mutation of status or items is allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusRejected
}

type OrderItem struct {
	ProductRef string  `json:"product_ref"`
	Qty        int     `json:"qty"`
	UnitPrice  float64 `json:"unit_price"`
}

// Order is a consumer order placed with the supplier.
//
// The total is never stored; TotalAmount recomputes it from the items.
type Order struct {
	ID         string      `json:"id"`
	ConsumerID string      `json:"consumer_id"`
	SupplierID string      `json:"supplier_id,omitempty"`
	Status     OrderStatus `json:"status"`
	Items      []OrderItem `json:"items"`
	Version    int64       `json:"version"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

var _ Record[Order] = Order{}

func (o Order) TotalAmount() float64 {
	total := 0.0
	for _, it := range o.Items {
		total += float64(it.Qty) * it.UnitPrice
	}
	return total
}

func (o Order) GetID() string     { return o.ID }
func (o Order) GetVersion() int64 { return o.Version }

func (o Order) Stamp(version int64, at time.Time) Order {
	o.Version = version
	o.UpdatedAt = at
	return o
}

func (o Order) Clone() Order {
	if o.Items != nil {
		items := make([]OrderItem, len(o.Items))
		copy(items, o.Items)
		o.Items = items
	}
	return o
}

func (o Order) Matches(f Filter) bool {
	if f.OrderID != "" && f.OrderID != o.ID {
		return false
	}
	return f.matchStatus(string(o.Status)) && f.matchQuery(o.ID, o.ConsumerID)
}
