package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusReserved  OrderStatus = "reserved"
	OrderStatusBackorder OrderStatus = "backorder"
	OrderStatusCancelled OrderStatus = "cancelled"
)

const (
	MinPriority = 1
	MaxPriority = 5
)

// Order is a child's request for one toy. Cancelled orders are kept, not
// deleted, so plans and history stay consistent.
type Order struct {
	ID        string
	ToyID     string
	ChildName string
	Priority  int
	Address   string
	Message   string
	Status    OrderStatus
	CreatedAt time.Time
}

// Open reports whether the order still participates in planning.
func (o Order) Open() bool {
	return o.Status != OrderStatusCancelled
}
