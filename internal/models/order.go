package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderPending, OrderPaid, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type Order struct {
	ID            uuid.UUID
	CustomerEmail string
	DesignerID    uuid.UUID
	ProductID     uuid.UUID
	Quantity      int
	TotalAmount   float64
	Status        OrderStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
