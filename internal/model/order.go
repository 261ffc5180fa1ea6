package model

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	StatusCreated   OrderStatus = "CREATED"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusFailed    OrderStatus = "FAILED"
)

// Order is the local record of a checkout handed off to the e-commerce
// backend. WooOrderID and CheckoutURL come back from the store.
type Order struct {
	ID          uuid.UUID
	SessionID   uuid.UUID
	ChassisID   string
	ChassisName string
	OptionIDs   []string
	TotalPrice  float64
	FinalPrice  float64
	WooOrderID  int64
	CheckoutURL string
	Status      OrderStatus
	CreatedAt   time.Time
}

// CheckoutComponent is one selected option as sent to the store backend.
type CheckoutComponent struct {
	ID          string
	Name        string
	Price       float64
	Description string
	Category    Category
}

type CheckoutResult struct {
	OrderID     uuid.UUID
	WooOrderID  int64
	CheckoutURL string
	TotalPrice  float64
	FinalPrice  float64
}

// OrderCreated is the event published after a successful checkout.
type OrderCreated struct {
	EventID    uuid.UUID
	OrderID    uuid.UUID
	SessionID  uuid.UUID
	WooOrderID int64
	ChassisID  string
	OptionIDs  []string
	TotalPrice float64
	FinalPrice float64
}
