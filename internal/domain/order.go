package domain

import (
	"errors"
	"time"
)

var (
	// ErrProvisioningFailed indicates that proxy credential provisioning
	// failed and the whole purchase was rolled back.
	ErrProvisioningFailed = errors.New("proxy provisioning failed")
	// ErrInvalidQuantity indicates an out-of-range order quantity.
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 100")
	// ErrInvalidDuration indicates an out-of-range order duration.
	ErrInvalidDuration = errors.New("duration must be between 1 and 12 months")
)

// Order statuses.
const (
	OrderStatusActive  = "active"
	OrderStatusExpired = "expired"
)

// Order is one proxy subscription purchase with its provisioned credentials.
// Immutable once created except for the expiry status transition.
type Order struct {
	ID             int64        `json:"id"`
	Username       string       `json:"-"`
	PlanID         int32        `json:"plan_id"`
	PlanName       string       `json:"plan_name"`
	PlanType       string       `json:"plan_type"`
	Location       string       `json:"location"`
	Quantity       int32        `json:"quantity"`
	DurationMonths int32        `json:"duration_months"`
	TotalPrice     string       `json:"total_price"`
	Status         string       `json:"status"`
	ExpiresAt      time.Time    `json:"expires_at"`
	CreatedAt      time.Time    `json:"created_at"`
	Credentials    []Credential `json:"proxies"`
}

// Credential is one provisioned proxy endpoint owned by exactly one order.
type Credential struct {
	ID        int64     `json:"-"`
	OrderID   int64     `json:"-"`
	Host      string    `json:"host"`
	Port      int32     `json:"port"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Location  string    `json:"location"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"-"`
}

// ProvisionParams is one opaque credential tuple produced by a resource
// provisioner before it is bound to an order.
type ProvisionParams struct {
	Host     string
	Port     int32
	Username string
	Password string
}

// CreateOrderParams is the input data for the purchase transaction.
// TotalPrice and ExpiresAt are computed by the service from the plan.
type CreateOrderParams struct {
	Username       string
	PlanID         int32
	Location       string
	Quantity       int32
	DurationMonths int32
	TotalPrice     string
	ExpiresAt      time.Time
}

// OrderTxResult is the result of a committed purchase transaction.
type OrderTxResult struct {
	Order   Order   `json:"order"`
	Balance Balance `json:"balance"`
}
