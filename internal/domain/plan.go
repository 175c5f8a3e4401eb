package domain

import (
	"errors"
	"time"
)

// ErrPlanNotFound indicates that the proxy plan is not found.
var ErrPlanNotFound = errors.New("plan not found")

// Plan is one proxy subscription tariff from the catalog.
type Plan struct {
	ID             int32     `json:"id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	Description    string    `json:"description"`
	PricePerMonth  string    `json:"price_per_month"`
	MaxConnections int32     `json:"max_connections"`
	Speed          string    `json:"speed"`
	Locations      []string  `json:"locations"`
	CreatedAt      time.Time `json:"-"`
}
