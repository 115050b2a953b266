package domain

import "time"

type Listing struct {
	ID           string    `json:"_id" db:"id"`
	UserID       string    `json:"userId" db:"user_id"`
	CropID       *string   `json:"cropId" db:"crop_id"`
	Quantity     float64   `json:"quantity" db:"quantity"`
	PricePerUnit float64   `json:"pricePerUnit" db:"price_per_unit"`
	Location     string    `json:"location" db:"location"`
	Description  *string   `json:"description" db:"description"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type InsertListing struct {
	UserID       string
	CropID       *string
	Quantity     float64
	PricePerUnit float64
	Location     string
	Description  *string
}

// ListingUpdate carries the mutable listing fields; nil means "leave as is".
type ListingUpdate struct {
	CropID       *string  `json:"cropId"`
	Quantity     *float64 `json:"quantity"`
	PricePerUnit *float64 `json:"pricePerUnit"`
	Location     *string  `json:"location"`
	Description  *string  `json:"description"`
	IsActive     *bool    `json:"isActive"`
}
