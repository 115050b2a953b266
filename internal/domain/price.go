package domain

import "time"

// MarketPrice is one observed price for a crop at a mandi.
type MarketPrice struct {
	ID          string    `json:"_id" db:"id"`
	CropID      *string   `json:"cropId" db:"crop_id"`
	Price       float64   `json:"price" db:"price"`
	PriceChange *float64  `json:"priceChange" db:"price_change"`
	Market      string    `json:"market" db:"market"`
	Date        time.Time `json:"date" db:"date"`
}

type InsertMarketPrice struct {
	CropID      *string  `json:"cropId"`
	Price       float64  `json:"price" validate:"gte=0"`
	PriceChange *float64 `json:"priceChange"`
	Market      string   `json:"market" validate:"required"`
}
