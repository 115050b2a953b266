package domain

const DefaultUnit = "quintal"

type Crop struct {
	ID           string   `json:"_id" db:"id"`
	Name         string   `json:"name" db:"name"`
	NameHindi    *string  `json:"nameHindi" db:"name_hindi"`
	NameTelugu   *string  `json:"nameTelugu" db:"name_telugu"`
	Category     string   `json:"category" db:"category"`
	CurrentPrice *float64 `json:"currentPrice" db:"current_price"`
	Unit         string   `json:"unit" db:"unit"`
}

type InsertCrop struct {
	Name         string   `json:"name" validate:"required"`
	NameHindi    *string  `json:"nameHindi"`
	NameTelugu   *string  `json:"nameTelugu"`
	Category     string   `json:"category" validate:"required"`
	CurrentPrice *float64 `json:"currentPrice"`
	Unit         string   `json:"unit"`
}
