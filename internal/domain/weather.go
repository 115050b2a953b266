package domain

import "time"

type Severity = string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

type WeatherAlert struct {
	ID            string     `json:"_id" db:"id"`
	Location      string     `json:"location" db:"location"`
	AlertType     string     `json:"alertType" db:"alert_type"`
	Severity      Severity   `json:"severity" db:"severity"`
	Message       string     `json:"message" db:"message"`
	MessageHindi  *string    `json:"messageHindi" db:"message_hindi"`
	MessageTelugu *string    `json:"messageTelugu" db:"message_telugu"`
	ValidUntil    *time.Time `json:"validUntil" db:"valid_until"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
}

type InsertWeatherAlert struct {
	Location      string     `json:"location" validate:"required"`
	AlertType     string     `json:"alertType" validate:"required"`
	Severity      Severity   `json:"severity" validate:"required,oneof=low medium high critical"`
	Message       string     `json:"message" validate:"required"`
	MessageHindi  *string    `json:"messageHindi"`
	MessageTelugu *string    `json:"messageTelugu"`
	ValidUntil    *time.Time `json:"validUntil"`
}

// DayForecast is one synthesized day of the 7-day forecast.
type DayForecast struct {
	Date          string  `json:"date"`
	TempMax       float64 `json:"tempMax"`
	TempMin       float64 `json:"tempMin"`
	Condition     string  `json:"condition"`
	Precipitation float64 `json:"precipitation"`
	Icon          string  `json:"icon"`
}

type CurrentConditions struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Condition   string  `json:"condition"`
	Icon        string  `json:"icon"`
}

type Forecast struct {
	Location string            `json:"location"`
	Current  CurrentConditions `json:"current"`
	Daily    []DayForecast     `json:"daily"`
}
