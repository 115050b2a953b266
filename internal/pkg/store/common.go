package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ougirez/kisan/internal/pkg/constants"
)

const (
	tableUsers         = "users"
	tableCrops         = "crops"
	tableDetections    = "disease_detections"
	tableListings      = "listings"
	tableMarketPrices  = "market_prices"
	tableWeatherAlerts = "weather_alerts"
)

// read bounds for the price feeds
const (
	marketPricesLimit     = 50
	cropMarketPricesLimit = 30
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder возвращает squirrel SQL Builder обьект.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
