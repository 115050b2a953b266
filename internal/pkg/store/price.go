package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/ougirez/kisan/internal/domain"
	"github.com/ougirez/kisan/internal/pkg/store/xpgx"
)

var priceColumns = []string{"id", "crop_id", "price", "price_change", "market", "date"}

func (s *pgStore) GetMarketPrices(ctx context.Context) ([]*domain.MarketPrice, error) {
	query := builder().Select(priceColumns...).
		From(tableMarketPrices).
		OrderBy("date desc").
		Limit(marketPricesLimit)

	prices, err := xpgx.Selectx[domain.MarketPrice](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return prices, nil
}

func (s *pgStore) GetMarketPricesByCrop(ctx context.Context, cropID string) ([]*domain.MarketPrice, error) {
	query := builder().Select(priceColumns...).
		From(tableMarketPrices).
		Where(sq.Eq{"crop_id": cropID}).
		OrderBy("date desc").
		Limit(cropMarketPricesLimit)

	prices, err := xpgx.Selectx[domain.MarketPrice](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return prices, nil
}

func (s *pgStore) CreateMarketPrice(ctx context.Context, insert domain.InsertMarketPrice) (*domain.MarketPrice, error) {
	price := &domain.MarketPrice{
		ID:          uuid.NewString(),
		CropID:      insert.CropID,
		Price:       insert.Price,
		PriceChange: insert.PriceChange,
		Market:      insert.Market,
		Date:        time.Now().UTC(),
	}

	query := builder().Insert(tableMarketPrices).
		Columns(priceColumns...).
		Values(price.ID, price.CropID, price.Price, price.PriceChange, price.Market, price.Date)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return nil, wrapErr(err)
	}

	return price, nil
}
