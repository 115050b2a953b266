package market

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/ougirez/kisan/internal/domain"
	"github.com/ougirez/kisan/internal/pkg/logger"
	"github.com/ougirez/kisan/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// mandiRow is one parsed row of a mandi price table.
type mandiRow struct {
	CropName  string
	Market    string
	Price     float64
	PrevPrice float64
}

// Backfill fetches a mandi price-table page and inserts one MarketPrice
// per row. Rows whose crop name matches a stored crop get its cropId; the
// change percentage is computed against the previous price column.
func (s *Service) Backfill(ctx context.Context, url string) ([]*domain.MarketPrice, error) {
	var resp *http.Response
	err := backoff.Retry(
		func() error {
			var httpErr error

			resp, httpErr = http.Get(url)
			if httpErr != nil {
				return fmt.Errorf("http.Get: %w", httpErr)
			}
			if resp.StatusCode != http.StatusOK {
				resp.Body.Close()
				return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
			}

			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(100*time.Millisecond), 10),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("goquery.NewDocumentFromReader: %w", err)
	}

	rows, err := parsePriceTable(doc)
	if err != nil {
		return nil, fmt.Errorf("parsePriceTable: %w", err)
	}

	cropsByName, err := s.cropsByName(ctx)
	if err != nil {
		return nil, err
	}

	prices := make([]*domain.MarketPrice, 0, len(rows))
	pricesMx := sync.Mutex{}
	eg, egCtx := errgroup.WithContext(ctx)
	for _, row := range rows {
		row := row
		eg.Go(func() error {
			insert := domain.InsertMarketPrice{
				Price:       row.Price,
				PriceChange: priceChange(row.Price, row.PrevPrice),
				Market:      row.Market,
			}
			if crop, ok := cropsByName[strings.ToLower(row.CropName)]; ok {
				insert.CropID = &crop.ID
			}

			price, err := s.store.CreateMarketPrice(egCtx, insert)
			if err != nil {
				return fmt.Errorf("store.CreateMarketPrice, crop-%s: %w", row.CropName, err)
			}

			logger.Debugf(egCtx, "backfilled price for %s at %s", row.CropName, row.Market)

			pricesMx.Lock()
			defer pricesMx.Unlock()
			prices = append(prices, price)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("err in goroutine: %w", err)
	}

	return prices, nil
}

func (s *Service) cropsByName(ctx context.Context) (map[string]*domain.Crop, error) {
	crops, err := s.store.GetAllCrops(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.GetAllCrops: %w", err)
	}

	byName := make(map[string]*domain.Crop, len(crops))
	for _, crop := range crops {
		byName[strings.ToLower(crop.Name)] = crop
	}
	return byName, nil
}

// parsePriceTable walks the first table with crop/market/price/previous
// columns. Header rows and rows with an unparsable price are skipped.
func parsePriceTable(doc *goquery.Document) ([]mandiRow, error) {
	rows := make([]mandiRow, 0, 32)

	var err error
	doc.Find("table tbody tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		tds := tr.Find("td")
		if tds.Length() < 4 {
			// скипаем
			return true
		}

		cropName := strings.TrimSpace(tds.Eq(0).Text())
		market := strings.TrimSpace(tds.Eq(1).Text())
		if cropName == "" || market == "" {
			return true
		}

		price, parseErr := parseAmount(tds.Eq(2).Text())
		if parseErr != nil {
			err = fmt.Errorf("failed to parse price for %s: %w", cropName, parseErr)
			return false
		}

		prev, parseErr := parseAmount(tds.Eq(3).Text())
		if parseErr != nil {
			prev = 0
		}

		rows = append(rows, mandiRow{
			CropName:  cropName,
			Market:    market,
			Price:     price,
			PrevPrice: prev,
		})
		return true
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// parseAmount handles "₹2,400" style cells.
func parseAmount(raw string) (float64, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "₹", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if cleaned == "" {
		return 0, fmt.Errorf("empty amount")
	}
	return strconv.ParseFloat(cleaned, 64)
}

func priceChange(price, prev float64) *float64 {
	if prev <= 0 {
		return nil
	}

	change := decimal.NewFromFloat(price).
		Sub(decimal.NewFromFloat(prev)).
		Div(decimal.NewFromFloat(prev)).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
	return &change
}
