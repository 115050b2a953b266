package store

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/viper"

	"github.com/ougirez/kisan/internal/domain"
	"github.com/ougirez/kisan/internal/pkg/constants"
	"github.com/ougirez/kisan/internal/pkg/logger"
	"github.com/ougirez/kisan/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store is the single contract both backends satisfy. Absent records are
// reported as constants.ErrNotFound, never as a synthesized zero value.
type Store interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, insert domain.InsertUser) (*domain.User, error)

	GetAllCrops(ctx context.Context) ([]*domain.Crop, error)
	GetCrop(ctx context.Context, id string) (*domain.Crop, error)
	CreateCrop(ctx context.Context, insert domain.InsertCrop) (*domain.Crop, error)

	CreateDiseaseDetection(ctx context.Context, insert domain.InsertDiseaseDetection) (*domain.DiseaseDetection, error)
	GetUserDiseaseDetections(ctx context.Context, userID string) ([]*domain.DiseaseDetection, error)

	GetAllListings(ctx context.Context) ([]*domain.Listing, error)
	GetUserListings(ctx context.Context, userID string) ([]*domain.Listing, error)
	CreateListing(ctx context.Context, insert domain.InsertListing) (*domain.Listing, error)
	UpdateListing(ctx context.Context, id string, update domain.ListingUpdate) (*domain.Listing, error)

	GetMarketPrices(ctx context.Context) ([]*domain.MarketPrice, error)
	GetMarketPricesByCrop(ctx context.Context, cropID string) ([]*domain.MarketPrice, error)
	CreateMarketPrice(ctx context.Context, insert domain.InsertMarketPrice) (*domain.MarketPrice, error)

	GetActiveWeatherAlerts(ctx context.Context, location string) ([]*domain.WeatherAlert, error)
	CreateWeatherAlert(ctx context.Context, insert domain.InsertWeatherAlert) (*domain.WeatherAlert, error)

	// Connected reports whether the persistent backend is in use.
	Connected() bool
	Close()
}

type pgStore struct {
	pool *Pool
}

func NewStore(pool *Pool) Store {
	return &pgStore{pool: pool}
}

func (s *pgStore) Connected() bool { return true }

func (s *pgStore) Close() { s.pool.Pool.Close() }

// New resolves the backend exactly once: a configured and reachable
// postgres wins, anything else falls back to the seeded in-memory store.
// The choice never changes for the lifetime of the returned Store.
func New(ctx context.Context) Store {
	dsn := viper.GetString(constants.ViperKeyPostgresDSN)
	if dsn == "" {
		logger.Info(ctx, "postgres dsn not configured, using in-memory store")
		return NewMemoryStore()
	}

	var pool *pgxpool.Pool
	err := backoff.Retry(
		func() error {
			var connErr error
			pool, connErr = pgxpool.New(ctx, dsn)
			if connErr != nil {
				return connErr
			}
			if connErr = pool.Ping(ctx); connErr != nil {
				pool.Close()
				return connErr
			}
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(500*time.Millisecond), 5),
			ctx,
		),
	)
	if err != nil {
		logger.Warnf(ctx, "postgres unavailable, falling back to in-memory store: %s", err.Error())
		return NewMemoryStore()
	}

	pg := &pgStore{pool: xpgx.New(pool)}
	if err := pg.migrate(ctx); err != nil {
		logger.Errorf(ctx, "migrate: %s, falling back to in-memory store", err.Error())
		pg.Close()
		return NewMemoryStore()
	}

	logger.Info(ctx, "using postgres store")
	return pg
}
