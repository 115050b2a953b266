package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"

	"github.com/ougirez/kisan/internal/api/controller"
	"github.com/ougirez/kisan/internal/pkg/logger"
	"github.com/ougirez/kisan/internal/pkg/store"
	"github.com/ougirez/kisan/internal/service/advisor"
	"github.com/ougirez/kisan/internal/service/auth"
	"github.com/ougirez/kisan/internal/service/market"
	"github.com/ougirez/kisan/internal/service/weather"
)

type APIService struct {
	router *echo.Echo
}

// Serve blocks until the listener fails or Shutdown closes it; the
// close raised by a graceful shutdown is not a failure.
func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

// Router is exposed for httptest-based tests.
func (svc *APIService) Router() *echo.Echo {
	return svc.router
}

func NewAPIService(store store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.HideBanner = true
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = sonicSerializer{}
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return random.String(16) },
	}))
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.PATCH, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	cntrl := controller.NewController(
		store,
		auth.NewService(store),
		advisor.NewService(store),
		weather.NewService(store),
		market.NewService(store),
	)

	api := svc.router.Group("/api")

	crops := api.Group("/crops")
	crops.GET("", cntrl.GetAllCrops)
	crops.GET("/:id", cntrl.GetCrop)
	crops.POST("", cntrl.CreateCrop)

	detection := api.Group("/disease-detection")
	detection.POST("", cntrl.AnalyzeDisease)
	detection.GET("/user/:userId", cntrl.GetUserDetections)

	listings := api.Group("/listings")
	listings.GET("", cntrl.GetAllListings)
	listings.GET("/user/:userId", cntrl.GetUserListings)
	listings.POST("", cntrl.CreateListing)
	listings.PATCH("/:id", cntrl.UpdateListing)

	prices := api.Group("/market-prices")
	prices.GET("", cntrl.GetMarketPrices)
	prices.GET("/crop/:cropId", cntrl.GetMarketPricesByCrop)
	prices.POST("", cntrl.CreateMarketPrice)
	prices.POST("/backfill", cntrl.BackfillMarketPrices, svc.AdminMiddleware)

	api.GET("/weather-alerts/:location", cntrl.GetWeatherAlerts)
	api.POST("/weather-alerts", cntrl.CreateWeatherAlert)
	api.GET("/weather/forecast/:location", cntrl.GetForecast)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", cntrl.Register)
	authGroup.POST("/login", cntrl.Login)

	api.GET("/users/:id", cntrl.GetUser)
	api.GET("/database/status", cntrl.GetDatabaseStatus)
	api.GET("/analytics/:userId", cntrl.GetAnalytics)

	return svc, nil
}
