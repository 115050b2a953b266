package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/ougirez/kisan/internal/domain"
)

func (c *Controller) GetDatabaseStatus(ctx echo.Context) error {
	var crops, listings, prices int

	eg, egCtx := errgroup.WithContext(ctx.Request().Context())
	eg.Go(func() error {
		all, err := c.store.GetAllCrops(egCtx)
		if err != nil {
			return err
		}
		crops = len(all)
		return nil
	})
	eg.Go(func() error {
		all, err := c.store.GetAllListings(egCtx)
		if err != nil {
			return err
		}
		listings = len(all)
		return nil
	})
	eg.Go(func() error {
		all, err := c.store.GetMarketPrices(egCtx)
		if err != nil {
			return err
		}
		prices = len(all)
		return nil
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	status := domain.DatabaseStatus{
		Connected: c.store.Connected(),
		Collections: map[string]int{
			"crops":        crops,
			"listings":     listings,
			"marketPrices": prices,
		},
		Message: "Postgres is connected and operational",
	}
	if !status.Connected {
		status.Message = "Using in-memory storage"
	}

	return ctx.JSON(http.StatusOK, status)
}
