package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/kisan/internal/domain"
)

func (c *Controller) GetMarketPrices(ctx echo.Context) error {
	prices, err := c.store.GetMarketPrices(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, prices)
}

func (c *Controller) GetMarketPricesByCrop(ctx echo.Context) error {
	prices, err := c.store.GetMarketPricesByCrop(ctx.Request().Context(), ctx.Param("cropId"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, prices)
}

func (c *Controller) CreateMarketPrice(ctx echo.Context) error {
	var insert domain.InsertMarketPrice
	if err := ctx.Bind(&insert); err != nil {
		return err
	}
	if err := ctx.Validate(&insert); err != nil {
		return err
	}

	price, err := c.store.CreateMarketPrice(ctx.Request().Context(), insert)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, price)
}

func (c *Controller) BackfillMarketPrices(ctx echo.Context) error {
	var request domain.BackfillRequest
	if err := ctx.Bind(&request); err != nil {
		return err
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	prices, err := c.market.Backfill(ctx.Request().Context(), request.URL)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, prices)
}

func (c *Controller) GetAnalytics(ctx echo.Context) error {
	analytics := c.market.Analytics(ctx.Request().Context(), ctx.Param("userId"))
	return ctx.JSON(http.StatusOK, analytics)
}
