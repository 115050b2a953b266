package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/kisan/internal/domain"
)

func (c *Controller) GetWeatherAlerts(ctx echo.Context) error {
	alerts, err := c.weather.ActiveAlerts(ctx.Request().Context(), ctx.Param("location"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, alerts)
}

func (c *Controller) CreateWeatherAlert(ctx echo.Context) error {
	var insert domain.InsertWeatherAlert
	if err := ctx.Bind(&insert); err != nil {
		return err
	}
	if err := ctx.Validate(&insert); err != nil {
		return err
	}

	alert, err := c.store.CreateWeatherAlert(ctx.Request().Context(), insert)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, alert)
}

func (c *Controller) GetForecast(ctx echo.Context) error {
	forecast := c.weather.Forecast(ctx.Request().Context(), ctx.Param("location"))
	return ctx.JSON(http.StatusOK, forecast)
}
