package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/kisan/internal/domain"
	"github.com/ougirez/kisan/internal/pkg/constants"
)

func (c *Controller) GetAllCrops(ctx echo.Context) error {
	crops, err := c.store.GetAllCrops(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, crops)
}

func (c *Controller) GetCrop(ctx echo.Context) error {
	crop, err := c.store.GetCrop(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, constants.ErrNotFound) {
			return constants.ErrCropNotFound
		}
		return err
	}

	return ctx.JSON(http.StatusOK, crop)
}

func (c *Controller) CreateCrop(ctx echo.Context) error {
	var insert domain.InsertCrop
	if err := ctx.Bind(&insert); err != nil {
		return err
	}
	if err := ctx.Validate(&insert); err != nil {
		return err
	}

	crop, err := c.store.CreateCrop(ctx.Request().Context(), insert)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, crop)
}
