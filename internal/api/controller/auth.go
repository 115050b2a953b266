package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/kisan/internal/domain"
	"github.com/ougirez/kisan/internal/pkg/constants"
)

func (c *Controller) Register(ctx echo.Context) error {
	var request domain.RegisterRequest
	if err := ctx.Bind(&request); err != nil {
		return err
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	user, err := c.auth.Register(ctx.Request().Context(), &request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, user)
}

func (c *Controller) Login(ctx echo.Context) error {
	var request domain.LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return err
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	user, err := c.auth.Login(ctx.Request().Context(), &request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, user)
}

func (c *Controller) GetUser(ctx echo.Context) error {
	user, err := c.store.GetUser(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, constants.ErrNotFound) {
			return constants.ErrUserNotFound
		}
		return err
	}

	return ctx.JSON(http.StatusOK, user)
}
