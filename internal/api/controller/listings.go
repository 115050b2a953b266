package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/kisan/internal/domain"
	"github.com/ougirez/kisan/internal/pkg/constants"
)

func (c *Controller) GetAllListings(ctx echo.Context) error {
	listings, err := c.store.GetAllListings(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, listings)
}

func (c *Controller) GetUserListings(ctx echo.Context) error {
	listings, err := c.store.GetUserListings(ctx.Request().Context(), ctx.Param("userId"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, listings)
}

// CreateListing validates by hand: a missing userId answers 401, the
// remaining required fields answer 400.
func (c *Controller) CreateListing(ctx echo.Context) error {
	var request domain.CreateListingRequest
	if err := ctx.Bind(&request); err != nil {
		return err
	}

	if request.UserID == "" {
		return constants.ErrUserIDRequired
	}
	if request.Quantity <= 0 || request.PricePerUnit <= 0 || request.Location == "" {
		return constants.ErrMissingFields
	}

	listing, err := c.store.CreateListing(ctx.Request().Context(), domain.InsertListing{
		UserID:       request.UserID,
		CropID:       request.CropID,
		Quantity:     request.Quantity,
		PricePerUnit: request.PricePerUnit,
		Location:     request.Location,
		Description:  request.Description,
	})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, listing)
}

func (c *Controller) UpdateListing(ctx echo.Context) error {
	var update domain.ListingUpdate
	if err := ctx.Bind(&update); err != nil {
		return err
	}

	listing, err := c.store.UpdateListing(ctx.Request().Context(), ctx.Param("id"), update)
	if err != nil {
		if errors.Is(err, constants.ErrNotFound) {
			return constants.ErrListingNotFound
		}
		return err
	}

	return ctx.JSON(http.StatusOK, listing)
}
