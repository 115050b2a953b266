package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/kisan/internal/domain"
)

func (c *Controller) AnalyzeDisease(ctx echo.Context) error {
	var insert domain.InsertDiseaseDetection
	if err := ctx.Bind(&insert); err != nil {
		return err
	}
	if err := ctx.Validate(&insert); err != nil {
		return err
	}

	detection, err := c.advisor.Analyze(ctx.Request().Context(), insert)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, detection)
}

func (c *Controller) GetUserDetections(ctx echo.Context) error {
	detections, err := c.advisor.History(ctx.Request().Context(), ctx.Param("userId"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, detections)
}
