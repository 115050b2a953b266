package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"

	"github.com/ougirez/kisan/internal/domain"
	"github.com/ougirez/kisan/internal/pkg/constants"
	"github.com/ougirez/kisan/internal/pkg/logger"
)

func httpErrorHandler(err error, c echo.Context) {
	msg := err.Error()
	code := http.StatusInternalServerError

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprintf("%v", he.Message)
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		if ce, ok := e.(*constants.CodedError); ok {
			code = ce.Code()
			msg = ce.Error()
			break
		}
	}

	resp := domain.ErrorResponse{
		Message: msg,
		Code:    code,
	}

	// internal failures get a generic message; the underlying error text
	// is exposed only outside production
	if code == http.StatusInternalServerError {
		logger.Errorf(c.Request().Context(), "%s %s: %s", c.Request().Method, c.Request().URL.Path, err.Error())
		resp.Message = "Internal Server Error"
		if viper.GetString(constants.ViperKeyEnvironment) != constants.EnvProduction {
			resp.Error = err.Error()
		}
	}

	if !c.Response().Committed {
		_ = c.JSON(code, resp)
	}
}
