package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"

	"github.com/ougirez/kisan/internal/pkg/constants"
)

// Binder wraps echo's default binder so malformed bodies surface as 400
// coded errors instead of echo's internal HTTPError shape.
type Binder struct {
	binder echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	if err := b.binder.Bind(i, c); err != nil {
		return constants.NewCodedError(fmt.Sprintf("malformed request: %v", err), http.StatusBadRequest)
	}
	return nil
}

// sonicSerializer plugs sonic in as echo's JSON codec; the default binder
// goes through it for request bodies as well.
type sonicSerializer struct{}

func (sonicSerializer) Serialize(c echo.Context, i interface{}, _ string) error {
	data, err := sonic.Marshal(i)
	if err != nil {
		return err
	}
	_, err = c.Response().Write(data)
	return err
}

func (sonicSerializer) Deserialize(c echo.Context, i interface{}) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}
	if err := sonic.Unmarshal(body, i); err != nil {
		return constants.NewCodedError("malformed JSON body", http.StatusBadRequest)
	}
	return nil
}
