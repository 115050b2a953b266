package controller

import (
	"github.com/ougirez/kisan/internal/pkg/store"
	"github.com/ougirez/kisan/internal/service/advisor"
	"github.com/ougirez/kisan/internal/service/auth"
	"github.com/ougirez/kisan/internal/service/market"
	"github.com/ougirez/kisan/internal/service/weather"
)

type Controller struct {
	store   store.Store
	auth    *auth.Service
	advisor *advisor.Service
	weather *weather.Service
	market  *market.Service
}

func NewController(
	store store.Store,
	auth *auth.Service,
	advisor *advisor.Service,
	weather *weather.Service,
	market *market.Service,
) *Controller {
	return &Controller{
		store:   store,
		auth:    auth,
		advisor: advisor,
		weather: weather,
		market:  market,
	}
}
