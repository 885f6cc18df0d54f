package controllers_fx

import (
	"go.uber.org/fx"
	"tassili/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewBookingController),
	fx.Provide(controllers.NewFavoriteController),
	fx.Provide(controllers.NewAssistantController))
