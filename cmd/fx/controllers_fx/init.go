package controllers_fx

import (
	"tripwise/internal/api/controllers"
	"tripwise/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideAssistantController,
	provideTripController,
	provideAccountController)

func provideAssistantController(assistantService services.AssistantServiceInterface, tripsService services.TripsServiceInterface) *controllers.AssistantController {
	return controllers.NewAssistantController(assistantService, tripsService)
}

func provideTripController(tripsService services.TripsServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripsService)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
