package assistant_fx

import (
	"go.uber.org/fx"
	"tassili/internal/repositories"
	"tassili/internal/services"
)

var Module = fx.Provide(provideAssistantService)

func provideAssistantService(tripRepo repositories.TripRepository) services.AssistantServiceInterface {
	return services.NewAssistantService(tripRepo)
}
