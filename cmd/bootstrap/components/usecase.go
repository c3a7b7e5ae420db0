package components

import (
	"swimapi/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewAuthGuard,
		usecase.NewUserUseCase,
		usecase.NewResourceUseCase,
		usecase.NewTimeslotUseCase,
		usecase.NewReservationUseCase,
	),
)
