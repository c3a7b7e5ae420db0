package components

import (
	"swimapi/internal/infra/repository"
	"swimapi/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repository.NewResourceRepository,
			fx.As(new(usecase.ResourceRepository)),
		),
		fx.Annotate(
			repository.NewTimeslotRepository,
			fx.As(new(usecase.TimeslotRepository)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(usecase.ReservationRepository)),
		),
	),
)
