package components

import (
	"swimapi/internal/handler"
	"swimapi/internal/handler/api"
	"swimapi/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUserHandler,
		api.NewResourceHandler,
		api.NewTimeslotHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
