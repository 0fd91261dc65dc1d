package components

import (
	"lendhub/internal/handler"
	"lendhub/internal/handler/api"
	"lendhub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRentalHandler,
		api.NewMessageHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
