package components

import (
	"home-dispatch/internal/handler"
	"home-dispatch/internal/handler/api"
	"home-dispatch/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewLifecycleHandler,
		api.NewDispatchHandler,
		api.NewProviderHandler,
		api.NewReviewHandler,
		api.NewStreamHandler,
		middleware.NewAuthMiddleware,
		func(
			auth *api.AuthHandler,
			booking *api.BookingHandler,
			lifecycle *api.LifecycleHandler,
			dispatch *api.DispatchHandler,
			provider *api.ProviderHandler,
			review *api.ReviewHandler,
			stream *api.StreamHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:      auth,
				Booking:   booking,
				Lifecycle: lifecycle,
				Dispatch:  dispatch,
				Provider:  provider,
				Review:    review,
				Stream:    stream,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
