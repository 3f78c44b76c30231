package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Hritik000/valentine-gifts-hub/config"
	"github.com/Hritik000/valentine-gifts-hub/internal/delivery"
	"github.com/Hritik000/valentine-gifts-hub/internal/delivery/http"
	"github.com/Hritik000/valentine-gifts-hub/internal/delivery/http/middleware"
	"github.com/Hritik000/valentine-gifts-hub/internal/delivery/http/router/handler"
	"github.com/Hritik000/valentine-gifts-hub/internal/infra/auth"
	logs "github.com/Hritik000/valentine-gifts-hub/internal/infra/log"
	"github.com/Hritik000/valentine-gifts-hub/internal/infra/payment"
	"github.com/Hritik000/valentine-gifts-hub/internal/infra/persistence/postgres"
	"github.com/Hritik000/valentine-gifts-hub/internal/infra/pubsub"
	"github.com/Hritik000/valentine-gifts-hub/internal/infra/ratelimit"
	"github.com/Hritik000/valentine-gifts-hub/internal/infra/storage"
	"github.com/Hritik000/valentine-gifts-hub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			payment.NewRazorpayGateway,
			ratelimit.NewFixedWindowLimiter,
			storage.NewMinioVault,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCheckoutService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewCheckoutHandler,
			handler.NewOrderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
