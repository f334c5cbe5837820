package main

import (
	"context"
	"log/slog"
	"os"

	"localharvest/config"
	"localharvest/internal/delivery"
	"localharvest/internal/delivery/consumer"
	"localharvest/internal/delivery/worker"
	"localharvest/internal/delivery/worker/handler"
	"localharvest/internal/domain/service"
	logs "localharvest/internal/infra/log"
	"localharvest/internal/infra/notification"
	"localharvest/internal/infra/persistence/postgres"
	"localharvest/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newNotificationService,
		),
	)
}

// newNotificationService falls back to logging pushes when Firebase is not configured.
func newNotificationService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || (cfg.Firebase.ProjectID == "" && cfg.Firebase.CredentialsPath == "") {
		logger.Warn("Firebase not configured, push notifications will only be logged")

		return notification.NewLogService(logger), nil
	}

	return notification.NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewEventDispatcher,
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				newKafkaDeliveries,
				fx.ResultTags(`group:"deliveries,flatten"`),
			),
		),
	)
}

// newKafkaDeliveries adds the kafka consumer only when kafka is the event transport.
func newKafkaDeliveries(params consumer.KafkaConsumerParams) ([]delivery.Delivery, error) {
	if params.Config.PubSub == nil || params.Config.PubSub.Provider != config.PubSubProviderKafka {
		return nil, nil
	}

	kafkaConsumer, err := consumer.NewKafkaConsumer(params)
	if err != nil {
		return nil, err
	}

	return []delivery.Delivery{kafkaConsumer}, nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
