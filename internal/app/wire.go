//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"ordertracker/internal/gateway/kafka/order_events"
	"ordertracker/internal/gateway/s3/attachment"
	"ordertracker/internal/handlers/rest/dashboard_get"
	"ordertracker/internal/handlers/rest/order_delete"
	"ordertracker/internal/handlers/rest/order_get"
	"ordertracker/internal/handlers/rest/order_post"
	"ordertracker/internal/handlers/rest/order_put"
	"ordertracker/internal/handlers/rest/order_status_post"
	"ordertracker/internal/handlers/rest/orders_get"
	"ordertracker/internal/handlers/tasks/sales_metrics_refresh"
	"ordertracker/internal/pkg/config"
	"ordertracker/internal/pkg/middlewares/session"
	orderRepo "ordertracker/internal/repository/order"
	orderService "ordertracker/internal/service/order"
	salesMetricsService "ordertracker/internal/service/sales_metrics"
	"ordertracker/pkg/background"
	"ordertracker/pkg/logger"
	"ordertracker/pkg/querier"
	"ordertracker/pkg/tx"
)

type Application struct {
	ServiceOrder  ServiceOrder
	Authenticator *session.Authenticator
}

type ServiceOrder interface {
	orders_get.Service
	order_get.Service
	order_post.Service
	order_put.Service
	order_delete.Service
	order_status_post.Service
	dashboard_get.Service
}

// InitializeApplication builds the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	s3Client *s3.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideClock,

		provideOrderRepository,
		provideAttachmentGateway,
		provideEventPublisher,
		provideOrderService,
		provideAuthenticator,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),

		wire.Bind(new(orderRepo.Querier), new(*querier.Querier)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.AttachmentStorage), new(*attachment.Gateway)),
		wire.Bind(new(orderService.EventPublisher), new(*order_events.Publisher)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
	)
	return nil, nil
}

type WorkerApp struct {
	SalesMetrics      *salesMetricsService.Service
	BackgroundWorkers *background.Worker
}

// InitializeWorkerApp builds the KPI worker (cmd/worker-order-changed).
func InitializeWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*WorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideClock,

		provideOrderRepository,
		provideSalesMetricsService,

		provideSalesMetricsRefreshTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(WorkerApp), "*"),

		wire.Bind(new(orderRepo.Querier), new(*querier.Querier)),
		wire.Bind(new(salesMetricsService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(sales_metrics_refresh.Service), new(*salesMetricsService.Service)),
	)
	return nil, nil
}

type ReportApp struct {
	Repository *orderRepo.Repository
	Clock      orderService.Clock
}

// InitializeReportApp builds the read-only sales report (cmd/sales-report).
func InitializeReportApp(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*ReportApp, error) {
	wire.Build(
		provideQuerier,
		provideClock,
		provideOrderRepository,

		wire.Struct(new(ReportApp), "*"),

		wire.Bind(new(orderRepo.Querier), new(*querier.Querier)),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

// provideClock reports the current time in the shop's time zone; "today" and
// the rolling window are calendar dates there.
func provideClock(cfg *config.Config) orderService.Clock {
	location := cfg.Sales.Location
	if location == nil {
		location = time.Local
	}
	return func() time.Time {
		return time.Now().In(location)
	}
}

func provideOrderRepository(querier orderRepo.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideAttachmentGateway(s3Client *s3.Client, cfg *config.Config) *attachment.Gateway {
	return attachment.New(s3Client, cfg.Storage.Bucket, cfg.Storage.PublicBaseURL)
}

func provideEventPublisher(log logger.Logger, producer sarama.SyncProducer, cfg *config.Config) *order_events.Publisher {
	return order_events.New(log, producer, cfg.Kafka.Topic)
}

func provideOrderService(
	repository orderService.Repository,
	storage orderService.AttachmentStorage,
	events orderService.EventPublisher,
	txManager orderService.TxManager,
	clock orderService.Clock,
	cfg *config.Config,
) *orderService.Service {
	return orderService.New(
		repository,
		storage,
		events,
		txManager,
		clock,
		cfg.Sales.WindowDays,
	)
}

func provideAuthenticator(cfg *config.Config) *session.Authenticator {
	return session.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.AdminEmails)
}

func provideSalesMetricsService(
	repository salesMetricsService.Repository,
	clock orderService.Clock,
	cfg *config.Config,
) *salesMetricsService.Service {
	return salesMetricsService.New(repository, clock, cfg.Sales.WindowDays)
}

func provideSalesMetricsRefreshTask(
	log logger.Logger,
	service sales_metrics_refresh.Service,
	cfg *config.Config,
) *sales_metrics_refresh.SalesMetricsRefresh {
	return sales_metrics_refresh.NewSalesMetricsRefresh(log, service, cfg.Tasks.SalesMetricsRefreshInterval)
}

func provideTaskList(
	salesMetricsRefreshTask *sales_metrics_refresh.SalesMetricsRefresh,
) []background.Task {
	return []background.Task{
		salesMetricsRefreshTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
