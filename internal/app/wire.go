//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"packshare/internal/gateway/kafka/packagestatus"
	"packshare/internal/handlers/rest/package_cancel_post"
	"packshare/internal/handlers/rest/package_claim_post"
	"packshare/internal/handlers/rest/package_deliver_post"
	"packshare/internal/handlers/rest/package_get"
	"packshare/internal/handlers/rest/package_post"
	"packshare/internal/handlers/rest/packages_feed_ws"
	"packshare/internal/handlers/rest/packages_get"
	"packshare/internal/handlers/rest/profile_get"
	"packshare/internal/handlers/rest/profile_post"
	"packshare/internal/handlers/tasks/replica_reconcile"
	"packshare/internal/pkg/config"
	"packshare/internal/pkg/kafka"
	"packshare/internal/pkg/middlewares/identity_resolver"
	"packshare/internal/pkg/paths"
	"packshare/internal/repository/firedocs"
	"packshare/internal/repository/pgdocs"
	lifecycleService "packshare/internal/service/lifecycle"
	profileService "packshare/internal/service/profile"
	projectionService "packshare/internal/service/projection"
	rewardService "packshare/internal/service/reward"

	"packshare/pkg/background"
	"packshare/pkg/logger"
	"packshare/pkg/querier"
	"packshare/pkg/tx"
)

type (
	ReconcileInterval time.Duration
)

type Application struct {
	ServiceLifecycle  ServiceLifecycle
	ServiceProjection ServiceProjection
	ServiceProfile    ServiceProfile
	BackgroundWorkers *background.Worker
}

type ServiceLifecycle interface {
	package_post.Service
	package_claim_post.Service
	package_deliver_post.Service
	package_cancel_post.Service
	package_get.Service
}

type ServiceProjection interface {
	packages_get.Service
	packages_feed_ws.Service
}

type ServiceProfile interface {
	profile_post.Service
	profile_get.Service
	identity_resolver.ProfileService
}

// InitializeApplication для HTTP сервиса (cmd/service) поверх postgres.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideDocsRepository,
		provideResolver,
		provideReconcileInterval,
		provideStatusGateway,

		provideServiceLifecycle,
		provideServiceProjection,
		provideServiceProfile,

		provideReplicaReconcileTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceLifecycle), new(*lifecycleService.Lifecycle)),
		wire.Bind(new(ServiceProjection), new(*projectionService.Projection)),
		wire.Bind(new(ServiceProfile), new(*profileService.Profile)),

		wire.Bind(new(lifecycleService.Store), new(*pgdocs.Repository)),
		wire.Bind(new(projectionService.Store), new(*pgdocs.Repository)),
		wire.Bind(new(profileService.Store), new(*pgdocs.Repository)),

		wire.Bind(new(lifecycleService.TxManager), new(*tx.Manager)),
		wire.Bind(new(lifecycleService.EventPublisher), new(*packagestatus.Gateway)),

		wire.Bind(new(replica_reconcile.Service), new(*lifecycleService.Lifecycle)),
	)
	return &Application{}, nil
}

// InitializeFirestoreApplication для HTTP сервиса поверх firestore.
func InitializeFirestoreApplication(
	ctx context.Context,
	log logger.Logger,
	client *firestore.Client,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		firedocs.New,
		firedocs.NewTxManager,
		provideResolver,
		provideReconcileInterval,
		provideStatusGateway,

		provideServiceLifecycle,
		provideServiceProjection,
		provideServiceProfile,

		provideReplicaReconcileTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceLifecycle), new(*lifecycleService.Lifecycle)),
		wire.Bind(new(ServiceProjection), new(*projectionService.Projection)),
		wire.Bind(new(ServiceProfile), new(*profileService.Profile)),

		wire.Bind(new(lifecycleService.Store), new(*firedocs.Store)),
		wire.Bind(new(projectionService.Store), new(*firedocs.Store)),
		wire.Bind(new(profileService.Store), new(*firedocs.Store)),

		wire.Bind(new(lifecycleService.TxManager), new(*firedocs.TxManager)),
		wire.Bind(new(lifecycleService.EventPublisher), new(*packagestatus.Gateway)),

		wire.Bind(new(replica_reconcile.Service), new(*lifecycleService.Lifecycle)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	RewardService *rewardService.Reward
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-package-status-changed) поверх postgres.
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideDocsRepository,
		provideResolver,

		provideServiceReward,

		wire.Bind(new(rewardService.Store), new(*pgdocs.Repository)),
		wire.Bind(new(rewardService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

// InitializeFirestoreKafkaWorkerApp для Kafka воркера поверх firestore.
func InitializeFirestoreKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	client *firestore.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		firedocs.New,
		firedocs.NewTxManager,
		provideResolver,

		provideServiceReward,

		wire.Bind(new(rewardService.Store), new(*firedocs.Store)),
		wire.Bind(new(rewardService.TxManager), new(*firedocs.TxManager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDocsRepository(querier *querier.Querier, cfg *config.Config) *pgdocs.Repository {
	return pgdocs.New(querier, cfg.Store.PollInterval)
}

func provideResolver(cfg *config.Config) *paths.Resolver {
	return paths.NewResolver(cfg.AppID)
}

func provideStatusGateway(producer *kafka.Producer, cfg *config.Config) *packagestatus.Gateway {
	return packagestatus.New(producer, cfg.Kafka.Topic)
}

func provideServiceLifecycle(
	log logger.Logger,
	store lifecycleService.Store,
	resolver *paths.Resolver,
	publisher lifecycleService.EventPublisher,
	txManager lifecycleService.TxManager,
) *lifecycleService.Lifecycle {
	return lifecycleService.New(log, store, resolver, publisher, txManager)
}

func provideServiceProjection(
	log logger.Logger,
	store projectionService.Store,
	resolver *paths.Resolver,
) *projectionService.Projection {
	return projectionService.New(log, store, resolver)
}

func provideServiceProfile(
	log logger.Logger,
	store profileService.Store,
	resolver *paths.Resolver,
) *profileService.Profile {
	return profileService.New(log, store, resolver)
}

func provideServiceReward(
	log logger.Logger,
	store rewardService.Store,
	resolver *paths.Resolver,
	txManager rewardService.TxManager,
) *rewardService.Reward {
	return rewardService.New(log, store, resolver, txManager)
}

func provideReconcileInterval(cfg *config.Config) ReconcileInterval {
	return ReconcileInterval(cfg.Tasks.ReplicaReconcileInterval)
}

func provideReplicaReconcileTask(
	log logger.Logger,
	lifecycle replica_reconcile.Service,
	interval ReconcileInterval,
) *replica_reconcile.ReplicaReconcile {
	return replica_reconcile.NewReplicaReconcile(log, lifecycle, time.Duration(interval))
}

func provideTaskList(
	replicaReconcileTask *replica_reconcile.ReplicaReconcile,
) []background.Task {
	return []background.Task{
		replicaReconcileTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
