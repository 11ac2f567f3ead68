package routes

import (
	"context"
	"fmt"

	"supplyops/internal/adapter/http/handlers"
	"supplyops/internal/adapter/persistence/memory"
	"supplyops/internal/adapter/persistence/repository"
	"supplyops/internal/config"
	"supplyops/internal/domain/entities"
	"supplyops/internal/infrastructure/database"
	"supplyops/internal/infrastructure/events"
	"supplyops/internal/infrastructure/lock"
	"supplyops/internal/infrastructure/metrics"
	"supplyops/internal/usecase"
	"supplyops/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// stores is the backend-neutral view of whichever store was configured.
type stores struct {
	orders     interfaces.IEntityStore[entities.Order]
	links      interfaces.IEntityStore[entities.ConsumerLink]
	complaints interfaces.IEntityStore[entities.Complaint]
	incidents  interfaces.IEntityStore[entities.Incident]
	tx         interfaces.IEscalationStore
}

func openStores(ctx context.Context, cfg *config.Config) (stores, error) {
	switch cfg.Store.Backend {
	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB.Region, cfg.DynamoDB.Endpoint)
		if err != nil {
			return stores{}, err
		}
		tables := repository.Tables{
			Orders:     cfg.DynamoDB.Tables.Orders,
			Links:      cfg.DynamoDB.Tables.Links,
			Complaints: cfg.DynamoDB.Tables.Complaints,
			Incidents:  cfg.DynamoDB.Tables.Incidents,
		}
		if cfg.DynamoDB.CreateTables {
			if err := repository.EnsureTables(ctx, ddb, tables); err != nil {
				return stores{}, err
			}
		}
		s := repository.NewStore(ddb, tables)
		return stores{orders: s.Orders, links: s.Links, complaints: s.Complaints, incidents: s.Incidents, tx: s}, nil
	default:
		s := memory.NewStore()
		return stores{orders: s.Orders, links: s.Links, complaints: s.Complaints, incidents: s.Incidents, tx: s}, nil
	}
}

// buildHandlers assembles stores, lock, observers and usecases. The returned
// cleanup releases the redis client when one was opened.
func buildHandlers(ctx context.Context, cfg *config.Config, reg prometheus.Registerer) (Handlers, func(), error) {
	s, err := openStores(ctx, cfg)
	if err != nil {
		return Handlers{}, nil, err
	}

	obs := usecase.Observers{Recorder: metrics.NewRecorder(reg)}
	var locker interfaces.ILocker = lock.NewLocalLocker()
	cleanup := func() {}

	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return Handlers{}, nil, fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
		}
		locker = lock.NewRedisLocker(client, cfg.Lock.TTL, cfg.Lock.Retries, cfg.Lock.RetryDelay)
		obs.Events = events.NewRedisPublisher(client, cfg.Redis.EventsChannel)
		cleanup = func() {
			if err := client.Close(); err != nil {
				zap.L().Warn("[redis] close failed", zap.Error(err))
			}
		}
		zap.L().Info("[redis] lock and events enabled", zap.String("addr", cfg.Redis.Addr))
	} else {
		zap.L().Info("[redis] not configured; using in-process lock, events disabled")
	}

	escalation := usecase.NewEscalationUseCase(
		s.complaints, s.incidents, s.tx, locker,
		entities.Severity(cfg.Escalation.DefaultSeverity), obs,
	)

	h := Handlers{
		Orders:     handlers.NewOrderHandler(usecase.NewOrderUseCase(s.orders, obs)),
		Links:      handlers.NewLinkHandler(usecase.NewLinkUseCase(s.links, obs)),
		Complaints: handlers.NewComplaintHandler(usecase.NewComplaintUseCase(s.complaints, s.orders, escalation, obs)),
		Incidents:  handlers.NewIncidentHandler(usecase.NewIncidentUseCase(s.incidents, s.orders, obs)),
	}
	return h, cleanup, nil
}
