package listeners

import (
	"context"

	"bmu-system/internal/repositories"
	"bmu-system/pkg/constants"
	"bmu-system/pkg/eventbus"
	"bmu-system/pkg/websocket"

	"go.uber.org/zap"
)

// PendingListener keeps the cached pending-approval counter fresh and
// tells connected dashboards to re-fetch it.
type PendingListener struct {
	cacheRepo repositories.CacheRepositoryInterface
	hub       *websocket.Hub
	logger    *zap.Logger
}

func NewPendingListener(
	cacheRepo repositories.CacheRepositoryInterface,
	hub *websocket.Hub,
	logger *zap.Logger,
) *PendingListener {
	return &PendingListener{
		cacheRepo: cacheRepo,
		hub:       hub,
		logger:    logger,
	}
}

func (l *PendingListener) Register(bus *eventbus.Bus) {
	bus.Subscribe("history.changed", l.handleHistoryChanged)
	bus.Subscribe("equipment.changed", l.handleEquipmentChanged)
	l.logger.Info("PendingListener subscribed to workflow events")
}

func (l *PendingListener) handleHistoryChanged(ctx context.Context, _ eventbus.Event) error {
	if err := l.cacheRepo.Del(ctx, constants.CacheKeyPendingList, constants.CacheKeyDashboardSummary); err != nil {
		l.logger.Warn("failed to invalidate workflow caches", zap.Error(err))
	}
	return l.hub.Broadcast(websocket.TypeRequestUpdate, nil)
}

func (l *PendingListener) handleEquipmentChanged(ctx context.Context, _ eventbus.Event) error {
	if err := l.cacheRepo.Del(ctx, constants.CacheKeyDashboardSummary); err != nil {
		l.logger.Warn("failed to invalidate dashboard cache", zap.Error(err))
	}
	return nil
}
