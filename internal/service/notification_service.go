package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/leaselink/leaselink/internal/events"
	"github.com/leaselink/leaselink/internal/persistence"
)

const (
	notificationFeedKey = "leaselink:notifications"
	notificationFeedMax = 500
)

// NotificationService turns ticket events into a dashboard activity feed:
// each event is logged and pushed onto a capped Redis list. Feed writes are
// best-effort; a Redis outage never fails the originating request.
type NotificationService struct {
	dispatcher events.Dispatcher
	redis      *persistence.Redis
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, redis *persistence.Redis, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		redis:      redis,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to ticket events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	for _, eventType := range []events.EventType{
		events.EventTicketCreated,
		events.EventTicketStatusChanged,
		events.EventTicketAssigned,
		events.EventTicketCommentAdded,
		events.EventTicketDeleted,
	} {
		n.dispatcher.Subscribe(eventType, n.handleEvent)
	}
}

func (n *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	n.logger.Info("ticket event",
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.Int64("ticket_id", event.TicketID),
	)
	n.pushToFeed(ctx, event)
	return nil
}

func (n *NotificationService) pushToFeed(ctx context.Context, event events.Event) {
	if n.redis == nil || n.redis.Client == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		n.logger.Warn("encode notification", zap.Error(err))
		return
	}
	pipe := n.redis.Client.Pipeline()
	pipe.LPush(ctx, notificationFeedKey, payload)
	pipe.LTrim(ctx, notificationFeedKey, 0, notificationFeedMax-1)
	if _, err := pipe.Exec(ctx); err != nil {
		n.logger.Warn("push notification feed", zap.Error(err))
	}
}
