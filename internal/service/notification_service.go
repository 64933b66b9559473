package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-storefront/internal/config"
	"github.com/spec-kit/ticket-storefront/internal/events"
)

// NotificationService emits notifications for booking lifecycle events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotifyConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotifyConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventBookingSucceeded, n.handleBookingSucceeded)
	n.dispatcher.Subscribe(events.EventBookingFailed, n.handleBookingFailed)
	n.dispatcher.Subscribe(events.EventInventoryLoaded, n.handleInventoryLoaded)
}

func (n *NotificationService) handleBookingSucceeded(ctx context.Context, event events.Event) error {
	n.logger.Info("BookingSucceeded", zap.String("session_id", event.SessionID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleBookingFailed(ctx context.Context, event events.Event) error {
	n.logger.Info("BookingFailed", zap.String("session_id", event.SessionID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleInventoryLoaded(_ context.Context, event events.Event) error {
	n.logger.Debug("InventoryLoaded", zap.String("session_id", event.SessionID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("session_id", event.SessionID),
		zap.String("event_type", string(event.Type)))
}
