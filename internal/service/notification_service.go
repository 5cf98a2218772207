package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/linguahub/moderation-service/internal/config"
	"github.com/linguahub/moderation-service/internal/events"
)

// NotificationService notifies moderators and integrations about moderation
// activity. Delivery is stubbed: payloads are logged where a mailer or
// webhook call would go.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
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
	n.dispatcher.Subscribe(events.EventReportSubmitted, n.handleReportSubmitted)
	n.dispatcher.Subscribe(events.EventModerationActionApplied, n.handleActionApplied)
	n.dispatcher.Subscribe(events.EventUserStatusChanged, n.handleUserStatusChanged)
}

func (n *NotificationService) handleReportSubmitted(ctx context.Context, event events.Event) error {
	n.logger.Info("ReportSubmitted", zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleActionApplied(ctx context.Context, event events.Event) error {
	n.logger.Info("ModerationActionApplied", zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleUserStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("UserStatusChanged", zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}
