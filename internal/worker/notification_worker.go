package worker

import (
	"github.com/linguahub/moderation-service/internal/service"
)

// StartNotificationWorker registers moderation notification handlers.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
