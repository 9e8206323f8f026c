package worker

import (
	"github.com/leaselink/leaselink/internal/service"
)

// StartNotificationWorker registers the notification event handlers.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
