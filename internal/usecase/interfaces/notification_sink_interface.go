package interfaces

import (
	"context"
	"freight_opcost/internal/domain/entities"
)

//go:generate mockgen -source=notification_sink_interface.go -destination=mocks/mock_notification_sink.go -package=mock_interfaces

// INotificationSink receives user-facing success/error messages. Delivery is
// best-effort and never fails the calling operation.
type INotificationSink interface {
	Notify(ctx context.Context, n entities.Notification)
}
