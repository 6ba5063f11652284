// Command pushworker turns notification events pushed by Pub/Sub into FCM
// multicasts to the recipient's active devices.
package main

import (
	"context"

	"bazaar/config"
	"bazaar/internal/delivery"
	"bazaar/internal/delivery/worker"
	"bazaar/internal/delivery/worker/handler"
	logs "bazaar/internal/infra/log"
	"bazaar/internal/infra/notification"
	"bazaar/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewDeviceRepository,
			notification.NewFirebasePushService,
			handler.NewPushHandler,
		),
		delivery.Provide(worker.NewServer),
		fx.Invoke(delivery.Run),
	).Run()
}
