//go:build wireinject
// +build wireinject

package di

import (
	"MarketPing/pkg/config"
	"MarketPing/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideLocation,
		ProvideMetrics,

		// Infrastructure clients
		ProvideRedisClient,
		ProvideAlertSink,
		ProvideHub,
		ProvideEventStream,

		// Repositories and services
		ProvideSubscriberStore,
		ProvideGenerator,
		ProvideMessenger,
		ProvideReportCache,

		// Use cases
		ProvideFormatter,
		ProvideDispatcher,
		ProvideBroadcaster,
		ProvideAdhocQueue,
		ProvideQueueService,
		ProvideCommandRouter,
		ProvideScheduler,

		// HTTP surface and application
		ProvideHTTPHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
