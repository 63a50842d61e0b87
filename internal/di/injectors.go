//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"lifedash/internal"
	"lifedash/internal/controllers"
	"lifedash/internal/geo"
	"lifedash/internal/linkmeta"
	"lifedash/internal/providers"
	"lifedash/internal/services"
	"lifedash/internal/storage"
	"lifedash/internal/structures"
	"lifedash/internal/weather"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		storage.NewZstdCompressor,
		storage.NewFileStore,
		wire.Bind(new(storage.StoreInterface), new(*storage.FileStore)),
		storage.NewScheduler,

		services.NewStateService,
		wire.Bind(new(providers.DashboardStatsInterface), new(services.StateServiceInterface)),
		services.NewQuickLaunchService,
		services.NewWorldClockService,
		services.NewBackupService,

		geo.NewNoopSensor,
		geo.NewResolver,
		weather.NewClient,
		linkmeta.NewFetcher,

		controllers.NewDashboardController,
		controllers.NewBackupController,
		controllers.NewWidgetController,
		controllers.NewLauncherController,
		controllers.NewHealthController,

		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
