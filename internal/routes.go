package internal

import (
	"net/http"

	"lifedash/internal/controllers"
	"lifedash/internal/providers"
	"lifedash/internal/structures"
)

func InitRoutes(
	dashboardController *controllers.DashboardController,
	backupController *controllers.BackupController,
	widgetController *controllers.WidgetController,
	launcherController *controllers.LauncherController,
	conf *structures.Config,
) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/state", http.HandlerFunc(dashboardController.GetState))
	routers.Post("/state/profile", http.HandlerFunc(dashboardController.SetProfile))
	routers.Post("/state/weather", http.HandlerFunc(dashboardController.SetWeather))
	routers.Post("/state/notes", http.HandlerFunc(dashboardController.SetNotes))
	routers.Post("/state/gallery", http.HandlerFunc(dashboardController.SetGallery))
	routers.Post("/state/background", http.HandlerFunc(dashboardController.SetBackground))
	routers.Post("/state/accent", http.HandlerFunc(dashboardController.SetAccentColor))
	routers.Post("/skills/add", http.HandlerFunc(dashboardController.AddSkill))
	routers.Post("/skills/update", http.HandlerFunc(dashboardController.UpdateSkill))
	routers.Post("/skills/remove", http.HandlerFunc(dashboardController.RemoveSkill))

	routers.Get("/visibility", http.HandlerFunc(dashboardController.GetVisibility))
	routers.Post("/visibility/toggle", http.HandlerFunc(dashboardController.ToggleVisibility))
	routers.Post("/visibility/reset", http.HandlerFunc(dashboardController.ResetVisibility))

	routers.Get("/backup/export", http.HandlerFunc(backupController.Export))
	routers.Post("/backup/import", http.HandlerFunc(backupController.Import))

	routers.Get("/weather/current", http.HandlerFunc(widgetController.GetCurrentWeather))
	routers.Get("/weather/hourly", http.HandlerFunc(widgetController.GetHourlyWeather))
	routers.Get("/location", http.HandlerFunc(widgetController.GetLocation))
	routers.Get("/link-meta", http.HandlerFunc(widgetController.GetLinkMeta))
	routers.Post("/exif", http.HandlerFunc(widgetController.PostExif))
	routers.Get("/sun", http.HandlerFunc(widgetController.GetSun))
	routers.Get("/quote", http.HandlerFunc(widgetController.GetQuote))

	routers.Get("/quicklaunch", http.HandlerFunc(launcherController.GetQuickLaunch))
	routers.Post("/quicklaunch/add", http.HandlerFunc(launcherController.AddQuickLaunch))
	routers.Post("/quicklaunch/remove", http.HandlerFunc(launcherController.RemoveQuickLaunch))
	routers.Get("/worldclock", http.HandlerFunc(launcherController.GetWorldClock))
	routers.Post("/worldclock/add", http.HandlerFunc(launcherController.AddWorldClock))
	routers.Post("/worldclock/remove", http.HandlerFunc(launcherController.RemoveWorldClock))

	return routers
}
