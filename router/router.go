package router

import (
	"github.com/labstack/echo/v4"

	"agrisense/pkg/middleware"
)

func New(
	e *echo.Echo,
	jwtSecret string,
	zoneCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
		PostSensors(echo.Context) error
		PostActivity(echo.Context) error
		ListActivities(echo.Context) error
		Advise(echo.Context) error
	},
	recCtrl interface {
		ListResponsibilities(echo.Context) error
		CreateResponsibility(echo.Context) error
		UpdateResponsibility(echo.Context) error
		DeleteResponsibility(echo.Context) error
		ListLifecycle(echo.Context) error
		UpdateStage(echo.Context) error
		SetActiveStage(echo.Context) error
		ListDiary(echo.Context) error
		CreateDiaryEntry(echo.Context) error
		UpdateDiaryEntry(echo.Context) error
		DeleteDiaryEntry(echo.Context) error
		ListHarvest(echo.Context) error
		CreateHarvestLog(echo.Context) error
		UpdateHarvestLog(echo.Context) error
		DeleteHarvestLog(echo.Context) error
		Aggregate(echo.Context) error
		SeedDemo(echo.Context) error
		Export(echo.Context) error
		Import(echo.Context) error
		Clear(echo.Context) error
	},
	reportDownload func(echo.Context) error,
	kbCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
	},
	fbCtrl interface {
		Submit(echo.Context) error
		Mine(echo.Context) error
		ListAll(echo.Context) error
	},
	homeCtrl interface {
		Get(echo.Context) error
		Put(echo.Context) error
		Reset(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.Authenticate(jwtSecret))
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	// KB endpoints
	api.POST("/kb/ingest", kbCtrl.IngestText)
	api.POST("/kb/ingest/url", kbCtrl.IngestURL)
	api.GET("/kb/search", kbCtrl.Search)

	api.POST("/zones", zoneCtrl.Create)
	api.GET("/zones", zoneCtrl.List)
	api.GET("/zones/:id", zoneCtrl.Get)
	api.PATCH("/zones/:id", zoneCtrl.Update)
	api.DELETE("/zones/:id", zoneCtrl.Delete)
	api.POST("/zones/:id/sensors", zoneCtrl.PostSensors)
	api.POST("/zones/:id/activities", zoneCtrl.PostActivity)
	api.GET("/zones/:id/activities", zoneCtrl.ListActivities)
	api.POST("/zones/:id/advisory", zoneCtrl.Advise)

	g := e.Group("/zones/:id")
	g.GET("/responsibilities", recCtrl.ListResponsibilities)
	g.POST("/responsibilities", recCtrl.CreateResponsibility)
	g.GET("/lifecycle", recCtrl.ListLifecycle)
	g.POST("/lifecycle/active", recCtrl.SetActiveStage)
	g.GET("/diary", recCtrl.ListDiary)
	g.POST("/diary", recCtrl.CreateDiaryEntry)
	g.GET("/harvest", recCtrl.ListHarvest)
	g.POST("/harvest", recCtrl.CreateHarvestLog)
	g.GET("/records", recCtrl.Aggregate)
	g.POST("/records/seed", recCtrl.SeedDemo)
	g.GET("/report", reportDownload)

	api.PATCH("/responsibilities/:rid", recCtrl.UpdateResponsibility)
	api.DELETE("/responsibilities/:rid", recCtrl.DeleteResponsibility)
	api.PATCH("/lifecycle/:rid", recCtrl.UpdateStage)
	api.PATCH("/diary/:rid", recCtrl.UpdateDiaryEntry)
	api.DELETE("/diary/:rid", recCtrl.DeleteDiaryEntry)
	api.PATCH("/harvest/:rid", recCtrl.UpdateHarvestLog)
	api.DELETE("/harvest/:rid", recCtrl.DeleteHarvestLog)

	api.GET("/records/export", recCtrl.Export)
	api.POST("/records/import", recCtrl.Import)
	api.DELETE("/records", recCtrl.Clear)

	api.POST("/feedback", fbCtrl.Submit)
	api.GET("/feedback/mine", fbCtrl.Mine)

	api.GET("/homepage", homeCtrl.Get)

	admin := e.Group("/admin")
	admin.Use(middleware.AdminOnly())
	admin.GET("/feedback", fbCtrl.ListAll)
	admin.PUT("/homepage", homeCtrl.Put)
	admin.POST("/homepage/reset", homeCtrl.Reset)

	return e
}
