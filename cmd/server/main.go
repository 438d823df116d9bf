package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"agrisense/config"
	"agrisense/database"
	"agrisense/router"

	// Auth
	authCtrlImp "agrisense/pkg/auth/controllerImp"

	// Zone
	zoneCtrlImp "agrisense/pkg/zone/controllerImp"
	zoneRepoImp "agrisense/pkg/zone/repositoryImp"
	zoneSvcImp "agrisense/pkg/zone/serviceImp"

	// Records (single-document farm data)
	recCtrlImp "agrisense/pkg/records/controllerImp"
	"agrisense/pkg/records"

	// Report
	reportCtrlImp "agrisense/pkg/report/controllerImp"

	// Advisory/LLM
	"agrisense/pkg/ai"

	// KB
	kbCtrlImp "agrisense/pkg/kb/controllerImp"
	kbRepoImp "agrisense/pkg/kb/repositoryImp"
	kbServiceImp "agrisense/pkg/kb/serviceImp"

	// Feedback
	fbCtrlImp "agrisense/pkg/feedback/controllerImp"
	fbRepoImp "agrisense/pkg/feedback/repositoryImp"

	// Homepage
	homeCtrlImp "agrisense/pkg/homepage/controllerImp"
	homeRepoImp "agrisense/pkg/homepage/repositoryImp"

	// Health
	healthCtrlImp "agrisense/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Record store backed by a single JSON document
	store := records.NewStore(records.NewFilePersistence(cfg.RecordsPath))

	// 4) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 5) LLM (rule-engine mock unless an Ollama endpoint is configured)
	var llm ai.Client
	if cfg.OllamaEndpoint != "" {
		llm = ai.NewOllama(cfg.OllamaEndpoint, cfg.OllamaModel)
	} else {
		llm = ai.NewMock()
	}

	// 6) KB wiring
	kbRepo := kbRepoImp.New(db)
	kbSvc := kbServiceImp.New(kbRepo)
	kbCtrl := kbCtrlImp.New(kbSvc)

	// 7) Repos/Controllers
	zRepo := zoneRepoImp.New(db)
	zSvc := zoneSvcImp.NewZoneService(zRepo, store, llm, kbSvc)
	zCtrl := zoneCtrlImp.New(zRepo, zSvc)

	recCtrl := recCtrlImp.New(store)
	repCtrl := reportCtrlImp.New(zRepo, store)

	fbCtrl := fbCtrlImp.New(fbRepoImp.New(db))
	homeCtrl := homeCtrlImp.New(homeRepoImp.New(db))

	// Auth + Health
	authCtrl := authCtrlImp.NewAuthController(cfg.JWTSecret)
	hCtrl := healthCtrlImp.NewHealthCtrl(db, store)

	// 8) Router
	r := router.New(
		e,
		cfg.JWTSecret,
		zCtrl,
		recCtrl,
		repCtrl.Download,
		kbCtrl,
		fbCtrl,
		homeCtrl,
		authCtrl,
		hCtrl,
	)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
