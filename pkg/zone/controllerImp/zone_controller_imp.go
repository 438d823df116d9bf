package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"agrisense/entities"
	"agrisense/pkg/advisory"
	"agrisense/pkg/zone/repository"
	"agrisense/pkg/zone/service"
)

type ZoneCtrl struct {
	repo repository.ZoneRepository
	svc  service.ZoneService
}

func New(repo repository.ZoneRepository, svc service.ZoneService) *ZoneCtrl {
	return &ZoneCtrl{repo: repo, svc: svc}
}

type createReq struct {
	FarmID         string                   `json:"farm_id"`
	Name           string                   `json:"name"`
	Type           string                   `json:"type"`
	CropName       string                   `json:"crop_name"`
	AreaAcres      float64                  `json:"area_acres"`
	SoilType       string                   `json:"soil_type"`
	IrrigationType string                   `json:"irrigation_type"`
	CropStage      string                   `json:"crop_stage"`
	Coordinates    *entities.GeoJSONPolygon `json:"coordinates"`
}

func (h *ZoneCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" || req.FarmID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name and farm_id are required"})
	}
	if req.CropStage == "" {
		req.CropStage = "Vegetative"
	}
	z := &entities.Zone{
		FarmID: req.FarmID, Name: req.Name, Type: req.Type, CropName: req.CropName,
		AreaAcres: req.AreaAcres, SoilType: req.SoilType, IrrigationType: req.IrrigationType,
		Status: "Healthy", CropStage: req.CropStage, Coordinates: req.Coordinates,
	}
	if err := h.repo.Create(z); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, z)
}

func (h *ZoneCtrl) List(c echo.Context) error {
	out, err := h.repo.ListByFarm(c.QueryParam("farm_id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ZoneCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	z, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, z)
}

type patchReq struct {
	Name           *string                  `json:"name"`
	Type           *string                  `json:"type"`
	CropName       *string                  `json:"crop_name"`
	AreaAcres      *float64                 `json:"area_acres"`
	SoilType       *string                  `json:"soil_type"`
	IrrigationType *string                  `json:"irrigation_type"`
	CropStage      *string                  `json:"crop_stage"`
	Coordinates    *entities.GeoJSONPolygon `json:"coordinates"`
}

func (h *ZoneCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	z, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req patchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name != nil {
		z.Name = *req.Name
	}
	if req.Type != nil {
		z.Type = *req.Type
	}
	if req.CropName != nil {
		z.CropName = *req.CropName
	}
	if req.AreaAcres != nil {
		z.AreaAcres = *req.AreaAcres
	}
	if req.SoilType != nil {
		z.SoilType = *req.SoilType
	}
	if req.IrrigationType != nil {
		z.IrrigationType = *req.IrrigationType
	}
	if req.CropStage != nil {
		z.CropStage = *req.CropStage
	}
	if req.Coordinates != nil {
		z.Coordinates = req.Coordinates
	}
	if err := h.repo.Update(z); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, z)
}

func (h *ZoneCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *ZoneCtrl) PostSensors(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var reading entities.SensorReadings
	if err := c.Bind(&reading); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	z, err := h.svc.UpdateSensors(uint(id), reading)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, z)
}

type activityReq struct {
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Cost        float64 `json:"cost"`
	Date        string  `json:"date"` // YYYY-MM-DD, defaults to today
}

func (h *ZoneCtrl) PostActivity(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if _, err := h.repo.FindByID(uint(id)); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req activityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	d := time.Now()
	if req.Date != "" {
		if dd, err := time.Parse("2006-01-02", req.Date); err == nil {
			d = dd
		}
	}
	if req.Type == "" {
		req.Type = "Note"
	}
	a := &entities.ZoneActivity{
		ZoneID: uint(id), Type: req.Type, Category: req.Category,
		Description: req.Description, Amount: req.Amount, Cost: req.Cost, Date: d,
	}
	if err := h.repo.AddActivity(a); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *ZoneCtrl) ListActivities(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	out, err := h.repo.ListActivities(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ZoneCtrl) Advise(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var body struct {
		Weather advisory.Weather `json:"weather"`
	}
	// Weather payload is optional.
	_ = c.Bind(&body)
	resp, err := h.svc.Advise(c.Request().Context(), uint(id), body.Weather)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, resp)
}
