package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"agrisense/entities"
	"agrisense/pkg/records"
)

type RecordsCtrl struct{ store *records.Store }

func New(store *records.Store) *RecordsCtrl { return &RecordsCtrl{store: store} }

// ---- responsibilities ----

func (h *RecordsCtrl) ListResponsibilities(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.ListResponsibilities(c.Param("id")))
}

func (h *RecordsCtrl) CreateResponsibility(c echo.Context) error {
	var in records.ResponsibilityInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if in.TaskName == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "taskName is required"})
	}
	return c.JSON(http.StatusCreated, h.store.CreateResponsibility(c.Param("id"), in))
}

func (h *RecordsCtrl) UpdateResponsibility(c echo.Context) error {
	var p records.ResponsibilityPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if out := h.store.UpdateResponsibility(c.Param("rid"), p); out != nil {
		return c.JSON(http.StatusOK, out)
	}
	// Missing id is a silent no-op in the store; surface it on the API.
	return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
}

func (h *RecordsCtrl) DeleteResponsibility(c echo.Context) error {
	h.store.DeleteResponsibility(c.Param("rid"))
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ---- lifecycle ----

func (h *RecordsCtrl) ListLifecycle(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.ListLifecycle(c.Param("id")))
}

func (h *RecordsCtrl) UpdateStage(c echo.Context) error {
	var p records.StagePatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if out := h.store.UpdateStage(c.Param("rid"), p); out != nil {
		return c.JSON(http.StatusOK, out)
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
}

func (h *RecordsCtrl) SetActiveStage(c echo.Context) error {
	var body struct {
		Stage string `json:"stage"`
	}
	if err := c.Bind(&body); err != nil || body.Stage == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "stage is required"})
	}
	if out := h.store.SetActiveStage(c.Param("id"), body.Stage); out != nil {
		return c.JSON(http.StatusOK, out)
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": "stage not found"})
}

// ---- diary ----

func (h *RecordsCtrl) ListDiary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.ListDiary(c.Param("id")))
}

func (h *RecordsCtrl) CreateDiaryEntry(c echo.Context) error {
	var in records.DiaryInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if in.Content == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "content is required"})
	}
	return c.JSON(http.StatusCreated, h.store.CreateDiaryEntry(c.Param("id"), in))
}

func (h *RecordsCtrl) UpdateDiaryEntry(c echo.Context) error {
	var p records.DiaryPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if out := h.store.UpdateDiaryEntry(c.Param("rid"), p); out != nil {
		return c.JSON(http.StatusOK, out)
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
}

func (h *RecordsCtrl) DeleteDiaryEntry(c echo.Context) error {
	h.store.DeleteDiaryEntry(c.Param("rid"))
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ---- harvest ----

func (h *RecordsCtrl) ListHarvest(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.ListHarvest(c.Param("id")))
}

func (h *RecordsCtrl) CreateHarvestLog(c echo.Context) error {
	var in records.HarvestInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	return c.JSON(http.StatusCreated, h.store.CreateHarvestLog(c.Param("id"), in))
}

func (h *RecordsCtrl) UpdateHarvestLog(c echo.Context) error {
	var p records.HarvestPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if out := h.store.UpdateHarvestLog(c.Param("rid"), p); out != nil {
		return c.JSON(http.StatusOK, out)
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
}

func (h *RecordsCtrl) DeleteHarvestLog(c echo.Context) error {
	h.store.DeleteHarvestLog(c.Param("rid"))
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ---- document ops ----

func (h *RecordsCtrl) Aggregate(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Aggregate(c.Param("id")))
}

func (h *RecordsCtrl) SeedDemo(c echo.Context) error {
	h.store.SeedDemo(c.Param("id"))
	return c.JSON(http.StatusOK, map[string]string{"status": "seeded"})
}

func (h *RecordsCtrl) Export(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Export())
}

func (h *RecordsCtrl) Import(c echo.Context) error {
	var data entities.FarmData
	if err := c.Bind(&data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	h.store.Import(data)
	return c.JSON(http.StatusOK, map[string]string{"status": "imported"})
}

func (h *RecordsCtrl) Clear(c echo.Context) error {
	h.store.Clear()
	return c.JSON(http.StatusOK, map[string]string{"status": "cleared"})
}
