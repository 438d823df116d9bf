package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agrisense/pkg/records"
	"agrisense/pkg/report"
	"agrisense/pkg/zone/repository"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportCtrl struct {
	zones repository.ZoneRepository
	store *records.Store
}

func New(zones repository.ZoneRepository, store *records.Store) *ReportCtrl {
	return &ReportCtrl{zones: zones, store: store}
}

// Download serves the zone report as a file download. format=xlsx (default)
// or format=json.
func (h *ReportCtrl) Download(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	z, err := h.zones.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	data := h.store.Aggregate(strconv.Itoa(id))

	switch c.QueryParam("format") {
	case "json":
		blob, err := report.BuildJSON(z, data)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		c.Response().Header().Set(echo.HeaderContentDisposition,
			`attachment; filename="`+report.Filename(z.Name, "Data", "json")+`"`)
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, blob)
	case "", "xlsx":
		f, err := report.BuildWorkbook(z, data)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		buf, err := f.WriteToBuffer()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		c.Response().Header().Set(echo.HeaderContentDisposition,
			`attachment; filename="`+report.Filename(z.Name, "Report", "xlsx")+`"`)
		return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "format must be xlsx or json"})
	}
}
