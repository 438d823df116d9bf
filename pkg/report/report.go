package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"agrisense/entities"
)

const sheet = "Report"

const disclaimer = "Note: AI recommendations are advisory only and should be verified by agricultural experts."

// writer appends rows down one sheet, tracking the current row.
type writer struct {
	f   *excelize.File
	row int

	titleStyle  int
	headerStyle int
}

func newWriter() (*writer, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheet)
	_ = f.SetColWidth(sheet, "A", "A", 24)
	_ = f.SetColWidth(sheet, "B", "E", 32)

	title, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, err
	}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	return &writer{f: f, row: 1, titleStyle: title, headerStyle: header}, nil
}

func (w *writer) cells(styled bool, values ...any) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, w.row)
		_ = w.f.SetCellValue(sheet, cell, v)
		if styled {
			_ = w.f.SetCellStyle(sheet, cell, cell, w.headerStyle)
		}
	}
	w.row++
}

func (w *writer) section(title string) {
	w.row++ // blank row before each section
	cell, _ := excelize.CoordinatesToCellName(1, w.row)
	_ = w.f.SetCellValue(sheet, cell, title)
	_ = w.f.SetCellStyle(sheet, cell, cell, w.titleStyle)
	w.row++
}

func (w *writer) noData() { w.cells(false, "No data") }

func fmtDate(t time.Time) string { return t.Format("2006-01-02") }

// BuildWorkbook renders the multi-section zone report. Pure transform of
// already-shaped data; collections render a "No data" row when empty.
func BuildWorkbook(zone *entities.Zone, data entities.ZoneRecords) (*excelize.File, error) {
	w, err := newWriter()
	if err != nil {
		return nil, err
	}

	cell, _ := excelize.CoordinatesToCellName(1, w.row)
	_ = w.f.SetCellValue(sheet, cell, "Farm Management Report")
	_ = w.f.SetCellStyle(sheet, cell, cell, w.titleStyle)
	w.row++
	w.cells(false, "Generated", fmtDate(time.Now()))

	w.section("Zone Information")
	w.cells(false, "Zone Name", zone.Name)
	w.cells(false, "Crop", orNA(zone.CropName))
	w.cells(false, "Area", fmt.Sprintf("%.2f acres", zone.AreaAcres))
	w.cells(false, "Type", zone.Type)
	w.cells(false, "Status", zone.Status)

	w.section("Crop Lifecycle Timeline")
	if len(data.Lifecycle) == 0 {
		w.noData()
	} else {
		w.cells(true, "Stage", "Date", "Status", "Notes")
		for _, st := range data.Lifecycle {
			date := "Not started"
			if st.Date != nil {
				date = fmtDate(*st.Date)
			}
			active := ""
			if st.IsActive {
				active = "Active"
			}
			w.cells(false, st.Stage, date, active, orDefault(st.Notes, "No notes"))
		}
	}

	w.section("Responsibilities & Tasks")
	if len(data.Responsibilities) == 0 {
		w.noData()
	} else {
		w.cells(true, "Task", "Assigned To", "Due Date", "Status")
		for _, r := range data.Responsibilities {
			status := "Pending"
			if r.Status == "completed" {
				status = "Done"
			}
			w.cells(false, r.TaskName, r.AssignedTo, fmtDate(r.DueDate), status)
		}
	}

	w.section("Field Diary (Last 10 Entries)")
	if len(data.Diary) == 0 {
		w.noData()
	} else {
		w.cells(true, "Date", "Type", "Content", "Image")
		entries := data.Diary
		if len(entries) > 10 {
			entries = entries[:10]
		}
		for _, d := range entries {
			hasImage := "No"
			if d.ImageURL != nil && *d.ImageURL != "" {
				hasImage = "Yes"
			}
			w.cells(false, fmtDate(d.Date), strings.ToUpper(d.Type), truncate(d.Content, 100), hasImage)
		}
	}

	w.section("Harvest Summary")
	if len(data.Harvest) == 0 {
		w.noData()
	} else {
		w.cells(true, "Date", "Expected", "Actual", "Deviation", "Quality")
		for _, h := range data.Harvest {
			sign := ""
			if h.Deviation > 0 {
				sign = "+"
			}
			w.cells(false,
				fmtDate(h.HarvestDate),
				fmt.Sprintf("%.0f kg", h.ExpectedYield),
				fmt.Sprintf("%.0f kg", h.ActualYield),
				fmt.Sprintf("%s%.2f%%", sign, h.Deviation),
				orNA(h.QualityGrade),
			)
		}
	}

	w.section("AI Recommendations (Advisory Only)")
	w.cells(false, disclaimer)
	advisories := 0
	for _, st := range data.Lifecycle {
		if st.AIAdvisory != "" {
			if advisories == 0 {
				w.cells(true, "Stage", "AI Advisory")
			}
			w.cells(false, st.Stage, st.AIAdvisory)
			advisories++
		}
	}
	if advisories == 0 {
		w.cells(false, "No AI advisories generated yet")
	}

	return w.f, nil
}

func orNA(s string) string { return orDefault(s, "N/A") }

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
