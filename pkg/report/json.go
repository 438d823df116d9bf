package report

import (
	"encoding/json"
	"strings"
	"time"

	"agrisense/entities"
)

const (
	formatVersion = "1.0"
	exportSource  = "AgriSense Farm Management System"
)

type exportMetadata struct {
	ExportDate string `json:"exportDate"`
	Version    string `json:"version"`
	Source     string `json:"source"`
}

type jsonExport struct {
	Metadata         exportMetadata            `json:"metadata"`
	Zone             *entities.Zone            `json:"zone"`
	Responsibilities []entities.Responsibility `json:"responsibilities"`
	Lifecycle        []entities.LifecycleStage `json:"lifecycle"`
	Diary            []entities.DiaryEntry     `json:"diary"`
	Harvest          []entities.HarvestLog     `json:"harvest"`
}

// BuildJSON is the raw-data encoding: zone metadata plus all four collections
// verbatim, tagged with export timestamp and format version.
func BuildJSON(zone *entities.Zone, data entities.ZoneRecords) ([]byte, error) {
	return json.MarshalIndent(jsonExport{
		Metadata: exportMetadata{
			ExportDate: time.Now().Format(time.RFC3339),
			Version:    formatVersion,
			Source:     exportSource,
		},
		Zone:             zone,
		Responsibilities: data.Responsibilities,
		Lifecycle:        data.Lifecycle,
		Diary:            data.Diary,
		Harvest:          data.Harvest,
	}, "", "  ")
}

// Filename derives the download name from the zone name and current date,
// e.g. "North_Field_Report_2026-08-30.xlsx".
func Filename(zoneName, kind, ext string) string {
	name := strings.ReplaceAll(strings.TrimSpace(zoneName), " ", "_")
	if name == "" {
		name = "Zone"
	}
	return name + "_" + kind + "_" + time.Now().Format("2006-01-02") + "." + ext
}
